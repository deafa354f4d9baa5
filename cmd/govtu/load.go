package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/philipparndt/govtu/internal/config"
	"github.com/philipparndt/govtu/pkg/mesh"
	"github.com/philipparndt/govtu/pkg/vtu"
)

// fail prints an error and terminates the command
func fail(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintf(cmd.ErrOrStderr(), "Error: "+format+"\n", args...)
	os.Exit(1)
}

// settings merges the config file, if any, with the global flags
func settings(cmd *cobra.Command, flags config.Flags) config.Config {
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			fail(cmd, "%v", err)
		}
		cfg = loaded
	}

	flags.Field = fieldName
	flags.Representation = representationName
	cfg.Resolve(flags)

	if err := cfg.Validate(); err != nil {
		fail(cmd, "%v", err)
	}
	return cfg
}

// loadMesh parses path and assembles the mesh colored by the configured field
func loadMesh(path string, cfg config.Config) (*mesh.Mesh, error) {
	doc, err := vtu.ParseFile(path)
	if err != nil {
		return nil, fmt.Errorf("parsing VTU file: %w", err)
	}
	m, err := mesh.FromDocument(doc, cfg.Field)
	if err != nil {
		return nil, fmt.Errorf("assembling mesh: %w", err)
	}
	m.SetRepresentation(cfg.RepresentationMode())
	return m, nil
}

// loadInput is loadMesh for commands, failing on error
func loadInput(cmd *cobra.Command, filename string, cfg config.Config) *mesh.Mesh {
	m, err := loadMesh(filename, cfg)
	if err != nil {
		fail(cmd, "%v", err)
	}
	return m
}

// applyThreshold filters m when the config carries a threshold
func applyThreshold(cmd *cobra.Command, m *mesh.Mesh, cfg config.Config) *mesh.Mesh {
	if cfg.Threshold == nil {
		return m
	}
	filtered, err := mesh.Threshold(m, *cfg.Threshold)
	if err != nil {
		fail(cmd, "applying threshold: %v", err)
	}
	return filtered
}

// thresholdFlag returns a pointer to value when the named flag was set
func thresholdFlag(cmd *cobra.Command, name string, value float64) *float64 {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	return &value
}
