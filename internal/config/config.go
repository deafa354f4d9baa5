// Package config loads govtu settings from a YAML file and merges them with
// command line flags.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/philipparndt/govtu/pkg/mesh"
)

// Config holds display, export and watch settings.
type Config struct {
	// Field is the point-scalar field that drives coloring; empty picks the first.
	Field          string   `yaml:"field"`
	Representation string   `yaml:"representation"`
	Threshold      *float64 `yaml:"threshold"`

	Export Export `yaml:"export"`
	Legend Legend `yaml:"legend"`
	Watch  Watch  `yaml:"watch"`
}

// Export configures STL output.
type Export struct {
	Binary bool `yaml:"binary"`
}

// Legend configures the color bar image.
type Legend struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Format string `yaml:"format"`
}

// Watch configures file reloading.
type Watch struct {
	Debounce time.Duration `yaml:"debounce"`
}

// Flags carries command line overrides. Zero values leave the config untouched.
type Flags struct {
	Field          string
	Representation string
	Threshold      *float64
	Binary         bool
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Representation: mesh.Surface.String(),
		Legend: Legend{
			Width:  512,
			Height: 96,
			Format: "png",
		},
		Watch: Watch{Debounce: 500 * time.Millisecond},
	}
}

// Load reads a YAML config file on top of the defaults.
// Keys missing from the file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Resolve applies command line overrides.
func (c *Config) Resolve(flags Flags) {
	if flags.Field != "" {
		c.Field = flags.Field
	}
	if flags.Representation != "" {
		c.Representation = flags.Representation
	}
	if flags.Threshold != nil {
		c.Threshold = flags.Threshold
	}
	if flags.Binary {
		c.Export.Binary = true
	}
}

// Validate checks values that cannot be fixed up silently.
func (c Config) Validate() error {
	if _, err := mesh.ParseRepresentation(c.Representation); err != nil {
		return err
	}
	if c.Legend.Width <= 0 || c.Legend.Height <= 0 {
		return fmt.Errorf("legend size %dx%d must be positive", c.Legend.Width, c.Legend.Height)
	}
	switch strings.ToLower(c.Legend.Format) {
	case "png", "webp":
	default:
		return fmt.Errorf("unsupported legend format %q (expected png or webp)", c.Legend.Format)
	}
	if c.Watch.Debounce < 0 {
		return fmt.Errorf("watch debounce %s must not be negative", c.Watch.Debounce)
	}
	return nil
}

// RepresentationMode returns the parsed representation.
func (c Config) RepresentationMode() mesh.Representation {
	r, err := mesh.ParseRepresentation(c.Representation)
	if err != nil {
		return mesh.Surface
	}
	return r
}
