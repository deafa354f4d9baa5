// Package watcher reloads VTU files when they change on disk.
package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/philipparndt/govtu/pkg/mesh"
)

// LoadFunc builds a mesh from a file path
type LoadFunc func(path string) (*mesh.Mesh, error)

// ReloadFunc receives the outcome of every reload. On error the previously
// delivered mesh remains the current one.
type ReloadFunc func(path string, m *mesh.Mesh, err error)

// MeshWatcher watches mesh files and reloads them after writes settle.
// Reloads run one at a time on the goroutine that calls Run.
type MeshWatcher struct {
	watcher  *fsnotify.Watcher
	load     LoadFunc
	onReload ReloadFunc
	debounce time.Duration

	mu     sync.Mutex
	files  map[string]bool
	timers map[string]*time.Timer

	pending   chan string
	done      chan struct{}
	closeOnce sync.Once
}

// New creates a watcher that calls load and then onReload for each changed file
func New(debounce time.Duration, load LoadFunc, onReload ReloadFunc) (*MeshWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	return &MeshWatcher{
		watcher:  w,
		load:     load,
		onReload: onReload,
		debounce: debounce,
		files:    make(map[string]bool),
		timers:   make(map[string]*time.Timer),
		pending:  make(chan string),
		done:     make(chan struct{}),
	}, nil
}

// Add starts watching a file
func (mw *MeshWatcher) Add(file string) error {
	absPath, err := filepath.Abs(file)
	if err != nil {
		return fmt.Errorf("failed to resolve path %s: %w", file, err)
	}

	mw.mu.Lock()
	defer mw.mu.Unlock()

	// Watch the directory: editors often replace files instead of writing in place
	if err := mw.watcher.Add(filepath.Dir(absPath)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", absPath, err)
	}
	mw.files[absPath] = true
	return nil
}

// Run dispatches file events until ctx is cancelled or the watcher is closed
func (mw *MeshWatcher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-mw.done:
			return nil

		case path := <-mw.pending:
			m, err := mw.load(path)
			mw.onReload(path, m, err)

		case event, ok := <-mw.watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				mw.schedule(event.Name)
			}

		case err, ok := <-mw.watcher.Errors:
			if !ok {
				return nil
			}
			mw.onReload("", nil, fmt.Errorf("watcher error: %w", err))
		}
	}
}

// schedule queues path for Run once no further event arrives within the
// debounce window
func (mw *MeshWatcher) schedule(path string) {
	mw.mu.Lock()
	defer mw.mu.Unlock()

	if !mw.files[path] {
		return
	}
	if timer, ok := mw.timers[path]; ok {
		timer.Stop()
	}
	mw.timers[path] = time.AfterFunc(mw.debounce, func() {
		select {
		case mw.pending <- path:
		case <-mw.done:
		}
	})
}

// Close stops the watcher and drops pending reloads. A reload already running
// on the Run goroutine finishes before Run returns.
func (mw *MeshWatcher) Close() error {
	mw.closeOnce.Do(func() { close(mw.done) })

	mw.mu.Lock()
	for _, timer := range mw.timers {
		timer.Stop()
	}
	mw.timers = make(map[string]*time.Timer)
	mw.mu.Unlock()

	return mw.watcher.Close()
}
