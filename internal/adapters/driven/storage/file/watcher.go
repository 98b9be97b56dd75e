package file

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/atelier-labs/vitrina/internal/core/ports/driven"
	"github.com/atelier-labs/vitrina/internal/logger"
)

// Ensure Watcher implements the interface.
var _ driven.CatalogWatcher = (*Watcher)(nil)

// debounceWindow coalesces the burst of fsnotify events an editor or
// atomic-rename write produces into one reload.
const debounceWindow = 200 * time.Millisecond

// Watcher reports changes to a catalog file so the engine can install a
// fresh generation.
type Watcher struct {
	path string
	fsw  *fsnotify.Watcher
}

// NewWatcher creates a watcher for the given catalog file.
func NewWatcher(path string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	// Watch the directory, not the file: atomic saves replace the inode
	// and a file-level watch would go dead after the first write.
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(path), err)
	}

	return &Watcher{path: path, fsw: fsw}, nil
}

// Watch invokes onChange after each change to the catalog file until ctx
// is done. Event bursts are debounced.
func (w *Watcher) Watch(ctx context.Context, onChange func()) error {
	var timer *time.Timer
	fire := make(chan struct{}, 1)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			logger.Debug("Catalog file event: %s", event)
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounceWindow, func() {
				select {
				case fire <- struct{}{}:
				default:
				}
			})

		case <-fire:
			onChange()

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Catalog watcher error: %v", err)
		}
	}
}

// Close releases watcher resources.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}
