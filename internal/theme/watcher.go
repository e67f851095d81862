package theme

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"gometrics/internal/logger"
)

// Watcher reloads a custom palette whenever its file changes on disk, so
// theme edits show up without restarting the application.
type Watcher struct {
	watcher *fsnotify.Watcher
	log     logger.Logger
}

// NewWatcher creates a palette file watcher.
func NewWatcher(log logger.Logger) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{watcher: w, log: log}, nil
}

// Watch monitors path and emits a freshly loaded palette after each change.
// The parent directory is watched rather than the file itself because many
// editors replace files instead of writing in place. Invalid intermediate
// states are logged and skipped. The channel closes when ctx is cancelled.
func (w *Watcher) Watch(ctx context.Context, path string) (<-chan Palette, error) {
	if err := w.watcher.Add(filepath.Dir(path)); err != nil {
		return nil, err
	}

	palettes := make(chan Palette, 1)

	go func() {
		defer close(palettes)
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-w.watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != filepath.Clean(path) {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}

				palette, err := LoadPalette(path)
				if err != nil {
					w.log.Warning("ThemeWatcher", "ignoring unreadable palette file", map[string]interface{}{
						"path":  path,
						"error": err.Error(),
					})
					continue
				}

				select {
				case palettes <- palette:
				case <-ctx.Done():
					return
				}
			case err, ok := <-w.watcher.Errors:
				if !ok {
					return
				}
				w.log.Error("ThemeWatcher", err, map[string]interface{}{"path": path})
			}
		}
	}()

	return palettes, nil
}

// Close releases the underlying file system watcher.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
