package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ErrWatcherClosed is returned by Next once the watcher has been closed
var ErrWatcherClosed = errors.New("watcher closed")

// SettleDelay is how long Next waits after a write so editors that save in
// several steps have finished.
const SettleDelay = 100 * time.Millisecond

// Watcher reports writes to a fixed set of files. It watches their parent
// directories so files replaced by rename are still seen.
type Watcher struct {
	fs    *fsnotify.Watcher
	files map[string]bool

	// Logf receives watcher errors; nil discards them
	Logf func(format string, args ...interface{})
}

// NewWatcher watches paths. Empty paths are ignored, and so are paths whose
// directory does not exist yet.
func NewWatcher(paths ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	w := &Watcher{fs: fw, files: make(map[string]bool)}
	dirs := make(map[string]bool)
	for _, p := range paths {
		if p == "" {
			continue
		}
		abs, err := filepath.Abs(p)
		if err != nil {
			fw.Close()
			return nil, fmt.Errorf("failed to resolve %s: %w", p, err)
		}
		w.files[abs] = true

		dir := filepath.Dir(abs)
		if dirs[dir] {
			continue
		}
		dirs[dir] = true
		if err := fw.Add(dir); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			fw.Close()
			return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}
	return w, nil
}

// Next blocks until one of the watched files is written or created and
// returns its absolute path.
func (w *Watcher) Next(ctx context.Context) (string, error) {
	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()

		case event, ok := <-w.fs.Events:
			if !ok {
				return "", ErrWatcherClosed
			}
			name := filepath.Clean(event.Name)
			if !w.files[name] {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				select {
				case <-time.After(SettleDelay):
				case <-ctx.Done():
					return "", ctx.Err()
				}
				return name, nil
			}

		case err, ok := <-w.fs.Errors:
			if !ok {
				return "", ErrWatcherClosed
			}
			// Log error but continue watching
			if w.Logf != nil {
				w.Logf("[WATCHER] Error: %v", err)
			}
		}
	}
}

// Watches reports whether path is one of the watched files
func (w *Watcher) Watches(path string) bool {
	abs, err := filepath.Abs(path)
	return err == nil && w.files[abs]
}

// Close stops watching
func (w *Watcher) Close() error {
	return w.fs.Close()
}
