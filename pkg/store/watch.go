package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
)

// Event is emitted by Watcher.Watch when a persisted key changes.
type Event struct {
	Key string
}

// Watcher is implemented by KV backends that can stream change
// notifications. Callers should drain the returned channel to avoid blocking
// the watcher; it is closed once ctx is done.
type Watcher interface {
	Watch(ctx context.Context) (<-chan Event, error)
}

func (k *diskKV) Watch(ctx context.Context) (<-chan Event, error) {
	if err := os.MkdirAll(k.basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	if err := watcher.Add(k.basePath); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("store: watch base path: %w", err)
	}

	events := make(chan Event, 16)
	go func() {
		defer close(events)
		defer func() {
			if err := watcher.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "store: watcher close: %v\n", err)
			}
		}()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
					continue
				}
				key := filepath.Base(ev.Name)
				if strings.HasPrefix(key, ".") {
					continue // temp files from atomic writes
				}
				select {
				case events <- Event{Key: key}:
				case <-ctx.Done():
					return
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				fmt.Fprintf(os.Stderr, "store: watcher: %v\n", err)
			}
		}
	}()
	return events, nil
}
