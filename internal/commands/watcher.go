package commands

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// moduleWatcher watches the directory holding a guest module and reports
// changes to files matching the configured patterns. Rebuilds typically
// rewrite the .wasm in place, so a single non-recursive watch is enough.
type moduleWatcher struct {
	watcher  *fsnotify.Watcher
	patterns []string
	exclude  []string
	onChange func(path string, op fsnotify.Op)
}

func newModuleWatcher(dir string, patterns, exclude []string, onChange func(path string, op fsnotify.Op)) (*moduleWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch directory %s: %w", dir, err)
	}

	return &moduleWatcher{
		watcher:  watcher,
		patterns: patterns,
		exclude:  exclude,
		onChange: onChange,
	}, nil
}

// Start blocks delivering change notifications until ctx is done or the
// watcher fails.
func (mw *moduleWatcher) Start(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-mw.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher channel closed")
			}
			if mw.matches(event.Name) {
				mw.onChange(event.Name, event.Op)
			}
		case err, ok := <-mw.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher error channel closed")
			}
			return fmt.Errorf("watcher error: %w", err)
		}
	}
}

func (mw *moduleWatcher) Close() error {
	return mw.watcher.Close()
}

func (mw *moduleWatcher) matches(path string) bool {
	base := filepath.Base(path)

	for _, pattern := range mw.exclude {
		if matched, _ := filepath.Match(pattern, base); matched {
			return false
		}
	}

	for _, pattern := range mw.patterns {
		if matched, _ := filepath.Match(pattern, base); matched {
			return true
		}
	}

	return false
}
