package library

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/nishant-k1/mdsite/internal/scanner"
)

// Watch starts a filesystem watcher over the content root and all of its
// non-excluded subdirectories. Events are debounced into a single Rescan.
// The watcher stops when ctx is cancelled or Stop is called.
func (l *Library) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	if err := l.addDirs(watcher); err != nil {
		watcher.Close()
		return err
	}

	watchCtx, cancel := context.WithCancel(ctx)
	l.cancel = cancel

	l.wg.Add(1)
	go l.watchLoop(watchCtx, watcher)
	return nil
}

// addDirs registers the root and every non-excluded subdirectory with the
// watcher. Adding an already-watched directory is a no-op.
func (l *Library) addDirs(watcher *fsnotify.Watcher) error {
	return filepath.WalkDir(l.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == l.root {
				return err
			}
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if path != l.root && scanner.ExcludedDir(d.Name(), l.opts.ExcludeDirs) {
			return filepath.SkipDir
		}
		if err := watcher.Add(path); err != nil {
			l.log.Warn("cannot watch directory", "path", path, "error", err)
		}
		return nil
	})
}

func (l *Library) watchLoop(ctx context.Context, watcher *fsnotify.Watcher) {
	defer l.wg.Done()
	defer watcher.Close()

	var timer *time.Timer
	var fire <-chan time.Time
	schedule := func() {
		if timer == nil {
			timer = time.NewTimer(l.debounce)
			fire = timer.C
			return
		}
		timer.Reset(l.debounce)
	}

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if event.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if !scanner.ExcludedDir(filepath.Base(event.Name), l.opts.ExcludeDirs) {
						if err := watcher.Add(event.Name); err != nil {
							l.log.Warn("cannot watch new directory", "path", event.Name, "error", err)
						}
					}
				}
			}
			schedule()

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			l.log.Warn("watcher error", "error", err)

		case <-fire:
			// Timer fired: drained, safe to Reset on the next event.
			timer = nil
			fire = nil
			if err := l.Rescan(ctx); err != nil && ctx.Err() == nil {
				l.log.Error("rescan failed", "error", err)
			}
		}
	}
}
