// Package library owns the current content snapshot: the descriptor list
// and navigation tree produced by the most recent successful scan.
package library

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/nishant-k1/mdsite/internal/document"
	"github.com/nishant-k1/mdsite/internal/navtree"
	"github.com/nishant-k1/mdsite/internal/scanner"
)

// Library holds an immutable snapshot per scan pass. Consumers read the
// snapshot; Rescan swaps it atomically. Before the first successful scan
// the library reports not-loaded, which the UI renders as a loading state.
type Library struct {
	root     string
	opts     scanner.Options
	debounce time.Duration
	log      *slog.Logger

	mu     sync.RWMutex
	docs   []document.Descriptor
	tree   *navtree.Node
	byPath map[string]document.Descriptor
	loaded bool

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New creates a Library over the given content root. debounce is the quiet
// period the watcher waits after a filesystem event before rescanning.
func New(root string, opts scanner.Options, debounce time.Duration, log *slog.Logger) *Library {
	if log == nil {
		log = slog.Default()
	}
	if opts.Log == nil {
		opts.Log = log
	}
	return &Library{
		root:     root,
		opts:     opts,
		debounce: debounce,
		log:      log,
	}
}

// Rescan runs a full scan and replaces the snapshot on success. On failure
// the previous snapshot stays in place and the error is returned.
func (l *Library) Rescan(ctx context.Context) error {
	docs, err := scanner.Scan(l.root, l.opts)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	tree := navtree.Build(docs)
	byPath := make(map[string]document.Descriptor, len(docs))
	for _, d := range docs {
		byPath[d.Route()] = d
	}

	l.mu.Lock()
	l.docs = docs
	l.tree = tree
	l.byPath = byPath
	l.loaded = true
	l.mu.Unlock()

	l.log.Info("content rescanned", "root", l.root, "documents", len(docs))
	return nil
}

// Snapshot returns the current descriptor list and tree. ok is false until
// the first successful scan completes.
func (l *Library) Snapshot() (docs []document.Descriptor, tree *navtree.Node, ok bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.docs, l.tree, l.loaded
}

// Lookup finds the descriptor addressed by the given segments.
func (l *Library) Lookup(segments []string) (document.Descriptor, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	d, ok := l.byPath[document.Route(segments)]
	return d, ok
}

// Stop shuts down the watcher, if running, and waits for it to exit.
func (l *Library) Stop() {
	if l.cancel != nil {
		l.cancel()
	}
	l.wg.Wait()
}
