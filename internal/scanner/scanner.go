package scanner

import (
	"bufio"
	"bytes"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/nishant-k1/mdsite/internal/document"
)

// defaultExcludedDirs are directory names never descended into: build
// output and dependency caches common across ecosystems.
var defaultExcludedDirs = map[string]bool{
	"node_modules": true,
	"vendor":       true,
	"dist":         true,
	"build":        true,
	"out":          true,
	"venv":         true,
	"env":          true,
	"virtualenv":   true,
}

// contentExtensions are the file extensions recognized as documents.
var contentExtensions = map[string]bool{
	".md":       true,
	".markdown": true,
}

// Options configures a scan pass.
type Options struct {
	// ExcludeDirs are additional directory names to prune, on top of the
	// built-in exclusion set.
	ExcludeDirs []string

	// MaxFileBytes skips files larger than this when > 0.
	MaxFileBytes int64

	Log *slog.Logger
}

// Scan walks root and returns a descriptor for every recognized content
// file, in deterministic lexical order. Hidden directories (dot prefix)
// and excluded directory names are pruned together with their subtrees.
// A file that cannot be read is skipped with a warning; an unreadable
// root is fatal. Two files resolving to the same route are an error.
func Scan(root string, opts Options) ([]document.Descriptor, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("content root %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("content root %s: not a directory", root)
	}

	log := opts.Log
	if log == nil {
		log = slog.Default()
	}

	var docs []document.Descriptor
	seen := make(map[string]bool)

	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			log.Warn("skipping unreadable path", "path", path, "error", err)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		name := d.Name()
		if d.IsDir() {
			if path == root {
				return nil
			}
			if ExcludedDir(name, opts.ExcludeDirs) {
				return filepath.SkipDir
			}
			return nil
		}

		ext := strings.ToLower(filepath.Ext(name))
		if strings.HasPrefix(name, ".") || !contentExtensions[ext] {
			return nil
		}

		if opts.MaxFileBytes > 0 {
			if fi, err := d.Info(); err == nil && fi.Size() > opts.MaxFileBytes {
				log.Warn("skipping oversized file", "path", path, "size", fi.Size())
				return nil
			}
		}

		raw, err := os.ReadFile(path)
		if err != nil {
			log.Warn("skipping unreadable file", "path", path, "error", err)
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return fmt.Errorf("relativize %s: %w", path, err)
		}
		segments := strings.Split(filepath.ToSlash(rel), "/")
		segments[len(segments)-1] = strings.TrimSuffix(segments[len(segments)-1], filepath.Ext(name))

		desc := describe(segments, raw)

		route := desc.Route()
		if seen[route] {
			return fmt.Errorf("route collision: %s resolves to already-claimed route %s", path, route)
		}
		seen[route] = true

		docs = append(docs, desc)
		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}

	return docs, nil
}

// ExcludedDir reports whether a directory with this name is pruned from
// scans: hidden (dot prefix), in the built-in exclusion set, or in extras.
func ExcludedDir(name string, extras []string) bool {
	if strings.HasPrefix(name, ".") {
		return true
	}
	if defaultExcludedDirs[name] {
		return true
	}
	for _, e := range extras {
		if e != "" && e == name {
			return true
		}
	}
	return false
}

// describe builds a descriptor from route segments and raw file bytes.
// Title preference: frontmatter title, then a leading markdown heading,
// then the file name itself.
func describe(segments []string, raw []byte) document.Descriptor {
	var meta struct {
		Title string `yaml:"title"`
	}
	body, err := frontmatter.Parse(bytes.NewReader(raw), &meta)
	if err != nil {
		// Malformed frontmatter is a content problem, not a scan
		// problem. Treat the whole file as body.
		body = raw
		meta.Title = ""
	}

	title := meta.Title
	if title == "" {
		title = firstHeading(body)
	}
	if title == "" {
		title = segments[len(segments)-1]
	}

	return document.Descriptor{
		Segments: segments,
		Title:    title,
		Raw:      body,
	}
}

// firstHeading returns the text of the document's opening ATX heading, or
// "" when the first non-blank line is not a heading.
func firstHeading(body []byte) string {
	sc := bufio.NewScanner(bytes.NewReader(body))
	sc.Buffer(make([]byte, 0, 64*1024), 256*1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		trimmed := strings.TrimLeft(line, "#")
		if trimmed == line || !strings.HasPrefix(trimmed, " ") {
			return ""
		}
		return strings.TrimSpace(trimmed)
	}
	return ""
}
