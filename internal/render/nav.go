package render

import (
	"bytes"
	"fmt"
	"html/template"
	"slices"

	"github.com/nishant-k1/mdsite/internal/document"
	"github.com/nishant-k1/mdsite/internal/navtree"
)

// NavState is presentation state layered over the immutable tree. It
// controls which parts of the rendered tree are visible; it never changes
// which nodes exist.
type NavState struct {
	// Loaded distinguishes "no documents yet fetched" from "fetched and
	// empty". The two render observably different placeholders.
	Loaded bool

	// Expanded maps a directory route to its open/closed display state.
	// A nil map renders everything expanded.
	Expanded map[string]bool
}

// Nav renders the navigation tree as a nested link list. Documents at a
// level are listed before child directories; the link whose segments
// exactly match active carries the "active" class; directories are
// non-clickable group labels.
func Nav(root *navtree.Node, active []string, state NavState) template.HTML {
	if !state.Loaded {
		return `<p class="nav-loading">Loading documents…</p>`
	}
	if root.IsEmpty() {
		return `<p class="nav-empty">No documents found.</p>`
	}
	var buf bytes.Buffer
	writeNode(&buf, root, nil, active, state)
	return template.HTML(buf.String())
}

func writeNode(buf *bytes.Buffer, node *navtree.Node, prefix, active []string, state NavState) {
	buf.WriteString(`<ul class="nav-tree">`)

	for _, doc := range node.Documents {
		class := ""
		if slices.Equal(doc.Segments, active) {
			class = ` class="active"`
		}
		fmt.Fprintf(buf, `<li><a href="/view%s"%s>%s</a></li>`,
			template.HTMLEscapeString(doc.Route()),
			class,
			template.HTMLEscapeString(doc.Title))
	}

	for _, name := range node.ChildNames() {
		dirSegments := append(append([]string(nil), prefix...), name)
		dirRoute := document.Route(dirSegments)

		class := "nav-dir"
		if state.Expanded != nil && !state.Expanded[dirRoute] {
			class += " collapsed"
		}
		fmt.Fprintf(buf, `<li class="%s" data-route="%s"><span class="dir">%s</span>`,
			class,
			template.HTMLEscapeString(dirRoute),
			template.HTMLEscapeString(name))
		writeNode(buf, node.Child(name), dirSegments, active, state)
		buf.WriteString(`</li>`)
	}

	buf.WriteString(`</ul>`)
}
