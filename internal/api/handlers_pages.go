package api

import (
	_ "embed"
	"html/template"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/nishant-k1/mdsite/internal/document"
	"github.com/nishant-k1/mdsite/internal/render"
)

//go:embed page.html
var pageHTML string

var pageTmpl = template.Must(template.New("page").Parse(pageHTML))

type pageData struct {
	Title   string
	Nav     template.HTML
	Content template.HTML
}

// handleViewPage serves the full HTML view of one document with the
// navigation sidebar alongside it.
func (s *Server) handleViewPage(w http.ResponseWriter, r *http.Request) {
	segments := document.SplitRoute(chi.URLParam(r, "*"))
	s.renderPage(w, segments)
}

// handleHome serves the landing page: the README when one exists at the
// top level, otherwise the first discovered document.
func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	docs, _, loaded := s.lib.Snapshot()
	if !loaded || len(docs) == 0 {
		s.renderPage(w, nil)
		return
	}
	s.renderPage(w, defaultDocument(docs).Segments)
}

// defaultDocument prefers a README, falling back to the first descriptor
// in scan order.
func defaultDocument(docs []document.Descriptor) document.Descriptor {
	for _, d := range docs {
		if d.Segments[len(d.Segments)-1] == "README" {
			return d
		}
	}
	for _, d := range docs {
		if strings.EqualFold(d.Segments[len(d.Segments)-1], "readme") {
			return d
		}
	}
	return docs[0]
}

// renderPage writes the full page for the given active document. A nil or
// unknown route still renders the navigation so the user is never left
// with a blank view.
func (s *Server) renderPage(w http.ResponseWriter, active []string) {
	_, tree, loaded := s.lib.Snapshot()

	data := pageData{Title: "Documentation"}
	status := http.StatusOK

	nav := render.Nav(tree, active, render.NavState{Loaded: loaded})
	data.Nav = nav

	if loaded && len(active) > 0 {
		if doc, ok := s.lib.Lookup(active); ok {
			rendered := s.rend.Document(doc.Raw)
			data.Title = doc.Title
			data.Content = rendered.HTML
		} else {
			status = http.StatusNotFound
			data.Title = "Not Found"
			data.Content = template.HTML(`<p class="not-found">Document not found: ` +
				template.HTMLEscapeString(document.Route(active)) + `</p>`)
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := pageTmpl.Execute(w, data); err != nil {
		s.log.Error("page template execution failed", "error", err)
	}
}
