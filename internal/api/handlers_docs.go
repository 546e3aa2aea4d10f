package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nishant-k1/mdsite/internal/document"
)

// documentEntry is one row of the listing response.
type documentEntry struct {
	Segments []string `json:"segments"`
	Title    string   `json:"title"`
	Route    string   `json:"route"`
}

// handleListDocuments returns the full descriptor list. Before the first
// scan completes it answers 503 so clients can tell "still loading" apart
// from "loaded and empty".
func (s *Server) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	docs, _, loaded := s.lib.Snapshot()
	if !loaded {
		jsonError(w, "content not yet loaded", http.StatusServiceUnavailable)
		return
	}

	entries := make([]documentEntry, 0, len(docs))
	for _, d := range docs {
		entries = append(entries, documentEntry{
			Segments: d.Segments,
			Title:    d.Title,
			Route:    d.Route(),
		})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"documents": entries})
}

// handleGetDocument renders one document addressed by its route.
func (s *Server) handleGetDocument(w http.ResponseWriter, r *http.Request) {
	_, _, loaded := s.lib.Snapshot()
	if !loaded {
		jsonError(w, "content not yet loaded", http.StatusServiceUnavailable)
		return
	}

	segments := document.SplitRoute(chi.URLParam(r, "*"))
	if len(segments) == 0 {
		jsonError(w, "document route is required", http.StatusBadRequest)
		return
	}

	doc, ok := s.lib.Lookup(segments)
	if !ok {
		jsonError(w, "document not found", http.StatusNotFound)
		return
	}

	rendered := s.rend.Document(doc.Raw)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"route": doc.Route(),
		"title": doc.Title,
		"html":  string(rendered.HTML),
	})
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
