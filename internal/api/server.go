package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/nishant-k1/mdsite/internal/config"
	"github.com/nishant-k1/mdsite/internal/library"
	"github.com/nishant-k1/mdsite/internal/render"
)

// Server is the HTTP server for mdsite: a JSON API over the document
// library plus server-rendered view pages.
type Server struct {
	router chi.Router
	lib    *library.Library
	rend   *render.Renderer
	log    *slog.Logger
	cfg    config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(lib *library.Library, rend *render.Renderer, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		lib:  lib,
		rend: rend,
		log:  log,
		cfg:  cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	r.Get("/health", s.handleHealth)
	r.Get("/theme.css", s.handleThemeCSS)

	r.Get("/api/documents", s.handleListDocuments)
	r.Get("/api/documents/*", s.handleGetDocument)

	r.Get("/", s.handleHome)
	r.Get("/view/*", s.handleViewPage)

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

func (s *Server) handleThemeCSS(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Write(s.rend.ThemeCSS())
}
