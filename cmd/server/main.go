package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nishant-k1/mdsite/internal/api"
	"github.com/nishant-k1/mdsite/internal/config"
	"github.com/nishant-k1/mdsite/internal/library"
	"github.com/nishant-k1/mdsite/internal/render"
	"github.com/nishant-k1/mdsite/internal/scanner"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize the content library.
	lib := library.New(cfg.ContentRoot, scanner.Options{
		ExcludeDirs:  cfg.ExcludeDirs,
		MaxFileBytes: cfg.MaxFileBytes,
		Log:          log,
	}, cfg.RescanDebounce, log)

	// An unreadable content root is fatal; later rescans only log.
	if err := lib.Rescan(ctx); err != nil {
		log.Error("initial scan failed", "root", cfg.ContentRoot, "error", err)
		os.Exit(1)
	}

	if cfg.Watch {
		if err := lib.Watch(ctx); err != nil {
			log.Warn("cannot watch content root, live rescan disabled", "error", err)
		}
	}

	rend := render.New(cfg.HighlightStyle)

	// Initialize HTTP server.
	srv := api.NewServer(lib, rend, log, cfg)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		lib.Stop()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		httpServer.Shutdown(shutdownCtx)
	}()

	log.Info("starting mdsite", "port", cfg.Port, "root", cfg.ContentRoot)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
