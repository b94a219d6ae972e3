// Package main is the entry point for the MarkPad server.
// It loads configuration, wires the rendering pipeline and caches, sets up
// routing, and starts the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"markpad/internal/assets"
	"markpad/internal/cache"
	"markpad/internal/config"
	"markpad/internal/document"
	"markpad/internal/editor"
	"markpad/internal/handlers"
	"markpad/internal/markdown"
	"markpad/internal/middleware"
	"markpad/internal/notify"
	"markpad/internal/preview"
	"markpad/internal/render"
	"markpad/internal/router"
	"markpad/internal/sanitize"
	"markpad/internal/typeset"
)

// notificationTTL is how long a save/load notification stays visible. The
// value is fixed; the page polls and dismisses on its own schedule.
const notificationTTL = 4 * time.Second

// apiRateLimit caps document API requests per client per minute. The editor
// debounces keystrokes to at most a few posts per second, so this leaves
// generous headroom for one busy author.
const apiRateLimit = 300

func main() {
	// Structured logger for the whole process.
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Quieter logs outside development.
	if !cfg.IsDev() {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})))
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
	)

	// Connect to Valkey when configured. The L2 preview cache is optional;
	// the editor runs fine on the in-memory tier alone.
	var previewCache *cache.PreviewCache
	if cfg.ValkeyEnabled() {
		valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
		if err != nil {
			slog.Warn("valkey unavailable, continuing without the L2 cache", "addr", cfg.ValkeyAddr(), "error", err)
		} else {
			defer valkeyClient.Close()
			previewCache = cache.NewPreviewCache(valkeyClient, cfg.PreviewTTL)
		}
	} else {
		slog.Info("valkey not configured, preview cache is in-memory only")
	}

	renderCache := cache.NewRenderCache(cache.NewMemory(cache.DefaultMemoryEntries), previewCache)

	// The rendering pipeline: markdown conversion, sanitization, math markup.
	pipeline := preview.New(markdown.New(), sanitize.New(), typeset.New())

	// The editor service guards the document behind the asset gate: it
	// opens only after the external editor assets load and the pipeline
	// passes its capability check.
	svc := editor.NewService(
		assets.NewLoader(assets.Manifest()),
		pipeline,
		document.NewStore(),
		renderCache,
	)

	loadCtx, cancelLoad := context.WithCancel(context.Background())
	defer cancelLoad()
	go svc.Start(loadCtx)

	// Initialize the HTML template renderer for the editor and loading pages.
	renderer, err := render.New()
	if err != nil {
		slog.Error("failed to initialize template renderer", "error", err)
		os.Exit(1)
	}

	notifier := notify.NewCenter(notificationTTL)

	// Create the handler group with its dependencies.
	ed := handlers.NewEditor(svc, renderer, notifier, cfg.MaxUploadBytes)

	apiLimiter := middleware.NewRateLimiter(apiRateLimit, time.Minute)
	defer apiLimiter.Stop()

	// Set up the Chi router with all middleware and routes.
	r := router.New(ed, apiLimiter)

	// Create the HTTP server with sensible timeouts. Document posts are
	// small and renders are fast, so the write timeout can stay tight.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	// Give active requests up to 30 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
