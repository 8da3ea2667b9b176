package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/danielhkuo/solvegraph/cliparse"
	"github.com/danielhkuo/solvegraph/dashboard"
	"github.com/danielhkuo/solvegraph/db"
	"github.com/danielhkuo/solvegraph/middleware"
	"github.com/danielhkuo/solvegraph/router"
	"github.com/danielhkuo/solvegraph/source"
)

func main() {
	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(newLogger(cfg.LogLevel))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Open the record mirror
	store, err := db.Open(ctx, cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		slog.Error("database setup failed", "type", cfg.DatabaseType, "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Database schema ready", "type", store.Type())

	// Records come from the source and are mirrored, or straight from the mirror
	var loader dashboard.Loader
	var mirror dashboard.Mirror
	if cfg.DataSource == cliparse.DataSourceStore {
		loader = store
	} else {
		loader = source.NewLoader(cfg.DataSource, source.Options{Policy: cfg.Malformed})
		mirror = store
	}
	svc := dashboard.NewService(loader, mirror, dashboard.Settings{RecentSolves: cfg.RecentSolves}, cfg.DataSource)

	// No data, no server
	if _, err := svc.Reload(ctx); err != nil {
		slog.Error("initial load failed", "source", cfg.DataSource, "error", err)
		os.Exit(1)
	}

	server := http.Server{
		Handler:           middleware.CORS(router.NewRouter(svc, store, cfg)),
		Addr:              ":" + strconv.Itoa(cfg.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		// Wait for Ctrl-C or SIGTERM
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(shutdownCtx)
	}()

	slog.Info("Listening", "port", cfg.Port, "source", cfg.DataSource)
	err = server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server closed", "error", err)
		os.Exit(1)
	}
	slog.Info("Server closed")
}

// newLogger prints text to terminals and JSON everywhere else.
func newLogger(level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	fd := os.Stderr.Fd()
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		return slog.New(slog.NewTextHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, opts))
}
