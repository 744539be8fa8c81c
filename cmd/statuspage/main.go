// Package main is the entrypoint for the Seyali status page server.
package main

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/seyali/seyali/internal/config"
	"github.com/seyali/seyali/internal/middleware"
	"github.com/seyali/seyali/internal/server"
	"github.com/seyali/seyali/internal/statuspage"
)

func main() {
	config.LoadDotenv()

	cfg, err := config.LoadPage()
	if err != nil {
		slog.Error("failed to load page config", "error", err)
		os.Exit(1)
	}

	logger := initLogger(cfg.LogLevel, cfg.LogFormat)

	client := statuspage.NewClient(cfg.APIBaseURL)
	pageHandler := statuspage.NewPageHandler(client, logger)

	r := chi.NewRouter()
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger, nil))
	r.Use(middleware.Recoverer(logger, nil))

	r.Get("/", pageHandler.Page)

	srv := server.New(
		r,
		cfg.PagePort,
		cfg.ReadTimeout,
		cfg.WriteTimeout,
		cfg.ShutdownTimeout,
		logger,
	)

	logger.Info("starting status page",
		"port", cfg.PagePort,
		"api_base_url", cfg.APIBaseURL,
	)

	if err := srv.Run(); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

// initLogger initializes the slog logger based on configuration.
func initLogger(level, format string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: lvl}

	var h slog.Handler
	if format == "json" {
		h = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		h = slog.NewTextHandler(os.Stdout, opts)
	}

	logger := slog.New(h)
	slog.SetDefault(logger)

	return logger
}
