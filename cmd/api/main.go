// Package main is the entrypoint for the Seyali status API server.
package main

import (
	"context"
	"log/slog"
	"net/url"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/oklog/ulid/v2"

	"github.com/seyali/seyali/internal/cache"
	"github.com/seyali/seyali/internal/config"
	"github.com/seyali/seyali/internal/handler"
	"github.com/seyali/seyali/internal/metrics"
	"github.com/seyali/seyali/internal/middleware"
	"github.com/seyali/seyali/internal/repository"
	"github.com/seyali/seyali/internal/server"
)

const migrationsDir = "migrations"

func main() {
	ctx := context.Background()
	started := time.Now()

	config.LoadDotenv()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Initialize logger, tagged with a per-process instance ID
	logger := initLogger(cfg.LogLevel, cfg.LogFormat).With(
		slog.String("instance_id", ulid.Make().String()),
	)

	// Optional database. The status endpoints only need the env var's
	// presence, so an unreachable database degrades /readyz instead of
	// killing the process.
	var repo *repository.Repository
	if cfg.DatabaseConfigured() {
		if err := repository.RunMigrations(cfg.DatabaseURL, migrationsDir); err != nil {
			logger.Warn("migrations not applied",
				slog.String("error", sanitizeError(err, cfg.DatabaseURL)),
			)
		}

		repo, err = repository.New(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Warn("database configured but unreachable",
				slog.String("error", sanitizeError(err, cfg.DatabaseURL)),
				slog.String("database_url", redactURL(cfg.DatabaseURL)),
			)
		} else {
			logger.Info("connected to database")
		}
	}

	// Optional cache, same degradation rules as the database.
	var cacheClient *cache.Cache
	if cfg.RedisConfigured() {
		cacheClient, err = cache.New(ctx, cfg.RedisURL)
		if err != nil {
			logger.Warn("redis configured but unreachable",
				slog.String("error", sanitizeError(err, cfg.RedisURL)),
				slog.String("redis_url", redactURL(cfg.RedisURL)),
			)
		} else {
			logger.Info("connected to Redis")
		}
	}

	// Metrics recorder shared by handlers and middleware
	recorder := metrics.NewInMemory()

	// Initialize handlers
	h := handler.New(recorder)

	// Assign through typed variables so a nil *Repository never hides
	// inside a non-nil HealthChecker interface.
	var dbChecker, cacheChecker handler.HealthChecker
	if repo != nil {
		dbChecker = repo
	}
	if cacheClient != nil {
		cacheChecker = cacheClient
	}

	healthHandler := handler.NewHealthHandler(started, cfg.AppEnv, dbChecker, cacheChecker, recorder)
	statusHandler := handler.NewStatusHandler(cfg.DatabaseConfigured(), cfg.RedisConfigured(), recorder)
	metricsHandler := handler.NewMetricsHandler(recorder)

	// Setup router
	r := setupRouter(h, healthHandler, statusHandler, metricsHandler, cfg, logger, recorder)

	// Create and run server
	srv := server.New(
		r,
		cfg.AppPort,
		cfg.ReadTimeout,
		cfg.WriteTimeout,
		cfg.ShutdownTimeout,
		logger,
	)

	if repo != nil {
		srv.OnShutdown("postgres", func(ctx context.Context) error {
			repo.Close()
			return nil
		})
	}
	if cacheClient != nil {
		srv.OnShutdown("redis", func(ctx context.Context) error {
			return cacheClient.Close()
		})
	}

	logger.Info("starting server",
		"port", cfg.AppPort,
		"base_url", cfg.BaseURL,
		"env", cfg.AppEnv,
		"database", cfg.DatabaseConfigured(),
		"redis", cfg.RedisConfigured(),
	)

	if err := srv.Run(); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

// initLogger initializes the slog logger based on configuration.
func initLogger(level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: parseLogLevel(level),
	}

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

// parseLogLevel converts string log level to slog.Level.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// setupRouter configures the chi router with all routes and middleware.
func setupRouter(
	h *handler.Handler,
	healthHandler *handler.HealthHandler,
	statusHandler *handler.StatusHandler,
	metricsHandler *handler.MetricsHandler,
	cfg *config.Config,
	logger *slog.Logger,
	recorder metrics.Recorder,
) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger, recorder))
	r.Use(middleware.Recoverer(logger, recorder))
	r.Use(middleware.Security(middleware.SecurityConfig{
		IsDevelopment: cfg.IsDevelopment(),
	}))

	corsCfg := middleware.DefaultCORSConfig()
	corsCfg.AllowedOrigins = cfg.GetCORSAllowedOrigins()
	r.Use(middleware.CORS(corsCfg))

	// Probes and metrics
	r.Get("/health", healthHandler.Health)
	r.Get("/readyz", healthHandler.Readyz)
	r.Get("/metrics", metricsHandler.Metrics)

	// API routes, rate limited per client IP
	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.RateLimitIP(middleware.RateLimitConfig{
			Logger:  logger,
			Enabled: cfg.RateLimitEnabled,
			RPS:     cfg.RateLimitRPS,
			Burst:   cfg.RateLimitBurst,
		}))

		r.Get("/hello", h.Hello)
		r.Get("/status", statusHandler.Status)

		// Subrouters do not inherit the parent's fallback handlers.
		r.NotFound(h.NotFound)
		r.MethodNotAllowed(h.MethodNotAllowed)
	})

	// 404 and 405 handlers
	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.MethodNotAllowed)

	return r
}

var passwordPattern = regexp.MustCompile(`(?i)password=[^\s]+`)

func redactURL(raw string) string {
	if raw == "" {
		return ""
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return "[redacted]"
	}

	if parsed.User != nil {
		username := parsed.User.Username()
		if username == "" {
			parsed.User = url.User("redacted")
		} else {
			parsed.User = url.User(username)
		}
	}

	return parsed.String()
}

func sanitizeError(err error, secrets ...string) string {
	if err == nil {
		return ""
	}

	msg := err.Error()
	for _, secret := range secrets {
		if secret == "" {
			continue
		}
		redacted := redactURL(secret)
		if redacted == "" {
			redacted = "[redacted]"
		}
		msg = strings.ReplaceAll(msg, secret, redacted)
	}

	return passwordPattern.ReplaceAllString(msg, "password=redacted")
}
