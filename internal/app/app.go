package app

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alex-user-go/tripplanner/internal/chat"
	"github.com/alex-user-go/tripplanner/internal/config"
	"github.com/alex-user-go/tripplanner/internal/handler"
	"github.com/alex-user-go/tripplanner/internal/middleware"
	"github.com/alex-user-go/tripplanner/internal/obs"
	"github.com/alex-user-go/tripplanner/internal/ratelimit"
	"github.com/alex-user-go/tripplanner/internal/search"
	"github.com/alex-user-go/tripplanner/internal/search/cache"
	"github.com/alex-user-go/tripplanner/internal/sources"
	"github.com/alex-user-go/tripplanner/internal/stay"
	"github.com/alex-user-go/tripplanner/internal/store"
)

// Run initializes and runs the planner service.
func Run() error {
	configPath := flag.String("config", "", "path to YAML config file")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	logger := newLogger(cfg.Logging)
	slog.SetDefault(logger)

	metrics := obs.NewMetrics(logger)

	srcs := make([]sources.Source, 0, len(cfg.Sources.Providers))
	for _, p := range cfg.Sources.Providers {
		srcs = append(srcs, sources.NewHTTPSource(p.Name, p.BaseURL, cfg.Sources.FetchTimeout, metrics, logger))
	}

	aggregator := search.NewAggregator(srcs, cfg.Sources.Timeout, metrics, logger)

	searchCache := cache.New(cfg.Sources.CacheTTL)

	limiter := ratelimit.New(cfg.RateLimit.Requests, cfg.RateLimit.Window)
	defer limiter.Close()

	stayClient := stay.NewClient(cfg.Hotels.BaseURL, cfg.Hotels.APIKey, 10*time.Second)
	stays := stay.NewService(stayClient, logger)

	trips, err := store.NewSQLiteStore(cfg.Database.Path)
	if err != nil {
		return err
	}
	defer trips.Close()

	router := chat.NewRouter(aggregator, metrics, logger)

	h := handler.New(aggregator, searchCache, router, stays, trips, limiter, metrics, logger)

	mux := http.NewServeMux()
	h.Register(mux)
	mux.HandleFunc("GET /healthz", obs.HealthHandler(logger))
	mux.HandleFunc("GET /metrics", metrics.MetricsHandler())

	wrappedHandler := middleware.Logging(logger)(mux)

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      wrappedHandler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("starting server", "addr", srv.Addr, "sources", len(srcs))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", "error", err)
		return err
	}

	logger.Info("server stopped")
	return nil
}

// newLogger builds the process logger from config.
func newLogger(cfg config.LoggingConfig) *slog.Logger {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.Format == "text" {
		return slog.New(slog.NewTextHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}
