// Command source runs one mock scrape source for local development.
// Each personality mimics a different destination site: distinct latency,
// failure rate and field coverage.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

var errSourceDown = errors.New("source unavailable")

func main() {
	port := getEnv("PORT", "9001")
	sourceType := getEnv("SOURCE_TYPE", "tripadvisor")

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	var scraper http.Handler

	switch sourceType {
	case "tripadvisor":
		scraper = NewTripAdvisor()
	case "lonelyplanet":
		scraper = NewLonelyPlanet()
	case "booking":
		scraper = NewBooking()
	default:
		logger.Error("unknown source type", "type", sourceType)
		os.Exit(1)
	}
	logger.Info("starting scrape source", "type", sourceType, "port", port)

	mux := http.NewServeMux()
	mux.Handle("/scrape/"+sourceType, scraper)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			logger.Error("failed to write healthz response", "error", err)
		}
	})

	addr := ":" + port
	srv := &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", addr)
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
		os.Exit(1)
	}

	logger.Info("server stopped")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
