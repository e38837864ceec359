package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"math/rand"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/alex-user-go/tripplanner/internal/sources"
)

// TripAdvisor mimics a review site: strong ratings and review counts,
// thin on prices. 100ms base latency, 10% failure rate.
type TripAdvisor struct {
	rng    *rand.Rand
	logger *slog.Logger
}

// NewTripAdvisor creates the tripadvisor mock source.
func NewTripAdvisor() *TripAdvisor {
	return &TripAdvisor{
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		logger: slog.New(slog.NewTextHandler(os.Stdout, nil)),
	}
}

func (p *TripAdvisor) scrape(ctx context.Context, query string) ([]sources.Record, error) {
	// Simulate random latency (50ms to 200ms)
	latency := time.Duration(50+p.rng.Intn(150)) * time.Millisecond

	select {
	case <-time.After(latency):
	case <-ctx.Done():
		return nil, context.Cause(ctx)
	}

	// Simulate 10% failure rate
	if p.rng.Float64() < 0.1 {
		return nil, errSourceDown
	}

	return p.records(query), nil
}

func (p *TripAdvisor) records(query string) []sources.Record {
	query = strings.ToLower(strings.TrimSpace(query))
	p.logger.Debug("scraping", "query", query)

	return []sources.Record{
		{
			Name:        "Paris",
			Country:     "France",
			Description: "The City of Light draws millions of visitors every year with its unforgettable ambiance.",
			Type:        []string{"city", "culture"},
			Rating:      4.8,
			Reviews:     89421,
			Weather:     sources.Weather{Summer: "Warm (20-25°C)", Winter: "Cold (3-8°C)"},
			Highlights:  []string{"Eiffel Tower", "Louvre Museum"},
			Source:      "tripadvisor",
			URL:         "https://tripadvisor.example/paris",
		},
		{
			Name:        "Barcelona",
			Country:     "Spain",
			Description: "Gaudi architecture, Mediterranean beaches and a late-night food scene.",
			Type:        []string{"city", "beach"},
			Rating:      4.7,
			Reviews:     64210,
			Weather:     sources.Weather{Summer: "Hot (25-30°C)", Winter: "Mild (10-15°C)"},
			Highlights:  []string{"Sagrada Familia", "Park Güell"},
			Source:      "tripadvisor",
			URL:         "https://tripadvisor.example/barcelona",
		},
		{
			Name:        "Tokyo",
			Country:     "Japan",
			Description: "A dazzling mix of neon-lit modernity and centuries-old tradition.",
			Type:        []string{"city"},
			Rating:      4.9,
			Reviews:     120334,
			Weather:     sources.Weather{Summer: "Hot and humid (25-32°C)", Winter: "Cool (2-10°C)"},
			Highlights:  []string{"Shibuya Crossing", "Senso-ji Temple"},
			Source:      "tripadvisor",
			URL:         "https://tripadvisor.example/tokyo",
		},
		{
			Name:        "Bali",
			Country:     "Indonesia",
			Description: "Volcanic mountains, rice paddies and coral reefs.",
			Type:        []string{"beach", "nature"},
			Rating:      4.6,
			Reviews:     53890,
			Weather:     sources.Weather{Summer: "Tropical (26-30°C)", Winter: "Tropical (25-29°C)"},
			Highlights:  []string{"Uluwatu Temple", "Tegallalang Rice Terraces"},
			Source:      "tripadvisor",
			URL:         "https://tripadvisor.example/bali",
		},
	}
}

// ServeHTTP handles scrape requests for this source.
func (p *TripAdvisor) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("query"))
	if query == "" {
		http.Error(w, "query is required", http.StatusBadRequest)
		return
	}

	records, err := p.scrape(r.Context(), query)
	if err != nil {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(records); err != nil {
		p.logger.Error("failed to encode response", "error", err)
		return
	}
}
