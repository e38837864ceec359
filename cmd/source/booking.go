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

// Booking mimics a booking site: price ranges and ratings, terse
// descriptions. 120ms base latency, 10% failure rate.
type Booking struct {
	rng    *rand.Rand
	logger *slog.Logger
}

// NewBooking creates the booking mock source.
func NewBooking() *Booking {
	return &Booking{
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		logger: slog.New(slog.NewTextHandler(os.Stdout, nil)),
	}
}

func (p *Booking) scrape(ctx context.Context, query string) ([]sources.Record, error) {
	// Simulate random latency (60ms to 240ms)
	latency := time.Duration(60+p.rng.Intn(180)) * time.Millisecond

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

func (p *Booking) records(query string) []sources.Record {
	query = strings.ToLower(strings.TrimSpace(query))
	p.logger.Debug("scraping", "query", query)

	records := []sources.Record{
		{
			Name:        "Paris",
			Country:     "France",
			Description: "Top city break destination.",
			Type:        []string{"city"},
			Rating:      4.5,
			Reviews:     41203,
			PriceRange:  "$150-300/night",
			Weather:     sources.Weather{Summer: "Warm (20-25°C)", Winter: "Cold (3-8°C)"},
			Source:      "booking",
			URL:         "https://booking.example/paris",
		},
		{
			Name:        "barcelona", // Inconsistent casing
			Country:     "spain",
			Description: "Beachside city stay.",
			Type:        []string{"beach"},
			Rating:      4.4,
			Reviews:     38911,
			PriceRange:  "$120-250/night",
			Weather:     sources.Weather{Summer: "Hot (25-30°C)", Winter: "Mild (10-15°C)"},
			Source:      "booking",
			URL:         "https://booking.example/barcelona",
		},
		{
			Name:        "Bali",
			Country:     "Indonesia",
			Description: "Island resorts and villas.",
			Type:        []string{"beach", "resort"},
			Rating:      4.3,
			Reviews:     29102,
			PriceRange:  "$80-200/night",
			Weather:     sources.Weather{Summer: "Tropical (26-30°C)", Winter: "Tropical (25-29°C)"},
			Source:      "booking",
			URL:         "https://booking.example/bali",
		},
		{
			Name:        "Lisbon",
			Country:     "Portugal",
			Description: "Affordable European capital.",
			Type:        []string{"city"},
			Rating:      4.6,
			Reviews:     25440,
			PriceRange:  "$90-180/night",
			Weather:     sources.Weather{Summer: "Warm (22-28°C)", Winter: "Mild (8-15°C)"},
			Source:      "booking",
			URL:         "https://booking.example/lisbon",
		},
	}

	return records
}

// ServeHTTP handles scrape requests for this source.
func (p *Booking) ServeHTTP(w http.ResponseWriter, r *http.Request) {
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
