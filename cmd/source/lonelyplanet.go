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

// LonelyPlanet mimics a guidebook site: rich descriptions and highlights,
// no ratings or prices. 150ms base latency, 15% failure rate.
type LonelyPlanet struct {
	rng    *rand.Rand
	logger *slog.Logger
}

// NewLonelyPlanet creates the lonelyplanet mock source.
func NewLonelyPlanet() *LonelyPlanet {
	return &LonelyPlanet{
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		logger: slog.New(slog.NewTextHandler(os.Stdout, nil)),
	}
}

func (p *LonelyPlanet) scrape(ctx context.Context, query string) ([]sources.Record, error) {
	// Simulate random latency (75ms to 300ms)
	latency := time.Duration(75+p.rng.Intn(225)) * time.Millisecond

	select {
	case <-time.After(latency):
	case <-ctx.Done():
		return nil, context.Cause(ctx)
	}

	// Simulate 15% failure rate
	if p.rng.Float64() < 0.15 {
		return nil, errSourceDown
	}

	return p.records(query), nil
}

func (p *LonelyPlanet) records(query string) []sources.Record {
	query = strings.ToLower(strings.TrimSpace(query))
	p.logger.Debug("scraping", "query", query)

	records := []sources.Record{
		{
			Name:            "Paris",
			Country:         "France",
			Description:     "Paris rewards the wanderer: every arrondissement hides markets, cafes and galleries beyond the postcard monuments.",
			Type:            []string{"culture", "food"},
			BestTimeToVisit: "April to June",
			Weather:         sources.Weather{Summer: "Warm (20-25°C)", Winter: "Cold (3-8°C)"},
			Highlights:      []string{"Le Marais", "Musée d'Orsay", "Canal Saint-Martin"},
			Source:          "lonelyplanet",
			URL:             "https://lonelyplanet.example/paris",
		},
		{
			Name:            "Tokyo",
			Country:         "Japan",
			Description:     "Tokyo is a city of villages, each station neighborhood its own world of food alleys and shrines.",
			Type:            []string{"city", "food"},
			BestTimeToVisit: "March to May",
			Weather:         sources.Weather{Summer: "Hot and humid (25-32°C)", Winter: "Cool (2-10°C)"},
			Highlights:      []string{"Golden Gai", "Meiji Shrine", "Tsukiji Outer Market"},
			Source:          "lonelyplanet",
			URL:             "https://lonelyplanet.example/tokyo",
		},
		{
			Name:            "Lisbon",
			Country:         "Portugal",
			Description:     "Hills, trams and tiled facades above the Tagus, with pastel de nata on every corner.",
			Type:            []string{"city", "culture"},
			BestTimeToVisit: "May to September",
			Weather:         sources.Weather{Summer: "Warm (22-28°C)", Winter: "Mild (8-15°C)"},
			Highlights:      []string{"Alfama", "Belém Tower", "Tram 28"},
			Source:          "lonelyplanet",
			URL:             "https://lonelyplanet.example/lisbon",
		},
	}

	// Sometimes emit a record with no country (merge keys on name+country)
	if p.rng.Float64() < 0.3 {
		records = append(records, sources.Record{
			Name:        "Kyoto",
			Description: "Temples, tea houses and bamboo groves.",
			Type:        []string{"culture"},
			Source:      "lonelyplanet",
			URL:         "https://lonelyplanet.example/kyoto",
		})
	}

	return records
}

// ServeHTTP handles scrape requests for this source.
func (p *LonelyPlanet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
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
