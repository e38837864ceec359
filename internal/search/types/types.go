package types

import "github.com/alex-user-go/tripplanner/internal/sources"

// Result represents one aggregated destination search.
type Result struct {
	Destinations []Destination `json:"destinations"`
	TotalResults int           `json:"totalResults"`
	SearchQuery  string        `json:"searchQuery"`
	IsFallback   bool          `json:"isFallback"`
}

// AverageCost breaks a destination's typical spend into categories.
type AverageCost struct {
	Accommodation string `json:"accommodation"`
	Food          string `json:"food"`
	Activities    string `json:"activities"`
}

// Destination is the canonical, merged destination record. Fields no
// source reported carry an explicit placeholder rather than being empty.
type Destination struct {
	Name            string          `json:"name"`
	Country         string          `json:"country"`
	Description     string          `json:"description"`
	Image           string          `json:"image"`
	Climate         string          `json:"climate"`
	BestTimeToVisit string          `json:"bestTimeToVisit"`
	Currency        string          `json:"currency"`
	Language        string          `json:"language"`
	TimeZone        string          `json:"timeZone"`
	Highlights      []string        `json:"highlights"`
	AverageCost     AverageCost     `json:"averageCost"`
	Weather         sources.Weather `json:"weather"`
	VisaInfo        string          `json:"visaInfo"`
	Safety          string          `json:"safety"`
	LocalTips       []string        `json:"localTips"`
	Type            []string        `json:"type"`
}
