package sources

import (
	"context"
	"errors"
)

// Weather holds the seasonal weather summaries a source reports for a
// destination.
type Weather struct {
	Summer string `json:"summer"`
	Winter string `json:"winter"`
}

// Record is a raw destination record as extracted by one content source.
// Optional fields (Rating, Reviews, PriceRange, Highlights, ...) may be
// empty when the source does not expose them; the merge step compensates.
type Record struct {
	Name            string   `json:"name"`
	Country         string   `json:"country"`
	Description     string   `json:"description"`
	Image           string   `json:"image"`
	Type            []string `json:"type"`
	Rating          float64  `json:"rating"`
	Reviews         int      `json:"reviews"`
	PriceRange      string   `json:"priceRange"`
	BestTimeToVisit string   `json:"bestTimeToVisit"`
	Weather         Weather  `json:"weather"`
	Highlights      []string `json:"highlights"`
	Source          string   `json:"source"`
	URL             string   `json:"url"`
}

// Source fetches destination records for a free-text query.
//
// Fetch never fails from the caller's point of view: transport and parse
// errors are handled inside the adapter and surface as an empty slice.
// One outbound request per call, no retries.
type Source interface {
	// Name returns the provider identifier (also its path segment on the
	// scrape endpoint).
	Name() string
	// Fetch returns the records the source produced for the query, or nil.
	Fetch(ctx context.Context, query string) []Record
}

// ErrSourceUnavailable is used internally when a source endpoint cannot
// be reached or returns a non-200 status.
var ErrSourceUnavailable = errors.New("source unavailable")
