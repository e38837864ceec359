package search

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alex-user-go/tripplanner/internal/obs"
	"github.com/alex-user-go/tripplanner/internal/sources"
)

// stubSource serves fixed records, optionally after a delay.
type stubSource struct {
	name    string
	records []sources.Record
	delay   time.Duration
}

func (s *stubSource) Name() string { return s.name }

func (s *stubSource) Fetch(ctx context.Context, query string) []sources.Record {
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return nil
		}
	}
	return s.records
}

func newTestAggregator(t *testing.T, timeout time.Duration, srcs ...sources.Source) *Aggregator {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	return NewAggregator(srcs, timeout, obs.NewMetrics(logger), logger)
}

func TestAggregator_Search_MergesAcrossSources(t *testing.T) {
	first := &stubSource{name: "tripadvisor", records: []sources.Record{
		{Name: "Paris", Country: "France", Rating: 4.8, Reviews: 100, Highlights: []string{"Eiffel Tower"}, Source: "tripadvisor"},
		{Name: "Barcelona", Country: "Spain", Rating: 4.7, Source: "tripadvisor"},
	}}
	second := &stubSource{name: "booking", records: []sources.Record{
		{Name: "paris", Country: "france", PriceRange: "$150-300/night", Highlights: []string{"Louvre Museum"}, Source: "booking"},
	}}

	agg := newTestAggregator(t, time.Second, first, second)
	result := agg.Search(context.Background(), "europe")

	require.NotNil(t, result)
	assert.False(t, result.IsFallback)
	assert.Equal(t, "europe", result.SearchQuery)
	require.Equal(t, 2, result.TotalResults)

	// First-seen order, duplicates collapsed.
	assert.Equal(t, "Paris", result.Destinations[0].Name)
	assert.Equal(t, "Barcelona", result.Destinations[1].Name)

	// Highlights are unioned across the duplicate group.
	assert.Equal(t, []string{"Eiffel Tower", "Louvre Museum"}, result.Destinations[0].Highlights)
}

func TestAggregator_Search_FallbackWhenEmpty(t *testing.T) {
	empty := &stubSource{name: "tripadvisor"}

	agg := newTestAggregator(t, time.Second, empty)
	result := agg.Search(context.Background(), "anywhere")

	require.NotNil(t, result)
	assert.True(t, result.IsFallback)
	require.Equal(t, 3, result.TotalResults)
	assert.Equal(t, "Paris", result.Destinations[0].Name)
	assert.Equal(t, "Tokyo", result.Destinations[1].Name)
	assert.Equal(t, "Bali", result.Destinations[2].Name)

	// Fallback destinations are fully populated.
	for _, d := range result.Destinations {
		assert.NotEmpty(t, d.Climate, d.Name)
		assert.NotEmpty(t, d.Currency, d.Name)
		assert.NotEmpty(t, d.LocalTips, d.Name)
	}
}

func TestAggregator_Search_NoSourcesServesFallback(t *testing.T) {
	agg := newTestAggregator(t, time.Second)
	result := agg.Search(context.Background(), "anywhere")

	require.NotNil(t, result)
	assert.True(t, result.IsFallback)
	assert.Equal(t, 3, result.TotalResults)
}

func TestAggregator_Search_PendingSourceTreatedAsEmpty(t *testing.T) {
	fast := &stubSource{name: "tripadvisor", records: []sources.Record{
		{Name: "Lisbon", Country: "Portugal", Source: "tripadvisor"},
	}}
	slow := &stubSource{name: "booking", delay: time.Second, records: []sources.Record{
		{Name: "Porto", Country: "Portugal", Source: "booking"},
	}}

	agg := newTestAggregator(t, 50*time.Millisecond, fast, slow)

	start := time.Now()
	result := agg.Search(context.Background(), "portugal")
	elapsed := time.Since(start)

	require.NotNil(t, result)
	assert.False(t, result.IsFallback)
	require.Equal(t, 1, result.TotalResults)
	assert.Equal(t, "Lisbon", result.Destinations[0].Name)
	assert.Less(t, elapsed, 500*time.Millisecond, "join should not wait out the slow source")
}

func TestAggregator_Search_OrderFollowsRegistration(t *testing.T) {
	a := &stubSource{name: "tripadvisor", delay: 80 * time.Millisecond, records: []sources.Record{
		{Name: "Rome", Country: "Italy", Source: "tripadvisor"},
	}}
	b := &stubSource{name: "booking", records: []sources.Record{
		{Name: "Athens", Country: "Greece", Source: "booking"},
	}}

	agg := newTestAggregator(t, time.Second, a, b)
	result := agg.Search(context.Background(), "history")

	require.Equal(t, 2, result.TotalResults)
	// The first-registered source leads even when it finishes last.
	assert.Equal(t, "Rome", result.Destinations[0].Name)
	assert.Equal(t, "Athens", result.Destinations[1].Name)
}
