package search

import (
	"context"
	"log/slog"
	"time"

	"github.com/alex-user-go/tripplanner/internal/obs"
	"github.com/alex-user-go/tripplanner/internal/search/types"
	"github.com/alex-user-go/tripplanner/internal/sources"
)

// Aggregator fans a query out to all registered sources and reconciles
// their results into one canonical destination list.
type Aggregator struct {
	sources  []sources.Source
	priority []string
	timeout  time.Duration
	metrics  *obs.Metrics
	logger   *slog.Logger
}

// NewAggregator creates a new Aggregator. Registration order doubles as
// the provider priority used to break merge ties.
func NewAggregator(srcs []sources.Source, timeout time.Duration, metrics *obs.Metrics, logger *slog.Logger) *Aggregator {
	priority := make([]string, len(srcs))
	for i, src := range srcs {
		priority[i] = normalize(src.Name())
	}

	return &Aggregator{
		sources:  srcs,
		priority: priority,
		timeout:  timeout,
		metrics:  metrics,
		logger:   logger,
	}
}

// Search queries all sources concurrently and returns the merged result.
//
// It never fails: source errors surface as empty contributions, a source
// still pending when the coordinator timeout fires is treated as empty,
// and a completely empty merge is substituted with the fallback dataset.
func (a *Aggregator) Search(ctx context.Context, query string) *types.Result {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	a.metrics.IncSearches()

	// One result slot per source, written exactly once. The join below
	// reads the slots in registration order so the combined list keeps
	// the concatenation order regardless of completion order.
	slots := make([]chan []sources.Record, len(a.sources))
	for i, src := range a.sources {
		slots[i] = make(chan []sources.Record, 1)
		go func(slot chan<- []sources.Record, src sources.Source) {
			slot <- src.Fetch(ctx, query)
		}(slots[i], src)
	}

	var combined []sources.Record
	for i, slot := range slots {
		select {
		case records := <-slot:
			combined = append(combined, records...)
		case <-ctx.Done():
			// Timeout fired; a slot may still have been filled in the
			// same instant, so give it one non-blocking chance.
			select {
			case records := <-slot:
				combined = append(combined, records...)
			default:
				a.logger.Warn("source still pending at coordinator timeout",
					"source", a.sources[i].Name(),
					"query", query)
			}
		}
	}

	merged := merge(combined, a.priority)

	if len(merged) == 0 {
		a.metrics.IncFallbacks()
		a.logger.Info("aggregation empty, serving fallback dataset",
			"query", query,
			"dataset_version", FallbackVersion)

		destinations := FallbackDestinations()
		return &types.Result{
			Destinations: destinations,
			TotalResults: len(destinations),
			SearchQuery:  query,
			IsFallback:   true,
		}
	}

	destinations := make([]types.Destination, 0, len(merged))
	for _, rec := range merged {
		destinations = append(destinations, promote(rec))
	}

	return &types.Result{
		Destinations: destinations,
		TotalResults: len(destinations),
		SearchQuery:  query,
	}
}
