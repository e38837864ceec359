package obs

import (
	"fmt"
	"log/slog"
	"net/http"
	"sync/atomic"
)

// Metrics tracks pipeline counters using atomics.
type Metrics struct {
	searches     atomic.Int64
	cacheHits    atomic.Int64
	sourceErrors atomic.Int64
	fallbacks    atomic.Int64
	chatTurns    atomic.Int64
	logger       *slog.Logger
}

// NewMetrics creates a new Metrics instance.
func NewMetrics(logger *slog.Logger) *Metrics {
	return &Metrics{
		logger: logger,
	}
}

// IncSearches increments the aggregation search counter.
func (m *Metrics) IncSearches() {
	m.searches.Add(1)
}

// IncCacheHits increments the cache hits counter.
func (m *Metrics) IncCacheHits() {
	m.cacheHits.Add(1)
}

// IncSourceErrors increments the failed source fetch counter.
func (m *Metrics) IncSourceErrors() {
	m.sourceErrors.Add(1)
}

// IncFallbacks increments the counter of searches resolved from the
// fallback dataset.
func (m *Metrics) IncFallbacks() {
	m.fallbacks.Add(1)
}

// IncChatTurns increments the conversation turn counter.
func (m *Metrics) IncChatTurns() {
	m.chatTurns.Add(1)
}

// Snapshot returns current metric values.
func (m *Metrics) Snapshot() MetricsSnapshot {
	return MetricsSnapshot{
		Searches:     m.searches.Load(),
		CacheHits:    m.cacheHits.Load(),
		SourceErrors: m.sourceErrors.Load(),
		Fallbacks:    m.fallbacks.Load(),
		ChatTurns:    m.chatTurns.Load(),
	}
}

// MetricsSnapshot represents a point-in-time snapshot of metrics.
type MetricsSnapshot struct {
	Searches     int64
	CacheHits    int64
	SourceErrors int64
	Fallbacks    int64
	ChatTurns    int64
}

// HealthHandler returns a handler for /healthz requests.
func HealthHandler(logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			logger.Error("failed to write health response", "error", err)
		}
	}
}

// MetricsHandler returns a handler for /metrics requests in Prometheus
// text exposition format.
func (m *Metrics) MetricsHandler() http.HandlerFunc {
	counters := []struct {
		name string
		help string
		get  func(MetricsSnapshot) int64
	}{
		{"searches_total", "Total number of aggregation searches", func(s MetricsSnapshot) int64 { return s.Searches }},
		{"cache_hits_total", "Total number of search cache hits", func(s MetricsSnapshot) int64 { return s.CacheHits }},
		{"source_errors_total", "Total number of failed source fetches", func(s MetricsSnapshot) int64 { return s.SourceErrors }},
		{"fallbacks_total", "Total number of searches served from the fallback dataset", func(s MetricsSnapshot) int64 { return s.Fallbacks }},
		{"chat_turns_total", "Total number of conversation turns handled", func(s MetricsSnapshot) int64 { return s.ChatTurns }},
	}

	return func(w http.ResponseWriter, r *http.Request) {
		snapshot := m.Snapshot()

		w.Header().Set("Content-Type", "text/plain; version=0.0.4")
		w.WriteHeader(http.StatusOK)

		for _, c := range counters {
			if _, err := fmt.Fprintf(w, "# HELP %s %s\n# TYPE %s counter\n%s %d\n",
				c.name, c.help, c.name, c.name, c.get(snapshot)); err != nil {
				m.logger.Error("failed to write metrics", "error", err)
				return
			}
		}
	}
}
