package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/alex-user-go/tripplanner/internal/obs"
)

// HTTPSource queries a scrape endpoint for destination records.
type HTTPSource struct {
	name       string
	baseURL    string
	httpClient *http.Client
	metrics    *obs.Metrics
	logger     *slog.Logger
}

// NewHTTPSource creates a source backed by the scrape endpoint at
// baseURL. The provider name doubles as the endpoint's path segment.
func NewHTTPSource(name, baseURL string, timeout time.Duration, metrics *obs.Metrics, logger *slog.Logger) *HTTPSource {
	return &HTTPSource{
		name:    name,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		metrics: metrics,
		logger:  logger.With("source", name),
	}
}

// Name returns the provider name.
func (s *HTTPSource) Name() string {
	return s.name
}

// Fetch retrieves records for the query. Failures are logged and counted
// but never returned: a broken source contributes an empty result.
func (s *HTTPSource) Fetch(ctx context.Context, query string) []Record {
	records, err := s.fetch(ctx, query)
	if err != nil {
		s.metrics.IncSourceErrors()
		s.logger.Warn("source fetch failed", "query", query, "error", err)
		return nil
	}
	return records
}

func (s *HTTPSource) fetch(ctx context.Context, query string) ([]Record, error) {
	u, err := url.Parse(fmt.Sprintf("%s/scrape/%s", s.baseURL, s.name))
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}

	q := u.Query()
	q.Set("query", query)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrSourceUnavailable, resp.StatusCode)
	}

	var records []Record
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	// Records keep the name of the source that produced them even when
	// the upstream payload omits it.
	for i := range records {
		if records[i].Source == "" {
			records[i].Source = s.name
		}
	}

	return records, nil
}
