package sources_test

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alex-user-go/tripplanner/internal/obs"
	"github.com/alex-user-go/tripplanner/internal/sources"
)

func newTestMetrics() *obs.Metrics {
	return obs.NewMetrics(slog.New(slog.NewTextHandler(os.Stderr, nil)))
}

func TestHTTPSource_Fetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/scrape/tripadvisor", r.URL.Path)
		assert.Equal(t, "beach towns", r.URL.Query().Get("query"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"name": "Bali", "country": "Indonesia", "rating": 4.6, "source": "tripadvisor"},
			{"name": "Phuket", "country": "Thailand"}
		]`))
	}))
	defer srv.Close()

	src := sources.NewHTTPSource("tripadvisor", srv.URL, time.Second, newTestMetrics(), slog.Default())

	records := src.Fetch(context.Background(), "beach towns")

	require.Len(t, records, 2)
	assert.Equal(t, "Bali", records[0].Name)
	assert.Equal(t, 4.6, records[0].Rating)
	// A record without an explicit source gets tagged with the provider.
	assert.Equal(t, "tripadvisor", records[1].Source)
}

func TestHTTPSource_Fetch_Non200YieldsNil(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "source unavailable", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	metrics := newTestMetrics()
	src := sources.NewHTTPSource("booking", srv.URL, time.Second, metrics, slog.Default())

	records := src.Fetch(context.Background(), "anything")

	assert.Nil(t, records)
	assert.Equal(t, int64(1), metrics.Snapshot().SourceErrors)
}

func TestHTTPSource_Fetch_BadPayloadYieldsNil(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"not": "an array"}`))
	}))
	defer srv.Close()

	metrics := newTestMetrics()
	src := sources.NewHTTPSource("booking", srv.URL, time.Second, metrics, slog.Default())

	assert.Nil(t, src.Fetch(context.Background(), "anything"))
	assert.Equal(t, int64(1), metrics.Snapshot().SourceErrors)
}

func TestHTTPSource_Fetch_UnreachableYieldsNil(t *testing.T) {
	metrics := newTestMetrics()
	src := sources.NewHTTPSource("booking", "http://127.0.0.1:1", 200*time.Millisecond, metrics, slog.Default())

	assert.Nil(t, src.Fetch(context.Background(), "anything"))
	assert.Equal(t, int64(1), metrics.Snapshot().SourceErrors)
}

func TestHTTPSource_Fetch_ContextCancelYieldsNil(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer srv.Close()
	defer close(block)

	src := sources.NewHTTPSource("booking", srv.URL, time.Second, newTestMetrics(), slog.Default())

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	assert.Nil(t, src.Fetch(ctx, "anything"))
}
