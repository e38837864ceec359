package chat

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alex-user-go/tripplanner/internal/obs"
	"github.com/alex-user-go/tripplanner/internal/search/types"
)

// stubSearcher records queries and serves a fixed result.
type stubSearcher struct {
	result  *types.Result
	queries []string
}

func (s *stubSearcher) Search(ctx context.Context, query string) *types.Result {
	s.queries = append(s.queries, query)
	r := *s.result
	r.SearchQuery = query
	return &r
}

func testResult() *types.Result {
	return &types.Result{
		Destinations: []types.Destination{
			{
				Name:            "Paris",
				Country:         "France",
				Description:     "The City of Light, known for its iconic Eiffel Tower and world-class museums.",
				Climate:         "Temperate",
				TimeZone:        "CET (UTC+1)",
				Language:        "French",
				Currency:        "Euro (€)",
				BestTimeToVisit: "April to June",
				Highlights:      []string{"Eiffel Tower", "Louvre Museum", "Notre-Dame Cathedral", "Montmartre"},
				AverageCost:     types.AverageCost{Accommodation: "€150-300/night"},
				LocalTips:       []string{"Learn basic French greetings", "Validate metro tickets"},
			},
		},
		TotalResults: 1,
	}
}

func newTestRouter(searcher Searcher) *Router {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	return NewRouter(searcher, obs.NewMetrics(logger), logger)
}

func TestRouter_Handle_SearchSummary(t *testing.T) {
	searcher := &stubSearcher{result: testResult()}
	r := newTestRouter(searcher)

	reply := r.Handle(context.Background(), "romantic cities in europe")

	require.Equal(t, []string{"romantic cities in europe"}, searcher.queries)
	assert.Contains(t, reply, `I found 1 destinations matching your search for "romantic cities in europe":`)
	assert.Contains(t, reply, "🌍 Paris, France")
	assert.Contains(t, reply, "⭐ Highlights: Eiffel Tower, Louvre Museum, Notre-Dame Cathedral")
	assert.NotContains(t, reply, "Montmartre", "summary shows at most three highlights")
	assert.Contains(t, reply, "💰 Average cost: €150-300/night")
}

func TestRouter_Handle_AcknowledgmentElaborates(t *testing.T) {
	searcher := &stubSearcher{result: testResult()}
	r := newTestRouter(searcher)

	r.Handle(context.Background(), "romantic cities in europe")
	reply := r.Handle(context.Background(), "thanks")

	// No second search.
	require.Len(t, searcher.queries, 1)

	assert.Contains(t, reply, "Here are more details about Paris:")
	assert.Contains(t, reply, "🌤️ Climate: Temperate")
	assert.Contains(t, reply, "⏰ Time Zone: CET (UTC+1)")
	assert.Contains(t, reply, "💬 Language: French")
	assert.Contains(t, reply, "💰 Currency: Euro (€)")
	assert.Contains(t, reply, "• Learn basic French greetings")
}

func TestRouter_Handle_AcknowledgmentWithoutHistoryClarifies(t *testing.T) {
	r := newTestRouter(&stubSearcher{result: testResult()})

	reply := r.Handle(context.Background(), "ok")

	assert.Contains(t, reply, "Could you tell me more specifically")
	assert.Contains(t, reply, "• Beach destinations")
	assert.Contains(t, reply, "• Nature retreats")
}

func TestRouter_Handle_EmptyResultClarifies(t *testing.T) {
	searcher := &stubSearcher{result: &types.Result{}}
	r := newTestRouter(searcher)

	reply := r.Handle(context.Background(), "underwater cities")

	assert.Contains(t, reply, "Could you tell me more specifically")
}

func TestRouter_Handle_AppendsOneTurnPerSpeaker(t *testing.T) {
	r := newTestRouter(&stubSearcher{result: testResult()})

	r.Handle(context.Background(), "beaches")
	r.Handle(context.Background(), "tell me more")

	history := r.State().History()
	require.Len(t, history, 4)
	assert.Equal(t, SpeakerUser, history[0].Speaker)
	assert.Equal(t, "beaches", history[0].Text)
	assert.Equal(t, SpeakerAssistant, history[1].Speaker)
	assert.Equal(t, SpeakerUser, history[2].Speaker)
	assert.Equal(t, SpeakerAssistant, history[3].Speaker)
}

func TestRouter_Handle_TracksLastSearchQuery(t *testing.T) {
	r := newTestRouter(&stubSearcher{result: testResult()})

	state := r.State()
	_, searched := state.LastSearchQuery()
	assert.False(t, searched)

	r.Handle(context.Background(), "beaches")
	r.Handle(context.Background(), "thanks") // acknowledgment does not overwrite

	state = r.State()
	query, searched := state.LastSearchQuery()
	assert.True(t, searched)
	assert.Equal(t, "beaches", query)
	assert.False(t, state.Searching())
}

func TestLog_AppendDoesNotMutateOriginal(t *testing.T) {
	var log Log
	one := log.Append(SpeakerUser, "first")
	two := one.Append(SpeakerAssistant, "second")
	three := one.Append(SpeakerAssistant, "other branch")

	require.Len(t, one, 1)
	require.Len(t, two, 2)
	require.Len(t, three, 2)
	assert.Equal(t, "second", two[1].Text)
	assert.Equal(t, "other branch", three[1].Text)
}

func TestExcerpt(t *testing.T) {
	short := "A short description."
	assert.Equal(t, short, excerpt(short))

	long := strings.Repeat("wander ", 40) // well past the cap
	got := excerpt(long)
	assert.True(t, strings.HasSuffix(got, "…"))
	assert.LessOrEqual(t, len([]rune(got)), excerptLen+1)
	assert.False(t, strings.HasSuffix(strings.TrimSuffix(got, "…"), " "), "should break at a word boundary")
}
