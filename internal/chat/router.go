package chat

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/samber/lo"

	"github.com/alex-user-go/tripplanner/internal/obs"
	"github.com/alex-user-go/tripplanner/internal/search/types"
)

// excerptLen caps the description shown per destination in a search
// summary reply.
const excerptLen = 140

const clarifyReply = "Could you tell me more specifically what kind of destination you're looking for? For example:\n" +
	"• Beach destinations\n" +
	"• Mountain getaways\n" +
	"• Cultural cities\n" +
	"• Urban adventures\n" +
	"• Nature retreats"

// Searcher is the aggregation dependency of the router.
type Searcher interface {
	Search(ctx context.Context, query string) *types.Result
}

// Router classifies user utterances and drives the conversation: an
// acknowledgment elaborates on prior results, anything else becomes a
// new aggregation search. The router is the conversation state's single
// writer.
type Router struct {
	searcher Searcher
	metrics  *obs.Metrics
	logger   *slog.Logger

	mu         sync.Mutex
	state      State
	lastResult *types.Result
}

// NewRouter creates a Router over the given aggregation searcher.
func NewRouter(searcher Searcher, metrics *obs.Metrics, logger *slog.Logger) *Router {
	return &Router{
		searcher: searcher,
		metrics:  metrics,
		logger:   logger,
	}
}

// State returns a snapshot of the conversation state.
func (r *Router) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// LastResult returns the most recent search result, if any.
func (r *Router) LastResult() (*types.Result, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastResult, r.lastResult != nil
}

// Handle processes one user utterance and returns the assistant reply.
// Exactly one user turn and one assistant turn are appended per call,
// user turn first.
func (r *Router) Handle(ctx context.Context, message string) string {
	r.metrics.IncChatTurns()

	r.mu.Lock()
	r.state.log = r.state.log.Append(SpeakerUser, message)
	r.mu.Unlock()

	var reply string
	switch Classify(message) {
	case Acknowledgment:
		reply = r.elaborate()
	default:
		reply = r.search(ctx, message)
	}

	r.mu.Lock()
	r.state.log = r.state.log.Append(SpeakerAssistant, reply)
	r.mu.Unlock()

	return reply
}

// elaborate answers an acknowledgment: extended details of the first
// destination of the last search, or a clarifying prompt when there is
// nothing to elaborate on.
func (r *Router) elaborate() string {
	r.mu.Lock()
	result := r.lastResult
	r.mu.Unlock()

	if result == nil || len(result.Destinations) == 0 {
		return clarifyReply
	}

	dest := result.Destinations[0]

	var b strings.Builder
	fmt.Fprintf(&b, "Here are more details about %s:\n\n", dest.Name)
	fmt.Fprintf(&b, "🌤️ Climate: %s\n", dest.Climate)
	fmt.Fprintf(&b, "⏰ Time Zone: %s\n", dest.TimeZone)
	fmt.Fprintf(&b, "💬 Language: %s\n", dest.Language)
	fmt.Fprintf(&b, "💰 Currency: %s\n\n", dest.Currency)
	b.WriteString("Local Tips:\n")
	for _, tip := range dest.LocalTips {
		fmt.Fprintf(&b, "• %s\n", tip)
	}
	fmt.Fprintf(&b, "\nWould you like to know more about any specific aspect of %s?", dest.Name)

	return b.String()
}

// search runs a new aggregation for the utterance and renders a summary
// of the destinations found.
func (r *Router) search(ctx context.Context, query string) string {
	r.mu.Lock()
	r.state.searching = true
	r.state.lastSearchQuery = query
	r.state.hasSearched = true
	r.mu.Unlock()

	result := r.searcher.Search(ctx, query)

	r.mu.Lock()
	r.state.searching = false
	r.lastResult = result
	r.mu.Unlock()

	r.logger.Info("conversation search completed",
		"query", query,
		"results", result.TotalResults,
		"fallback", result.IsFallback)

	if len(result.Destinations) == 0 {
		return clarifyReply
	}

	var b strings.Builder
	fmt.Fprintf(&b, "I found %d destinations matching your search for %q:\n\n",
		result.TotalResults, result.SearchQuery)

	for _, dest := range result.Destinations {
		top := lo.Slice(dest.Highlights, 0, 3)
		fmt.Fprintf(&b, "🌍 %s, %s\n", dest.Name, dest.Country)
		fmt.Fprintf(&b, "📝 %s\n", excerpt(dest.Description))
		fmt.Fprintf(&b, "⭐ Highlights: %s\n", strings.Join(top, ", "))
		fmt.Fprintf(&b, "💰 Average cost: %s\n", dest.AverageCost.Accommodation)
		fmt.Fprintf(&b, "🌤️ Best time to visit: %s\n\n", dest.BestTimeToVisit)
	}
	b.WriteString("Would you like to know more about any of these destinations?")

	return b.String()
}

// excerpt trims a description to excerptLen runes, breaking at a word
// boundary.
func excerpt(s string) string {
	runes := []rune(s)
	if len(runes) <= excerptLen {
		return s
	}

	cut := string(runes[:excerptLen])
	if idx := strings.LastIndexByte(cut, ' '); idx > 0 {
		cut = cut[:idx]
	}
	return cut + "…"
}
