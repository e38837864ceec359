package stay

import (
	"context"
	"log/slog"

	"github.com/alex-user-go/tripplanner/internal/budget"
)

// Searcher is the live hotel-search dependency of Service.
type Searcher interface {
	Search(ctx context.Context, destination string) ([]Accommodation, error)
}

// Service finds budget-appropriate accommodations for a destination.
type Service struct {
	client Searcher
	logger *slog.Logger
}

// NewService creates a Service backed by the given hotel-search client.
func NewService(client Searcher, logger *slog.Logger) *Service {
	return &Service{
		client: client,
		logger: logger,
	}
}

// Find returns accommodations for a destination within the total trip
// budget. Live results are filtered to the nightly budget; a filter that
// removes everything stays empty. If the live search fails entirely, a
// mock list sized to the budget is returned instead, unfiltered.
func (s *Service) Find(ctx context.Context, destination string, totalBudget float64) []Accommodation {
	live, err := s.client.Search(ctx, destination)
	if err != nil {
		s.logger.Warn("hotel search failed, generating mock accommodations",
			"destination", destination,
			"error", err)
		return GenerateMock(totalBudget)
	}

	return budget.Filter(live, totalBudget, budget.DefaultNights)
}
