package assist

import "context"

// Recommendations groups suggested options per planning concern.
type Recommendations struct {
	Accommodations []string `json:"accommodations,omitempty"`
	Activities     []string `json:"activities,omitempty"`
	Transportation []string `json:"transportation,omitempty"`
}

// Response is one piece of generated trip guidance.
type Response struct {
	Suggestions     []string        `json:"suggestions"`
	Recommendations Recommendations `json:"recommendations"`
	NextStep        string          `json:"nextStep,omitempty"`
}

// TripBrief is the minimal trip information a generator needs.
type TripBrief struct {
	Destination string   `json:"destination"`
	Budget      float64  `json:"budget"`
	Preferences []string `json:"preferences,omitempty"`
	Nights      int      `json:"nights,omitempty"`
}

// Generator produces guidance for a trip brief. Implementations must be
// safe for concurrent use.
type Generator interface {
	Guide(ctx context.Context, brief TripBrief) (Response, error)
}
