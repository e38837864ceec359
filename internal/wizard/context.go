package wizard

import "time"

// DateRange is the planned travel window.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Preferences capture the traveler's stated tastes.
type Preferences struct {
	Accommodation  string   `json:"accommodation"`
	Activities     []string `json:"activities"`
	Transportation string   `json:"transportation"`
}

// TravelContext is the session-scoped aggregate the wizard builds up.
// It starts with zero values and is only ever mutated through Update
// merge-patches; a patch never clears fields it does not mention.
type TravelContext struct {
	Destination           string      `json:"destination"`
	Dates                 DateRange   `json:"dates"`
	Budget                float64     `json:"budget"`
	Preferences           Preferences `json:"preferences"`
	SelectedAccommodation string      `json:"selectedAccommodation,omitempty"`
	SelectedFlight        string      `json:"selectedFlight,omitempty"`
	AddOns                []string    `json:"addOns,omitempty"`
}

// Patch is a partial TravelContext. Nil fields are left untouched by
// Update; non-nil fields overwrite.
type Patch struct {
	Destination           *string
	Dates                 *DateRange
	Budget                *float64
	Accommodation         *string
	Activities            []string
	Transportation        *string
	SelectedAccommodation *string
	SelectedFlight        *string
	AddOns                []string
}

// apply merges the patch field-by-field into the context.
func (c *TravelContext) apply(p Patch) {
	if p.Destination != nil {
		c.Destination = *p.Destination
	}
	if p.Dates != nil {
		c.Dates = *p.Dates
	}
	if p.Budget != nil {
		c.Budget = *p.Budget
	}
	if p.Accommodation != nil {
		c.Preferences.Accommodation = *p.Accommodation
	}
	if p.Activities != nil {
		c.Preferences.Activities = append([]string(nil), p.Activities...)
	}
	if p.Transportation != nil {
		c.Preferences.Transportation = *p.Transportation
	}
	if p.SelectedAccommodation != nil {
		c.SelectedAccommodation = *p.SelectedAccommodation
	}
	if p.SelectedFlight != nil {
		c.SelectedFlight = *p.SelectedFlight
	}
	if p.AddOns != nil {
		c.AddOns = append([]string(nil), p.AddOns...)
	}
}

// Ptr returns a pointer to v, for building patches inline.
func Ptr[T any](v T) *T {
	return &v
}
