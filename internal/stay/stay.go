package stay

// Accommodation is one bookable stay option presented to the user.
type Accommodation struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Location    string   `json:"location"`
	Price       string   `json:"price"` // display string, e.g. "$150/night"
	Rating      float64  `json:"rating"`
	Image       string   `json:"image"`
	Amenities   []string `json:"amenities"`
	Description string   `json:"description"`
	BookingURL  string   `json:"bookingUrl"`
}

// NightlyPrice returns the display price for budget filtering.
func (a Accommodation) NightlyPrice() string {
	return a.Price
}
