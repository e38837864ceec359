package stay

import (
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/alex-user-go/tripplanner/internal/budget"
)

// Price caps for generated accommodations, per tier.
const (
	luxuryCap   = 500
	midRangeCap = 300
	budgetCap   = 150
)

// GenerateMock builds a plausible accommodation list sized to the total
// trip budget. Used when the live hotel search is unavailable.
func GenerateMock(totalBudget float64) []Accommodation {
	nightly := budget.Nightly(totalBudget, budget.DefaultNights)

	luxury := math.Min(nightly*0.6, luxuryCap)
	midRange := math.Min(nightly*0.4, midRangeCap)
	economy := math.Min(nightly*0.25, budgetCap)

	return []Accommodation{
		{
			ID:          uuid.New().String(),
			Name:        "Grand Hotel",
			Type:        "Luxury Hotel",
			Location:    "City Center",
			Price:       nightlyPrice(luxury),
			Rating:      4.8,
			Image:       "https://images.unsplash.com/photo-1566073771259-6a8506099945?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			Amenities:   []string{"Free WiFi", "Swimming Pool", "Spa", "Restaurant", "Gym", "Concierge", "Valet Parking"},
			Description: "Luxurious hotel in the heart of the city with stunning views and premium amenities.",
			BookingURL:  "https://booking.com",
		},
		{
			ID:          uuid.New().String(),
			Name:        "Cozy Boutique Hotel",
			Type:        "Boutique Hotel",
			Location:    "Historic District",
			Price:       nightlyPrice(midRange),
			Rating:      4.6,
			Image:       "https://images.unsplash.com/photo-1551882547-ff40c63fe5fa?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			Amenities:   []string{"Free WiFi", "Breakfast", "Bar", "Room Service", "Business Center"},
			Description: "Charming boutique hotel with unique design and personalized service.",
			BookingURL:  "https://booking.com",
		},
		{
			ID:          uuid.New().String(),
			Name:        "Seaside Resort",
			Type:        "Resort",
			Location:    "Beachfront",
			Price:       nightlyPrice(luxury * 0.9),
			Rating:      4.9,
			Image:       "https://images.unsplash.com/photo-1520250497591-112f2f40a3f4?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			Amenities:   []string{"Private Beach", "Multiple Pools", "Spa", "Water Sports", "Multiple Restaurants", "Kids Club"},
			Description: "Exclusive beachfront resort with private beach access and luxury amenities.",
			BookingURL:  "https://booking.com",
		},
		{
			ID:          uuid.New().String(),
			Name:        "Mountain View Lodge",
			Type:        "Lodge",
			Location:    "Mountain Area",
			Price:       nightlyPrice(economy),
			Rating:      4.7,
			Image:       "https://images.unsplash.com/photo-1542314831-068cd1dbfeeb?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			Amenities:   []string{"Scenic Views", "Hiking Trails", "Restaurant", "Fireplace", "Free Parking"},
			Description: "Rustic lodge with breathtaking mountain views and outdoor activities.",
			BookingURL:  "https://booking.com",
		},
	}
}

func nightlyPrice(amount float64) string {
	return fmt.Sprintf("$%d/night", int(math.Round(amount)))
}
