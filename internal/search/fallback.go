package search

import (
	"github.com/alex-user-go/tripplanner/internal/search/types"
	"github.com/alex-user-go/tripplanner/internal/sources"
)

// FallbackVersion identifies the revision of the built-in dataset.
// Bump when the curated destinations below change.
const FallbackVersion = "2024.1"

// FallbackDestinations returns the fixed, fully-populated dataset served
// when live aggregation produces no results. The returned slice is a
// fresh copy on every call so callers may not corrupt the dataset.
func FallbackDestinations() []types.Destination {
	dst := make([]types.Destination, len(fallbackDataset))
	copy(dst, fallbackDataset)
	return dst
}

var fallbackDataset = []types.Destination{
	{
		Name:            "Paris",
		Country:         "France",
		Description:     "The City of Light, known for its iconic Eiffel Tower, world-class museums, and romantic atmosphere.",
		Image:           "https://images.unsplash.com/photo-1502602898657-3e91760cbb34?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
		Climate:         "Temperate",
		BestTimeToVisit: "April to June, September to October",
		Currency:        "Euro (€)",
		Language:        "French",
		TimeZone:        "CET (UTC+1)",
		Highlights: []string{
			"Eiffel Tower",
			"Louvre Museum",
			"Notre-Dame Cathedral",
			"Champs-Élysées",
			"Montmartre",
		},
		AverageCost: types.AverageCost{
			Accommodation: "€150-300/night",
			Food:          "€30-50/day",
			Activities:    "€50-100/day",
		},
		Weather: sources.Weather{
			Summer: "Warm (20-25°C)",
			Winter: "Cold (5-10°C)",
		},
		VisaInfo: "Schengen visa required for non-EU citizens",
		Safety:   "Generally safe, but beware of pickpockets in tourist areas",
		LocalTips: []string{
			"Learn basic French phrases",
			"Book museum tickets in advance",
			"Use the Metro for transportation",
			"Visit cafes for authentic experience",
			"Avoid restaurants near major attractions",
		},
		Type: []string{"urban", "cultural"},
	},
	{
		Name:            "Tokyo",
		Country:         "Japan",
		Description:     "A vibrant metropolis where traditional culture meets cutting-edge technology.",
		Image:           "https://images.unsplash.com/photo-1503899036084-c55cdd92da26?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
		Climate:         "Humid subtropical",
		BestTimeToVisit: "March to May, September to November",
		Currency:        "Japanese Yen (¥)",
		Language:        "Japanese",
		TimeZone:        "JST (UTC+9)",
		Highlights: []string{
			"Senso-ji Temple",
			"Shibuya Crossing",
			"Tokyo Skytree",
			"Tsukiji Outer Market",
			"Meiji Shrine",
		},
		AverageCost: types.AverageCost{
			Accommodation: "¥15,000-30,000/night",
			Food:          "¥3,000-5,000/day",
			Activities:    "¥5,000-10,000/day",
		},
		Weather: sources.Weather{
			Summer: "Hot and humid (25-35°C)",
			Winter: "Cool (5-15°C)",
		},
		VisaInfo: "Visa-free for many countries, check requirements",
		Safety:   "Very safe, one of the safest cities in the world",
		LocalTips: []string{
			"Get a PASMO/Suica card",
			"Learn basic Japanese etiquette",
			"Try local convenience stores",
			"Use Google Maps for navigation",
			"Visit during cherry blossom season",
		},
		Type: []string{"urban", "cultural"},
	},
	{
		Name:            "Bali",
		Country:         "Indonesia",
		Description:     "A tropical paradise known for its lush landscapes, vibrant culture, and stunning beaches.",
		Image:           "https://images.unsplash.com/photo-1537996194471-e657df975ab4?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
		Climate:         "Tropical",
		BestTimeToVisit: "April to October",
		Currency:        "Indonesian Rupiah (IDR)",
		Language:        "Indonesian, Balinese",
		TimeZone:        "WITA (UTC+8)",
		Highlights: []string{
			"Ubud Monkey Forest",
			"Tegallalang Rice Terraces",
			"Uluwatu Temple",
			"Seminyak Beach",
			"Sacred Monkey Forest",
		},
		AverageCost: types.AverageCost{
			Accommodation: "IDR 500,000-1,500,000/night",
			Food:          "IDR 100,000-200,000/day",
			Activities:    "IDR 200,000-500,000/day",
		},
		Weather: sources.Weather{
			Summer: "Warm and dry (25-30°C)",
			Winter: "Warm and wet (23-28°C)",
		},
		VisaInfo: "Visa on arrival for many countries",
		Safety:   "Generally safe, but be cautious of petty theft",
		LocalTips: []string{
			"Respect temple dress codes",
			"Learn basic Indonesian phrases",
			"Use Grab/Gojek for transportation",
			"Try local warungs for authentic food",
			"Visit during dry season",
		},
		Type: []string{"beach", "cultural", "nature"},
	},
}
