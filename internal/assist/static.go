package assist

import (
	"context"
	"strings"
)

// Static serves deterministic guidance playbooks keyed by destination,
// with a generic playbook for destinations it does not know. It is the
// default generator and the fallback when no model is configured.
type Static struct{}

// NewStatic creates the playbook generator.
func NewStatic() *Static {
	return &Static{}
}

// Guide returns the playbook for the brief's destination.
func (s *Static) Guide(_ context.Context, brief TripBrief) (Response, error) {
	key := strings.ToLower(strings.TrimSpace(brief.Destination))
	if resp, ok := playbooks[key]; ok {
		return resp, nil
	}
	return genericPlaybook, nil
}

var playbooks = map[string]Response{
	"paris": {
		Suggestions: []string{
			"Visit the Eiffel Tower at sunset for the best views",
			"Explore the Louvre Museum (book tickets in advance)",
			"Take a Seine River cruise",
			"Visit Notre-Dame Cathedral",
			"Walk through Montmartre",
		},
		Recommendations: Recommendations{
			Accommodations: []string{
				"Hotel in Le Marais district",
				"Boutique hotel near Champs-Élysées",
				"Apartment in Saint-Germain-des-Prés",
			},
			Activities: []string{
				"Wine tasting in Montmartre",
				"Cooking class in a local kitchen",
				"Photography tour of Paris",
			},
			Transportation: []string{
				"Metro pass for unlimited travel",
				"Bicycle rental for city exploration",
				"Airport transfer service",
			},
		},
		NextStep: "Select your preferred accommodation from the recommendations above.",
	},
	"tokyo": {
		Suggestions: []string{
			"Visit Senso-ji Temple in Asakusa",
			"Explore Shibuya Crossing",
			"Shop in Ginza district",
			"Visit Tokyo Skytree",
			"Experience Tsukiji Outer Market",
		},
		Recommendations: Recommendations{
			Accommodations: []string{
				"Hotel in Shinjuku",
				"Ryokan in Asakusa",
				"Apartment in Shibuya",
			},
			Activities: []string{
				"Sushi making class",
				"Tea ceremony experience",
				"Robot Restaurant show",
			},
			Transportation: []string{
				"JR Pass for city travel",
				"PASMO card for public transport",
				"Airport limousine bus",
			},
		},
		NextStep: "Select your preferred accommodation from the recommendations above.",
	},
}

var genericPlaybook = Response{
	Suggestions: []string{
		"Research local customs and etiquette",
		"Check visa requirements",
		"Get travel insurance",
		"Download offline maps",
		"Learn basic local phrases",
	},
	Recommendations: Recommendations{
		Accommodations: []string{
			"Book accommodations in advance",
			"Consider location and accessibility",
			"Read recent reviews",
		},
		Activities: []string{
			"Plan major activities in advance",
			"Leave room for spontaneous exploration",
			"Check local events calendar",
		},
		Transportation: []string{
			"Research local transportation options",
			"Book airport transfers",
			"Consider getting a local SIM card",
		},
	},
	NextStep: "Please select a destination to get personalized recommendations.",
}
