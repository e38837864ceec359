package assist

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatic_Guide_KnownDestination(t *testing.T) {
	s := NewStatic()

	resp, err := s.Guide(context.Background(), TripBrief{Destination: "  PARIS "})
	require.NoError(t, err)

	assert.Contains(t, resp.Suggestions, "Take a Seine River cruise")
	assert.Contains(t, resp.Recommendations.Accommodations, "Hotel in Le Marais district")
	assert.NotEmpty(t, resp.NextStep)
}

func TestStatic_Guide_UnknownDestinationGetsGeneric(t *testing.T) {
	s := NewStatic()

	resp, err := s.Guide(context.Background(), TripBrief{Destination: "Ulaanbaatar"})
	require.NoError(t, err)

	assert.Contains(t, resp.Suggestions, "Check visa requirements")
	assert.Equal(t, "Please select a destination to get personalized recommendations.", resp.NextStep)
}

func TestParseGuidance(t *testing.T) {
	raw := `{"suggestions":["Pack light"],"recommendations":{"activities":["Hike"]},"nextStep":"budget"}`

	resp, err := parseGuidance(raw)
	require.NoError(t, err)
	assert.Equal(t, []string{"Pack light"}, resp.Suggestions)
	assert.Equal(t, []string{"Hike"}, resp.Recommendations.Activities)
	assert.Equal(t, "budget", resp.NextStep)
}

func TestParseGuidance_StripsMarkdownFence(t *testing.T) {
	raw := "```json\n{\"suggestions\":[\"Pack light\"]}\n```"

	resp, err := parseGuidance(raw)
	require.NoError(t, err)
	assert.Equal(t, []string{"Pack light"}, resp.Suggestions)
}

func TestParseGuidance_RejectsNonJSON(t *testing.T) {
	_, err := parseGuidance("Sure! Here are some ideas for your trip...")
	assert.Error(t, err)
}

func TestFirstOutputText(t *testing.T) {
	resp := responsesAPIResponse{
		Output: []responsesAPIMessage{
			{Role: "assistant", Content: []responsesAPIContentBlock{
				{Type: "reasoning", Text: "thinking"},
				{Type: "output_text", Text: "  the answer  "},
			}},
		},
	}

	assert.Equal(t, "the answer", firstOutputText(resp))
	assert.Equal(t, "", firstOutputText(responsesAPIResponse{}))
}
