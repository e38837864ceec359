package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		utterance string
		want      Kind
	}{
		{"ok", Acknowledgment},
		{"OK", Acknowledgment},
		{"  okay  ", Acknowledgment},
		{"yes please", Acknowledgment},
		{"tell me more", Acknowledgment},
		{"Thanks!", Acknowledgment},
		{"sure, why not", Acknowledgment},
		{"perfect", Acknowledgment},
		{"beaches in asia", SearchQuery},
		{"where should I go in winter", SearchQuery},
		{"", SearchQuery},
		{"romantic getaways", SearchQuery},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.utterance), "Classify(%q)", tt.utterance)
	}
}
