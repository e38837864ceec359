package budget

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type pricedItem string

func (p pricedItem) NightlyPrice() string { return string(p) }

func TestNightly(t *testing.T) {
	assert.InDelta(t, 214.2857, Nightly(1500, 7), 0.001)
	assert.InDelta(t, 500, Nightly(1500, 3), 0.001)

	// Non-positive nights fall back to the default week.
	assert.InDelta(t, 214.2857, Nightly(1500, 0), 0.001)
	assert.InDelta(t, 214.2857, Nightly(1500, -2), 0.001)
}

func TestParsePrice(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"$150/night", 150},
		{"$1,299", 1299},
		{"€89.50", 89.50},
		{"150", 150},
		{"free", 0},
		{"", 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParsePrice(tt.in), "ParsePrice(%q)", tt.in)
	}
}

func TestFilter(t *testing.T) {
	items := []pricedItem{"$150/night", "$300/night", "$214/night"}

	// $1500 over 7 nights is about $214.29 per night.
	kept := Filter(items, 1500, 7)
	assert.Equal(t, []pricedItem{"$150/night", "$214/night"}, kept)
}

func TestFilter_EmptyStaysEmpty(t *testing.T) {
	items := []pricedItem{"$900/night", "$700/night"}

	kept := Filter(items, 700, 7)
	assert.Empty(t, kept)
}
