package budget

import (
	"strconv"
	"strings"
)

// DefaultNights is the assumed stay length when deriving a nightly
// budget from a total trip budget.
const DefaultNights = 7

// Nightly derives the per-night budget from a total trip budget.
// A nights value below 1 falls back to DefaultNights.
func Nightly(total float64, nights int) float64 {
	if nights < 1 {
		nights = DefaultNights
	}
	return total / float64(nights)
}

// ParsePrice extracts the numeric amount from a currency-formatted
// string such as "$150/night" or "€1,200". Every rune that is not a
// digit or a decimal point is stripped before parsing. Returns 0 when
// nothing numeric remains.
func ParsePrice(s string) float64 {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}

	price, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0
	}
	return price
}

// Priced is anything with a displayable nightly price.
type Priced interface {
	NightlyPrice() string
}

// Filter keeps the items whose nightly price fits the per-night budget
// derived from total and nights.
//
// An exhausted filter stays empty: no silent widening of the budget.
func Filter[T Priced](items []T, total float64, nights int) []T {
	nightly := Nightly(total, nights)

	kept := make([]T, 0, len(items))
	for _, item := range items {
		if ParsePrice(item.NightlyPrice()) <= nightly {
			kept = append(kept, item)
		}
	}
	return kept
}
