package search

import (
	"strings"

	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/alex-user-go/tripplanner/internal/search/types"
	"github.com/alex-user-go/tripplanner/internal/sources"
)

// Placeholder values for canonical fields no source reported.
const (
	placeholderCountryVaries = "Varies by country"
	placeholderSeasonVaries  = "Varies by season"
	placeholderVaries        = "Varies"
	placeholderVisaInfo      = "Check local embassy website"
	placeholderSafety        = "Check travel advisories"
)

var placeholderLocalTips = []string{"Check local tourism website for tips"}

var titleCaser = cases.Title(language.Und)

// canonicalKey identifies semantically-equivalent records across sources.
func canonicalKey(name, country string) string {
	return normalize(name) + "|" + normalize(country)
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// optionalFields counts how many optional fields a record populates.
// Used to pick the most informative record of a duplicate group.
func optionalFields(r sources.Record) int {
	n := 0
	if r.Rating > 0 {
		n++
	}
	if r.Reviews > 0 {
		n++
	}
	if len(r.Highlights) > 0 {
		n++
	}
	if strings.TrimSpace(r.PriceRange) != "" {
		n++
	}
	return n
}

// mergedGroup accumulates one duplicate group during merging.
type mergedGroup struct {
	winner     sources.Record
	types      []string
	highlights []string
}

// merge collapses duplicate records sharing a canonical key.
//
// Survivor policy: the record with the most populated optional fields
// wins; ties go to the record whose source ranks earliest in priority.
// Array fields are unioned across the whole group in first-seen order.
// Output preserves first-seen order of the concatenated inputs.
func merge(records []sources.Record, priority []string) []sources.Record {
	groups := make(map[string]*mergedGroup)
	var order []string

	rank := func(source string) int {
		idx := lo.IndexOf(priority, normalize(source))
		if idx < 0 {
			return len(priority)
		}
		return idx
	}

	for _, rec := range records {
		key := canonicalKey(rec.Name, rec.Country)

		g, ok := groups[key]
		if !ok {
			groups[key] = &mergedGroup{
				winner:     rec,
				types:      lo.Uniq(rec.Type),
				highlights: lo.Uniq(rec.Highlights),
			}
			order = append(order, key)
			continue
		}

		g.types = lo.Union(g.types, rec.Type)
		g.highlights = lo.Union(g.highlights, rec.Highlights)

		switch cur, cand := optionalFields(g.winner), optionalFields(rec); {
		case cand > cur:
			g.winner = rec
		case cand == cur && rank(rec.Source) < rank(g.winner.Source):
			g.winner = rec
		}
	}

	out := make([]sources.Record, 0, len(order))
	for _, key := range order {
		g := groups[key]
		rec := g.winner
		rec.Type = g.types
		rec.Highlights = g.highlights
		out = append(out, rec)
	}
	return out
}

// promote lifts a merged raw record into the canonical destination shape,
// deriving the climate from the summer weather summary and filling
// placeholders for fields scraping cannot provide.
func promote(rec sources.Record) types.Destination {
	climate := strings.TrimSpace(strings.SplitN(rec.Weather.Summer, "(", 2)[0])
	if climate == "" {
		climate = placeholderSeasonVaries
	}

	accommodation := strings.TrimSpace(rec.PriceRange)
	if accommodation == "" {
		accommodation = placeholderVaries
	}

	return types.Destination{
		Name:            titleCaser.String(strings.TrimSpace(rec.Name)),
		Country:         titleCaser.String(strings.TrimSpace(rec.Country)),
		Description:     rec.Description,
		Image:           rec.Image,
		Climate:         climate,
		BestTimeToVisit: rec.BestTimeToVisit,
		Currency:        placeholderCountryVaries,
		Language:        placeholderCountryVaries,
		TimeZone:        placeholderCountryVaries,
		Highlights:      rec.Highlights,
		AverageCost: types.AverageCost{
			Accommodation: accommodation,
			Food:          placeholderVaries,
			Activities:    placeholderVaries,
		},
		Weather:   rec.Weather,
		VisaInfo:  placeholderVisaInfo,
		Safety:    placeholderSafety,
		LocalTips: placeholderLocalTips,
		Type:      rec.Type,
	}
}
