package services

import (
	"fmt"
	"sort"
	"strings"

	"culturis-route-service/internal/domain"
)

// Venue types that a non-diverse focus prioritizes. Matching is by
// substring so "Art Museum" satisfies both an "Art" and a "Museum" entry.
var focusPriorityTypes = map[domain.Focus][]string{
	domain.FocusFood:    {"Restaurant", "Cafe", "Bar", "Market"},
	domain.FocusArts:    {"Museum", "Art Museum", "Gallery", "Theater", "Art Gallery"},
	domain.FocusCulture: {"Historical Site", "Cultural Center", "Local Market", "Traditional", "Heritage"},
}

// Keyword substrings that earn a venue an extra focus boost.
var focusKeywords = map[domain.Focus][]string{
	domain.FocusFood:    {"food", "dining", "cuisine"},
	domain.FocusArts:    {"art", "creative", "culture"},
	domain.FocusCulture: {"local", "traditional", "heritage"},
}

const (
	typeBoost    = 20
	keywordBoost = 10
)

// FocusPriorityBoost computes the additive selection bonus a venue earns
// under the given focus: +20 for a matching venue type, +10 for a matching
// enrichment keyword. Diverse focus applies no bias.
func FocusPriorityBoost(v domain.Venue, focus domain.Focus) float64 {
	if focus == domain.FocusDiverse {
		return 0
	}

	boost := 0.0

	for _, t := range focusPriorityTypes[focus] {
		if strings.Contains(v.Type, t) {
			boost += typeBoost
			break
		}
	}

	if kws := v.Keywords(); len(kws) > 0 {
		joined := strings.ToLower(strings.Join(kws, " "))
		for _, kw := range focusKeywords[focus] {
			if strings.Contains(joined, kw) {
				boost += keywordBoost
				break
			}
		}
	}

	return boost
}

// WeightedAffinity is the score venues are ranked by during selection.
func WeightedAffinity(v domain.Venue, focus domain.Focus) float64 {
	return v.Affinity + FocusPriorityBoost(v, focus)
}

// SelectVenues narrows a venue pool to the stops worth visiting: every
// venue is scored by weighted affinity, the pool is stably sorted
// descending, and the top duration-adjusted count is returned.
//
// A pool smaller than the requested count degrades gracefully to whatever
// is available; an empty pool yields an empty selection. Only a
// non-positive requested count is an error.
func SelectVenues(pool []domain.Venue, prefs domain.RoutePreferences) ([]domain.Venue, error) {
	if prefs.VenueCount <= 0 {
		return nil, fmt.Errorf("select venues: venue count must be positive, got %d", prefs.VenueCount)
	}

	adjusted := prefs.AdjustedVenueCount(len(pool))

	selected := make([]domain.Venue, len(pool))
	copy(selected, pool)

	// Stable sort keeps pool order for equal scores, which makes selection
	// deterministic for venue sources that already rank their results.
	sort.SliceStable(selected, func(i, j int) bool {
		return WeightedAffinity(selected[i], prefs.Focus) > WeightedAffinity(selected[j], prefs.Focus)
	})

	if adjusted < len(selected) {
		selected = selected[:adjusted]
	}
	return selected, nil
}
