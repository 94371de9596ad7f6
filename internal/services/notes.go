package services

import (
	"fmt"
	"strings"

	"culturis-route-service/internal/domain"
)

// VenueNotes produces the short contextual blurb shown under a stop. The
// phrasing is fixed per focus and venue family so routes render stably;
// the text is cosmetic and carries no planning meaning.
func VenueNotes(v domain.Venue, focus domain.Focus) string {
	if kws := v.Keywords(); len(kws) > 0 {
		return keywordNotes(v, focus, kws)
	}
	return fallbackNotes(v, focus)
}

func keywordNotes(v domain.Venue, focus domain.Focus, kws []string) string {
	if len(kws) > 3 {
		kws = kws[:3]
	}
	joined := strings.Join(kws, ", ")

	switch focus {
	case domain.FocusFood:
		if isFoodVenue(v.Type) {
			return fmt.Sprintf("Celebrated for %s", joined)
		}
		return fmt.Sprintf("Great atmosphere featuring %s", kws[0])
	case domain.FocusArts:
		if isArtsVenue(v.Type) {
			return fmt.Sprintf("Features %s - don't miss it!", joined)
		}
		return fmt.Sprintf("Cultural spot known for %s", kws[0])
	case domain.FocusCulture:
		return fmt.Sprintf("Local favorite known for %s", joined)
	default:
		return fmt.Sprintf("Known for %s - a perfect cultural stop", joined)
	}
}

func fallbackNotes(v domain.Venue, focus domain.Focus) string {
	// A record with no type gets the diverse phrasing rather than a
	// focus-specific one it cannot support.
	typeWord := strings.ToLower(v.Type)
	if typeWord == "" {
		typeWord = "venue"
		focus = domain.FocusDiverse
	}

	switch focus {
	case domain.FocusFood:
		if isFoodVenue(v.Type) {
			return "Perfect spot for culinary exploration"
		}
		return "Great for a quick break"
	case domain.FocusArts:
		if isArtsVenue(v.Type) {
			return "Immerse yourself in the cultural offerings"
		}
		return "Appreciate the creative atmosphere"
	case domain.FocusCulture:
		return fmt.Sprintf("Discover what makes this %s special to locals", typeWord)
	default:
		return fmt.Sprintf("Experience the unique atmosphere of this %s", typeWord)
	}
}

func isFoodVenue(venueType string) bool {
	return strings.Contains(venueType, "Restaurant") || strings.Contains(venueType, "Cafe")
}

func isArtsVenue(venueType string) bool {
	return strings.Contains(venueType, "Museum") || strings.Contains(venueType, "Art")
}
