package domain

// Cultural enrichment data attached to a venue by the recommendation
// provider. Opaque to the planner beyond popularity and keywords.
type QlooMetadata struct {
	Popularity float64
	Keywords   []string
}

// Represents a candidate point of interest supplied by a venue source.
// A Venue is an immutable planning input: the planner derives adjusted
// values from Affinity and Rating but never writes them back.
type Venue struct {
	ID          string
	Name        string
	Type        string
	Coordinates *Coordinates
	Affinity    float64
	Rating      float64
	Qloo        *QlooMetadata
}

// HasPopularity reports whether enrichment data carries a usable
// popularity signal. A zero popularity is treated as absent, matching
// providers that omit the field entirely.
func (v Venue) HasPopularity() bool {
	return v.Qloo != nil && v.Qloo.Popularity > 0
}

// Keywords returns the enrichment keywords, or nil when absent.
func (v Venue) Keywords() []string {
	if v.Qloo == nil {
		return nil
	}
	return v.Qloo.Keywords
}
