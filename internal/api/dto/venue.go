package dto

import "culturis-route-service/internal/domain"

type QlooMetadata struct {
	Popularity float64  `json:"popularity"`
	Keywords   []string `json:"keywords,omitempty"`
}

type Venue struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Type        string        `json:"type"`
	Coordinates []float64     `json:"coordinates,omitempty"`
	Affinity    float64       `json:"affinity"`
	Rating      float64       `json:"rating,omitempty"`
	Qloo        *QlooMetadata `json:"qloo_metadata,omitempty"`
}

type ListVenuesResponse struct {
	Venues []Venue `json:"venues"`
}

func VenueFromDomain(v domain.Venue) Venue {
	out := Venue{
		ID:       v.ID,
		Name:     v.Name,
		Type:     v.Type,
		Affinity: v.Affinity,
		Rating:   v.Rating,
	}

	if v.Coordinates != nil {
		out.Coordinates = v.Coordinates.CoordsToList()
	}
	if v.Qloo != nil {
		out.Qloo = &QlooMetadata{Popularity: v.Qloo.Popularity, Keywords: v.Qloo.Keywords}
	}

	return out
}

func (v Venue) ToDomain() domain.Venue {
	out := domain.Venue{
		ID:       v.ID,
		Name:     v.Name,
		Type:     v.Type,
		Affinity: v.Affinity,
		Rating:   v.Rating,
	}

	if len(v.Coordinates) == 2 {
		out.Coordinates = &domain.Coordinates{Lat: v.Coordinates[0], Lng: v.Coordinates[1]}
	}
	if v.Qloo != nil {
		out.Qloo = &domain.QlooMetadata{Popularity: v.Qloo.Popularity, Keywords: v.Qloo.Keywords}
	}

	return out
}
