package handlers

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"culturis-route-service/internal/api/dto"
	"culturis-route-service/internal/domain"
	"culturis-route-service/internal/ports"
)

// Default search radius when the query omits one.
const defaultRadiusMeters = 2000

// VenueHandler exposes read-only venue pool retrieval.
type VenueHandler struct {
	Source ports.VenueSource
}

// List returns the venue pool for ?lat=&lng=&radius=&tastes=a,b.
func (h *VenueHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	q := r.URL.Query()

	lat, err := strconv.ParseFloat(q.Get("lat"), 64)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "lat is required and must be a number")
		return
	}
	lng, err := strconv.ParseFloat(q.Get("lng"), 64)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "lng is required and must be a number")
		return
	}

	radius := float64(defaultRadiusMeters)
	if raw := q.Get("radius"); raw != "" {
		radius, err = strconv.ParseFloat(raw, 64)
		if err != nil || radius <= 0 {
			writeError(w, r, http.StatusBadRequest, "radius must be a positive number")
			return
		}
	}

	var tastes []string
	if raw := strings.TrimSpace(q.Get("tastes")); raw != "" {
		for _, t := range strings.Split(raw, ",") {
			if t = strings.TrimSpace(t); t != "" {
				tastes = append(tastes, t)
			}
		}
	}

	pool, err := h.Source.NearbyVenues(r.Context(), domain.Coordinates{Lat: lat, Lng: lng}, radius, tastes)
	if err != nil {
		log.Printf("list venues failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListVenuesResponse{Venues: make([]dto.Venue, 0, len(pool))}
	for _, v := range pool {
		res.Venues = append(res.Venues, dto.VenueFromDomain(v))
	}

	writeJSON(w, r, http.StatusOK, res)
}
