package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"math/rand"
	"net/http"
	"time"

	"culturis-route-service/internal/api/dto"
	"culturis-route-service/internal/domain"
	"culturis-route-service/internal/ports"
	"culturis-route-service/internal/services"
)

// RouteHandler orchestrates route planning and mutation over the venue
// source and pool cache.
type RouteHandler struct {
	Source ports.VenueSource
	Cache  ports.VenuePoolCache

	// Now returns the current wall-clock time for route start defaults;
	// overridable in tests.
	Now func() time.Time
}

// newRand returns a fresh RNG per request. Planning randomness is demo
// jitter, so independent per-request sources are fine and keep handlers
// safe under concurrency.
func (h *RouteHandler) newRand() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

func (h *RouteHandler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}

// Plan generates a route for the posted location, tastes, and preferences.
func (h *RouteHandler) Plan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.PlanRouteRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	start, err := h.resolveStart(req.StartTime)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "start_time must be a 12-hour clock time like \"10:00 AM\"")
		return
	}

	radius := req.RadiusMeters
	if radius == 0 {
		radius = defaultRadiusMeters
	}
	if radius < 0 {
		writeError(w, r, http.StatusBadRequest, "radius_meters must be positive")
		return
	}

	prefs := req.Preferences.ToDomain()
	if err := prefs.Validate(); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	genReq := services.GenerateRouteRequest{
		Center:       domain.Coordinates{Lat: req.Lat, Lng: req.Lng},
		RadiusMeters: radius,
		Tastes:       req.Tastes,
		Preferences:  prefs,
		StartTime:    start,
	}

	result, err := services.GenerateRoute(r.Context(), genReq, h.Source, h.Cache, h.newRand())
	if err != nil {
		log.Printf("plan route failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, planResponse(result))
}

// Replace swaps one stop of a client-held route for the best alternative
// in the posted candidate pool.
func (h *RouteHandler) Replace(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.ReplaceStopRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}

	route, err := req.Route.ToDomain()
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	pool := make([]domain.Venue, 0, len(req.Pool))
	for _, v := range req.Pool {
		pool = append(pool, v.ToDomain())
	}

	sel := services.StopSelector{
		Ordinal:  services.Ordinal(req.Selector.Ordinal),
		TypeTerm: req.Selector.Type,
	}

	result, err := services.ReplaceStop(route, sel, pool, h.newRand())
	if errors.Is(err, services.ErrNoReplacement) {
		// Not an error: the client shows a help affordance and must not
		// retry automatically.
		writeJSON(w, r, http.StatusOK, dto.ReplaceStopResponse{
			Replaced: false,
			Help:     "Could not find a venue to swap in. Try \"replace the first venue\" or name a venue type with alternatives nearby.",
		})
		return
	}
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	resp := planResponse(result)
	writeJSON(w, r, http.StatusOK, dto.ReplaceStopResponse{Replaced: true, Plan: &resp})
}

// resolveStart parses the requested start time, defaulting to "now" on
// the 12-hour clock like the planning UI does.
func (h *RouteHandler) resolveStart(raw string) (domain.TimeOfDay, error) {
	if raw == "" {
		now := h.now()
		return domain.TimeOfDay(now.Hour()*60 + now.Minute()), nil
	}
	return domain.ParseTimeOfDay(raw)
}

func planResponse(result *services.PlanResult) dto.PlanRouteResponse {
	return dto.PlanRouteResponse{
		Route: dto.RouteFromDomain(result.Route),
		Metrics: dto.RouteMetrics{
			TotalDistanceMeters: result.Metrics.TotalDistanceMeters,
			TotalTimeMinutes:    result.Metrics.TotalTimeMinutes,
		},
	}
}
