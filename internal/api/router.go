package api

import (
	"net/http"

	"culturis-route-service/internal/api/handlers"
	"culturis-route-service/internal/ports"
)

// NewRouter wires HTTP handlers with their dependencies and returns an
// http.Handler. This is the API composition root (handlers stay unaware
// of concrete adapters).
func NewRouter(source ports.VenueSource, poolCache ports.VenuePoolCache) http.Handler {
	mux := http.NewServeMux()

	venueHandler := &handlers.VenueHandler{Source: source}
	routeHandler := &handlers.RouteHandler{
		Source: source,
		Cache:  poolCache,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/venues", venueHandler.List)
	mux.HandleFunc("/routes", routeHandler.Plan)
	mux.HandleFunc("/routes/replace", routeHandler.Replace)

	return loggingMiddleware(mux)
}
