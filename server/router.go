package server

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// AvailabilityAPI is what the router needs from the availability handler.
type AvailabilityAPI interface {
	GetAvailability(w http.ResponseWriter, r *http.Request)
	Ping(w http.ResponseWriter, r *http.Request)
}

// VenueAPI is what the router needs from the venue handler.
type VenueAPI interface {
	GetVenuesNearby(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	availabilityHandler AvailabilityAPI
	venueHandler        VenueAPI
	router              *mux.Router
}

// NewRouter creates a router with the app’s routes.
func NewRouter(
	availabilityHandler AvailabilityAPI,
	venueHandler VenueAPI,
	router *mux.Router) *Router {
	return &Router{
		availabilityHandler: availabilityHandler,
		venueHandler:        venueHandler,
		router:              router,
	}
}

func (r *Router) RegisterRoutes() {
	// expects ?date={YYYY-MM-DD}&sport={all|tennis|pickleball}
	r.router.HandleFunc("/v1/availability", r.availabilityHandler.GetAvailability).Methods("GET")

	// expects ?lat={latitude(float)}&lon={longitude(float)}&radius={radius(float)}
	r.router.HandleFunc("/v1/venues/nearby", r.venueHandler.GetVenuesNearby).Methods("GET")

	r.router.HandleFunc("/ping", r.availabilityHandler.Ping).Methods("GET")

	r.router.Handle("/metrics", promhttp.Handler()).Methods("GET")
}
