package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/rneedle3/play-now/dao/redis"
)

const (
	LAT_QUERY_ARG    = "lat"
	LON_QUERY_ARG    = "lon"
	RADIUS_QUERY_ARG = "radius"
)

// VenueHandler serves raw venue records from the geo index.
type VenueHandler struct {
	redisVenueDao *redis.RedisVenueDAO
}

func NewVenueHandler(redisVenueDao *redis.RedisVenueDAO) *VenueHandler {
	return &VenueHandler{redisVenueDao: redisVenueDao}
}

// GetVenuesNearby handles GET /v1/venues/nearby?lat=..&lon=..&radius=..
func (h *VenueHandler) GetVenuesNearby(w http.ResponseWriter, r *http.Request) {
	lat, lon, radius, ok := h.parseArgs(r.URL.Query(), w)
	if !ok {
		return // error already written
	}

	venues, err := h.redisVenueDao.GetNearbyVenues(lat, lon, radius)
	if err != nil {
		log.Println("Error loading nearby venues:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(venues); err != nil {
		log.Println("Error encoding response:", err)
	}
}

func (h *VenueHandler) parseArgs(vals url.Values, w http.ResponseWriter) (
	lat, lon, radius float64, ok bool,
) {
	var err error

	lat, err = parseArgFloat64(vals, LAT_QUERY_ARG)
	if err != nil {
		http.Error(w, "Invalid argument "+LAT_QUERY_ARG, http.StatusBadRequest)
		return
	}
	lon, err = parseArgFloat64(vals, LON_QUERY_ARG)
	if err != nil {
		http.Error(w, "Invalid argument "+LON_QUERY_ARG, http.StatusBadRequest)
		return
	}
	radius, err = parseArgFloat64(vals, RADIUS_QUERY_ARG)
	if err != nil {
		http.Error(w, "Invalid argument "+RADIUS_QUERY_ARG, http.StatusBadRequest)
		return
	}
	ok = true
	return
}

func parseArgFloat64(vals url.Values, name string) (float64, error) {
	s := vals.Get(name)
	return strconv.ParseFloat(s, 64)
}
