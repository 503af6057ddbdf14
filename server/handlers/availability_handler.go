package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/rneedle3/play-now/middleware"
	"github.com/rneedle3/play-now/models"
	services "github.com/rneedle3/play-now/service"
)

const (
	DATE_QUERY_ARG  = "date"
	SPORT_QUERY_ARG = "sport"
)

// AvailabilityHandler serves the aggregated court-availability view.
type AvailabilityHandler struct {
	courtView *services.CourtView
}

func NewAvailabilityHandler(courtView *services.CourtView) *AvailabilityHandler {
	return &AvailabilityHandler{courtView: courtView}
}

// GetAvailability handles GET /v1/availability?date=YYYY-MM-DD&sport=...
func (h *AvailabilityHandler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	// 1) Parse query args
	date, filter, ok := h.parseArgs(r.URL.Query(), w)
	if !ok {
		return // error already written
	}

	// 2) Build the full view: fetch, filter, aggregate, viewport, annotate.
	// Either source query failing collapses into one aggregate error; no
	// partial view is rendered.
	view, err := h.courtView.BuildView(r.Context(), date, filter)
	if err != nil {
		log.Println("Error building availability view:", err)
		middleware.CountFetchFailure()
		http.Error(w, "Failed to load court availability", http.StatusInternalServerError)
		return
	}

	// 3) Write JSON
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(view); err != nil {
		log.Println("Error encoding response:", err)
	}
}

func (h *AvailabilityHandler) parseArgs(vals url.Values, w http.ResponseWriter) (
	date string, filter models.SportFilter, ok bool,
) {
	date = vals.Get(DATE_QUERY_ARG)
	if _, err := time.Parse("2006-01-02", date); err != nil {
		http.Error(w, "Invalid argument "+DATE_QUERY_ARG, http.StatusBadRequest)
		return
	}

	filter, valid := models.ParseSportFilter(vals.Get(SPORT_QUERY_ARG))
	if !valid {
		http.Error(w, "Invalid argument "+SPORT_QUERY_ARG, http.StatusBadRequest)
		return
	}
	ok = true
	return
}

// Ping handles GET /ping
func (h *AvailabilityHandler) Ping(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "pong"})
}
