package services

import (
	"context"
	"log"
	"sync"

	"github.com/rneedle3/play-now/models"
	"github.com/rneedle3/play-now/models/venue"
)

// VenueSource yields all venue records, ordered by display name ascending.
type VenueSource interface {
	GetAllVenues() ([]venue.Venue, error)
}

// SlotSource yields all available slots for one calendar date, ordered by
// time-of-day ascending.
type SlotSource interface {
	GetAvailableSlots(ctx context.Context, date string) ([]models.Slot, error)
}

// ViewState is the whole user-visible state for the current (date, filter).
// Loading and Err are mutually exclusive with a populated view. Both source
// queries must succeed before anything renders; either failing surfaces one
// aggregate error and no partial view.
type ViewState struct {
	Date    string             `json:"date"`
	Filter  models.SportFilter `json:"filter"`
	Loading bool               `json:"loading"`
	Err     error              `json:"-"`

	Venues []models.VenueWithSlots `json:"venues"`
	Map    models.MapView          `json:"map"`
}

// CourtView drives the availability view for one session: it fetches the
// dataset for a selected date, runs it through filter → aggregation →
// viewport → annotations, and rebuilds the map surface on every commit.
//
// Date selection is the only asynchronous step. A fetch result is committed
// only if no newer date has been requested since it started, so a slow stale
// response can never overwrite a fresher one (last-requested-wins, not
// last-to-arrive-wins).
type CourtView struct {
	venues     VenueSource
	slots      SlotSource
	renderer   *AnnotationRenderer
	newSurface func() MapSurface

	mu     sync.Mutex
	seq    uint64
	filter models.SportFilter

	// last committed raw dataset, kept so a filter change recomputes
	// without refetching
	rawVenues []venue.Venue
	rawSlots  []models.Slot

	state ViewState
}

func NewCourtView(
	venues VenueSource,
	slots SlotSource,
	renderer *AnnotationRenderer,
	newSurface func() MapSurface) *CourtView {

	return &CourtView{
		venues:     venues,
		slots:      slots,
		renderer:   renderer,
		newSurface: newSurface,
		filter:     models.FilterAll,
		state:      ViewState{Filter: models.FilterAll},
	}
}

// SelectDate requests the dataset for a new date. The previous in-flight
// fetch, if any, is not cancelled; its result is simply discarded when it
// lands because the sequence number has moved on.
func (cv *CourtView) SelectDate(ctx context.Context, date string) {
	cv.mu.Lock()
	cv.seq++
	seq := cv.seq
	cv.state = ViewState{Date: date, Filter: cv.filter, Loading: true}
	cv.mu.Unlock()

	go cv.fetch(ctx, seq, date)
}

func (cv *CourtView) fetch(ctx context.Context, seq uint64, date string) {
	venues, slots, err := cv.load(ctx, date)

	cv.mu.Lock()
	defer cv.mu.Unlock()

	if seq != cv.seq {
		log.Printf("[CourtView] Discarding stale result for date=%s (seq %d < %d)", date, seq, cv.seq)
		return
	}

	if err != nil {
		log.Printf("[CourtView] Fetch failed for date=%s: %v", date, err)
		cv.state = ViewState{Date: date, Filter: cv.filter, Err: err}
		return
	}

	cv.rawVenues = venues
	cv.rawSlots = slots
	cv.rebuildLocked(date)
}

func (cv *CourtView) load(ctx context.Context, date string) ([]venue.Venue, []models.Slot, error) {
	venues, err := cv.venues.GetAllVenues()
	if err != nil {
		return nil, nil, err
	}
	slots, err := cv.slots.GetAvailableSlots(ctx, date)
	if err != nil {
		return nil, nil, err
	}
	return sanitizeVenues(venues), sanitizeSlots(slots), nil
}

// SetSportFilter applies a new sport filter and recomputes the view from the
// last committed dataset. No refetch: filtering is pure and cheap.
func (cv *CourtView) SetSportFilter(filter models.SportFilter) {
	cv.mu.Lock()
	defer cv.mu.Unlock()

	cv.filter = filter
	cv.state.Filter = filter
	if cv.state.Loading || cv.state.Err != nil || cv.rawVenues == nil {
		return
	}
	cv.rebuildLocked(cv.state.Date)
}

// rebuildLocked discards the previous computed view and rebuilds it whole.
// Callers hold cv.mu.
func (cv *CourtView) rebuildLocked(date string) {
	grouped := GroupSlotsByVenue(cv.rawVenues, cv.rawSlots)
	filtered := ApplySportFilter(grouped, cv.filter)
	vp := ComputeViewport(filtered)
	markers := cv.renderer.BuildMarkers(filtered, vp.Zoom)

	if cv.newSurface != nil {
		cv.renderer.Render(cv.newSurface(), filtered, vp)
	}

	cv.state = ViewState{
		Date:   date,
		Filter: cv.filter,
		Venues: filtered,
		Map:    models.MapView{Viewport: vp, Markers: markers},
	}
}

// State returns a snapshot of the current view state.
func (cv *CourtView) State() ViewState {
	cv.mu.Lock()
	defer cv.mu.Unlock()
	return cv.state
}

// BuildView computes a one-shot availability view for a date and filter,
// outside any session state. The HTTP layer uses this per request.
func (cv *CourtView) BuildView(ctx context.Context, date string, filter models.SportFilter) (*models.AvailabilityView, error) {
	venues, slots, err := cv.load(ctx, date)
	if err != nil {
		return nil, err
	}

	grouped := GroupSlotsByVenue(venues, slots)
	filtered := ApplySportFilter(grouped, filter)
	vp := ComputeViewport(filtered)
	markers := cv.renderer.BuildMarkers(filtered, vp.Zoom)

	listing := make([]models.VenueAvailability, 0, len(filtered))
	for _, vws := range filtered {
		listing = append(listing, models.VenueAvailability{
			Venue:     vws.Venue,
			SlotCount: len(vws.Slots),
			Groups:    SportGroups(vws.Slots),
		})
	}

	return &models.AvailabilityView{
		Date:   date,
		Filter: filter,
		Venues: listing,
		Map:    models.MapView{Viewport: vp, Markers: markers},
	}, nil
}

// sanitizeVenues drops venue records missing required fields. Dropping is
// observable in the logs but never user-facing.
func sanitizeVenues(in []venue.Venue) []venue.Venue {
	out := make([]venue.Venue, 0, len(in))
	for _, v := range in {
		if v.VenueID == "" || v.VenueName == "" {
			log.Printf("[CourtView] Excluding malformed venue record: %s", v.ToString())
			continue
		}
		out = append(out, v)
	}
	return out
}

func sanitizeSlots(in []models.Slot) []models.Slot {
	out := make([]models.Slot, 0, len(in))
	for _, s := range in {
		if !s.Valid() {
			log.Printf("[CourtView] Excluding malformed slot record: id=%s venue=%s", s.SlotID, s.VenueID)
			continue
		}
		out = append(out, s)
	}
	return out
}
