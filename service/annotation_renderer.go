package services

import (
	"math"
	"sync"

	"github.com/rneedle3/play-now/config"
	"github.com/rneedle3/play-now/models"
)

// MapSurface is the thin seam between the presentation core and whatever map
// widget actually draws. The core only ever pushes markers, the view frame,
// and popup sizes through it, so it stays testable without a real map.
type MapSurface interface {
	SetView(lat, lng, zoom float64)
	SetMarkers(markers []models.Marker)
	SetPopupSize(venueID string, widthPx int)
	OnZoomChange(handler func(zoom float64))
	OnPopupToggle(handler func(venueID string, open bool))
	// Teardown detaches handlers and removes all markers. Must be called
	// before a replacement surface is built.
	Teardown()
}

// PopupWidth scales the detail panel with zoom relative to the baseline
// (280px at zoom 12), clamped to 150-600px.
func PopupWidth(zoom float64) int {
	return popupSize(zoom, config.POPUP_MIN_WIDTH_PX, config.POPUP_MAX_WIDTH_PX)
}

// SquarePopupSize is the variant for square panels, clamped to 200-500px.
func SquarePopupSize(zoom float64) int {
	return popupSize(zoom, config.POPUP_SQUARE_MIN_PX, config.POPUP_SQUARE_MAX_PX)
}

func popupSize(zoom float64, min, max int) int {
	scaled := config.POPUP_BASE_WIDTH_PX *
		math.Pow(2, (zoom-config.POPUP_BASE_ZOOM)/2)
	if scaled < float64(min) {
		return min
	}
	if scaled > float64(max) {
		return max
	}
	return int(math.Round(scaled))
}

// AnnotationRenderer owns exactly one MapSurface per rendered dataset. On
// each dataset change the previous surface is fully torn down before the new
// one is populated; partial marker updates are not supported.
//
// Live popup resizing is held as explicit state (open popup id → current
// size) and re-pushed on zoom changes, instead of patching rendered output
// in place.
type AnnotationRenderer struct {
	links *config.BookingLinks

	mu         sync.Mutex
	surface    MapSurface
	zoom       float64
	openPopups map[string]int
}

func NewAnnotationRenderer(links *config.BookingLinks) *AnnotationRenderer {
	return &AnnotationRenderer{
		links:      links,
		openPopups: make(map[string]int),
	}
}

// Render replaces the current surface with a fresh one showing the given
// venue set. Venues without a coordinate pair are silently excluded here but
// remain eligible for the non-map list view.
func (r *AnnotationRenderer) Render(surface MapSurface, set []models.VenueWithSlots, vp models.Viewport) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.surface != nil {
		r.surface.Teardown()
	}
	r.surface = surface
	r.zoom = vp.Zoom
	r.openPopups = make(map[string]int)

	surface.OnZoomChange(r.handleZoomChange)
	surface.OnPopupToggle(r.handlePopupToggle)
	surface.SetView(vp.CenterLat, vp.CenterLng, vp.Zoom)
	surface.SetMarkers(r.BuildMarkers(set, vp.Zoom))
}

// Teardown releases the current surface, if any.
func (r *AnnotationRenderer) Teardown() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.surface != nil {
		r.surface.Teardown()
		r.surface = nil
	}
	r.openPopups = make(map[string]int)
}

// BuildMarkers maps the venue set to annotations at the given zoom. One
// marker per located venue; availability state is binary.
func (r *AnnotationRenderer) BuildMarkers(set []models.VenueWithSlots, zoom float64) []models.Marker {
	markers := make([]models.Marker, 0, len(set))
	width := PopupWidth(zoom)

	for _, vws := range set {
		lat, lng, ok := vws.Venue.Coordinate()
		if !ok {
			continue
		}

		bookingURL := r.links.URL(vws.Venue.VenueName)

		groups := SportGroups(vws.Slots)
		for gi := range groups {
			for si := range groups[gi].Slots {
				groups[gi].Slots[si].BookingURL = bookingURL
				groups[gi].Slots[si].Actionable = bookingURL != ""
			}
		}

		price := 0
		if len(vws.Slots) > 0 {
			price = vws.Slots[0].PriceCents
		}

		markers = append(markers, models.Marker{
			VenueID:   vws.Venue.VenueID,
			VenueName: vws.Venue.VenueName,
			Lat:       lat,
			Lng:       lng,
			Available: vws.HasAvailability(),
			Popup: models.Popup{
				VenueName:  vws.Venue.VenueName,
				Address:    vws.Venue.VenueAddress,
				SlotCount:  len(vws.Slots),
				PriceCents: price,
				BookingURL: bookingURL,
				Groups:     groups,
				WidthPx:    width,
			},
		})
	}
	return markers
}

// handleZoomChange recomputes the size of every open popup and pushes only
// actual changes. Safe to invoke repeatedly with the same zoom; it mutates
// nothing beyond the popup sizes and so cannot trigger another render cycle.
func (r *AnnotationRenderer) handleZoomChange(zoom float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.surface == nil {
		return
	}
	r.zoom = zoom

	width := PopupWidth(zoom)
	for id, current := range r.openPopups {
		if current == width {
			continue
		}
		r.openPopups[id] = width
		r.surface.SetPopupSize(id, width)
	}
}

func (r *AnnotationRenderer) handlePopupToggle(venueID string, open bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !open {
		delete(r.openPopups, venueID)
		return
	}
	width := PopupWidth(r.zoom)
	r.openPopups[venueID] = width
	if r.surface != nil {
		r.surface.SetPopupSize(venueID, width)
	}
}

// OpenPopupCount is exposed for the view layer's diagnostics.
func (r *AnnotationRenderer) OpenPopupCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.openPopups)
}
