package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rneedle3/play-now/config"
	"github.com/rneedle3/play-now/models"
	"github.com/rneedle3/play-now/models/venue"
)

// fakeSurface records everything the renderer pushes at it.
type fakeSurface struct {
	markers      []models.Marker
	viewLat      float64
	viewLng      float64
	viewZoom     float64
	popupSizes   map[string]int
	zoomHandler  func(zoom float64)
	popupHandler func(venueID string, open bool)
	tornDown     bool
}

func newFakeSurface() *fakeSurface {
	return &fakeSurface{popupSizes: make(map[string]int)}
}

func (f *fakeSurface) SetView(lat, lng, zoom float64) {
	f.viewLat, f.viewLng, f.viewZoom = lat, lng, zoom
}

func (f *fakeSurface) SetMarkers(markers []models.Marker) { f.markers = markers }

func (f *fakeSurface) SetPopupSize(venueID string, widthPx int) {
	f.popupSizes[venueID] = widthPx
}

func (f *fakeSurface) OnZoomChange(handler func(zoom float64)) { f.zoomHandler = handler }

func (f *fakeSurface) OnPopupToggle(handler func(venueID string, open bool)) {
	f.popupHandler = handler
}

func (f *fakeSurface) Teardown() { f.tornDown = true }

func TestPopupWidth_BaselineAndClamps(t *testing.T) {
	assert.Equal(t, config.POPUP_BASE_WIDTH_PX, PopupWidth(12))
	assert.Equal(t, config.POPUP_MIN_WIDTH_PX, PopupWidth(1))
	assert.Equal(t, config.POPUP_MAX_WIDTH_PX, PopupWidth(18))
}

func TestPopupWidth_MonotonicInZoom(t *testing.T) {
	prev := PopupWidth(1)
	for zoom := 1.5; zoom <= 18; zoom += 0.5 {
		next := PopupWidth(zoom)
		assert.GreaterOrEqual(t, next, prev, "width shrank at zoom %v", zoom)
		prev = next
	}
}

func TestSquarePopupSize_TighterClamps(t *testing.T) {
	assert.Equal(t, config.POPUP_BASE_WIDTH_PX, SquarePopupSize(12))
	assert.Equal(t, config.POPUP_SQUARE_MIN_PX, SquarePopupSize(1))
	assert.Equal(t, config.POPUP_SQUARE_MAX_PX, SquarePopupSize(18))
}

func rendererFixture() (*AnnotationRenderer, []models.VenueWithSlots) {
	set := []models.VenueWithSlots{
		{
			Venue: testVenue("v1", "Dolores", 37.76, -122.43),
			Slots: []models.Slot{
				testSlot("v1", "A", "09:00:00", intPtr(60), models.SportTennis),
			},
		},
		{
			Venue: testVenue("v2", "Unknown Park", 37.72, -122.45),
		},
	}
	return NewAnnotationRenderer(config.DefaultBookingLinks()), set
}

func TestBuildMarkers_AvailabilityAndLinks(t *testing.T) {
	renderer, set := rendererFixture()

	markers := renderer.BuildMarkers(set, 12)
	require.Len(t, markers, 2)

	assert.True(t, markers[0].Available)
	assert.Equal(t, "https://rec.us/dolores", markers[0].Popup.BookingURL)
	require.Len(t, markers[0].Popup.Groups, 1)
	require.Len(t, markers[0].Popup.Groups[0].Slots, 1)
	assert.True(t, markers[0].Popup.Groups[0].Slots[0].Actionable)
	assert.Equal(t, 1, markers[0].Popup.SlotCount)
	assert.Equal(t, 1200, markers[0].Popup.PriceCents)
	assert.Equal(t, config.POPUP_BASE_WIDTH_PX, markers[0].Popup.WidthPx)

	// Zero slots still yields a marker, just an unavailable one.
	assert.False(t, markers[1].Available)
	// No slug for this venue name, so nothing is actionable.
	assert.Empty(t, markers[1].Popup.BookingURL)
}

func TestBuildMarkers_ExcludesUnlocatedVenues(t *testing.T) {
	renderer, set := rendererFixture()
	set = append(set, models.VenueWithSlots{
		Venue: venueWithoutCoords("v3", "Indoor Annex"),
		Slots: []models.Slot{
			testSlot("v3", "A", "09:00:00", intPtr(60), models.SportTennis),
		},
	})

	markers := renderer.BuildMarkers(set, 12)
	assert.Len(t, markers, 2)
	for _, m := range markers {
		assert.NotEqual(t, "v3", m.VenueID)
	}
}

func TestRender_TearsDownPreviousSurface(t *testing.T) {
	renderer, set := rendererFixture()
	vp := ComputeViewport(set)

	first := newFakeSurface()
	renderer.Render(first, set, vp)
	assert.False(t, first.tornDown)
	assert.Len(t, first.markers, 2)
	assert.Equal(t, vp.CenterLat, first.viewLat)

	second := newFakeSurface()
	renderer.Render(second, set, vp)
	assert.True(t, first.tornDown)
	assert.False(t, second.tornDown)
}

func TestRender_ZoomChangeResizesOpenPopups(t *testing.T) {
	renderer, set := rendererFixture()
	vp := ComputeViewport(set)

	surface := newFakeSurface()
	renderer.Render(surface, set, vp)
	require.NotNil(t, surface.zoomHandler)
	require.NotNil(t, surface.popupHandler)

	surface.popupHandler("v1", true)
	assert.Equal(t, PopupWidth(vp.Zoom), surface.popupSizes["v1"])

	surface.zoomHandler(15)
	assert.Equal(t, PopupWidth(15), surface.popupSizes["v1"])

	// Re-delivering the same zoom is a no-op: size must not change and the
	// handler must tolerate repeats.
	surface.zoomHandler(15)
	assert.Equal(t, PopupWidth(15), surface.popupSizes["v1"])

	surface.popupHandler("v1", false)
	assert.Equal(t, 0, renderer.OpenPopupCount())
}

func TestRender_ClosedPopupsAreNotResized(t *testing.T) {
	renderer, set := rendererFixture()
	vp := ComputeViewport(set)

	surface := newFakeSurface()
	renderer.Render(surface, set, vp)

	surface.zoomHandler(16)
	assert.Empty(t, surface.popupSizes)
}

func venueWithoutCoords(id, name string) venue.Venue {
	return venue.Venue{VenueID: id, VenueName: name}
}
