package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rneedle3/play-now/config"
	"github.com/rneedle3/play-now/models"
	"github.com/rneedle3/play-now/models/venue"
)

type stubVenueSource struct {
	venues []venue.Venue
	err    error
}

func (s *stubVenueSource) GetAllVenues() ([]venue.Venue, error) {
	return s.venues, s.err
}

// stubSlotSource serves a per-date slot table. When gate is set for a date,
// the call blocks until that date's channel is closed, so tests can control
// which fetch resolves first.
type stubSlotSource struct {
	slots map[string][]models.Slot
	err   error
	gate  map[string]chan struct{}
}

func (s *stubSlotSource) GetAvailableSlots(ctx context.Context, date string) ([]models.Slot, error) {
	if s.gate != nil {
		if ch, ok := s.gate[date]; ok {
			<-ch
		}
	}
	if s.err != nil {
		return nil, s.err
	}
	return s.slots[date], nil
}

func newTestCourtView(venues *stubVenueSource, slots *stubSlotSource) *CourtView {
	renderer := NewAnnotationRenderer(config.DefaultBookingLinks())
	return NewCourtView(venues, slots, renderer, nil)
}

func TestBuildView_HappyPath(t *testing.T) {
	venues := &stubVenueSource{venues: []venue.Venue{
		testVenue("v1", "Dolores", 37.76, -122.43),
		testVenue("v2", "Balboa", 37.72, -122.45),
	}}
	slots := &stubSlotSource{slots: map[string][]models.Slot{
		"2026-09-01": {
			testSlot("v1", "A", "09:00:00", intPtr(60), models.SportTennis),
			testSlot("v1", "B", "10:00:00", intPtr(60), models.SportPickleball),
		},
	}}

	cv := newTestCourtView(venues, slots)
	view, err := cv.BuildView(context.Background(), "2026-09-01", models.FilterAll)
	require.NoError(t, err)

	assert.Equal(t, "2026-09-01", view.Date)
	require.Len(t, view.Venues, 2)
	assert.Equal(t, 2, view.Venues[0].SlotCount)
	assert.Equal(t, 0, view.Venues[1].SlotCount)
	require.Len(t, view.Map.Markers, 2)
	assert.True(t, view.Map.Markers[0].Available)
	assert.False(t, view.Map.Markers[1].Available)
}

func TestBuildView_FilterNarrowsListing(t *testing.T) {
	venues := &stubVenueSource{venues: []venue.Venue{
		testVenue("v1", "Dolores", 37.76, -122.43),
	}}
	slots := &stubSlotSource{slots: map[string][]models.Slot{
		"2026-09-01": {
			testSlot("v1", "A", "09:00:00", intPtr(60), models.SportTennis),
			testSlot("v1", "B", "10:00:00", intPtr(60), models.SportPickleball),
		},
	}}

	cv := newTestCourtView(venues, slots)
	view, err := cv.BuildView(context.Background(), "2026-09-01", models.FilterPickleball)
	require.NoError(t, err)

	require.Len(t, view.Venues, 1)
	assert.Equal(t, 1, view.Venues[0].SlotCount)
	require.Len(t, view.Venues[0].Groups, 1)
	assert.Equal(t, models.SportPickleball, view.Venues[0].Groups[0].Sport)
}

func TestBuildView_SlotFetchFailureIsSingleError(t *testing.T) {
	venues := &stubVenueSource{venues: []venue.Venue{
		testVenue("v1", "Dolores", 37.76, -122.43),
	}}
	slots := &stubSlotSource{err: errors.New("connection refused")}

	cv := newTestCourtView(venues, slots)
	view, err := cv.BuildView(context.Background(), "2026-09-01", models.FilterAll)
	assert.Nil(t, view)
	assert.Error(t, err)
}

func TestBuildView_ExcludesMalformedRecords(t *testing.T) {
	venues := &stubVenueSource{venues: []venue.Venue{
		testVenue("v1", "Dolores", 37.76, -122.43),
		{VenueID: "v2"}, // missing name
	}}
	badSlot := testSlot("v1", "A", "", intPtr(60), models.SportTennis) // missing time
	slots := &stubSlotSource{slots: map[string][]models.Slot{
		"2026-09-01": {
			testSlot("v1", "A", "09:00:00", intPtr(60), models.SportTennis),
			badSlot,
		},
	}}

	cv := newTestCourtView(venues, slots)
	view, err := cv.BuildView(context.Background(), "2026-09-01", models.FilterAll)
	require.NoError(t, err)

	require.Len(t, view.Venues, 1)
	assert.Equal(t, "v1", view.Venues[0].Venue.VenueID)
	assert.Equal(t, 1, view.Venues[0].SlotCount)
}

func TestSelectDate_CommitsResult(t *testing.T) {
	venues := &stubVenueSource{venues: []venue.Venue{
		testVenue("v1", "Dolores", 37.76, -122.43),
	}}
	slots := &stubSlotSource{slots: map[string][]models.Slot{
		"2026-09-01": {testSlot("v1", "A", "09:00:00", intPtr(60), models.SportTennis)},
	}}

	cv := newTestCourtView(venues, slots)
	cv.SelectDate(context.Background(), "2026-09-01")

	assert.True(t, cv.State().Loading)
	assert.Eventually(t, func() bool {
		st := cv.State()
		return !st.Loading && st.Err == nil && len(st.Venues) == 1
	}, time.Second, 5*time.Millisecond)

	st := cv.State()
	assert.Equal(t, "2026-09-01", st.Date)
	require.Len(t, st.Map.Markers, 1)
	assert.True(t, st.Map.Markers[0].Available)
}

func TestSelectDate_LastRequestedWins(t *testing.T) {
	venues := &stubVenueSource{venues: []venue.Venue{
		testVenue("v1", "Dolores", 37.76, -122.43),
	}}

	d1 := "2026-09-01"
	d2 := "2026-09-02"
	gate := map[string]chan struct{}{
		d1: make(chan struct{}),
		d2: make(chan struct{}),
	}
	slots := &stubSlotSource{
		slots: map[string][]models.Slot{
			d1: {testSlot("v1", "A", "09:00:00", intPtr(60), models.SportTennis)},
			d2: {testSlot("v1", "A", "15:00:00", intPtr(90), models.SportPickleball)},
		},
		gate: gate,
	}

	cv := newTestCourtView(venues, slots)

	// D1 requested first but its fetch is held open; D2 requested second and
	// resolves first.
	cv.SelectDate(context.Background(), d1)
	cv.SelectDate(context.Background(), d2)

	close(gate[d2])
	assert.Eventually(t, func() bool {
		st := cv.State()
		return !st.Loading && st.Date == d2 && len(st.Venues) == 1
	}, time.Second, 5*time.Millisecond)

	// Now let the stale D1 fetch land. It must be discarded.
	close(gate[d1])
	assert.Never(t, func() bool {
		return cv.State().Date == d1
	}, 100*time.Millisecond, 10*time.Millisecond)

	st := cv.State()
	assert.Equal(t, d2, st.Date)
	require.Len(t, st.Venues, 1)
	require.Len(t, st.Venues[0].Slots, 1)
	assert.Equal(t, "15:00:00", st.Venues[0].Slots[0].Time)
}

func TestSelectDate_FetchFailureSurfacesErrorState(t *testing.T) {
	venues := &stubVenueSource{venues: []venue.Venue{
		testVenue("v1", "Dolores", 37.76, -122.43),
	}}
	slots := &stubSlotSource{err: errors.New("timeout")}

	cv := newTestCourtView(venues, slots)
	cv.SelectDate(context.Background(), "2026-09-01")

	assert.Eventually(t, func() bool {
		st := cv.State()
		return !st.Loading && st.Err != nil
	}, time.Second, 5*time.Millisecond)
	assert.Empty(t, cv.State().Venues)
}

func TestSelectDate_RebuildsSurfacePerCommit(t *testing.T) {
	venues := &stubVenueSource{venues: []venue.Venue{
		testVenue("v1", "Dolores", 37.76, -122.43),
	}}
	slots := &stubSlotSource{slots: map[string][]models.Slot{
		"2026-09-01": {testSlot("v1", "A", "09:00:00", intPtr(60), models.SportTennis)},
		"2026-09-02": {testSlot("v1", "A", "10:00:00", intPtr(60), models.SportTennis)},
	}}

	var surfaces []*fakeSurface
	renderer := NewAnnotationRenderer(config.DefaultBookingLinks())
	cv := NewCourtView(venues, slots, renderer, func() MapSurface {
		s := newFakeSurface()
		surfaces = append(surfaces, s)
		return s
	})

	cv.SelectDate(context.Background(), "2026-09-01")
	assert.Eventually(t, func() bool {
		return !cv.State().Loading
	}, time.Second, 5*time.Millisecond)

	require.Len(t, surfaces, 1)
	assert.False(t, surfaces[0].tornDown)
	assert.NotEmpty(t, surfaces[0].markers)

	// A second commit builds a fresh surface and tears the old one down
	// whole; markers are never patched in place.
	cv.SelectDate(context.Background(), "2026-09-02")
	assert.Eventually(t, func() bool {
		return !cv.State().Loading && cv.State().Date == "2026-09-02"
	}, time.Second, 5*time.Millisecond)

	require.Len(t, surfaces, 2)
	assert.True(t, surfaces[0].tornDown)
	assert.False(t, surfaces[1].tornDown)
	assert.NotEmpty(t, surfaces[1].markers)
}

func TestSetSportFilter_RecomputesWithoutRefetch(t *testing.T) {
	venues := &stubVenueSource{venues: []venue.Venue{
		testVenue("v1", "Dolores", 37.76, -122.43),
	}}
	slots := &stubSlotSource{slots: map[string][]models.Slot{
		"2026-09-01": {
			testSlot("v1", "A", "09:00:00", intPtr(60), models.SportTennis),
			testSlot("v1", "B", "10:00:00", intPtr(60), models.SportPickleball),
		},
	}}

	cv := newTestCourtView(venues, slots)
	cv.SelectDate(context.Background(), "2026-09-01")
	assert.Eventually(t, func() bool {
		return !cv.State().Loading
	}, time.Second, 5*time.Millisecond)

	// Break the source: a recompute that refetched would now error.
	slots.err = errors.New("source gone")

	cv.SetSportFilter(models.FilterTennis)
	st := cv.State()
	assert.NoError(t, st.Err)
	assert.Equal(t, models.FilterTennis, st.Filter)
	require.Len(t, st.Venues, 1)
	require.Len(t, st.Venues[0].Slots, 1)
	assert.Equal(t, models.SportTennis, st.Venues[0].Slots[0].Sport)
}
