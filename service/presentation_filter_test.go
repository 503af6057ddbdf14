package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rneedle3/play-now/models"
)

func buildSet() []models.VenueWithSlots {
	return []models.VenueWithSlots{
		{
			Venue: testVenue("v1", "Dolores", 37.76, -122.43),
			Slots: []models.Slot{
				testSlot("v1", "A", "09:00:00", intPtr(60), models.SportTennis),
				testSlot("v1", "B", "10:00:00", intPtr(60), models.SportPickleball),
			},
		},
		{
			Venue: testVenue("v2", "Balboa", 37.72, -122.45),
			Slots: []models.Slot{
				testSlot("v2", "C", "11:00:00", intPtr(60), models.SportPickleball),
			},
		},
	}
}

func TestApplySportFilter_AllDropsNothing(t *testing.T) {
	set := buildSet()
	out := ApplySportFilter(set, models.FilterAll)

	require.Len(t, out, 2)
	assert.Len(t, out[0].Slots, 2)
	assert.Len(t, out[1].Slots, 1)
}

func TestApplySportFilter_NarrowsToSport(t *testing.T) {
	set := buildSet()
	out := ApplySportFilter(set, models.FilterTennis)

	require.Len(t, out, 2)
	assert.Len(t, out[0].Slots, 1)
	assert.Equal(t, models.SportTennis, out[0].Slots[0].Sport)

	// v2 loses every slot but stays in the set for the negative marker.
	assert.Empty(t, out[1].Slots)
	assert.Equal(t, "v2", out[1].Venue.VenueID)
}

func TestApplySportFilter_DoesNotMutateInput(t *testing.T) {
	set := buildSet()
	_ = ApplySportFilter(set, models.FilterPickleball)

	assert.Len(t, set[0].Slots, 2)
	assert.Len(t, set[1].Slots, 1)
}

func TestPartition(t *testing.T) {
	set := ApplySportFilter(buildSet(), models.FilterTennis)
	available, unavailable := Partition(set)

	require.Len(t, available, 1)
	require.Len(t, unavailable, 1)
	assert.Equal(t, "v1", available[0].Venue.VenueID)
	assert.Equal(t, "v2", unavailable[0].Venue.VenueID)
}
