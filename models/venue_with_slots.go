package models

import "github.com/rneedle3/play-now/models/venue"

// VenueWithSlots pairs a venue with its matching slots for the active date
// and filter. Every slot in Slots references the owning venue's ID. The pair
// is rebuilt on each date or filter change, never mutated in place.
type VenueWithSlots struct {
	Venue venue.Venue `json:"venue"`
	Slots []Slot      `json:"available_slots"`
}

// HasAvailability reports whether any slot survived filtering.
func (vws *VenueWithSlots) HasAvailability() bool {
	return len(vws.Slots) > 0
}
