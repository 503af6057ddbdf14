package models

import "github.com/rneedle3/play-now/models/venue"

// VenueAvailability is one list-view row: a venue with its aggregated,
// deduplicated per-sport listing. SlotCount counts the filtered slots before
// dedupe, matching the popup summary.
type VenueAvailability struct {
	Venue     venue.Venue  `json:"venue"`
	SlotCount int          `json:"slot_count"`
	Groups    []SportGroup `json:"groups"`
}

// AvailabilityView is the complete response for one (date, filter) request:
// the list view plus the map render target.
type AvailabilityView struct {
	Date   string              `json:"date"`
	Filter SportFilter         `json:"filter"`
	Venues []VenueAvailability `json:"venues"`
	Map    MapView             `json:"map"`
}
