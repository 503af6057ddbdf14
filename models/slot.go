package models

import "fmt"

// Slot is one bookable time offering at a venue, for one date.
type Slot struct {
	SlotID    string `json:"id"`
	VenueID   string `json:"location_id"`
	VenueName string `json:"location_name"`
	CourtID   string `json:"court_id"`
	CourtName string `json:"court_name"`

	Sport Sport `json:"court_type,omitempty"`

	Date string `json:"date"` // YYYY-MM-DD
	Time string `json:"time"` // zero-padded HH:MM:SS

	DurationMinutes *int `json:"duration_minutes,omitempty"`

	PriceCents int    `json:"price_cents"`
	PriceType  string `json:"price_type"`
	Available  bool   `json:"is_available"`
}

// DurationKey is the dedupe component for the slot's duration. Slots without
// a duration form their own bucket rather than merging with any numeric one.
func (s *Slot) DurationKey() string {
	if s.DurationMinutes == nil {
		return "unspecified"
	}
	return fmt.Sprintf("%dmin", *s.DurationMinutes)
}

// OfferingKey identifies a duplicate offering inside one sport group. Raw
// data can list the same offering under several court resources; two slots
// sharing time and duration count as one.
func (s *Slot) OfferingKey() string {
	return s.Time + "/" + s.DurationKey()
}

// Valid reports whether the record carries the fields aggregation relies on.
// Invalid records are dropped and logged at the fetch boundary.
func (s *Slot) Valid() bool {
	return s.VenueID != "" && s.Date != "" && s.Time != ""
}
