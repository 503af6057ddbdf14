package models

// Marker is one map annotation: a pin plus its attached detail popup.
// Availability is binary; the popup carries the full listing.
type Marker struct {
	VenueID   string  `json:"venue_id"`
	VenueName string  `json:"venue_name"`
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
	Available bool    `json:"available"`
	Popup     Popup   `json:"popup"`
}

// Popup summarizes a venue's availability for the detail panel. WidthPx is
// the panel size at the zoom level current when the marker set was built;
// live resizing goes through the renderer's open-popup state.
type Popup struct {
	VenueName  string       `json:"venue_name"`
	Address    string       `json:"address,omitempty"`
	SlotCount  int          `json:"slot_count"`
	PriceCents int          `json:"price_cents"`
	BookingURL string       `json:"booking_url,omitempty"`
	Groups     []SportGroup `json:"groups,omitempty"`
	WidthPx    int          `json:"width_px"`
}

// SportGroup is one deduplicated, time-sorted block of slot entries.
type SportGroup struct {
	Sport Sport       `json:"sport,omitempty"`
	Label string      `json:"label"`
	Slots []SlotEntry `json:"slots"`
}

// SlotEntry is one actionable (or plain) item in a popup or list row.
type SlotEntry struct {
	Time            string `json:"time"`
	CourtName       string `json:"court_name"`
	DurationMinutes *int   `json:"duration_minutes,omitempty"`
	PriceCents      int    `json:"price_cents"`
	BookingURL      string `json:"booking_url,omitempty"`
	Actionable      bool   `json:"actionable"`
}

// MapView is the full render target for one (date, filter) state.
type MapView struct {
	Viewport Viewport `json:"viewport"`
	Markers  []Marker `json:"markers"`
}
