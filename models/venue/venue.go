package venue

import "fmt"

// Venue represents one physical court site.
type Venue struct {
	VenueID   string `json:"id"`
	VenueName string `json:"name"`

	// Address and coordinates come from the upstream scrape and may be absent.
	// Lat and Lng are either both set or both nil.
	VenueAddress string   `json:"address,omitempty"`
	VenueLat     *float64 `json:"lat,omitempty"`
	VenueLng     *float64 `json:"lng,omitempty"`

	HoursOfOperation string `json:"hours_of_operation,omitempty"`
	Description      string `json:"description,omitempty"`
}

// Coordinate returns the venue's position and whether a full pair is present.
func (v *Venue) Coordinate() (lat, lng float64, ok bool) {
	if v.VenueLat == nil || v.VenueLng == nil {
		return 0, 0, false
	}
	return *v.VenueLat, *v.VenueLng, true
}

func (v *Venue) ToString() string {
	lat, lng, ok := v.Coordinate()
	if !ok {
		return fmt.Sprintf("Venue(name=%s, address=%s, no coordinates)",
			v.VenueName, v.VenueAddress)
	}
	return fmt.Sprintf("Venue(name=%s, address=%s, lat=%f, lng=%f)",
		v.VenueName, v.VenueAddress, lat, lng)
}
