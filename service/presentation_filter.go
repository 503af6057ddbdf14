package services

import "github.com/rneedle3/play-now/models"

// ApplySportFilter narrows each venue's slot list to slots matching the
// filter. The input set is never mutated; FilterAll returns an equivalent
// fresh set. Venues whose slot list empties out stay in the result so the
// map can still plot a negative marker for them.
func ApplySportFilter(set []models.VenueWithSlots, filter models.SportFilter) []models.VenueWithSlots {
	out := make([]models.VenueWithSlots, 0, len(set))
	for _, vws := range set {
		kept := make([]models.Slot, 0, len(vws.Slots))
		for _, s := range vws.Slots {
			if filter.Matches(s.Sport) {
				kept = append(kept, s)
			}
		}
		out = append(out, models.VenueWithSlots{Venue: vws.Venue, Slots: kept})
	}
	return out
}

// Partition splits a venue set into venues with at least one slot and venues
// with none. Both the list view and the marker-style decision consume this.
func Partition(set []models.VenueWithSlots) (available, unavailable []models.VenueWithSlots) {
	for _, vws := range set {
		if vws.HasAvailability() {
			available = append(available, vws)
		} else {
			unavailable = append(unavailable, vws)
		}
	}
	return available, unavailable
}
