package services

import (
	"sort"

	"github.com/rneedle3/play-now/models"
	"github.com/rneedle3/play-now/models/venue"
)

// sportPriority fixes the display order of sport groups: tennis first,
// pickleball second, everything else after in encounter order.
func sportPriority(s models.Sport) int {
	switch s {
	case models.SportTennis:
		return 0
	case models.SportPickleball:
		return 1
	default:
		return 2
	}
}

// GroupSlotsByVenue pairs each venue with the subset of slots that reference
// it. Venues with zero matching slots still appear with an empty list; the
// caller decides whether to display them. Pure: no I/O, no mutation of the
// inputs.
func GroupSlotsByVenue(venues []venue.Venue, slots []models.Slot) []models.VenueWithSlots {
	byVenue := make(map[string][]models.Slot, len(venues))
	for _, s := range slots {
		byVenue[s.VenueID] = append(byVenue[s.VenueID], s)
	}

	out := make([]models.VenueWithSlots, 0, len(venues))
	for _, v := range venues {
		matched := byVenue[v.VenueID]
		copied := make([]models.Slot, len(matched))
		copy(copied, matched)
		out = append(out, models.VenueWithSlots{Venue: v, Slots: copied})
	}
	return out
}

// SportGroups builds the per-sport-group listing for one venue's slots:
// grouped by sport (fallback label "other"), deduplicated by
// (time-of-day, duration) with the first occurrence winning, then sorted
// ascending by time. Lexicographic order on zero-padded HH:MM:SS matches
// calendar order. Applying SportGroups to an already-aggregated listing
// yields the same listing.
func SportGroups(slots []models.Slot) []models.SportGroup {
	type groupAcc struct {
		sport   models.Sport
		seen    map[string]struct{}
		entries []models.SlotEntry
		order   int // encounter order, tiebreak inside a priority band
	}

	accs := make(map[models.Sport]*groupAcc)
	var encounter []*groupAcc

	for _, s := range slots {
		acc, ok := accs[s.Sport]
		if !ok {
			acc = &groupAcc{
				sport: s.Sport,
				seen:  make(map[string]struct{}),
				order: len(encounter),
			}
			accs[s.Sport] = acc
			encounter = append(encounter, acc)
		}

		key := s.OfferingKey()
		if _, dup := acc.seen[key]; dup {
			continue
		}
		acc.seen[key] = struct{}{}
		acc.entries = append(acc.entries, models.SlotEntry{
			Time:            s.Time,
			CourtName:       s.CourtName,
			DurationMinutes: s.DurationMinutes,
			PriceCents:      s.PriceCents,
		})
	}

	sort.SliceStable(encounter, func(i, j int) bool {
		return sportPriority(encounter[i].sport) < sportPriority(encounter[j].sport)
	})

	groups := make([]models.SportGroup, 0, len(encounter))
	for _, acc := range encounter {
		sort.SliceStable(acc.entries, func(i, j int) bool {
			return acc.entries[i].Time < acc.entries[j].Time
		})
		groups = append(groups, models.SportGroup{
			Sport: acc.sport,
			Label: acc.sport.Label(),
			Slots: acc.entries,
		})
	}
	return groups
}
