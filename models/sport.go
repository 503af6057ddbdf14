package models

// Sport is the activity a court slot supports. The upstream feed only knows
// tennis and pickleball; anything else (or an unset value) is grouped under
// the "other" label for display.
type Sport string

const (
	SportTennis     Sport = "tennis"
	SportPickleball Sport = "pickleball"
)

// OtherSportLabel is the display fallback for slots without a sport category.
const OtherSportLabel = "other"

// Label returns the display label for a sport group.
func (s Sport) Label() string {
	switch s {
	case SportTennis:
		return "Tennis"
	case SportPickleball:
		return "Pickleball"
	default:
		return OtherSportLabel
	}
}

// SportFilter narrows the view to one sport. It is session-scoped and never
// persisted.
type SportFilter string

const (
	FilterAll        SportFilter = "all"
	FilterTennis     SportFilter = "tennis"
	FilterPickleball SportFilter = "pickleball"
)

// Matches reports whether a slot with the given sport passes the filter.
func (f SportFilter) Matches(s Sport) bool {
	if f == FilterAll || f == "" {
		return true
	}
	return string(f) == string(s)
}

// ParseSportFilter maps a query argument to a filter, defaulting to all.
func ParseSportFilter(raw string) (SportFilter, bool) {
	switch SportFilter(raw) {
	case "", FilterAll:
		return FilterAll, true
	case FilterTennis:
		return FilterTennis, true
	case FilterPickleball:
		return FilterPickleball, true
	}
	return FilterAll, false
}
