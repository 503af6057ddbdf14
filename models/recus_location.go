package models

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/rneedle3/play-now/models/venue"
)

// Sport IDs the rec.us vendor uses for the two court types we track.
const SPORT_ID_TENNIS = "bd745b6e-1dd6-43e2-a69f-06f094808a96"
const SPORT_ID_PICKLEBALL = "aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa"

// slotDatetimeLayout is the vendor's availableSlots format.
const slotDatetimeLayout = "2006-01-02 15:04:05"

// LocationResponse matches GET /v1/locations/{id}?publishedSites=true.
type LocationResponse struct {
	Location LocationPayload `json:"location"`
}

// LocationPayload carries the venue record plus its courts. The vendor
// serializes coordinates as strings on some locations and numbers on others,
// hence json.Number.
type LocationPayload struct {
	ID               string      `json:"id"`
	Name             string      `json:"name"`
	FormattedAddress string      `json:"formattedAddress"`
	Lat              json.Number `json:"lat"`
	Lng              json.Number `json:"lng"`
	HoursOfOperation string      `json:"hoursOfOperation"`
	Description      string      `json:"description"`
	Courts           []Court     `json:"courts"`
}

type Court struct {
	ID             string       `json:"id"`
	CourtNumber    string       `json:"courtNumber"`
	AvailableSlots []string     `json:"availableSlots"`
	Config         CourtConfig  `json:"config"`
	Sports         []CourtSport `json:"sports"`
}

type CourtConfig struct {
	Pricing CourtPricing `json:"pricing"`
}

type CourtPricing struct {
	Default PricingDefault `json:"default"`
}

type PricingDefault struct {
	Cents int    `json:"cents"`
	Type  string `json:"type"`
}

type CourtSport struct {
	SportID string `json:"sportId"`
}

// Sport maps the court's first sport ID to our category. Unknown or missing
// IDs default to tennis, matching the feed's historical behavior.
func (c *Court) Sport() Sport {
	if len(c.Sports) == 0 {
		return SportTennis
	}
	switch c.Sports[0].SportID {
	case SPORT_ID_PICKLEBALL:
		return SportPickleball
	case SPORT_ID_TENNIS:
		return SportTennis
	}
	return SportTennis
}

// ToVenue converts the payload to our venue record. A coordinate is kept
// only when both halves parse.
func (p *LocationPayload) ToVenue() venue.Venue {
	v := venue.Venue{
		VenueID:          p.ID,
		VenueName:        p.Name,
		VenueAddress:     p.FormattedAddress,
		HoursOfOperation: p.HoursOfOperation,
		Description:      p.Description,
	}

	if p.Lat.String() != "" && p.Lng.String() != "" {
		lat, errLat := p.Lat.Float64()
		lng, errLng := p.Lng.Float64()
		if errLat == nil && errLng == nil {
			v.VenueLat = &lat
			v.VenueLng = &lng
		}
	}
	return v
}

// ToSlots flattens every court's availableSlots into slot records. Entries
// that fail to parse are logged and skipped.
func (p *LocationPayload) ToSlots() []Slot {
	var slots []Slot
	for _, court := range p.Courts {
		pricing := court.Config.Pricing.Default
		sport := court.Sport()

		for _, raw := range court.AvailableSlots {
			dt, err := time.Parse(slotDatetimeLayout, raw)
			if err != nil {
				log.Printf("[LocationPayload] Skipping unparsable slot time %q for court %s: %v", raw, court.ID, err)
				continue
			}
			slots = append(slots, Slot{
				VenueID:    p.ID,
				VenueName:  p.Name,
				CourtID:    court.ID,
				CourtName:  court.CourtNumber,
				Sport:      sport,
				Date:       dt.Format("2006-01-02"),
				Time:       dt.Format("15:04:05"),
				PriceCents: pricing.Cents,
				PriceType:  pricing.Type,
				Available:  true,
			})
		}
	}
	return slots
}

func (p *LocationPayload) ToString() string {
	return fmt.Sprintf("Location(name=%s, courts=%d)", p.Name, len(p.Courts))
}
