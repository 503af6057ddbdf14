package redis

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/rneedle3/play-now/db"
	"github.com/rneedle3/play-now/models/venue"
)

const COURT_VENUES_GEO_KEY_V1 = "court_venues_geo_v1"
const COURT_VENUE_MEMBER_FORMAT_V1 = "court_venue_v1:%s"

// RedisVenueDAO handles venue operations using Redis. Venues live as JSON
// blobs keyed by ID; venues with a coordinate pair additionally join the geo
// index for nearby queries.
type RedisVenueDAO struct {
	client db.RedisClient
}

// NewRedisVenueDAO initializes a RedisVenueDAO with the Redis client.
func NewRedisVenueDAO(client db.RedisClient) *RedisVenueDAO {
	return &RedisVenueDAO{client: client}
}

// UpsertVenue stores the venue blob and, when located, its geo entry.
func (dao *RedisVenueDAO) UpsertVenue(v venue.Venue) error {
	ctx := dao.client.GetContext()
	venueKey := fmt.Sprintf(COURT_VENUE_MEMBER_FORMAT_V1, v.VenueID)

	lat, lng, ok := v.Coordinate()
	if !ok {
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("failed to marshal venue %s: %w", v.VenueID, err)
		}
		return dao.client.Set(venueKey, string(data))
	}
	return dao.client.AddLocationWithJSON(ctx, COURT_VENUES_GEO_KEY_V1, venueKey, lat, lng, v)
}

// GetAllVenues returns every stored venue, ordered by display name
// ascending — the contract the availability view relies on.
func (dao *RedisVenueDAO) GetAllVenues() ([]venue.Venue, error) {
	pattern := fmt.Sprintf(COURT_VENUE_MEMBER_FORMAT_V1, "*")
	keys, err := dao.client.Keys(pattern)
	if err != nil {
		return nil, fmt.Errorf("[RedisVenueDAO] failed to list venue keys: %w", err)
	}

	venues := make([]venue.Venue, 0, len(keys))
	for _, k := range keys {
		raw, err := dao.client.Get(k)
		if err != nil {
			return nil, fmt.Errorf("[RedisVenueDAO] failed to get venue %s: %w", k, err)
		}
		var v venue.Venue
		if err := json.Unmarshal([]byte(raw), &v); err != nil {
			return nil, fmt.Errorf("failed to unmarshal venue JSON: %w", err)
		}
		venues = append(venues, v)
	}

	sort.Slice(venues, func(i, j int) bool {
		return venues[i].VenueName < venues[j].VenueName
	})
	return venues, nil
}

// GetNearbyVenues retrieves venues within a given radius (in km) of a point.
func (dao *RedisVenueDAO) GetNearbyVenues(lat, lon float64, radius float64) ([]venue.Venue, error) {
	venuesJSON, err := dao.client.GetLocationsWithinRadius(COURT_VENUES_GEO_KEY_V1, lat, lon, radius)
	if err != nil {
		return nil, fmt.Errorf("[RedisVenueDAO] failed to get venues: %v", err)
	}

	venues := make([]venue.Venue, len(venuesJSON))
	for i, venueJSON := range venuesJSON {
		if err := json.Unmarshal([]byte(venueJSON), &venues[i]); err != nil {
			return nil, fmt.Errorf("failed to unmarshal venue JSON: %w", err)
		}
	}
	return venues, nil
}

// DeleteVenue removes a venue blob. The geo index entry, if any, goes stale
// until the next refresher sweep rewrites the set.
func (dao *RedisVenueDAO) DeleteVenue(venueID string) error {
	key := fmt.Sprintf(COURT_VENUE_MEMBER_FORMAT_V1, venueID)
	if err := dao.client.Del(key); err != nil {
		return fmt.Errorf("failed to delete venue key %s: %w", key, err)
	}
	return nil
}
