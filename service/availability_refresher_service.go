package services

import (
	"context"
	"log"
	"time"

	"golang.org/x/time/rate"

	"github.com/rneedle3/play-now/api/recus"
	"github.com/rneedle3/play-now/config"
	"github.com/rneedle3/play-now/dao/postgres"
	"github.com/rneedle3/play-now/dao/redis"
)

// AvailabilityRefresherService periodically scrapes the rec.us API for every
// configured court location and upserts venues and slots into the stores.
// Per-location failures are logged and skipped; a sweep never aborts early.
type AvailabilityRefresherService struct {
	venueDao  *redis.RedisVenueDAO
	slotDao   *postgres.PostgresSlotDAO
	recUsAPI  recus.RecUsAPI
	locations []config.CourtLocation
	limiter   *rate.Limiter
}

// NewAvailabilityRefresherService constructs a new Refresher with dependencies.
func NewAvailabilityRefresherService(
	venueDao *redis.RedisVenueDAO,
	slotDao *postgres.PostgresSlotDAO,
	recUsAPI recus.RecUsAPI,
	locations []config.CourtLocation,
) *AvailabilityRefresherService {
	return &AvailabilityRefresherService{
		venueDao:  venueDao,
		slotDao:   slotDao,
		recUsAPI:  recUsAPI,
		locations: locations,
		limiter:   rate.NewLimiter(config.REC_US_REQUESTS_PER_SECOND, config.REC_US_REQUEST_BURST),
	}
}

// StartPeriodicJob launches the background loop at the given interval.
func (ar *AvailabilityRefresherService) StartPeriodicJob(ctx context.Context, interval time.Duration) {
	go ar.startPeriodicJob(ctx, interval)
}

func (ar *AvailabilityRefresherService) startPeriodicJob(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("[AvailabilityRefresherService] Stopping periodic job.")
			return
		case <-ticker.C:
			log.Println("[AvailabilityRefresherService] Running periodic availability refresh.")
			if err := ar.RefreshAvailabilityData(ctx); err != nil {
				log.Printf("[AvailabilityRefresherService] RefreshAvailabilityData returned error: %v", err)
			} else {
				log.Println("[AvailabilityRefresherService] RefreshAvailabilityData completed successfully.")
			}
		}
	}
}

// RefreshAvailabilityData sweeps every configured location: fetch, convert,
// upsert venue, upsert slots, then clear rows for past dates.
func (ar *AvailabilityRefresherService) RefreshAvailabilityData(ctx context.Context) error {
	log.Printf("[AvailabilityRefresherService] Starting sweep of %d locations", len(ar.locations))

	seenVenues := make(map[string]struct{})
	var slotCount int

	for _, loc := range ar.locations {
		if err := ar.limiter.Wait(ctx); err != nil {
			return err
		}

		log.Printf("[AvailabilityRefresherService] Scraping %s (location_id=%s)", loc.Name, loc.LocationID)
		resp, err := ar.recUsAPI.GetLocation(loc.LocationID)
		if err != nil {
			log.Printf("[AvailabilityRefresherService] Failed to fetch %s: %v", loc.Name, err)
			continue
		}

		payload := resp.Location
		v := payload.ToVenue()
		if v.VenueID == "" {
			log.Printf("[AvailabilityRefresherService] Skipping %s: empty payload", loc.Name)
			continue
		}

		if _, dup := seenVenues[v.VenueID]; dup {
			log.Printf("[AvailabilityRefresherService] Skipping duplicate venue ID=%s", v.VenueID)
			continue
		}
		seenVenues[v.VenueID] = struct{}{}

		if err := ar.venueDao.UpsertVenue(v); err != nil {
			log.Printf("[AvailabilityRefresherService] Venue upsert failed for %s: %v", v.VenueID, err)
			continue
		}

		slots := payload.ToSlots()
		for _, s := range slots {
			if err := ar.slotDao.UpsertSlot(ctx, s); err != nil {
				log.Printf("[AvailabilityRefresherService] Slot upsert failed for %s %s %s: %v",
					s.VenueID, s.Date, s.Time, err)
			}
		}
		slotCount += len(slots)
		log.Printf("[AvailabilityRefresherService] Upserted venue %s with %d slots", v.VenueName, len(slots))
	}

	today := time.Now().Format("2006-01-02")
	if err := ar.slotDao.DeleteSlotsBefore(ctx, today); err != nil {
		log.Printf("[AvailabilityRefresherService] Failed to clear stale availability: %v", err)
	}

	log.Printf("[AvailabilityRefresherService] Sweep finished: %d venues, %d slots", len(seenVenues), slotCount)
	return nil
}
