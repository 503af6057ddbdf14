package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rneedle3/play-now/models"
)

// PostgresSlotDAO handles availability slots in Postgres. The schema matches
// the scraped feed: one row per (court, date, time) offering.
type PostgresSlotDAO struct {
	pool *pgxpool.Pool
}

func NewPostgresSlotDAO(pool *pgxpool.Pool) *PostgresSlotDAO {
	return &PostgresSlotDAO{pool: pool}
}

// GetAvailableSlots returns every available slot for one calendar date,
// ordered by time-of-day ascending.
func (dao *PostgresSlotDAO) GetAvailableSlots(ctx context.Context, date string) ([]models.Slot, error) {
	query := `
		SELECT
			id,
			location_id,
			location_name,
			court_id,
			court_name,
			COALESCE(court_type, ''),
			date,
			time,
			duration_minutes,
			price_cents,
			price_type,
			is_available
		FROM availability
		WHERE date = $1 AND is_available = TRUE
		ORDER BY time ASC
	`

	rows, err := dao.pool.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to query availability for %s: %w", date, err)
	}
	defer rows.Close()

	var slots []models.Slot
	for rows.Next() {
		var s models.Slot
		var sport string
		if err := rows.Scan(
			&s.SlotID,
			&s.VenueID,
			&s.VenueName,
			&s.CourtID,
			&s.CourtName,
			&sport,
			&s.Date,
			&s.Time,
			&s.DurationMinutes,
			&s.PriceCents,
			&s.PriceType,
			&s.Available,
		); err != nil {
			return nil, fmt.Errorf("failed to scan availability row: %w", err)
		}
		s.Sport = models.Sport(sport)
		slots = append(slots, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading availability rows: %w", err)
	}
	return slots, nil
}

// UpsertSlot writes one scraped offering. Slots arriving without an ID get a
// generated one so re-scrapes converge on the same row.
func (dao *PostgresSlotDAO) UpsertSlot(ctx context.Context, s models.Slot) error {
	if s.SlotID == "" {
		s.SlotID = uuid.NewString()
	}

	query := `
		INSERT INTO availability (
			id, location_id, location_name, court_id, court_name,
			court_type, date, time, duration_minutes,
			price_cents, price_type, is_available
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (court_id, date, time) DO UPDATE SET
			location_name = EXCLUDED.location_name,
			court_name = EXCLUDED.court_name,
			court_type = EXCLUDED.court_type,
			duration_minutes = EXCLUDED.duration_minutes,
			price_cents = EXCLUDED.price_cents,
			price_type = EXCLUDED.price_type,
			is_available = EXCLUDED.is_available
	`

	_, err := dao.pool.Exec(ctx, query,
		s.SlotID, s.VenueID, s.VenueName, s.CourtID, s.CourtName,
		string(s.Sport), s.Date, s.Time, s.DurationMinutes,
		s.PriceCents, s.PriceType, s.Available,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert slot %s: %w", s.SlotID, err)
	}
	return nil
}

// DeleteSlotsBefore clears rows for past dates after a refresh sweep.
func (dao *PostgresSlotDAO) DeleteSlotsBefore(ctx context.Context, date string) error {
	_, err := dao.pool.Exec(ctx, `DELETE FROM availability WHERE date < $1`, date)
	if err != nil {
		return fmt.Errorf("failed to delete stale availability: %w", err)
	}
	return nil
}
