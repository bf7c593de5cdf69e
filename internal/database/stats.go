package database

import (
	"context"
	"fmt"
	"time"

	"stolik/internal/models"
)

// UpsertDailyStat creates or replaces the aggregate for a date and service.
func (db *DB) UpsertDailyStat(ctx context.Context, s *models.DailyStat) error {
	if s == nil {
		return fmt.Errorf("stat is nil")
	}
	_, err := db.ExecContext(ctx, `
		INSERT INTO daily_stats (date, service, bookings, covers, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(date, service) DO UPDATE SET
			bookings = excluded.bookings,
			covers = excluded.covers,
			updated_at = excluded.updated_at`,
		s.Date, s.Service, s.Bookings, s.Covers, time.Now(),
	)
	return err
}

// GetDailyStats returns aggregates within [from, to), all services.
func (db *DB) GetDailyStats(ctx context.Context, from, to time.Time) ([]models.DailyStat, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT id, date, service, bookings, covers
		FROM daily_stats
		WHERE date >= ? AND date < ?
		ORDER BY date, service`,
		from, to,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []models.DailyStat
	for rows.Next() {
		var s models.DailyStat
		if err := rows.Scan(&s.ID, &s.Date, &s.Service, &s.Bookings, &s.Covers); err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

// RollupDailyStats recomputes the whole-day aggregate for a date from the
// bookings table. Used by the nightly refresh and by tests.
func (db *DB) RollupDailyStats(ctx context.Context, date time.Time) error {
	startOfDay := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	endOfDay := startOfDay.Add(24 * time.Hour)

	var bookings, covers int
	err := db.QueryRowContext(ctx, `
		SELECT COUNT(*), COALESCE(SUM(party_size), 0)
		FROM bookings
		WHERE date >= ? AND date < ?
		AND status NOT IN (?, ?)`,
		startOfDay, endOfDay, models.StatusCanceled, models.StatusNoShow,
	).Scan(&bookings, &covers)
	if err != nil {
		return fmt.Errorf("rollup stats: %w", err)
	}

	return db.UpsertDailyStat(ctx, &models.DailyStat{
		Date:     startOfDay,
		Bookings: bookings,
		Covers:   covers,
	})
}
