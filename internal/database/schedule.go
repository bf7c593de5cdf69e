package database

import (
	"context"
	"fmt"
	"time"

	"stolik/internal/models"
)

// CreateOpeningPeriod inserts a service window for a day.
func (db *DB) CreateOpeningPeriod(ctx context.Context, p *models.OpeningPeriod) error {
	if p == nil {
		return fmt.Errorf("period is nil")
	}
	res, err := db.ExecContext(ctx, `
		INSERT INTO opening_periods (date, service, open_code, close_code, is_special)
		VALUES (?, ?, ?, ?, ?)`,
		p.Date, p.Service, p.Open, p.Close, p.Special,
	)
	if err != nil {
		return fmt.Errorf("insert opening period: %w", err)
	}
	p.ID, err = res.LastInsertId()
	return err
}

// GetOpeningPeriodsForDate returns the day's service windows ordered by open time.
func (db *DB) GetOpeningPeriodsForDate(ctx context.Context, date time.Time) ([]models.OpeningPeriod, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT id, date, service, open_code, close_code, is_special
		FROM opening_periods
		WHERE date(date) = date(?)
		ORDER BY open_code`,
		date,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var periods []models.OpeningPeriod
	for rows.Next() {
		var p models.OpeningPeriod
		if err := rows.Scan(&p.ID, &p.Date, &p.Service, &p.Open, &p.Close, &p.Special); err != nil {
			return nil, err
		}
		periods = append(periods, p)
	}
	return periods, rows.Err()
}

// GetAllOpeningPeriods returns every known service window. The bounds
// resolver consumes the full history so the axis stays stable across days.
func (db *DB) GetAllOpeningPeriods(ctx context.Context) ([]models.OpeningPeriod, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT id, date, service, open_code, close_code, is_special
		FROM opening_periods
		ORDER BY date, open_code`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var periods []models.OpeningPeriod
	for rows.Next() {
		var p models.OpeningPeriod
		if err := rows.Scan(&p.ID, &p.Date, &p.Service, &p.Open, &p.Close, &p.Special); err != nil {
			return nil, err
		}
		periods = append(periods, p)
	}
	return periods, rows.Err()
}
