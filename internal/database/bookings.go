package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"stolik/internal/models"
)

// CreateBooking inserts a booking and sets its ID.
func (db *DB) CreateBooking(ctx context.Context, b *models.Booking) error {
	if b == nil {
		return fmt.Errorf("booking is nil")
	}
	now := time.Now()
	res, err := db.ExecContext(ctx, `
		INSERT INTO bookings (date, time, party_size, table_name, guest_name, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		b.Date, b.Time, b.PartySize, b.Table, b.GuestName, nonEmpty(b.Status, models.StatusConfirmed), now, now,
	)
	if err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}
	b.ID, err = res.LastInsertId()
	return err
}

// GetBookingsForDate returns the day's bookings that still occupy a table,
// ordered by start time.
func (db *DB) GetBookingsForDate(ctx context.Context, date time.Time) ([]models.Booking, error) {
	startOfDay := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	endOfDay := startOfDay.Add(24 * time.Hour)

	rows, err := db.QueryContext(ctx, `
		SELECT id, date, time, party_size, table_name, guest_name, status, created_at, updated_at
		FROM bookings
		WHERE date >= ? AND date < ?
		AND status NOT IN (?, ?)
		ORDER BY time, id`,
		startOfDay, endOfDay, models.StatusCanceled, models.StatusNoShow,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []models.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, *b)
	}
	return bookings, rows.Err()
}

func scanBooking(rows *sql.Rows) (*models.Booking, error) {
	var b models.Booking
	var table, guest sql.NullString
	if err := rows.Scan(
		&b.ID, &b.Date, &b.Time, &b.PartySize, &table, &guest, &b.Status, &b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if table.Valid {
		b.Table = table.String
	}
	if guest.Valid {
		b.GuestName = guest.String
	}
	return &b, nil
}

func nonEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
