package models

import "time"

// Booking statuses. The timeline only renders bookings that still occupy a table.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusSeated    = "seated"
	StatusCompleted = "completed"
	StatusCanceled  = "canceled"
	StatusNoShow    = "no_show"
)

// Booking represents a confirmed table reservation for a single day.
type Booking struct {
	ID        int64     `json:"id"`
	Date      time.Time `json:"date"`
	Time      string    `json:"time"` // "19:30"
	PartySize int       `json:"party_size"`
	Table     string    `json:"table,omitempty"`
	GuestName string    `json:"guest_name,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsActive reports whether the booking still occupies a table on the floor.
func (b *Booking) IsActive() bool {
	return b.Status != StatusCanceled && b.Status != StatusNoShow
}

// OpeningPeriod is one contiguous service window on a given day.
// Open and Close are clock codes (hour*100 + minute), e.g. 1230 for 12:30.
// A day may carry several periods with gaps between them (lunch / dinner).
type OpeningPeriod struct {
	ID      int64     `json:"id"`
	Date    time.Time `json:"date"`
	Service string    `json:"service,omitempty"` // "lunch", "dinner"
	Open    int       `json:"open"`
	Close   int       `json:"close"`
	Special bool      `json:"special"` // one-off hours, excluded from global bounds
}

// DailyStat is a per-day aggregate used by the month comparison chart.
// Service is empty for the whole-day rollup.
type DailyStat struct {
	ID       int64     `json:"id"`
	Date     time.Time `json:"date"`
	Service  string    `json:"service,omitempty"`
	Bookings int       `json:"bookings"`
	Covers   int       `json:"covers"`
}

// ParseClock converts a "HH:MM" string to minutes since midnight.
// Returns ok=false for anything malformed; callers treat those as absent.
func ParseClock(s string) (int, bool) {
	if len(s) != 5 || s[2] != ':' {
		return 0, false
	}
	h := int(s[0]-'0')*10 + int(s[1]-'0')
	m := int(s[3]-'0')*10 + int(s[4]-'0')
	if s[0] < '0' || s[0] > '9' || s[1] < '0' || s[1] > '9' ||
		s[3] < '0' || s[3] > '9' || s[4] < '0' || s[4] > '9' {
		return 0, false
	}
	if h > 23 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}

// ClockCodeMinutes converts an hour*100+minute code to minutes since midnight.
// Close codes may legitimately reach 2400 (midnight close).
func ClockCodeMinutes(code int) (int, bool) {
	if code < 0 || code > 2400 {
		return 0, false
	}
	h, m := code/100, code%100
	if m > 59 {
		return 0, false
	}
	return h*60 + m, true
}
