// Package timeline computes the geometry of the daily reservation chart:
// a stable hour axis, closed-time overlay segments and a conflict-free
// row packing of the day's bookings. Everything here is a pure function of
// its inputs; rendering (pixels, percentages) happens elsewhere.
package timeline

import "stolik/internal/models"

// Layout holds the packing and axis constants for the chart.
type Layout struct {
	SlotDuration   int // minutes a booking occupies on the axis
	Buffer         int // minimum gap between two bars sharing a row
	RowSpanDivisor int // party size / divisor + 1 rows of visual weight
	DefaultStart   int // fallback axis start hour
	DefaultEnd     int // fallback axis end hour
}

// DefaultLayout provides the production chart constants.
var DefaultLayout = Layout{
	SlotDuration:   120,
	Buffer:         5,
	RowSpanDivisor: 4,
	DefaultStart:   18,
	DefaultEnd:     22,
}

// Bounds is the displayed time axis, [StartHour, EndHour).
type Bounds struct {
	StartHour int `json:"start_hour"`
	EndHour   int `json:"end_hour"`
}

// TotalMinutes returns the width of the axis in minutes.
func (b Bounds) TotalMinutes() int {
	return (b.EndHour - b.StartHour) * 60
}

// PositionedBooking is a booking placed on the chart. Offsets are minutes
// relative to the bounds start; Row/RowSpan address the vertical shelf.
type PositionedBooking struct {
	Booking      models.Booking `json:"booking"`
	Row          int            `json:"row"`
	RowSpan      int            `json:"row_span"`
	StartMinutes int            `json:"start_minutes"`
	EndMinutes   int            `json:"end_minutes"`
}

// ClosedSegment is a stretch of the axis outside any opening period.
type ClosedSegment struct {
	LeftMinutes  int `json:"left_minutes"`
	WidthMinutes int `json:"width_minutes"`
}
