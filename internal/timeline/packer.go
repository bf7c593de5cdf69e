package timeline

import (
	"sort"

	"stolik/internal/models"
)

type interval struct{ start, end int }

func (a interval) conflicts(b interval, buffer int) bool {
	return !(a.end+buffer <= b.start || a.start >= b.end+buffer)
}

// PackBookings assigns each booking to a run of rows so that bars sharing a
// row never touch: two intervals on the same row must be separated by at
// least Buffer minutes. Larger parties span more rows (visual weight only,
// not a scheduling resource). Returns the placed bookings and the number of
// rows used, which determines the chart height.
//
// The packing is greedy first-fit over bookings sorted by start time (stable
// on ties), so identical input always produces identical placement. It does
// not minimize rows globally; that variant of the problem is NP-hard and the
// greedy result is fine for a chart.
func (l Layout) PackBookings(bookings []models.Booking, b Bounds) ([]PositionedBooking, int) {
	total := b.TotalMinutes()
	base := b.StartHour * 60

	type timed struct {
		booking models.Booking
		start   int
	}
	sorted := make([]timed, 0, len(bookings))
	for _, bk := range bookings {
		m, ok := models.ParseClock(bk.Time)
		if !ok {
			continue
		}
		sorted = append(sorted, timed{booking: bk, start: m - base})
	}
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].start < sorted[j].start })

	var rows [][]interval
	placed := make([]PositionedBooking, 0, len(sorted))

	for _, t := range sorted {
		span := 1
		if l.RowSpanDivisor > 0 && t.booking.PartySize > 0 {
			span = t.booking.PartySize/l.RowSpanDivisor + 1
		}
		iv := interval{start: t.start, end: t.start + l.SlotDuration}

		row := 0
		for {
			for len(rows) < row+span {
				rows = append(rows, nil)
			}
			if fits(rows[row:row+span], iv, l.Buffer) {
				break
			}
			row++
		}

		for r := row; r < row+span; r++ {
			rows[r] = append(rows[r], iv)
		}
		end := iv.end
		if end > total {
			end = total
		}
		placed = append(placed, PositionedBooking{
			Booking:      t.booking,
			Row:          row,
			RowSpan:      span,
			StartMinutes: iv.start,
			EndMinutes:   end,
		})
	}

	return placed, len(rows)
}

func fits(rows [][]interval, iv interval, buffer int) bool {
	for _, row := range rows {
		for _, ex := range row {
			if iv.conflicts(ex, buffer) {
				return false
			}
		}
	}
	return true
}
