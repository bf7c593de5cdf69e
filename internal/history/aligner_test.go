package history

import (
	"testing"
	"time"

	"stolik/internal/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func stat(y int, m time.Month, d, bookings, covers int) models.DailyStat {
	return models.DailyStat{Date: date(y, m, d), Bookings: bookings, Covers: covers}
}

func TestAlignLengths(t *testing.T) {
	// All three series keep the month length even with no data at all.
	s := Align(nil, nil, Covers, date(2024, time.July, 1), 31)
	if len(s.Current) != 31 || len(s.PreviousAligned) != 31 || len(s.PreviousWeekdayAvg) != 31 {
		t.Fatalf("series lengths %d/%d/%d, want 31 each",
			len(s.Current), len(s.PreviousAligned), len(s.PreviousWeekdayAvg))
	}
	for d := 0; d < 31; d++ {
		if s.Current[d] != 0 || s.PreviousAligned[d] != 0 || s.PreviousWeekdayAvg[d] != 0 {
			t.Fatalf("day %d not zero with empty input", d+1)
		}
	}
}

func TestAlignCurrentPlacement(t *testing.T) {
	current := []models.DailyStat{
		stat(2024, time.July, 1, 10, 24),
		stat(2024, time.July, 15, 8, 19),
		stat(2024, time.June, 15, 99, 99), // wrong month, ignored
	}
	s := Align(current, nil, Covers, date(2024, time.July, 1), 31)
	if s.Current[0] != 24 || s.Current[14] != 19 {
		t.Errorf("current series misplaced: day1=%v day15=%v", s.Current[0], s.Current[14])
	}
	if s.Current[13] != 0 {
		t.Errorf("day 14 should be zero, got %v", s.Current[13])
	}
}

func TestAlignWeekdayAnchor(t *testing.T) {
	// July 1, 2024 is a Monday; the first Monday of June 2024 is June 3.
	previous := []models.DailyStat{
		stat(2024, time.June, 3, 5, 12),
		stat(2024, time.June, 4, 6, 14),
		stat(2024, time.June, 30, 7, 21),
	}
	s := Align(nil, previous, Covers, date(2024, time.July, 1), 31)

	if s.PreviousAligned[0] != 12 {
		t.Errorf("day 1 aligned to %v, want June 3 value 12", s.PreviousAligned[0])
	}
	if s.PreviousAligned[1] != 14 {
		t.Errorf("day 2 aligned to %v, want June 4 value 14", s.PreviousAligned[1])
	}
	// June 3 + 27 days = June 30, the last day inside the previous month.
	if s.PreviousAligned[27] != 21 {
		t.Errorf("day 28 aligned to %v, want June 30 value 21", s.PreviousAligned[27])
	}
	for d := 28; d < 31; d++ {
		if s.PreviousAligned[d] != 0 {
			t.Errorf("day %d runs past the previous month, want 0, got %v", d+1, s.PreviousAligned[d])
		}
	}
}

func TestAlignWeekdayAverages(t *testing.T) {
	// Two June Mondays with covers 10 and 20: every July Monday averages 15.
	previous := []models.DailyStat{
		stat(2024, time.June, 3, 0, 10),
		stat(2024, time.June, 10, 0, 20),
	}
	s := Align(nil, previous, Covers, date(2024, time.July, 1), 31)

	for _, day := range []int{1, 8, 15, 22, 29} { // July Mondays
		if got := s.PreviousWeekdayAvg[day-1]; got != 15 {
			t.Errorf("July %d average %v, want 15", day, got)
		}
	}
	// Tuesdays have no June data at all.
	if s.PreviousWeekdayAvg[1] != 0 {
		t.Errorf("July 2 average %v, want 0 for empty weekday group", s.PreviousWeekdayAvg[1])
	}
}

func TestAlignDerivesDayCount(t *testing.T) {
	s := Align(nil, nil, Covers, date(2024, time.February, 1), 0)
	if len(s.Current) != 29 {
		t.Errorf("February 2024 length %d, want 29", len(s.Current))
	}
}

func TestFilterService(t *testing.T) {
	stats := []models.DailyStat{
		{Date: date(2024, time.July, 1), Service: "dinner", Covers: 30},
		{Date: date(2024, time.July, 1), Service: "lunch", Covers: 12},
		{Date: date(2024, time.July, 1), Covers: 42},
	}

	dinner := FilterService(stats, "dinner")
	if len(dinner) != 1 || dinner[0].Covers != 30 {
		t.Errorf("dinner filter returned %+v", dinner)
	}
	rollup := FilterService(stats, "")
	if len(rollup) != 1 || rollup[0].Covers != 42 {
		t.Errorf("rollup filter returned %+v", rollup)
	}
}

func TestExtractorsAndTotals(t *testing.T) {
	stats := []models.DailyStat{
		stat(2024, time.July, 1, 4, 11),
		stat(2024, time.July, 2, 6, 13),
	}
	if got := Totals(stats, Bookings); got != 10 {
		t.Errorf("bookings total %v, want 10", got)
	}
	if got := Totals(stats, Covers); got != 24 {
		t.Errorf("covers total %v, want 24", got)
	}
}
