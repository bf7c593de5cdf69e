// Package history builds the calendar-aligned series behind the
// current-vs-previous-month comparison chart. Day-of-week drives restaurant
// demand, so the previous month is anchored on matching weekdays rather than
// matching day numbers: "this Friday" lines up with "a Friday last month".
package history

import (
	"time"

	"stolik/internal/models"
)

// Extractor pulls one numeric metric out of a daily aggregate.
type Extractor func(models.DailyStat) float64

// Covers extracts the covers count.
func Covers(s models.DailyStat) float64 { return float64(s.Covers) }

// Bookings extracts the bookings count.
func Bookings(s models.DailyStat) float64 { return float64(s.Bookings) }

// AlignedSeries holds three arrays indexed by day of the current month
// (index 0 is day 1). All three always have the same length.
type AlignedSeries struct {
	Current            []float64 `json:"current"`
	PreviousAligned    []float64 `json:"previous_aligned"`
	PreviousWeekdayAvg []float64 `json:"previous_weekday_avg"`
}

// FilterService keeps the stats matching a service name. An empty service
// keeps only the whole-day rollups (stats without a service breakdown).
func FilterService(stats []models.DailyStat, service string) []models.DailyStat {
	out := make([]models.DailyStat, 0, len(stats))
	for _, s := range stats {
		if s.Service == service {
			out = append(out, s)
		}
	}
	return out
}

// Align builds the three comparison series for the month starting at
// monthStart (must be the first of the month). Missing data never fails,
// it just reads as zero.
//
// PreviousAligned starts at the first date of the previous month that falls
// on the same weekday as monthStart and walks forward day by day; dates past
// the previous month's end read as zero. PreviousWeekdayAvg replaces each
// current day with the previous month's average for that weekday.
func Align(current, previous []models.DailyStat, extract Extractor, monthStart time.Time, daysInMonth int) AlignedSeries {
	if daysInMonth <= 0 {
		daysInMonth = monthStart.AddDate(0, 1, -monthStart.Day()).Day()
	}

	series := AlignedSeries{
		Current:            make([]float64, daysInMonth),
		PreviousAligned:    make([]float64, daysInMonth),
		PreviousWeekdayAvg: make([]float64, daysInMonth),
	}

	for _, s := range current {
		day := s.Date.Day()
		if day >= 1 && day <= daysInMonth && sameMonth(s.Date, monthStart) {
			series.Current[day-1] += extract(s)
		}
	}

	prevStart := monthStart.AddDate(0, -1, 0)
	prevByDay := make(map[int]float64, len(previous))
	var weekdaySum, weekdayCount [7]float64
	for _, s := range previous {
		if !sameMonth(s.Date, prevStart) {
			continue
		}
		v := extract(s)
		prevByDay[s.Date.Day()] += v
		wd := s.Date.Weekday()
		weekdaySum[wd] += v
		weekdayCount[wd]++
	}

	anchor := prevStart
	for anchor.Weekday() != monthStart.Weekday() {
		anchor = anchor.AddDate(0, 0, 1)
	}

	for d := 0; d < daysInMonth; d++ {
		date := anchor.AddDate(0, 0, d)
		if sameMonth(date, prevStart) {
			series.PreviousAligned[d] = prevByDay[date.Day()]
		}

		wd := monthStart.AddDate(0, 0, d).Weekday()
		if weekdayCount[wd] > 0 {
			series.PreviousWeekdayAvg[d] = weekdaySum[wd] / weekdayCount[wd]
		}
	}

	return series
}

// Totals sums a metric over a month of stats, for the dashboard header.
func Totals(stats []models.DailyStat, extract Extractor) float64 {
	var total float64
	for _, s := range stats {
		total += extract(s)
	}
	return total
}

func sameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}
