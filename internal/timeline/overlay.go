package timeline

import (
	"sort"

	"stolik/internal/models"
)

// ClosedSegments computes the parts of the axis outside the day's opening
// periods: before the first open, the gaps between services (lunch/dinner)
// and after the last close. A day without periods yields one segment covering
// the whole axis. Zero-width segments are dropped; they occur legitimately
// when a period starts or ends exactly on the bounds.
//
// For non-overlapping input the segments and the periods tile the bounds
// exactly with no overlap between the two.
func ClosedSegments(periods []models.OpeningPeriod, b Bounds) []ClosedSegment {
	total := b.TotalMinutes()
	base := b.StartHour * 60

	type span struct{ open, close int }
	spans := make([]span, 0, len(periods))
	for _, p := range periods {
		open, ok := models.ClockCodeMinutes(p.Open)
		if !ok {
			continue
		}
		close, ok := models.ClockCodeMinutes(p.Close)
		if !ok {
			continue
		}
		spans = append(spans, span{clampMin(open-base, total), clampMin(close-base, total)})
	}

	if len(spans) == 0 {
		if total <= 0 {
			return nil
		}
		return []ClosedSegment{{LeftMinutes: 0, WidthMinutes: total}}
	}

	sort.SliceStable(spans, func(i, j int) bool { return spans[i].open < spans[j].open })

	var segments []ClosedSegment
	cursor := 0
	for _, s := range spans {
		if s.open > cursor {
			segments = append(segments, ClosedSegment{LeftMinutes: cursor, WidthMinutes: s.open - cursor})
		}
		if s.close > cursor {
			cursor = s.close
		}
	}
	if cursor < total {
		segments = append(segments, ClosedSegment{LeftMinutes: cursor, WidthMinutes: total - cursor})
	}
	return segments
}

func clampMin(m, total int) int {
	if m < 0 {
		return 0
	}
	if m > total {
		return total
	}
	return m
}
