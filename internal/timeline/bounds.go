package timeline

import "stolik/internal/models"

// ResolveBounds derives the global hour axis from every known opening period,
// so the chart keeps the same scale across days. Special (one-off) periods and
// malformed clock codes are ignored. With no usable periods it falls back to
// the day's bookings padded by the slot duration, then to the default window.
// It never fails: absent data always resolves to a usable axis.
func (l Layout) ResolveBounds(periods []models.OpeningPeriod, fallback []models.Booking) Bounds {
	minOpen, maxClose := -1, -1
	for _, p := range periods {
		if p.Special {
			continue
		}
		if _, ok := models.ClockCodeMinutes(p.Open); !ok {
			continue
		}
		if _, ok := models.ClockCodeMinutes(p.Close); !ok {
			continue
		}
		if minOpen < 0 || p.Open < minOpen {
			minOpen = p.Open
		}
		if p.Close > maxClose {
			maxClose = p.Close
		}
	}

	if minOpen >= 0 {
		end := maxClose / 100
		if maxClose%100 != 0 {
			end++
		}
		return clamped(minOpen/100, end)
	}

	first, last := -1, -1
	for _, b := range fallback {
		m, ok := models.ParseClock(b.Time)
		if !ok {
			continue
		}
		if first < 0 || m < first {
			first = m
		}
		if m > last {
			last = m
		}
	}
	if first >= 0 {
		end := last + l.SlotDuration
		return clamped(first/60, (end+59)/60)
	}

	return clamped(l.DefaultStart, l.DefaultEnd)
}

func clamped(start, end int) Bounds {
	if end <= start {
		end = start + 1
	}
	return Bounds{StartHour: start, EndHour: end}
}
