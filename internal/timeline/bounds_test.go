package timeline

import (
	"testing"

	"stolik/internal/models"
)

func TestResolveBounds(t *testing.T) {
	tests := []struct {
		name      string
		periods   []models.OpeningPeriod
		fallback  []models.Booking
		wantStart int
		wantEnd   int
	}{
		{
			name: "lunch and dinner",
			periods: []models.OpeningPeriod{
				{Open: 1200, Close: 1430},
				{Open: 1800, Close: 2200},
			},
			wantStart: 12,
			wantEnd:   22,
		},
		{
			name: "close with minute remainder rounds up",
			periods: []models.OpeningPeriod{
				{Open: 1800, Close: 2330},
			},
			wantStart: 18,
			wantEnd:   24,
		},
		{
			name: "special periods excluded",
			periods: []models.OpeningPeriod{
				{Open: 1800, Close: 2200},
				{Open: 900, Close: 2359, Special: true},
			},
			wantStart: 18,
			wantEnd:   22,
		},
		{
			name: "malformed codes skipped",
			periods: []models.OpeningPeriod{
				{Open: 1290, Close: 1400}, // minute 90
				{Open: 1900, Close: 2100},
			},
			wantStart: 19,
			wantEnd:   21,
		},
		{
			name: "bookings fallback pads by duration",
			fallback: []models.Booking{
				{Time: "19:30", PartySize: 2},
				{Time: "20:00", PartySize: 4},
				{Time: "junk", PartySize: 2},
			},
			wantStart: 19,
			wantEnd:   22, // 20:00 + 120min = 22:00
		},
		{
			name:      "no data falls back to default window",
			wantStart: 18,
			wantEnd:   22,
		},
		{
			name: "degenerate window widened to one hour",
			periods: []models.OpeningPeriod{
				{Open: 1800, Close: 1800},
			},
			wantStart: 18,
			wantEnd:   19,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := DefaultLayout.ResolveBounds(tt.periods, tt.fallback)
			if b.StartHour != tt.wantStart || b.EndHour != tt.wantEnd {
				t.Errorf("got [%d, %d), want [%d, %d)", b.StartHour, b.EndHour, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestResolveBoundsContainment(t *testing.T) {
	periods := []models.OpeningPeriod{
		{Open: 1130, Close: 1500},
		{Open: 1730, Close: 2345},
		{Open: 1200, Close: 1400},
	}
	b := DefaultLayout.ResolveBounds(periods, nil)
	for _, p := range periods {
		if b.StartHour > p.Open/100 {
			t.Errorf("start %d exceeds open hour of %04d", b.StartHour, p.Open)
		}
		closeHour := p.Close / 100
		if p.Close%100 != 0 {
			closeHour++
		}
		if b.EndHour < closeHour {
			t.Errorf("end %d below close hour of %04d", b.EndHour, p.Close)
		}
	}
}
