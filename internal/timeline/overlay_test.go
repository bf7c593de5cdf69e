package timeline

import (
	"testing"

	"stolik/internal/models"
)

func TestClosedSegments(t *testing.T) {
	tests := []struct {
		name    string
		periods []models.OpeningPeriod
		bounds  Bounds
		want    []ClosedSegment
	}{
		{
			name: "single gap between lunch and dinner",
			periods: []models.OpeningPeriod{
				{Open: 1200, Close: 1430},
				{Open: 1800, Close: 2200},
			},
			bounds: Bounds{StartHour: 12, EndHour: 22},
			want:   []ClosedSegment{{LeftMinutes: 150, WidthMinutes: 210}},
		},
		{
			name:   "no periods covers the whole axis",
			bounds: Bounds{StartHour: 18, EndHour: 22},
			want:   []ClosedSegment{{LeftMinutes: 0, WidthMinutes: 240}},
		},
		{
			name: "closed before first open and after last close",
			periods: []models.OpeningPeriod{
				{Open: 1900, Close: 2100},
			},
			bounds: Bounds{StartHour: 18, EndHour: 22},
			want: []ClosedSegment{
				{LeftMinutes: 0, WidthMinutes: 60},
				{LeftMinutes: 180, WidthMinutes: 60},
			},
		},
		{
			name: "unsorted input is sorted by open time",
			periods: []models.OpeningPeriod{
				{Open: 1800, Close: 2200},
				{Open: 1200, Close: 1400},
			},
			bounds: Bounds{StartHour: 12, EndHour: 22},
			want:   []ClosedSegment{{LeftMinutes: 120, WidthMinutes: 240}},
		},
		{
			name: "period fills bounds exactly",
			periods: []models.OpeningPeriod{
				{Open: 1800, Close: 2200},
			},
			bounds: Bounds{StartHour: 18, EndHour: 22},
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClosedSegments(tt.periods, tt.bounds)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d segments, want %d: %+v", len(got), len(tt.want), got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("segment %d: got %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

// Segments plus periods must tile the bounds exactly for well-formed input.
func TestClosedSegmentsPartition(t *testing.T) {
	periods := []models.OpeningPeriod{
		{Open: 1230, Close: 1500},
		{Open: 1730, Close: 2130},
	}
	b := Bounds{StartHour: 12, EndHour: 22}

	covered := make([]bool, b.TotalMinutes())
	base := b.StartHour * 60
	for _, p := range periods {
		open, _ := models.ClockCodeMinutes(p.Open)
		close, _ := models.ClockCodeMinutes(p.Close)
		for m := open - base; m < close-base; m++ {
			covered[m] = true
		}
	}
	for _, s := range ClosedSegments(periods, b) {
		if s.WidthMinutes <= 0 {
			t.Fatalf("non-positive segment width: %+v", s)
		}
		for m := s.LeftMinutes; m < s.LeftMinutes+s.WidthMinutes; m++ {
			if covered[m] {
				t.Fatalf("minute %d covered twice", m)
			}
			covered[m] = true
		}
	}
	for m, ok := range covered {
		if !ok {
			t.Errorf("minute %d not covered by any period or segment", m)
		}
	}
}
