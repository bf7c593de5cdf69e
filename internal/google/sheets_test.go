package google

import (
	"testing"

	"stolik/internal/history"
)

func TestSeriesRows(t *testing.T) {
	series := history.AlignedSeries{
		Current:            []float64{24, 0, 31},
		PreviousAligned:    []float64{19, 22, 0},
		PreviousWeekdayAvg: []float64{20.5, 18, 25},
	}

	rows := seriesRows("2024-07", series)

	if len(rows) != 4 {
		t.Fatalf("expected header plus 3 day rows, got %d", len(rows))
	}
	if rows[0][0] != "Day" {
		t.Errorf("header row missing, got %v", rows[0])
	}
	if rows[1][0] != "2024-07-01" {
		t.Errorf("first day label %v, want 2024-07-01", rows[1][0])
	}
	if rows[3][1] != 31.0 {
		t.Errorf("day 3 current %v, want 31", rows[3][1])
	}
	if rows[2][2] != 22.0 {
		t.Errorf("day 2 aligned %v, want 22", rows[2][2])
	}
}

func TestNewSheetsServiceRequiresConfig(t *testing.T) {
	if _, err := NewSheetsService(t.Context(), "", "sheet-id"); err == nil {
		t.Error("expected error without credentials file")
	}
	if _, err := NewSheetsService(t.Context(), "creds.json", ""); err == nil {
		t.Error("expected error without spreadsheet id")
	}
}
