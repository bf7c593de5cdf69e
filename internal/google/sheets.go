// Package google publishes the month comparison to a Google Sheets
// spreadsheet, for venues that keep their reporting there.
package google

import (
	"context"
	"fmt"
	"os"

	googleauth "golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"stolik/internal/history"
)

// SheetsService pushes aligned series to a configured spreadsheet.
type SheetsService struct {
	spreadsheetID string
	srv           *sheets.Service
}

// NewSheetsService builds a service from a service-account credentials file.
func NewSheetsService(ctx context.Context, credentialsFile, spreadsheetID string) (*SheetsService, error) {
	if credentialsFile == "" || spreadsheetID == "" {
		return nil, fmt.Errorf("sheets: credentials file and spreadsheet id are required")
	}

	data, err := os.ReadFile(credentialsFile)
	if err != nil {
		return nil, fmt.Errorf("sheets: read credentials: %w", err)
	}
	creds, err := googleauth.CredentialsFromJSON(ctx, data, sheets.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("sheets: parse credentials: %w", err)
	}
	srv, err := sheets.NewService(ctx, option.WithTokenSource(creds.TokenSource))
	if err != nil {
		return nil, fmt.Errorf("sheets: create service: %w", err)
	}

	return &SheetsService{spreadsheetID: spreadsheetID, srv: srv}, nil
}

// PublishMonth writes the comparison series into the spreadsheet, one row
// per day, replacing whatever the target range held before. The target sheet
// (tab) must already exist; it is addressed by the month name.
func (s *SheetsService) PublishMonth(ctx context.Context, month string, series history.AlignedSeries) error {
	target := fmt.Sprintf("%s!A1", month)

	if _, err := s.srv.Spreadsheets.Values.Clear(s.spreadsheetID, target, &sheets.ClearValuesRequest{}).
		Context(ctx).Do(); err != nil {
		return fmt.Errorf("sheets: clear %s: %w", target, err)
	}

	vr := &sheets.ValueRange{Values: seriesRows(month, series)}
	_, err := s.srv.Spreadsheets.Values.Update(s.spreadsheetID, target, vr).
		ValueInputOption("RAW").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("sheets: update %s: %w", target, err)
	}
	return nil
}

// seriesRows lays the three series out as spreadsheet rows with a header.
func seriesRows(month string, series history.AlignedSeries) [][]interface{} {
	rows := make([][]interface{}, 0, len(series.Current)+1)
	rows = append(rows, []interface{}{
		"Day", "Current", "Previous (weekday aligned)", "Previous weekday average",
	})
	for d := range series.Current {
		rows = append(rows, []interface{}{
			fmt.Sprintf("%s-%02d", month, d+1),
			series.Current[d],
			series.PreviousAligned[d],
			series.PreviousWeekdayAvg[d],
		})
	}
	return rows
}
