// Package export renders dashboard data to downloadable Excel workbooks.
package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"stolik/internal/history"
	"stolik/internal/timeline"
)

// ExcelWriter builds a workbook sheet by sheet.
type ExcelWriter struct {
	file         *excelize.File
	currentSheet string
	currentRow   int
}

// NewExcelWriter creates an empty workbook.
func NewExcelWriter() *ExcelWriter {
	return &ExcelWriter{file: excelize.NewFile()}
}

// AddSheet adds a new sheet and makes it current.
func (w *ExcelWriter) AddSheet(name string) error {
	// Truncate sheet name to 31 chars (Excel limit)
	if len(name) > 31 {
		name = name[:31]
	}

	if w.currentSheet == "" {
		// Rename default sheet
		w.file.SetSheetName("Sheet1", name)
	} else {
		if _, err := w.file.NewSheet(name); err != nil {
			return fmt.Errorf("create sheet %s: %w", name, err)
		}
	}

	w.currentSheet = name
	w.currentRow = 1
	return nil
}

// WriteHeader writes bold column headers to the current sheet.
func (w *ExcelWriter) WriteHeader(columns []string) error {
	if w.currentSheet == "" {
		return fmt.Errorf("no active sheet")
	}

	for i, col := range columns {
		cell, err := excelize.CoordinatesToCellName(i+1, w.currentRow)
		if err != nil {
			return err
		}
		if err := w.file.SetCellValue(w.currentSheet, cell, col); err != nil {
			return err
		}
	}

	style, err := w.file.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		startCell, _ := excelize.CoordinatesToCellName(1, w.currentRow)
		endCell, _ := excelize.CoordinatesToCellName(len(columns), w.currentRow)
		_ = w.file.SetCellStyle(w.currentSheet, startCell, endCell, style)
	}

	w.currentRow++
	return nil
}

// WriteRow writes a data row to the current sheet.
func (w *ExcelWriter) WriteRow(row []interface{}) error {
	if w.currentSheet == "" {
		return fmt.Errorf("no active sheet")
	}

	for i, val := range row {
		cell, err := excelize.CoordinatesToCellName(i+1, w.currentRow)
		if err != nil {
			return err
		}
		if err := w.file.SetCellValue(w.currentSheet, cell, val); err != nil {
			return err
		}
	}

	w.currentRow++
	return nil
}

// WriteTo serializes the workbook.
func (w *ExcelWriter) WriteTo(out io.Writer) (int64, error) {
	return w.file.WriteTo(out)
}

// MonthComparisonWorkbook builds a one-sheet workbook with the aligned
// comparison series, one row per day of the month.
func MonthComparisonWorkbook(month string, series history.AlignedSeries) (*ExcelWriter, error) {
	w := NewExcelWriter()
	if err := w.AddSheet(month); err != nil {
		return nil, err
	}
	if err := w.WriteHeader([]string{"Day", "Current", "Previous (weekday aligned)", "Previous weekday average"}); err != nil {
		return nil, err
	}
	for d := range series.Current {
		row := []interface{}{
			d + 1,
			series.Current[d],
			series.PreviousAligned[d],
			series.PreviousWeekdayAvg[d],
		}
		if err := w.WriteRow(row); err != nil {
			return nil, err
		}
	}
	return w, nil
}

// TimelineWorkbook dumps a day's packed layout, one row per booking.
func TimelineWorkbook(date string, bounds timeline.Bounds, placed []timeline.PositionedBooking) (*ExcelWriter, error) {
	w := NewExcelWriter()
	if err := w.AddSheet(date); err != nil {
		return nil, err
	}
	if err := w.WriteHeader([]string{"Booking", "Table", "Party", "Row", "Row span", "Start (min)", "End (min)"}); err != nil {
		return nil, err
	}
	for _, p := range placed {
		row := []interface{}{
			p.Booking.ID,
			p.Booking.Table,
			p.Booking.PartySize,
			p.Row,
			p.RowSpan,
			p.StartMinutes,
			p.EndMinutes,
		}
		if err := w.WriteRow(row); err != nil {
			return nil, err
		}
	}
	return w, nil
}
