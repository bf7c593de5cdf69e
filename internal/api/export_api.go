package api

import (
	"fmt"
	"net/http"

	"stolik/internal/export"
	"stolik/internal/metrics"
)

// handleHistoryExport streams the month comparison as an Excel workbook.
// GET /api/v1/history/export?month=YYYY-MM&service=dinner
func (s *HTTPServer) handleHistoryExport(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("history_export")
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	resp, code, err := s.buildHistory(r)
	if err != nil {
		writeError(w, code, err.Error())
		return
	}

	workbook, err := export.MonthComparisonWorkbook(resp.Month, resp.Series)
	if err != nil {
		s.log.Error().Err(err).Str("month", resp.Month).Msg("build workbook failed")
		writeError(w, http.StatusInternalServerError, "failed to build workbook")
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="comparison_%s.xlsx"`, resp.Month))
	if _, err := workbook.WriteTo(w); err != nil {
		s.log.Error().Err(err).Msg("write workbook failed")
	}
}

// handleTimelineExport streams a day's packed layout as an Excel workbook.
// GET /api/v1/timeline/export?date=YYYY-MM-DD
func (s *HTTPServer) handleTimelineExport(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("timeline_export")
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	date, err := parseDateParam(r, "date")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx := r.Context()
	bookings, err := s.db.GetBookingsForDate(ctx, date)
	if err != nil {
		s.log.Error().Err(err).Msg("load bookings failed")
		writeError(w, http.StatusInternalServerError, "failed to load bookings")
		return
	}
	allPeriods, err := s.db.GetAllOpeningPeriods(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("load all periods failed")
		writeError(w, http.StatusInternalServerError, "failed to load opening periods")
		return
	}

	bounds := s.layout.ResolveBounds(allPeriods, bookings)
	placed, _ := s.layout.PackBookings(bookings, bounds)

	day := date.Format("2006-01-02")
	workbook, err := export.TimelineWorkbook(day, bounds, placed)
	if err != nil {
		s.log.Error().Err(err).Str("date", day).Msg("build workbook failed")
		writeError(w, http.StatusInternalServerError, "failed to build workbook")
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="timeline_%s.xlsx"`, day))
	if _, err := workbook.WriteTo(w); err != nil {
		s.log.Error().Err(err).Msg("write workbook failed")
	}
}

// handleHistoryPublish pushes the month comparison to the configured
// Google Sheets spreadsheet.
// POST /api/v1/history/publish?month=YYYY-MM&service=dinner
func (s *HTTPServer) handleHistoryPublish(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("history_publish")
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed; use POST")
		return
	}
	if s.sheets == nil {
		writeError(w, http.StatusConflict, "sheets integration is not configured")
		return
	}

	resp, code, err := s.buildHistory(r)
	if err != nil {
		writeError(w, code, err.Error())
		return
	}

	if err := s.sheets.PublishMonth(r.Context(), resp.Month, resp.Series); err != nil {
		s.log.Error().Err(err).Str("month", resp.Month).Msg("sheets publish failed")
		writeError(w, http.StatusBadGateway, "failed to publish to sheets")
		return
	}

	s.log.Info().Str("month", resp.Month).Msg("history published to sheets")
	writeJSON(w, http.StatusOK, map[string]any{"published": true, "month": resp.Month})
}
