package api

import (
	"fmt"
	"net/http"
	"time"

	"stolik/internal/cache"
	"stolik/internal/history"
	"stolik/internal/metrics"
	"stolik/internal/models"
)

// HistoryResponse carries the month comparison series and header totals.
type HistoryResponse struct {
	Month         string                `json:"month"`
	Service       string                `json:"service,omitempty"`
	Metric        string                `json:"metric"`
	Days          int                   `json:"days"`
	Series        history.AlignedSeries `json:"series"`
	TotalBookings float64               `json:"total_bookings"`
	TotalCovers   float64               `json:"total_covers"`
}

// handleHistory returns the weekday-aligned month-over-month comparison.
// GET /api/v1/history?month=YYYY-MM&service=dinner&metric=covers
func (s *HTTPServer) handleHistory(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("history")
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	resp, code, err := s.buildHistory(r)
	if err != nil {
		writeError(w, code, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// buildHistory loads two months of aggregates and aligns them. Shared by the
// JSON endpoint, the Excel export and the Sheets publisher.
func (s *HTTPServer) buildHistory(r *http.Request) (*HistoryResponse, int, error) {
	monthStart, err := parseMonthParam(r, "month")
	if err != nil {
		return nil, http.StatusBadRequest, err
	}
	service := r.URL.Query().Get("service")
	metric := r.URL.Query().Get("metric")

	extract := history.Covers
	if metric == "bookings" {
		extract = history.Bookings
	} else {
		metric = "covers"
	}

	prevStart := monthStart.AddDate(0, -1, 0)
	nextStart := monthStart.AddDate(0, 1, 0)

	ctx := r.Context()
	stats, err := s.db.GetDailyStats(ctx, prevStart, nextStart)
	if err != nil {
		s.log.Error().Err(err).Str("month", monthStart.Format("2006-01")).Msg("load stats failed")
		return nil, http.StatusInternalServerError, fmt.Errorf("failed to load daily stats")
	}

	var current, previous []models.DailyStat
	for _, st := range stats {
		if st.Date.Before(monthStart) {
			previous = append(previous, st)
		} else {
			current = append(current, st)
		}
	}
	current = history.FilterService(current, service)
	previous = history.FilterService(previous, service)

	days := nextStart.AddDate(0, 0, -1).Day()

	key := cache.Key("history", monthStart.Format("2006-01"), service, metric, current, previous)
	var resp HistoryResponse
	if s.cache.Read(ctx, key, &resp) {
		return &resp, http.StatusOK, nil
	}

	resp = HistoryResponse{
		Month:         monthStart.Format("2006-01"),
		Service:       service,
		Metric:        metric,
		Days:          days,
		Series:        history.Align(current, previous, extract, monthStart, days),
		TotalBookings: history.Totals(current, history.Bookings),
		TotalCovers:   history.Totals(current, history.Covers),
	}
	s.cache.Write(ctx, key, resp)
	return &resp, http.StatusOK, nil
}

func parseMonthParam(r *http.Request, name string) (time.Time, error) {
	value := r.URL.Query().Get(name)
	if value == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()), nil
	}
	m, err := time.Parse("2006-01", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s format; expected YYYY-MM", name)
	}
	return m, nil
}
