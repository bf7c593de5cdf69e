package api

import (
	"fmt"
	"net/http"
	"time"

	"stolik/internal/cache"
	"stolik/internal/metrics"
	"stolik/internal/timeline"
)

// TimelineResponse is the computed chart geometry for one day.
type TimelineResponse struct {
	Date           string                       `json:"date"`
	Bounds         timeline.Bounds              `json:"bounds"`
	Rows           int                          `json:"rows"`
	Bookings       []timeline.PositionedBooking `json:"bookings"`
	ClosedSegments []timeline.ClosedSegment     `json:"closed_segments"`
}

// handleTimeline returns the packed reservation chart for a day.
// GET /api/v1/timeline?date=YYYY-MM-DD
func (s *HTTPServer) handleTimeline(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("timeline")
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
		s.log.Error().Err(err).Str("date", date.Format("2006-01-02")).Msg("load bookings failed")
		writeError(w, http.StatusInternalServerError, "failed to load bookings")
		return
	}
	dayPeriods, err := s.db.GetOpeningPeriodsForDate(ctx, date)
	if err != nil {
		s.log.Error().Err(err).Msg("load day periods failed")
		writeError(w, http.StatusInternalServerError, "failed to load opening periods")
		return
	}
	allPeriods, err := s.db.GetAllOpeningPeriods(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("load all periods failed")
		writeError(w, http.StatusInternalServerError, "failed to load opening periods")
		return
	}

	bounds := s.layout.ResolveBounds(allPeriods, bookings)

	key := cache.Key("layout", date.Format("2006-01-02"), bounds, s.layout, bookings, dayPeriods)
	var resp TimelineResponse
	if s.cache.Read(ctx, key, &resp) {
		metrics.IncLayout("cache")
		writeJSON(w, http.StatusOK, resp)
		return
	}

	placed, rows := s.layout.PackBookings(bookings, bounds)
	resp = TimelineResponse{
		Date:           date.Format("2006-01-02"),
		Bounds:         bounds,
		Rows:           rows,
		Bookings:       placed,
		ClosedSegments: timeline.ClosedSegments(dayPeriods, bounds),
	}
	metrics.IncLayout("computed")
	metrics.ObserveLayoutRows(rows)

	s.cache.Write(ctx, key, resp)
	writeJSON(w, http.StatusOK, resp)
}

func parseDateParam(r *http.Request, name string) (time.Time, error) {
	value := r.URL.Query().Get(name)
	if value == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()), nil
	}
	d, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s format; expected YYYY-MM-DD", name)
	}
	return d, nil
}
