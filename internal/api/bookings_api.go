package api

import (
	"net/http"

	"stolik/internal/metrics"
	"stolik/internal/models"
)

// BookingsResponse lists the raw day bookings behind the chart.
type BookingsResponse struct {
	Date     string           `json:"date"`
	Bookings []models.Booking `json:"bookings"`
	Covers   int              `json:"covers"`
}

// handleBookings returns the day's active bookings.
// GET /api/v1/bookings?date=YYYY-MM-DD
func (s *HTTPServer) handleBookings(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("bookings")
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	date, err := parseDateParam(r, "date")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	bookings, err := s.db.GetBookingsForDate(r.Context(), date)
	if err != nil {
		s.log.Error().Err(err).Msg("load bookings failed")
		writeError(w, http.StatusInternalServerError, "failed to load bookings")
		return
	}

	covers := 0
	for _, b := range bookings {
		covers += b.PartySize
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	writeJSON(w, http.StatusOK, BookingsResponse{
		Date:     date.Format("2006-01-02"),
		Bookings: bookings,
		Covers:   covers,
	})
}
