package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"stolik/internal/cache"
	"stolik/internal/database"
	"stolik/internal/google"
	"stolik/internal/timeline"
)

// HTTPServer serves the dashboard API.
type HTTPServer struct {
	db      *database.DB
	cache   *cache.Cache
	layout  timeline.Layout
	sheets  *google.SheetsService // nil when the integration is disabled
	log     *zerolog.Logger
	limiter *rate.Limiter
	metrics bool
}

// Options configures optional server collaborators.
type Options struct {
	Cache             *cache.Cache
	Sheets            *google.SheetsService
	RateLimitRPS      int
	RateLimitBurst    int
	PrometheusEnabled bool
}

// NewHTTPServer wires the API around the storage and the layout engine.
func NewHTTPServer(db *database.DB, layout timeline.Layout, log *zerolog.Logger, opts Options) *HTTPServer {
	rps := opts.RateLimitRPS
	if rps <= 0 {
		rps = 50
	}
	burst := opts.RateLimitBurst
	if burst <= 0 {
		burst = rps * 2
	}
	c := opts.Cache
	if c == nil {
		c = cache.New(nil, 0)
	}
	return &HTTPServer{
		db:      db,
		cache:   c,
		layout:  layout,
		sheets:  opts.Sheets,
		log:     log,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
		metrics: opts.PrometheusEnabled,
	}
}

// Handler builds the routed handler with middleware applied.
func (s *HTTPServer) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/timeline", s.handleTimeline)
	mux.HandleFunc("/api/v1/timeline/export", s.handleTimelineExport)
	mux.HandleFunc("/api/v1/history", s.handleHistory)
	mux.HandleFunc("/api/v1/history/export", s.handleHistoryExport)
	mux.HandleFunc("/api/v1/history/publish", s.handleHistoryPublish)
	mux.HandleFunc("/api/v1/bookings", s.handleBookings)
	mux.HandleFunc("/health", s.handleHealth)
	if s.metrics {
		mux.Handle("/metrics", promhttp.Handler())
	}
	return s.withRequestLog(s.withRateLimit(mux))
}

// withRateLimit rejects requests over the global budget with 429.
func (s *HTTPServer) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.limiter.Allow() {
			writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// withRequestLog tags each request with an id and logs its outcome.
func (s *HTTPServer) withRequestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.NewString()
		w.Header().Set("X-Request-ID", requestID)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r)

		s.log.Info().
			Str("request_id", requestID).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rec.status).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// handleHealth reports storage reachability.
// GET /health
func (s *HTTPServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	status := map[string]string{"status": "ok"}
	code := http.StatusOK
	if err := s.db.PingContext(ctx); err != nil {
		status["status"] = "degraded"
		status["database"] = err.Error()
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, status)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}
