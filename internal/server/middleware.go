package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequestIDHeader carries the request id in both directions.
const RequestIDHeader = "X-Request-ID"

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func (s *statusRecorder) Unwrap() http.ResponseWriter {
	return s.ResponseWriter
}

// withRequestID echoes a valid incoming X-Request-ID or assigns a new one.
func withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		r.Header.Set(RequestIDHeader, id)
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r)
	})
}

// withRequestLogging logs one line per request.
func withRequestLogging(logger *zap.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		logger.Debug("request served",
			zap.String("op", "server.withRequestLogging"),
			zap.String("request_id", r.Header.Get(RequestIDHeader)),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

// route instruments a handler under a fixed route label and, when limited is
// set, applies the rate limiter.
func (h *handler) route(name string, limited bool, fn http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		if limited && h.limiter != nil && !h.limiter.Allow(clientIP(r)) {
			h.respondErrorWithOp(rec, r, http.StatusTooManyRequests, "rate limit exceeded", "server.route")
		} else {
			fn(rec, r)
		}

		h.metrics.requests.WithLabelValues(name, strconv.Itoa(rec.status)).Inc()
		h.metrics.duration.WithLabelValues(name).Observe(time.Since(start).Seconds())
	})
}
