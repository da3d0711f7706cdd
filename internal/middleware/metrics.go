package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"osas/clubport/internal/auth"
	"osas/clubport/internal/logging"
	"osas/clubport/internal/metrics"
	"osas/clubport/internal/session"
)

// MetricsMiddleware records HTTP metrics and an access log line for each
// request.
func MetricsMiddleware(metricsReg *metrics.MetricsRegistry) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			routePattern := chi.RouteContext(r.Context()).RoutePattern()
			if routePattern == "" {
				routePattern = "unknown"
			}

			metricsReg.HTTPRequestsInFlight.WithLabelValues(routePattern).Inc()
			defer metricsReg.HTTPRequestsInFlight.WithLabelValues(routePattern).Dec()

			start := time.Now()
			wrapped := &statusRecorder{ResponseWriter: w, statusCode: 200}
			next.ServeHTTP(wrapped, r)
			duration := time.Since(start).Seconds()

			statusCode := strconv.Itoa(wrapped.statusCode)
			metricsReg.HTTPRequestsTotal.WithLabelValues(routePattern, r.Method, statusCode).Inc()
			metricsReg.HTTPRequestDuration.WithLabelValues(routePattern, r.Method).Observe(duration)

			var userID int64
			if sess := auth.GetSession(r.Context()); sess != nil {
				userID = sess.UserID()
			}
			logging.Info("HTTP request completed",
				"request_id", auth.RequestID(r.Context()),
				"method", r.Method,
				"endpoint", routePattern,
				"status_code", wrapped.statusCode,
				"duration_ms", int(duration*1000),
				"user_id", userID,
			)
		})
	}
}

// RequestIDMiddleware assigns every request an id, honoring one supplied by
// the caller.
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}

		ctx := auth.SetRequestID(r.Context(), requestID)
		w.Header().Add("X-Request-ID", requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SessionMiddleware resolves the browser session from its cookie and stores
// it in the request context. Requests without a valid session pass through
// anonymously.
func SessionMiddleware(mgr *session.Manager, cookieName string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(cookieName)
			if err != nil || cookie.Value == "" {
				next.ServeHTTP(w, r)
				return
			}

			sess, err := mgr.Get(r.Context(), cookie.Value)
			if err != nil {
				if err != session.ErrNotFound {
					logging.Warn("session lookup failed", "error", err.Error())
				}
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.SetSession(r.Context(), sess)))
		})
	}
}

// statusRecorder wraps http.ResponseWriter to capture the status code.
type statusRecorder struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func (r *statusRecorder) WriteHeader(code int) {
	if !r.written {
		r.statusCode = code
		r.written = true
		r.ResponseWriter.WriteHeader(code)
	}
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	if !r.written {
		r.statusCode = 200
		r.written = true
	}
	return r.ResponseWriter.Write(b)
}
