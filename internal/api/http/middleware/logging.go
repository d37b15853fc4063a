package middleware

import (
	"net/http"
	"time"

	"github.com/horadelbocadillo/yotetraduzco-clean/internal/logger"
)

// Logging logs every HTTP request and its result.
type Logging struct {
	logger *logger.Logger
}

// NewLogging creates a new Logging middleware.
func NewLogging(logger *logger.Logger) *Logging {
	return &Logging{logger: logger}
}

// statusRecorder captures the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// Handle logs method, path, duration and status for each request.
func (l *Logging) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(recorder, r)

		l.logger.Info("http request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"duration_ms", time.Since(start).Milliseconds(),
			"status", recorder.status)

		if recorder.status >= http.StatusInternalServerError {
			l.logger.Error("http request failed",
				"method", r.Method,
				"path", r.URL.Path,
				"status", recorder.status)
		}
	})
}
