// Package logger provides structured logging functionality for TeamsBridge.
// It uses Go's slog package for logging with configurable levels and formats.
package logger

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
)

// NewLogger creates a new slog Logger with the specified level and format.
// If jsonOutput is true, logs will be formatted as JSON, otherwise as text.
func NewLogger(levelStr string, jsonOutput bool) *slog.Logger {
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var handler slog.Handler
	if jsonOutput {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

// statusRecorder captures the response status code for request logging and
// stamps the X-Response-Time header just before headers are flushed.
type statusRecorder struct {
	http.ResponseWriter
	status  int
	start   time.Time
	written bool
}

func (r *statusRecorder) WriteHeader(code int) {
	if r.written {
		return
	}
	r.written = true
	r.status = code
	elapsed := time.Since(r.start)
	r.Header().Set("X-Response-Time", fmt.Sprintf("%.2fms", float64(elapsed.Microseconds())/1000))
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	if !r.written {
		r.WriteHeader(http.StatusOK)
	}
	return r.ResponseWriter.Write(b)
}

// Middleware creates a request logging middleware for the HTTP server.
// It assigns a request ID when the caller did not send one, logs the
// request and its outcome, and echoes the ID and handling duration back
// in the X-Request-ID and X-Response-Time response headers.
//
// The request body is never logged; it may contain user data.
func Middleware(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			startTime := time.Now()

			requestID := r.Header.Get("X-Request-ID")
			if requestID == "" {
				requestID = uuid.NewString()
			}

			logEntry := log.With(
				"request_id", requestID,
				"method", r.Method,
				"path", r.URL.Path,
			)
			logEntry.InfoContext(r.Context(), "Incoming request")

			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK, start: startTime}
			rec.Header().Set("X-Request-ID", requestID)

			next.ServeHTTP(rec, r)

			logEntry.InfoContext(r.Context(), "Request completed",
				"status_code", rec.status,
				"duration_ms", time.Since(startTime).Milliseconds())
		})
	}
}
