package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger returns a logging middleware
func Logger() func(next http.Handler) http.Handler {
	return middleware.RequestLogger(&StructuredLogger{})
}

// StructuredLogger implements the middleware.LogFormatter interface
type StructuredLogger struct{}

// NewLogEntry creates a new log entry for each request
func (l *StructuredLogger) NewLogEntry(r *http.Request) middleware.LogEntry {
	entry := &StructuredLoggerEntry{
		logger: log.With().
			Str("method", r.Method).
			Str("uri", r.RequestURI).
			Str("remote_addr", r.RemoteAddr).
			Str("user_agent", r.UserAgent()).
			Logger(),
	}

	entry.logger.Info().Msg("Request started")

	return entry
}

// StructuredLoggerEntry implements the middleware.LogEntry interface
type StructuredLoggerEntry struct {
	logger zerolog.Logger
}

// Write logs the response details
func (l *StructuredLoggerEntry) Write(status, bytes int, header http.Header, elapsed time.Duration, extra interface{}) {
	l.logger.Info().
		Int("status", status).
		Int("bytes", bytes).
		Dur("elapsed", elapsed).
		Msg("Request completed")
}

// Panic logs panic details
func (l *StructuredLoggerEntry) Panic(v interface{}, stack []byte) {
	l.logger.Error().
		Interface("panic", v).
		Bytes("stack", stack).
		Msg("Request panicked")
}
