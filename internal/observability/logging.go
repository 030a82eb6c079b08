package observability

import (
	"context"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/rs/zerolog/pkgerrors"

	"github.com/opiegroup/boscotek2026-sub003/pkg/utils"
)

type LogLevel string

const (
	LogLevelTrace LogLevel = "trace"
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
	LogLevelFatal LogLevel = "fatal"
	LogLevelPanic LogLevel = "panic"
)

type LogFormat string

const (
	LogFormatJSON    LogFormat = "json"
	LogFormatConsole LogFormat = "console"
)

type LoggingConfig struct {
	Level      LogLevel  `yaml:"level" mapstructure:"level"`
	Format     LogFormat `yaml:"format" mapstructure:"format"`
	Output     string    `yaml:"output" mapstructure:"output"`
	TimeFormat string    `yaml:"time_format" mapstructure:"time_format"`
}

type Logger struct {
	logger zerolog.Logger
	config LoggingConfig
}

func NewLogger(config LoggingConfig) (*Logger, error) {

	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack

	level, err := parseLogLevel(config.Level)
	if err != nil {
		return nil, err
	}
	zerolog.SetGlobalLevel(level)

	var output io.Writer
	switch config.Output {
	case "stdout", "":
		output = os.Stdout
	case "stderr":
		output = os.Stderr
	default:

		file, err := os.OpenFile(config.Output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return nil, err
		}
		output = file
	}

	var logger zerolog.Logger
	switch config.Format {
	case LogFormatConsole:
		output = zerolog.ConsoleWriter{
			Out:        output,
			TimeFormat: getTimeFormat(config.TimeFormat),
		}
		logger = zerolog.New(output)
	case LogFormatJSON:
		logger = zerolog.New(output)
	default:
		logger = zerolog.New(output)
	}

	logger = logger.With().
		Timestamp().
		Caller().
		Str("service", "boscotek-configurator").
		Logger()

	return &Logger{
		logger: logger,
		config: config,
	}, nil
}

func (l *Logger) WithContext(ctx context.Context) *zerolog.Logger {
	logger := l.logger.With()

	if traceInfo := ExtractTraceInfo(ctx); traceInfo != nil {
		for key, value := range traceInfo {
			logger = logger.Interface(key, value)
		}
	}

	contextLogger := logger.Logger()
	return &contextLogger
}

func (l *Logger) WithFamily(family string) *zerolog.Logger {
	logger := l.logger.With().
		Str("product_family", family).
		Logger()
	return &logger
}

func (l *Logger) WithExport(exportID, referenceCode string) *zerolog.Logger {
	logger := l.logger.With().
		Str("export_id", exportID).
		Str("reference_code", referenceCode).
		Logger()
	return &logger
}

func (l *Logger) WithOperation(operation string) *zerolog.Logger {
	logger := l.logger.With().
		Str("operation", operation).
		Logger()
	return &logger
}

func (l *Logger) WithDuration(duration time.Duration) *zerolog.Logger {
	logger := l.logger.With().
		Dur("duration", duration).
		Logger()
	return &logger
}

func (l *Logger) WithError(err error) *zerolog.Logger {
	logger := l.logger.With().
		Stack().
		Err(err).
		Logger()
	return &logger
}

func (l *Logger) Debug(msg string) {
	l.logger.Debug().Msg(msg)
}

func (l *Logger) Info(msg string) {
	l.logger.Info().Msg(msg)
}

func (l *Logger) Warn(msg string) {
	l.logger.Warn().Msg(msg)
}

func (l *Logger) Error(msg string) {
	l.logger.Error().Msg(msg)
}

func (l *Logger) Fatal(msg string) {
	l.logger.Fatal().Msg(msg)
}

func (l *Logger) GetZerologLogger() zerolog.Logger {
	return l.logger
}

func (l *Logger) LogAppError(ctx context.Context, err *utils.AppError) {
	logEvent := l.WithContext(ctx).Error().
		Str("error_code", err.Code)

	if err.Details != nil {
		logEvent = logEvent.Interface("error_details", err.Details)
	}
	if err.Err != nil {
		logEvent = logEvent.AnErr("cause", err.Err)
	}

	logEvent.Msg(err.Message)
}

func parseLogLevel(level LogLevel) (zerolog.Level, error) {
	switch level {
	case LogLevelTrace:
		return zerolog.TraceLevel, nil
	case LogLevelDebug:
		return zerolog.DebugLevel, nil
	case LogLevelInfo:
		return zerolog.InfoLevel, nil
	case LogLevelWarn:
		return zerolog.WarnLevel, nil
	case LogLevelError:
		return zerolog.ErrorLevel, nil
	case LogLevelFatal:
		return zerolog.FatalLevel, nil
	case LogLevelPanic:
		return zerolog.PanicLevel, nil
	default:
		return zerolog.InfoLevel, nil
	}
}

func getTimeFormat(format string) string {
	if format == "" {
		return time.RFC3339
	}
	return format
}

func (l *Logger) LoggingMiddleware() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			wrapped := &loggingResponseWriter{ResponseWriter: w}

			logger := l.WithContext(r.Context()).
				With().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Str("user_agent", r.UserAgent()).
				Str("remote_addr", r.RemoteAddr).
				Logger()

			logger.Info().Msg("HTTP request started")

			next.ServeHTTP(wrapped, r)

			duration := time.Since(start)
			logEvent := logger.Info().
				Int("status_code", wrapped.statusCode).
				Int64("response_size", wrapped.size).
				Dur("duration", duration)

			if wrapped.statusCode >= 400 {
				logEvent = logger.Warn().
					Int("status_code", wrapped.statusCode).
					Int64("response_size", wrapped.size).
					Dur("duration", duration)
			}

			if wrapped.statusCode >= 500 {
				logEvent = logger.Error().
					Int("status_code", wrapped.statusCode).
					Int64("response_size", wrapped.size).
					Dur("duration", duration)
			}

			logEvent.Msg("HTTP request completed")
		})
	}
}

type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
	size       int64
}

func (lrw *loggingResponseWriter) WriteHeader(statusCode int) {
	lrw.statusCode = statusCode
	lrw.ResponseWriter.WriteHeader(statusCode)
}

func (lrw *loggingResponseWriter) Write(data []byte) (int, error) {
	size, err := lrw.ResponseWriter.Write(data)
	lrw.size += int64(size)
	return size, err
}

func SetGlobalLogger(logger *Logger) {
	log.Logger = logger.logger
}

func GetGlobalLogger() zerolog.Logger {
	return log.Logger
}
