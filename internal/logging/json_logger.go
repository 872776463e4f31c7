package logging

import (
	"io"

	"github.com/rs/zerolog"
)

// JSONLogger writes one JSON event per line through zerolog. It is used for
// the --log-file session log, so every event carries a component and,
// once WithSession is applied, the session ID.
type JSONLogger struct {
	logger zerolog.Logger
}

// NewJSONLogger creates a JSONLogger writing to out. Verbose events are
// recorded at debug level and dropped unless verbose is true.
func NewJSONLogger(out io.Writer, component string, verbose bool) *JSONLogger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Str("component", component).
		Logger()
	return &JSONLogger{logger: logger}
}

// WithSession returns a logger that tags every event with the session ID.
func (l *JSONLogger) WithSession(id string) *JSONLogger {
	return &JSONLogger{logger: l.logger.With().Str("session", id).Logger()}
}

// Verbose logs at debug level.
func (l *JSONLogger) Verbose(format string, args ...interface{}) {
	l.logger.Debug().Msgf(format, args...)
}

// Info logs at info level.
func (l *JSONLogger) Info(format string, args ...interface{}) {
	l.logger.Info().Msgf(format, args...)
}

// Error logs at error level.
func (l *JSONLogger) Error(format string, args ...interface{}) {
	l.logger.Error().Msgf(format, args...)
}
