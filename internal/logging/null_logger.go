package logging

// NullLogger discards everything. It is the default for vfs, shell and
// mount when no logger is configured, and what tests pass when output
// does not matter.
type NullLogger struct{}

func NewNullLogger() *NullLogger {
	return &NullLogger{}
}

func (l *NullLogger) Verbose(format string, args ...interface{}) {}

func (l *NullLogger) Info(format string, args ...interface{}) {}

func (l *NullLogger) Error(format string, args ...interface{}) {}
