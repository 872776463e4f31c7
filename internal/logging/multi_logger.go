package logging

import "github.com/vvka-141/cyberscape/pkg/cyberscape"

// MultiLogger fans every message out to several loggers.
type MultiLogger struct {
	loggers []cyberscape.Logger
}

// NewMultiLogger combines loggers, skipping nil entries.
func NewMultiLogger(loggers ...cyberscape.Logger) *MultiLogger {
	m := &MultiLogger{}
	for _, l := range loggers {
		if l != nil {
			m.loggers = append(m.loggers, l)
		}
	}
	return m
}

func (m *MultiLogger) Verbose(format string, args ...interface{}) {
	for _, l := range m.loggers {
		l.Verbose(format, args...)
	}
}

func (m *MultiLogger) Info(format string, args ...interface{}) {
	for _, l := range m.loggers {
		l.Info(format, args...)
	}
}

func (m *MultiLogger) Error(format string, args ...interface{}) {
	for _, l := range m.loggers {
		l.Error(format, args...)
	}
}

var (
	_ cyberscape.Logger = (*ConsoleLogger)(nil)
	_ cyberscape.Logger = (*NullLogger)(nil)
	_ cyberscape.Logger = (*JSONLogger)(nil)
	_ cyberscape.Logger = (*MultiLogger)(nil)
)
