// Package logging provides concrete implementations of the cyberscape.Logger interface.
//
// Available implementations:
//   - ConsoleLogger: Writes prefixed messages to stderr with thread-safe output
//   - JSONLogger: Writes zerolog JSON events, used for the session log file
//   - MultiLogger: Fans messages out to several loggers
//   - NullLogger: Discards all messages (useful for testing)
package logging
