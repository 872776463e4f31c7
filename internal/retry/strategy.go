package retry

import "time"

// ErrorClassifier determines whether an error is transient (retryable) or fatal.
type ErrorClassifier interface {
	IsTransient(err error) bool
}

// BackoffStrategy calculates the delay before the next retry attempt.
type BackoffStrategy interface {
	// NextDelay returns the wait before retry number attempt (0 = first retry).
	NextDelay(attempt int) time.Duration

	// MaxAttempts returns the number of retries after the first try
	// (0 = none, negative = unlimited).
	MaxAttempts() int
}
