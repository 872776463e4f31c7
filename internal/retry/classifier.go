package retry

import (
	"errors"
	"strings"
	"syscall"
)

// ErrnoClassifier treats the given errnos as transient. It also matches
// their text inside plain error strings, because helpers such as fusermount
// report failures as exit status plus message rather than as an errno.
type ErrnoClassifier struct {
	errnos []syscall.Errno
}

func NewErrnoClassifier(errnos ...syscall.Errno) *ErrnoClassifier {
	return &ErrnoClassifier{errnos: errnos}
}

func (c *ErrnoClassifier) IsTransient(err error) bool {
	if err == nil {
		return false
	}

	msg := strings.ToLower(err.Error())
	for _, errno := range c.errnos {
		if errors.Is(err, errno) {
			return true
		}
		if strings.Contains(msg, strings.ToLower(errno.Error())) {
			return true
		}
	}
	return false
}
