package vfs

import (
	"errors"
	"fmt"
)

// Sentinel errors wrapped by *OpError.
var (
	ErrNotExist        = errors.New("no such file or directory")
	ErrNotDir          = errors.New("not a directory")
	ErrIsDir           = errors.New("is a directory")
	ErrExist           = errors.New("file exists")
	ErrNotEmpty        = errors.New("directory not empty")
	ErrInvalidName     = errors.New("invalid name")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNotPermitted    = errors.New("operation not permitted")
	ErrMissingOperand  = errors.New("missing operand")
)

// OpError reports a failed mutation. Error returns the message shown to the
// player, e.g. "rm: cannot remove 'x': No such file or directory".
type OpError struct {
	Op  string // command name, e.g. "mv"
	Arg string // argument as the player typed it
	Err error  // one of the sentinel errors above

	msg string
}

func (e *OpError) Error() string { return e.msg }

func (e *OpError) Unwrap() error { return e.Err }

func opError(op, arg string, err error, format string, args ...interface{}) *OpError {
	return &OpError{Op: op, Arg: arg, Err: err, msg: fmt.Sprintf(format, args...)}
}
