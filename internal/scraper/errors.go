package scraper

import (
	"fmt"

	"github.com/pkg/errors"
)

// MessageKey is the localizable message id carried by scraper errors
type MessageKey int

const (
	MsgTimeout     MessageKey = 32000
	MsgUnreachable MessageKey = 32001
	MsgNotFound    MessageKey = 32003
)

// Error is a failure surfaced to the user. Code selects the message shown,
// Err keeps the underlying cause.
type Error struct {
	Code MessageKey
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any scraper error with the same code
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

var (
	ErrTimeout     = &Error{Code: MsgTimeout, Msg: "timed out"}
	ErrUnreachable = &Error{Code: MsgUnreachable, Msg: "site unreachable"}
	ErrNotFound    = &Error{Code: MsgNotFound, Msg: "not found"}
)

func timeoutError(cause error, format string, args ...interface{}) error {
	return errors.WithStack(&Error{Code: MsgTimeout, Msg: fmt.Sprintf(format, args...), Err: cause})
}

func unreachableError(cause error, format string, args ...interface{}) error {
	return errors.WithStack(&Error{Code: MsgUnreachable, Msg: fmt.Sprintf(format, args...), Err: cause})
}

func notFoundError(format string, args ...interface{}) error {
	return errors.WithStack(&Error{Code: MsgNotFound, Msg: fmt.Sprintf(format, args...)})
}

// MessageKeyOf returns the message id of the first scraper error in err's chain
func MessageKeyOf(err error) (MessageKey, bool) {
	var se *Error
	if errors.As(err, &se) {
		return se.Code, true
	}
	return 0, false
}
