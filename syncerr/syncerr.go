// Package syncerr classifies the failures that cross component boundaries
// during a sync run. Components wrap and propagate; only main decides what
// to do with the result.
package syncerr

import (
	"errors"
	"fmt"
)

// Kind labels the failure category of an Error.
type Kind int

const (
	// Transport covers network failures and non-2xx HTTP statuses.
	Transport Kind = iota + 1
	// Decode covers unreadable or incomplete payloads (JSON, ZIP, XLS).
	Decode
	// DataShape covers vendor feed values that fail normalization.
	DataShape
)

func (k Kind) String() string {
	switch k {
	case Transport:
		return "transport"
	case Decode:
		return "decode"
	case DataShape:
		return "data-shape"
	default:
		return "unknown"
	}
}

// Error carries the failure kind and the operation that produced it.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Wrap attaches a kind and an operation to err. Returns nil when err is nil.
func Wrap(kind Kind, op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Op: op, Err: err}
}

// Errorf builds a classified error from a format string.
func Errorf(kind Kind, op, format string, args ...any) error {
	return &Error{Kind: kind, Op: op, Err: fmt.Errorf(format, args...)}
}

// KindOf extracts the kind of err, or 0 when err carries none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
