package quiz

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound covers an unknown block id and a missing backing document.
	ErrNotFound = errors.New("not found")
	// ErrMalformedSource means the backing document is not valid JSON.
	ErrMalformedSource = errors.New("malformed source")
	ErrInternal        = errors.New("internal failure")
)

// Error pairs one of the sentinel kinds with a message fit for the client.
type Error struct {
	Kind   error
	Detail string
}

func (e *Error) Error() string { return e.Kind.Error() + ": " + e.Detail }
func (e *Error) Unwrap() error { return e.Kind }

func newError(kind error, format string, args ...any) *Error {
	return &Error{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}

// Detail returns the client message of err, or err's text for foreign errors.
func Detail(err error) string {
	var qe *Error
	if errors.As(err, &qe) {
		return qe.Detail
	}
	return err.Error()
}
