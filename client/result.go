package client

import "smartcity-portal/validation"

// ErrorKind classifies a failed call so callers can decide how to present it.
type ErrorKind string

const (
	// KindValidation errors are produced locally and never reach the network.
	KindValidation ErrorKind = "validation"
	// KindRejected means the server declined the request with a 4xx status.
	KindRejected ErrorKind = "rejected"
	// KindServer covers 5xx responses and non-JSON error bodies.
	KindServer ErrorKind = "server"
	// KindTransport covers timeouts, refused connections and unreadable responses.
	KindTransport ErrorKind = "transport"
	// KindUnauthenticated means no usable admin session exists.
	KindUnauthenticated ErrorKind = "unauthenticated"
)

// Error is the normalized failure of a client call. Message is always safe to
// show to the user.
type Error struct {
	Kind    ErrorKind
	Message string
	Status  int
	Fields  []validation.FieldError
}

func (e *Error) Error() string {
	return e.Message
}

// Result is either a value or an *Error, never both.
type Result[T any] struct {
	Value T
	Err   *Error
}

func (r Result[T]) OK() bool {
	return r.Err == nil
}

func Ok[T any](v T) Result[T] {
	return Result[T]{Value: v}
}

func Fail[T any](err *Error) Result[T] {
	return Result[T]{Err: err}
}
