// Package result models the lifecycle of one asynchronous operation as a
// tri-state value: Pending, Succeeded(value) or Failed(message).
//
// A Result is immutable. Producers publish a new Result for every
// transition (see Holder); consumers branch with Match, which forces every
// variant to be handled.
package result

import "fmt"

type Status int

const (
	// StatusNone is the zero Status. It only appears on a zero Result and
	// means "no operation has been started".
	StatusNone Status = iota
	StatusPending
	StatusSucceeded
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusSucceeded:
		return "succeeded"
	case StatusFailed:
		return "failed"
	default:
		return "none"
	}
}

type Result[T any] struct {
	status  Status
	value   T
	message string
}

func Pending[T any]() Result[T] {
	return Result[T]{status: StatusPending}
}

func Succeeded[T any](v T) Result[T] {
	return Result[T]{status: StatusSucceeded, value: v}
}

func Failed[T any](message string) Result[T] {
	return Result[T]{status: StatusFailed, message: message}
}

func (r Result[T]) Status() Status { return r.status }

func (r Result[T]) IsZero() bool { return r.status == StatusNone }

func (r Result[T]) IsPending() bool { return r.status == StatusPending }

// Value returns the payload and true for a Succeeded result, the zero T and
// false otherwise.
func (r Result[T]) Value() (T, bool) {
	if r.status != StatusSucceeded {
		var zero T
		return zero, false
	}
	return r.value, true
}

// Message returns the error message of a Failed result, "" otherwise.
func (r Result[T]) Message() string {
	if r.status != StatusFailed {
		return ""
	}
	return r.message
}

func (r Result[T]) String() string {
	switch r.status {
	case StatusSucceeded:
		return fmt.Sprintf("succeeded(%v)", r.value)
	case StatusFailed:
		return fmt.Sprintf("failed(%q)", r.message)
	default:
		return r.status.String()
	}
}

// Match calls exactly one of the handlers according to the variant of r and
// returns its value. A zero Result is reported through pending, since no
// outcome is available yet.
func Match[T, R any](r Result[T], pending func() R, succeeded func(T) R, failed func(string) R) R {
	switch r.status {
	case StatusSucceeded:
		return succeeded(r.value)
	case StatusFailed:
		return failed(r.message)
	default:
		return pending()
	}
}

// Map transforms the payload of a Succeeded result and passes the other
// variants through unchanged.
func Map[T, U any](r Result[T], fn func(T) U) Result[U] {
	switch r.status {
	case StatusSucceeded:
		return Succeeded(fn(r.value))
	case StatusFailed:
		return Failed[U](r.message)
	case StatusPending:
		return Pending[U]()
	default:
		return Result[U]{}
	}
}
