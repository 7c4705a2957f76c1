package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
)

// ValidationError reports the first offending field of a payload that is
// otherwise well-formed transport-wise. Validation failures are never
// retried; retrying will not fix malformed data.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("invalid field %q: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid field %q", e.Field)
}

// RequestErrorKind classifies an endpoint call failure.
type RequestErrorKind int

const (
	// RequestTimeout means the call exceeded its per-endpoint deadline.
	RequestTimeout RequestErrorKind = iota
	// RequestServerError means the endpoint answered with a 5xx status.
	RequestServerError
	// RequestNetworkError means the transport failed (DNS, reset, ...).
	RequestNetworkError
	// RequestInvalid means the call succeeded but the body failed
	// normalization. Surfaced distinctly so the UI offers "report issue"
	// instead of "retry".
	RequestInvalid
	// RequestSuperseded means a newer call to the same endpoint was issued
	// while this one was in flight; its result has been discarded.
	RequestSuperseded
)

// String returns a stable name for the kind.
func (k RequestErrorKind) String() string {
	switch k {
	case RequestTimeout:
		return "timeout"
	case RequestServerError:
		return "server_error"
	case RequestNetworkError:
		return "network_error"
	case RequestInvalid:
		return "validation"
	case RequestSuperseded:
		return "superseded"
	default:
		return "unknown"
	}
}

// RequestError is the endpoint-layer failure surfaced after retries are
// exhausted. Attempts counts how many tries were made. Field is set only
// for RequestInvalid; Status only when the endpoint answered with a
// non-2xx code.
type RequestError struct {
	Kind     RequestErrorKind
	Attempts int
	Field    string
	Status   int
	Err      error
}

func (e *RequestError) Error() string {
	msg := fmt.Sprintf("request failed (%s, %d attempts)", e.Kind, e.Attempts)
	if e.Field != "" {
		msg += fmt.Sprintf(", field %q", e.Field)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *RequestError) Unwrap() error { return e.Err }

// Transient reports whether retrying the same call could succeed.
// 4xx responses are final: the request itself is malformed.
func (e *RequestError) Transient() bool {
	if e.Status >= 400 && e.Status < 500 {
		return false
	}
	switch e.Kind {
	case RequestTimeout, RequestServerError, RequestNetworkError:
		return true
	default:
		return false
	}
}

// EmptyPoolError reports that meal planning had no usable recipes left
// after filtering. The caller must distinguish this from a valid but
// repetitive plan.
type EmptyPoolError struct {
	PoolSize int
}

func (e *EmptyPoolError) Error() string {
	return fmt.Sprintf("no usable recipes after filtering (pool size %d)", e.PoolSize)
}

// OutOfRangeError reports a cook-session jump outside [0, Len).
type OutOfRangeError struct {
	Index int
	Len   int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("step index %d out of range [0, %d)", e.Index, e.Len)
}
