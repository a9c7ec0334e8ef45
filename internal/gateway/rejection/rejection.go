// Package rejection turns failed requests into JSON error responses.
//
// Every failure surfaced while handling a request is carried as a Rejection:
// a closed set of reasons (not found, method not allowed, a known
// domain.ErrorKind, or an unknown cause). Classify maps a Rejection to a
// status code and client-facing message; Handler writes the response.
package rejection

import (
	"errors"
	"fmt"

	"authgate/internal/domain"
)

// Reason identifies which branch of the rejection sum type is populated.
type Reason int

const (
	ReasonUnknown Reason = iota
	ReasonNotFound
	ReasonMethodNotAllowed
	ReasonKnown
)

func (r Reason) String() string {
	switch r {
	case ReasonNotFound:
		return "not_found"
	case ReasonMethodNotAllowed:
		return "method_not_allowed"
	case ReasonKnown:
		return "known"
	default:
		return "unknown"
	}
}

// Rejection is the carrier for a failed request. The zero value is an
// unknown rejection with no cause.
type Rejection struct {
	reason Reason
	kind   domain.ErrorKind
	cause  error
}

// NotFound reports that no route matched the request path.
func NotFound() Rejection {
	return Rejection{reason: ReasonNotFound}
}

// MethodNotAllowed reports that the path matched but the method did not.
func MethodNotAllowed() Rejection {
	return Rejection{reason: ReasonMethodNotAllowed}
}

// Known wraps an authentication or authorization failure. An invalid kind
// is treated as unknown.
func Known(kind domain.ErrorKind) Rejection {
	if !kind.Valid() {
		return Unknown(fmt.Errorf("invalid error kind %d", int(kind)))
	}
	return Rejection{reason: ReasonKnown, kind: kind}
}

// Unknown wraps a failure with no dedicated response. The cause is only
// ever written to the diagnostic log.
func Unknown(cause error) Rejection {
	return Rejection{reason: ReasonUnknown, cause: cause}
}

// FromError builds a Rejection from an error returned by a handler.
// Conditions anywhere in the chain resolve in Classify order: not found,
// then an error kind, then method not allowed. Anything else is unknown.
func FromError(err error) Rejection {
	if errors.Is(err, domain.ErrNotFound) {
		return NotFound()
	}

	if rej, ok := err.(Rejection); ok && rej.reason == ReasonKnown {
		return rej
	}
	var kind domain.ErrorKind
	if errors.As(err, &kind) && kind.Valid() {
		rej := Known(kind)
		if err != error(kind) {
			rej.cause = err
		}
		return rej
	}

	if errors.Is(err, domain.ErrMethodNotAllowed) {
		return MethodNotAllowed()
	}

	if rej, ok := err.(Rejection); ok {
		return rej
	}
	return Unknown(err)
}

// Reason returns the populated branch.
func (r Rejection) Reason() Reason { return r.reason }

// Kind returns the wrapped error kind. ok is false unless Reason is ReasonKnown.
func (r Rejection) Kind() (kind domain.ErrorKind, ok bool) {
	return r.kind, r.reason == ReasonKnown
}

// Cause returns the underlying error, if any.
func (r Rejection) Cause() error { return r.cause }

// Label is a low-cardinality identifier for logs and metrics.
func (r Rejection) Label() string {
	if r.reason == ReasonKnown {
		return r.kind.Name()
	}
	return r.reason.String()
}

func (r Rejection) Error() string {
	switch r.reason {
	case ReasonNotFound:
		return domain.ErrNotFound.Error()
	case ReasonMethodNotAllowed:
		return domain.ErrMethodNotAllowed.Error()
	case ReasonKnown:
		return r.kind.Error()
	}
	if r.cause == nil {
		return "unhandled rejection"
	}
	return "unhandled rejection: " + r.cause.Error()
}

func (r Rejection) Unwrap() error { return r.cause }

// Is matches the routing sentinel or error kind this rejection stands for.
func (r Rejection) Is(target error) bool {
	switch r.reason {
	case ReasonNotFound:
		return target == domain.ErrNotFound
	case ReasonMethodNotAllowed:
		return target == domain.ErrMethodNotAllowed
	case ReasonKnown:
		kind, ok := target.(domain.ErrorKind)
		return ok && kind == r.kind
	}
	return false
}

// As fills a *domain.ErrorKind target from a known rejection.
func (r Rejection) As(target any) bool {
	kind, ok := target.(*domain.ErrorKind)
	if !ok || r.reason != ReasonKnown {
		return false
	}
	*kind = r.kind
	return true
}
