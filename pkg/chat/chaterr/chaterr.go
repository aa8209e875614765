package chaterr

import "fmt"

// Kind identifies the failure class of a pipeline error. The HTTP layer maps
// kinds to status codes; the pipeline itself only cares about fail-fast order.
type Kind string

const (
	KindMalformedRequest    Kind = "MalformedRequest"
	KindInvalidMessage      Kind = "InvalidMessage"
	KindInvalidSession      Kind = "InvalidSession"
	KindInvalidChannel      Kind = "InvalidChannel"
	KindRateLimited         Kind = "RateLimited"
	KindProviderError       Kind = "ProviderError"
	KindPersistenceError    Kind = "PersistenceError"
	KindMisconfiguredServer Kind = "MisconfiguredServer"
)

// Error is the typed pipeline error. RetryAfter is only set for KindRateLimited.
type Error struct {
	Kind       Kind
	Message    string
	RetryAfter int
	Cause      error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}

func RateLimited(retryAfter int) *Error {
	return &Error{
		Kind:       KindRateLimited,
		Message:    "Rate limit exceeded",
		RetryAfter: retryAfter,
	}
}

// IsKind reports whether err is a pipeline error of the given kind.
func IsKind(err error, kind Kind) bool {
	ce, ok := err.(*Error)
	return ok && ce.Kind == kind
}
