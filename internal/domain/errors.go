package domain

import "errors"

// Kind classifies a failure for the HTTP boundary. Services raise *Error
// values; only the api package translates kinds into status codes.
type Kind int

const (
	KindValidation   Kind = iota + 1 // malformed or missing input
	KindUnauthorized                 // missing credential
	KindForbidden                    // invalid credential, or authenticated but not entitled
	KindNotFound
	KindConflict // uniqueness violation
	KindStore    // unexpected persistence failure
)

type Error struct {
	Kind    Kind
	Message string
	cause   error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.cause }

func Validation(msg string) *Error   { return &Error{Kind: KindValidation, Message: msg} }
func Unauthorized(msg string) *Error { return &Error{Kind: KindUnauthorized, Message: msg} }
func Forbidden(msg string) *Error    { return &Error{Kind: KindForbidden, Message: msg} }
func NotFound(msg string) *Error     { return &Error{Kind: KindNotFound, Message: msg} }
func Conflict(msg string) *Error     { return &Error{Kind: KindConflict, Message: msg} }

// StoreError wraps an unexpected store failure. The cause is kept for logs;
// the message shown to callers stays generic.
func StoreError(cause error) *Error {
	return &Error{Kind: KindStore, Message: "internal storage error", cause: cause}
}

// KindOf extracts the Kind from err, or KindStore for untyped failures so
// unexpected errors always degrade to a 500-class response.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindStore
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, k Kind) bool { return KindOf(err) == k }
