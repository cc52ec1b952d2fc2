package apperr

import "errors"

// Error kinds. Match with errors.Is; the wrapping Error carries the
// caller-facing message.
var (
	ErrNotFound     = errors.New("not_found")
	ErrValidation   = errors.New("validation_error")
	ErrForbidden    = errors.New("forbidden")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
	ErrUnexpected   = errors.New("unexpected")
)

type Error struct {
	kind error
	msg  string
}

func (e *Error) Error() string { return e.msg }
func (e *Error) Unwrap() error { return e.kind }

func New(kind error, msg string) error { return &Error{kind: kind, msg: msg} }

func NotFound(msg string) error     { return New(ErrNotFound, msg) }
func Validation(msg string) error   { return New(ErrValidation, msg) }
func Forbidden(msg string) error    { return New(ErrForbidden, msg) }
func Conflict(msg string) error     { return New(ErrConflict, msg) }
func Unauthorized(msg string) error { return New(ErrUnauthorized, msg) }

// Kind returns the taxonomy kind of err, ErrUnexpected for anything that
// was not raised through this package.
func Kind(err error) error {
	for _, k := range []error{ErrNotFound, ErrValidation, ErrForbidden, ErrConflict, ErrUnauthorized} {
		if errors.Is(err, k) {
			return k
		}
	}
	return ErrUnexpected
}
