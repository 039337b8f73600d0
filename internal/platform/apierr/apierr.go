package apierr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an operation outcome so callers can match on it without
// inspecting error strings or transport statuses.
type Kind string

const (
	KindNotFound   Kind = "not_found"
	KindValidation Kind = "validation"
	KindConflict   Kind = "conflict"
	KindStorage    Kind = "storage"
)

type Error struct {
	Kind Kind
	Code string
	Err  error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Code != "" {
		return e.Code
	}
	return fmt.Sprintf("api error (%s)", e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, code string, err error) *Error {
	return &Error{Kind: kind, Code: code, Err: err}
}

func NotFound(code string, err error) *Error {
	return New(KindNotFound, code, err)
}

func Validation(code string, err error) *Error {
	return New(KindValidation, code, err)
}

func Conflict(code string, err error) *Error {
	return New(KindConflict, code, err)
}

// Storage wraps a persistence failure. The cause stays attached for logs but
// the client-facing message is the code alone.
func Storage(code string, err error) *Error {
	return New(KindStorage, code, err)
}

// KindOf extracts the Kind from err, defaulting to KindStorage for anything
// that is not an *Error.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindStorage
}

// CodeOf extracts the machine-readable code from err.
func CodeOf(err error) string {
	var ae *Error
	if errors.As(err, &ae) && ae.Code != "" {
		return ae.Code
	}
	return "internal_error"
}

// StatusOf maps an error kind to its HTTP status.
func StatusOf(err error) int {
	switch KindOf(err) {
	case KindNotFound:
		return http.StatusNotFound
	case KindValidation:
		return http.StatusBadRequest
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Public returns the error safe to surface to clients. Storage causes are
// withheld so persistence details do not leak.
func Public(err error) error {
	var ae *Error
	if errors.As(err, &ae) && ae.Kind == KindStorage {
		return errors.New(ae.Code)
	}
	return err
}
