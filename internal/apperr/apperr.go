// Package apperr defines the API error taxonomy. Every error a client can
// observe is an *Error carrying its HTTP status, a stable code, and the
// message written to the {"error": ...} response body.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is an API error with the status and body it is written with.
type Error struct {
	Status  int
	Code    string
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Is matches on code so that errors built with WithCause or WithMessage
// still compare equal to the predefined values.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// WithCause returns a copy of e wrapping cause.
func (e *Error) WithCause(cause error) *Error {
	return &Error{Status: e.Status, Code: e.Code, Message: e.Message, cause: cause}
}

// WithMessage returns a copy of e with a different client-facing message.
func (e *Error) WithMessage(msg string) *Error {
	return &Error{Status: e.Status, Code: e.Code, Message: msg, cause: e.cause}
}

// New creates an *Error. Callers usually derive from the values below.
func New(status int, code, message string) *Error {
	return &Error{Status: status, Code: code, Message: message}
}

// As extracts an *Error from err's chain.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

var (
	UnsupportedMediaType = New(
		http.StatusUnsupportedMediaType,
		"UNSUPPORTED_MEDIA_TYPE",
		"Unsupported Media Type. Content-Type must be application/json",
	)

	InvalidJSON = New(
		http.StatusBadRequest,
		"INVALID_JSON",
		"Request body must be a JSON object",
	)

	MissingFields = New(
		http.StatusBadRequest,
		"MISSING_FIELDS",
		"Missing required fields",
	)

	UnknownFields = New(
		http.StatusBadRequest,
		"UNKNOWN_FIELDS",
		"Request body contains fields that are not allowed",
	)

	InvalidPath = New(
		http.StatusBadRequest,
		"INVALID_PATH",
		"Invalid path parameter",
	)

	BodyTooLarge = New(
		http.StatusRequestEntityTooLarge,
		"BODY_TOO_LARGE",
		"Request body too large",
	)

	// DuplicateUser is a 400 rather than a 409; existing clients rely on it.
	DuplicateUser = New(
		http.StatusBadRequest,
		"DUPLICATE_ID",
		"User with this ID already exists",
	)

	UserNotFound = New(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
	)

	PlaceNotFound = New(
		http.StatusNotFound,
		"PLACE_NOT_FOUND",
		"Place not found",
	)

	RouteNotFound = New(
		http.StatusNotFound,
		"NOT_FOUND",
		"not found",
	)

	MethodNotAllowed = New(
		http.StatusMethodNotAllowed,
		"METHOD_NOT_ALLOWED",
		"method not allowed",
	)

	Internal = New(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
	)
)
