// Package apierror provides standardized error response structures for the API.
// All errors returned to clients go through this package to ensure consistency
// and to prevent leaking internal details (stack traces, DB errors, etc.).
package apierror

import (
	"errors"
	"net/http"
)

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// ValidationError wraps multiple field errors.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Error de validacion", Fields: fields}
}

// Kind classifies service-layer errors so handlers can map them to an HTTP
// status without inspecting message strings.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation      // missing/invalid foreign key, duplicate composite key
	KindNotFound        // entity absent
)

// Error is the typed error services return. Detail is a short human message
// safe to send to clients; the underlying cause stays in server logs.
type Error struct {
	Kind   Kind
	Detail string
}

func (e *Error) Error() string { return e.Detail }

func Validation(detail string) *Error { return &Error{Kind: KindValidation, Detail: detail} }
func NotFound(detail string) *Error   { return &Error{Kind: KindNotFound, Detail: detail} }
func Internal(detail string) *Error   { return &Error{Kind: KindInternal, Detail: detail} }

// StatusOf maps an error to its HTTP status code. Untyped errors are 500.
func StatusOf(err error) int {
	var e *Error
	if !errors.As(err, &e) {
		return http.StatusInternalServerError
	}
	switch e.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// IsNotFound reports whether err is a KindNotFound error.
func IsNotFound(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindNotFound
}

// IsValidation reports whether err is a KindValidation error.
func IsValidation(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindValidation
}
