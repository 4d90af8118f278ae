package gameapi

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind is the coarse failure classification every mutating screen keys
// its user-facing message on. Transport failures are deliberately distinct
// from upstream 5xx responses.
type ErrorKind string

const (
	KindBadRequest   ErrorKind = "bad_request"
	KindUnauthorized ErrorKind = "unauthorized"
	KindForbidden    ErrorKind = "forbidden"
	KindNotFound     ErrorKind = "not_found"
	KindConflict     ErrorKind = "conflict"
	KindServer       ErrorKind = "server"
	KindUnreachable  ErrorKind = "unreachable"
)

// APIError is a classified failure from the game API. Status is zero when no
// response was received at all.
type APIError struct {
	Status  int
	Kind    ErrorKind
	Message string
	cause   error
}

func (e *APIError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("game api unreachable: %v", e.cause)
	}
	return fmt.Sprintf("game api returned %d: %s", e.Status, e.Message)
}

func (e *APIError) Unwrap() error { return e.cause }

func classify(status int) ErrorKind {
	switch {
	case status == http.StatusUnauthorized:
		return KindUnauthorized
	case status == http.StatusForbidden:
		return KindForbidden
	case status == http.StatusNotFound:
		return KindNotFound
	case status == http.StatusConflict:
		return KindConflict
	case status >= 500:
		return KindServer
	default:
		return KindBadRequest
	}
}

// KindOf extracts the classification from err, or KindServer when err did not
// originate from the game API client.
func KindOf(err error) ErrorKind {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return KindServer
}

func IsNotFound(err error) bool     { return KindOf(err) == KindNotFound }
func IsConflict(err error) bool     { return KindOf(err) == KindConflict }
func IsUnauthorized(err error) bool { return KindOf(err) == KindUnauthorized }
