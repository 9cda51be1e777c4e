package api

import (
	"errors"
	"fmt"
)

// Kind classifies a failed request so callers can branch without looking
// at raw status codes.
type Kind int

const (
	// KindNetwork covers transport failures, timeouts and an open
	// circuit breaker. No response reached the client.
	KindNetwork Kind = iota

	// KindUnauthorized is HTTP 401: the session is gone, the user must
	// log in again.
	KindUnauthorized

	// KindForbidden is HTTP 403: surfaced to the user, no logout.
	KindForbidden

	// KindNotFound is HTTP 404.
	KindNotFound

	// KindConflict is HTTP 409 carrying the duplicate-invitation flag.
	KindConflict

	// KindValidation is HTTP 400 and other client errors: the server
	// rejected the payload, message surfaced verbatim.
	KindValidation

	// KindServer is any 5xx.
	KindServer
)

// String returns a short name for logging.
func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindValidation:
		return "validation"
	case KindServer:
		return "server"
	}
	return "unknown"
}

// ConflictDetails is the machine-readable payload a 409 invitation
// conflict carries under data.details.
type ConflictDetails struct {
	CanResend bool   `json:"canResend"`
	Email     string `json:"email"`
	ProjectID int    `json:"projectId"`
}

// Error is the typed failure every API call returns for a non-2xx
// response or a transport problem.
type Error struct {
	Kind    Kind
	Status  int    // 0 for transport failures
	Message string // server-supplied detail where available
	Details *ConflictDetails
}

func (e *Error) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("api: %s (HTTP %d): %s", e.Kind, e.Status, e.Message)
	}
	return fmt.Sprintf("api: %s: %s", e.Kind, e.Message)
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Kind == kind
}

// Conflict extracts resendable conflict details from err, if present.
func Conflict(err error) (ConflictDetails, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Kind == KindConflict && apiErr.Details != nil {
		return *apiErr.Details, true
	}
	return ConflictDetails{}, false
}

// Message returns the user-facing text for err: the server's message
// when one exists, otherwise a generic fallback per kind.
func Message(err error) string {
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		return "Something went wrong"
	}
	if apiErr.Message != "" {
		return apiErr.Message
	}
	switch apiErr.Kind {
	case KindNetwork:
		return "Cannot reach the server"
	case KindUnauthorized:
		return "Session expired. Please login again."
	case KindForbidden:
		return "You do not have permission to perform this action."
	case KindNotFound:
		return "Resource not found."
	default:
		return "Request failed"
	}
}
