package api

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a remote failure. The CLI pattern-matches on kinds;
// HTTP status translation happens here and nowhere else.
type Kind int

const (
	KindAPI Kind = iota // generic server-side failure
	KindAuthRequired
	KindAuthFailed
	KindRateLimited
	KindNotFound
	KindTimeout
	KindValidation
)

func (k Kind) String() string {
	switch k {
	case KindAuthRequired:
		return "auth_required"
	case KindAuthFailed:
		return "auth_failed"
	case KindRateLimited:
		return "rate_limited"
	case KindNotFound:
		return "not_found"
	case KindTimeout:
		return "timeout"
	case KindValidation:
		return "validation"
	default:
		return "api_error"
	}
}

// Error is the typed failure returned by every client operation.
type Error struct {
	Kind       Kind
	Message    string
	StatusCode int
}

func (e *Error) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s (status %d)", e.Message, e.StatusCode)
	}
	return e.Message
}

// AsError unwraps err into an *Error if it is one.
func AsError(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	apiErr, ok := AsError(err)
	return ok && apiErr.Kind == kind
}

// translateStatus maps an HTTP status and server message to a typed error.
func translateStatus(status int, message string) *Error {
	kind := KindAPI
	switch {
	case status == http.StatusUnauthorized:
		kind = KindAuthFailed
		if message == "" {
			message = "authentication failed: check your API credentials"
		}
	case status == http.StatusForbidden:
		kind = KindAuthFailed
		if message == "" {
			message = "access denied for this account"
		}
	case status == http.StatusNotFound:
		kind = KindNotFound
		if message == "" {
			message = "resource not found"
		}
	case status == http.StatusTooManyRequests:
		kind = KindRateLimited
		if message == "" {
			message = "rate limit exceeded, try again shortly"
		}
	case status == http.StatusUnprocessableEntity || status == http.StatusBadRequest:
		kind = KindValidation
		if message == "" {
			message = "the API rejected the request payload"
		}
	case status == http.StatusRequestTimeout || status == http.StatusGatewayTimeout:
		kind = KindTimeout
		if message == "" {
			message = "the API timed out"
		}
	default:
		if message == "" {
			message = "unexpected API error"
		}
	}
	return &Error{Kind: kind, Message: message, StatusCode: status}
}
