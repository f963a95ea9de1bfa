package errors

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"strings"

	"github.com/feral-file/ff-catalog/internal/domain"
)

// ErrorCode represents a standardized error code
type ErrorCode string

const (
	// Client errors (4xx)
	ErrCodeBadRequest       ErrorCode = "bad_request"
	ErrCodeNotFound         ErrorCode = "not_found"
	ErrCodeValidationFailed ErrorCode = "validation_failed"
	ErrCodeUnauthorized     ErrorCode = "unauthorized"
	ErrCodeForbidden        ErrorCode = "forbidden"

	// Server errors (5xx)
	ErrCodeInternalError   ErrorCode = "internal_error"
	ErrCodeDatabaseError   ErrorCode = "database_error"
	ErrCodeUpstreamError   ErrorCode = "upstream_error"
	ErrCodeUpstreamTimeout ErrorCode = "upstream_timeout"
)

// APIError represents a structured API error that carries error code and details.
// Message is safe to show to callers; the underlying cause is only reachable through Unwrap.
type APIError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`

	cause error
}

func (e *APIError) Error() string {
	jsonErr, _ := json.Marshal(e)
	return string(jsonErr)
}

// Unwrap returns the internal cause of the error
func (e *APIError) Unwrap() error {
	return e.cause
}

// WithCause attaches the internal cause and returns the error
func (e *APIError) WithCause(err error) *APIError {
	e.cause = err
	return e
}

// HTTPStatus maps the error code to an HTTP status
func (e *APIError) HTTPStatus() int {
	switch e.Code {
	case ErrCodeBadRequest, ErrCodeValidationFailed:
		return http.StatusBadRequest
	case ErrCodeNotFound:
		return http.StatusNotFound
	case ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case ErrCodeForbidden:
		return http.StatusForbidden
	case ErrCodeUpstreamError:
		return http.StatusBadGateway
	case ErrCodeUpstreamTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// Error constructors for common error types
func NewBadRequestError(message string, details ...string) *APIError {
	return newError(ErrCodeBadRequest, message, details)
}

func NewNotFoundError(message string, details ...string) *APIError {
	return newError(ErrCodeNotFound, message, details)
}

// NewValidationError reports invalid input; details name the failing field
func NewValidationError(details ...string) *APIError {
	return newError(ErrCodeValidationFailed, "Validation failed", details)
}

func NewUnauthorizedError(message string, details ...string) *APIError {
	return newError(ErrCodeUnauthorized, message, details)
}

func NewForbiddenError(message string, details ...string) *APIError {
	return newError(ErrCodeForbidden, message, details)
}

func NewInternalError(message string, details ...string) *APIError {
	return newError(ErrCodeInternalError, message, details)
}

func NewDatabaseError(message string, details ...string) *APIError {
	return newError(ErrCodeDatabaseError, message, details)
}

func NewUpstreamError(message string, details ...string) *APIError {
	return newError(ErrCodeUpstreamError, message, details)
}

func NewUpstreamTimeoutError(message string, details ...string) *APIError {
	return newError(ErrCodeUpstreamTimeout, message, details)
}

func newError(code ErrorCode, message string, details []string) *APIError {
	return &APIError{
		Code:    code,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

// FromError classifies err into an APIError. An APIError in the chain is returned as is;
// upstream and not-found sentinels map to their codes; anything else is internal.
func FromError(err error, message string) *APIError {
	if err == nil {
		return nil
	}

	var apiErr *APIError
	if stderrors.As(err, &apiErr) {
		return apiErr
	}

	switch {
	case stderrors.Is(err, domain.ErrUpstreamTimeout), stderrors.Is(err, context.DeadlineExceeded):
		return NewUpstreamTimeoutError("Upstream source timed out").WithCause(err)
	case stderrors.Is(err, domain.ErrUpstreamUnavailable):
		return NewUpstreamError("Upstream source unavailable").WithCause(err)
	case stderrors.Is(err, domain.ErrNFTNotFound):
		return NewNotFoundError("NFT not found").WithCause(err)
	case stderrors.Is(err, domain.ErrSerieNotFound):
		return NewNotFoundError("Serie not found").WithCause(err)
	case stderrors.Is(err, domain.ErrProfileNotFound):
		return NewNotFoundError("User not found").WithCause(err)
	case stderrors.Is(err, domain.ErrUnknownCategory):
		return NewValidationError("categories").WithCause(err)
	case stderrors.Is(err, domain.ErrSelfFollow):
		return NewBadRequestError("Cannot follow yourself").WithCause(err)
	default:
		return NewInternalError(message).WithCause(err)
	}
}
