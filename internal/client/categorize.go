package client

import (
	"context"
	"errors"
	"net"
	"strings"

	"github.com/kjstillabower/ornithologist/internal/validation"
)

// ErrorCategory is a stable label for error classification in metrics and logs.
type ErrorCategory string

const (
	ErrorCategoryTimeout           ErrorCategory = "timeout"
	ErrorCategoryTransport         ErrorCategory = "transport"
	ErrorCategoryMalformedResponse ErrorCategory = "malformed_response"
	ErrorCategoryInvalidAPIKey     ErrorCategory = "invalid_api_key"
	ErrorCategoryLocationNotFound  ErrorCategory = "location_not_found"
	ErrorCategoryRateLimited       ErrorCategory = "rate_limited"
	ErrorCategoryUpstream          ErrorCategory = "upstream"
	ErrorCategoryValidation        ErrorCategory = "validation"
	ErrorCategoryUnknown           ErrorCategory = "unknown"
)

// CategorizeError maps a lookup error to a stable ErrorCategory.
func CategorizeError(err error) ErrorCategory {
	if err == nil {
		return ""
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return ErrorCategoryTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return ErrorCategoryTimeout
	}

	switch {
	case errors.Is(err, validation.ErrInvalidInput):
		return ErrorCategoryValidation
	case errors.Is(err, ErrInvalidAPIKey):
		return ErrorCategoryInvalidAPIKey
	case errors.Is(err, ErrLocationNotFound):
		return ErrorCategoryLocationNotFound
	case errors.Is(err, ErrRateLimited):
		return ErrorCategoryRateLimited
	case errors.Is(err, ErrUpstreamFailure):
		return ErrorCategoryUpstream
	case errors.Is(err, ErrMalformedResponse):
		return ErrorCategoryMalformedResponse
	case errors.Is(err, ErrTransport):
		return ErrorCategoryTransport
	}

	errStr := err.Error()
	if strings.Contains(errStr, "timeout") {
		return ErrorCategoryTimeout
	}
	if strings.Contains(errStr, "network") || strings.Contains(errStr, "connection") {
		return ErrorCategoryTransport
	}
	if strings.Contains(errStr, "invalid") || strings.Contains(errStr, "validation") {
		return ErrorCategoryValidation
	}

	return ErrorCategoryUnknown
}
