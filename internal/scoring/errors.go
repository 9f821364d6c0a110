package scoring

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"syscall"
)

// ErrorType represents the category of a scoring service failure
type ErrorType int

const (
	// ErrTypeNetwork indicates a transport-level error
	ErrTypeNetwork ErrorType = iota
	// ErrTypeTimeout indicates the request timed out
	ErrTypeTimeout
	// ErrTypeConnectionRefused indicates nothing is listening at the service URL
	ErrTypeConnectionRefused
	// ErrTypeDNS indicates the service hostname could not be resolved
	ErrTypeDNS
	// ErrTypeHTTP indicates a non-2xx status code
	ErrTypeHTTP
	// ErrTypeParse indicates a malformed response body
	ErrTypeParse
	// ErrTypeValidation indicates the request was rejected before being sent
	ErrTypeValidation
	// ErrTypeCanceled indicates the caller's context was cancelled
	ErrTypeCanceled
)

// String returns a human-readable name for the error type
func (et ErrorType) String() string {
	switch et {
	case ErrTypeNetwork:
		return "Network Error"
	case ErrTypeTimeout:
		return "Timeout"
	case ErrTypeConnectionRefused:
		return "Connection Refused"
	case ErrTypeDNS:
		return "DNS Error"
	case ErrTypeHTTP:
		return "HTTP Error"
	case ErrTypeParse:
		return "Parse Error"
	case ErrTypeValidation:
		return "Validation Error"
	case ErrTypeCanceled:
		return "Canceled"
	default:
		return fmt.Sprintf("ErrorType(%d)", et)
	}
}

// ServiceError is returned by every failed Check or Generate call
type ServiceError struct {
	Type       ErrorType // Category of error
	Op         string    // "check" or "generate"
	Message    string    // Human-readable error message
	StatusCode int       // HTTP status code (if applicable)
	Err        error     // Underlying error (if any)
}

// Error implements the error interface
func (e *ServiceError) Error() string {
	msg := fmt.Sprintf("%s: %s: %s", e.Op, e.Type, e.Message)
	if e.Err != nil {
		msg += fmt.Sprintf(" (caused by: %v)", e.Err)
	}
	return msg
}

// Unwrap returns the underlying error for error chain inspection
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// classifyTransportError maps an http.Client error to a ServiceError
func classifyTransportError(op string, err error) *ServiceError {
	se := &ServiceError{Type: ErrTypeNetwork, Op: op, Message: "request failed", Err: err}

	var dnsErr *net.DNSError
	var opErr *net.OpError
	switch {
	case errors.Is(err, context.Canceled):
		se.Type = ErrTypeCanceled
		se.Message = "request cancelled"
	case errors.Is(err, context.DeadlineExceeded) || os.IsTimeout(err):
		se.Type = ErrTypeTimeout
		se.Message = "request timed out"
	case errors.As(err, &dnsErr):
		se.Type = ErrTypeDNS
		se.Message = fmt.Sprintf("DNS resolution failed for %s", dnsErr.Name)
	case errors.As(err, &opErr) && errors.Is(opErr.Err, syscall.ECONNREFUSED):
		se.Type = ErrTypeConnectionRefused
		se.Message = "service refused connection"
	}

	// url.Error already names the method and URL; keep the cause readable
	var urlErr *url.Error
	if errors.As(err, &urlErr) && se.Type == ErrTypeNetwork {
		se.Message = fmt.Sprintf("%s %s failed", urlErr.Op, urlErr.URL)
	}

	return se
}

// NewHTTPError creates an error for a non-2xx response
func NewHTTPError(op string, statusCode int, message string) *ServiceError {
	return &ServiceError{
		Type:       ErrTypeHTTP,
		Op:         op,
		Message:    message,
		StatusCode: statusCode,
	}
}

// NewParseError creates an error for an unusable response body
func NewParseError(op, message string, err error) *ServiceError {
	return &ServiceError{
		Type:    ErrTypeParse,
		Op:      op,
		Message: message,
		Err:     err,
	}
}

// NewValidationError creates an error for a request that was never sent
func NewValidationError(op, message string) *ServiceError {
	return &ServiceError{
		Type:    ErrTypeValidation,
		Op:      op,
		Message: message,
	}
}

func errorType(err error) (ErrorType, bool) {
	var se *ServiceError
	if errors.As(err, &se) {
		return se.Type, true
	}
	return 0, false
}

// IsServiceError reports whether err is (or wraps) a *ServiceError
func IsServiceError(err error) bool {
	_, ok := errorType(err)
	return ok
}

// IsNetworkError reports transport failures of any kind
func IsNetworkError(err error) bool {
	t, ok := errorType(err)
	return ok && (t == ErrTypeNetwork || t == ErrTypeTimeout ||
		t == ErrTypeConnectionRefused || t == ErrTypeDNS)
}

// IsHTTPError reports non-2xx responses
func IsHTTPError(err error) bool {
	t, ok := errorType(err)
	return ok && t == ErrTypeHTTP
}

// IsParseError reports malformed response bodies
func IsParseError(err error) bool {
	t, ok := errorType(err)
	return ok && t == ErrTypeParse
}

// IsCanceled reports requests abandoned because the context was cancelled
func IsCanceled(err error) bool {
	t, ok := errorType(err)
	return ok && t == ErrTypeCanceled
}

// ShortMessage returns a concise, user-facing description of err
func ShortMessage(err error) string {
	var se *ServiceError
	if !errors.As(err, &se) {
		return err.Error()
	}

	switch se.Type {
	case ErrTypeTimeout:
		return "Scoring service not responding (timeout)"
	case ErrTypeConnectionRefused:
		return "Scoring service refused connection - is it running?"
	case ErrTypeDNS:
		return "Cannot resolve scoring service hostname"
	case ErrTypeNetwork:
		return "Network error - check connection"
	case ErrTypeHTTP:
		return fmt.Sprintf("Scoring service error (HTTP %d): %s", se.StatusCode, se.Message)
	case ErrTypeParse:
		return "Unexpected response from scoring service"
	case ErrTypeCanceled:
		return "Request cancelled"
	default:
		return se.Message
	}
}
