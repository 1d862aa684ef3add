package tuner

import (
	"errors"
	"fmt"
	"net"
	"os"
	"syscall"
)

// TransportError is the single error kind surfaced by the client: the
// request never completed, the device answered with a non-2xx status, or
// the response body could not be decoded. There are no domain error kinds
// because the device is trusted to return well-formed status once reachable.
type TransportError struct {
	// Op is the logical operation that failed ("status", "tune", "step",
	// "mute", "unmute", "mono", "presets", "presets reload").
	Op string

	// StatusCode is the HTTP status code, or 0 when the request never
	// produced a response.
	StatusCode int

	// Message is a short human-readable description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("tuner %s: %s: %v", e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("tuner %s: %s", e.Op, e.Message)
}

// Unwrap returns the underlying error for error chain inspection.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// newTransportError builds a TransportError for the given operation.
func newTransportError(op string, statusCode int, message string, err error) *TransportError {
	return &TransportError{
		Op:         op,
		StatusCode: statusCode,
		Message:    message,
		Err:        err,
	}
}

// IsTransportError reports whether err is (or wraps) a *TransportError.
func IsTransportError(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// The helpers below classify a TransportError for operator diagnostics
// (log fields, troubleshooting hints). Callers must not branch retry
// behavior on them; the client contract is fail-once.

// IsTimeout reports whether err was caused by a request timeout.
func IsTimeout(err error) bool {
	return err != nil && os.IsTimeout(err)
}

// IsConnectionRefused reports whether the device actively refused the
// connection, which usually means the service is down rather than the
// host being unreachable.
func IsConnectionRefused(err error) bool {
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return errors.Is(opErr.Err, syscall.ECONNREFUSED)
	}
	return false
}

// HTTPStatus returns the HTTP status code carried by err, or 0 when err
// is not a TransportError or the request never completed.
func HTTPStatus(err error) int {
	var te *TransportError
	if errors.As(err, &te) {
		return te.StatusCode
	}
	return 0
}
