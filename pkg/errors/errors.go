package errors

import (
	"fmt"
	"net/http"
)

// ErrorKind classifies request failures
type ErrorKind string

const (
	KindTransport         ErrorKind = "TRANSPORT_ERROR"
	KindHTTPStatus        ErrorKind = "HTTP_STATUS_ERROR"
	KindMalformedResponse ErrorKind = "MALFORMED_RESPONSE"
	KindValidation        ErrorKind = "VALIDATION_ERROR"
)

// MalformedResponseMessage is the fixed message for success responses whose
// body cannot be decoded.
const MalformedResponseMessage = "invalid response format from server"

// RequestError is the uniform failure shape for everything that goes wrong
// between issuing a request and consuming its response. Message is always
// safe to show to a user.
type RequestError struct {
	Kind       ErrorKind
	Message    string
	StatusCode int
	Cause      error
}

// Error implements error interface
func (e *RequestError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying error
func (e *RequestError) Unwrap() error {
	return e.Cause
}

// NewTransportError wraps a network-level failure. The message is the
// transport error text.
func NewTransportError(cause error) *RequestError {
	return &RequestError{
		Kind:    KindTransport,
		Message: cause.Error(),
		Cause:   cause,
	}
}

// NewHTTPStatusError builds the error for a non-success status. When the
// server supplied an error message it is used verbatim; otherwise the
// message falls back to "Request failed: <status> <statusText>".
func NewHTTPStatusError(statusCode int, serverMessage string) *RequestError {
	msg := serverMessage
	if msg == "" {
		msg = fmt.Sprintf("Request failed: %d %s", statusCode, http.StatusText(statusCode))
	}
	return &RequestError{
		Kind:       KindHTTPStatus,
		Message:    msg,
		StatusCode: statusCode,
	}
}

// NewMalformedResponseError reports a success-status response whose body
// could not be decoded.
func NewMalformedResponseError(cause error) *RequestError {
	return &RequestError{
		Kind:    KindMalformedResponse,
		Message: MalformedResponseMessage,
		Cause:   cause,
	}
}

// NewValidationError reports a client-side rule violation caught before any
// network I/O.
func NewValidationError(message string) *RequestError {
	return &RequestError{
		Kind:    KindValidation,
		Message: message,
	}
}

// IsRequestError checks if error is a RequestError
func IsRequestError(err error) bool {
	_, ok := err.(*RequestError)
	return ok
}

// IsValidation reports whether err is a client-side validation failure.
func IsValidation(err error) bool {
	re := GetRequestError(err)
	return re != nil && re.Kind == KindValidation
}

// GetRequestError extracts RequestError from error chain
func GetRequestError(err error) *RequestError {
	if err == nil {
		return nil
	}

	if reqErr, ok := err.(*RequestError); ok {
		return reqErr
	}

	type unwrapper interface {
		Unwrap() error
	}

	if u, ok := err.(unwrapper); ok {
		return GetRequestError(u.Unwrap())
	}

	return nil
}

// UserMessage returns the displayable message for any error; plain errors
// pass through their Error() text.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	if re := GetRequestError(err); re != nil {
		return re.Message
	}
	return err.Error()
}
