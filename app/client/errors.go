package client

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a failed call so callers handle exactly one error contract.
type Kind int

const (
	// KindNetwork means the backend could not be reached.
	KindNetwork Kind = iota + 1
	// KindTimeout means the call exceeded its deadline.
	KindTimeout
	// KindServer means the backend answered with a non-2xx status.
	KindServer
	// KindValidation means the input was rejected before any request was sent.
	KindValidation
	// KindDecode means a 2xx body could not be parsed.
	KindDecode
)

func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindTimeout:
		return "timeout"
	case KindServer:
		return "server"
	case KindValidation:
		return "validation"
	case KindDecode:
		return "decode"
	default:
		return "unknown"
	}
}

// DefaultMessage is shown when neither the server nor the caller supplies text.
const DefaultMessage = "Something went wrong. Please try again."

// Error is the only error type returned by Client methods.
type Error struct {
	Kind Kind
	// Status is the HTTP status for KindServer, zero otherwise.
	Status int
	// Message is the server-provided message, verbatim, when there was one.
	Message string
	// Op is "METHOD /path".
	Op  string
	Err error
}

func (e *Error) Error() string {
	switch {
	case e.Message != "" && e.Status != 0:
		return fmt.Sprintf("%s: %d %s", e.Op, e.Status, e.Message)
	case e.Status != 0:
		return fmt.Sprintf("%s: %d %s", e.Op, e.Status, http.StatusText(e.Status))
	case e.Err != nil:
		return fmt.Sprintf("%s: %s error: %v", e.Op, e.Kind, e.Err)
	case e.Op != "":
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	default:
		return e.Message
	}
}

func (e *Error) Unwrap() error { return e.Err }

// Validation builds a client-side validation error carrying msg for display.
func Validation(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg}
}

// AsError extracts the *Error from err.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// UserMessage returns the text to show for err: the server or validation
// message verbatim when present, otherwise fallback (or DefaultMessage).
func UserMessage(err error, fallback string) string {
	if e, ok := AsError(err); ok && e.Message != "" {
		return e.Message
	}
	if e, ok := AsError(err); ok && e.Kind == KindTimeout {
		return "The hostel server took too long to respond. Please try again."
	}
	if fallback != "" {
		return fallback
	}
	return DefaultMessage
}

// IsStatus reports whether err is a server error with the given status.
func IsStatus(err error, status int) bool {
	e, ok := AsError(err)
	return ok && e.Kind == KindServer && e.Status == status
}

// IsUnauthorized reports whether the backend rejected the session.
func IsUnauthorized(err error) bool {
	return IsStatus(err, http.StatusUnauthorized) || IsStatus(err, http.StatusForbidden)
}
