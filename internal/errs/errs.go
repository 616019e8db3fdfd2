// Package errs provides the coded error type shared by sortvis packages.
// Errors compare by code, so callers can match a class of failure with
// errors.Is without caring about the message or context attached to it.
package errs

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Code identifies a class of failure.
type Code string

const (
	// Access errors (1xx)
	CodeIndexOutOfRange Code = "E101"

	// Replay errors (2xx)
	CodeLogInconsistent Code = "E201"

	// Setup errors (3xx)
	CodeUnknownAlgorithm Code = "E301"
	CodeInvalidConfig    Code = "E302"

	// System errors (4xx)
	CodeCanceled Code = "E401"

	CodeUnknown Code = "E999"
)

// Error is the base error type for sortvis.
type Error struct {
	Code    Code
	Message string
	Cause   error
	Context map[string]any
}

// Error implements the error interface. Context keys are printed sorted so
// messages are stable across runs.
func (e *Error) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "[%s] %s", e.Code, e.Message)

	if len(e.Context) > 0 {
		keys := make([]string, 0, len(e.Context))
		for k := range e.Context {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		sb.WriteString(" (")
		for i, k := range keys {
			if i > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%s=%v", k, e.Context[k])
		}
		sb.WriteString(")")
	}

	if e.Cause != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Cause.Error())
	}
	return sb.String()
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *Error with the same code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// With adds a context value to the error and returns it.
func (e *Error) With(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

// New creates an Error.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf creates an Error with a formatted message.
func Newf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap wraps cause with a code and message. A nil cause yields nil.
func Wrap(cause error, code Code, message string) error {
	if cause == nil {
		return nil
	}
	return &Error{Code: code, Message: message, Cause: cause}
}

// CodeOf returns the code of the first *Error in err's chain, or CodeUnknown.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeUnknown
}

// Sentinels for errors.Is matching.
var (
	ErrIndexOutOfRange  = New(CodeIndexOutOfRange, "index out of range")
	ErrLogInconsistent  = New(CodeLogInconsistent, "log inconsistent")
	ErrUnknownAlgorithm = New(CodeUnknownAlgorithm, "unknown algorithm")
	ErrInvalidConfig    = New(CodeInvalidConfig, "invalid config")
	ErrCanceled         = New(CodeCanceled, "canceled")
)
