// Package errors defines the coded error feo reports to the user.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Codes group failures by what the CLI does with them.
const (
	ErrSource   = "SOURCE"   // a file or command could not be read or run
	ErrParse    = "PARSE"    // expected key or token missing, or not numeric
	ErrEncoding = "ENCODING" // command output is not valid text
	ErrConfig   = "CONFIG"
)

// Error is a failure with a code and an optional hint for the user.
// It prints as a ✗ headline, then the cause and the hint, each indented
// on its own paragraph.
type Error struct {
	Code       string
	Message    string
	Suggestion string
	Cause      error
}

func New(code, message, suggestion string) *Error {
	return &Error{Code: code, Message: message, Suggestion: suggestion}
}

// Wrap attaches message to err as a source failure with no hint.
func Wrap(err error, message string) *Error {
	return WrapWithCode(err, ErrSource, message, "")
}

func WrapWithCode(err error, code, message, suggestion string) *Error {
	e := New(code, message, suggestion)
	e.Cause = err
	return e
}

// Parsef reports a malformed source.
func Parsef(format string, args ...any) *Error {
	return New(ErrParse, fmt.Sprintf(format, args...), "")
}

func (e *Error) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "✗ %s\n", e.Message)
	for _, detail := range []string{e.causeText(), e.Suggestion} {
		if detail != "" {
			fmt.Fprintf(&b, "\n  %s\n", detail)
		}
	}
	return b.String()
}

func (e *Error) causeText() string {
	if e.Cause == nil {
		return ""
	}
	return e.Cause.Error()
}

func (e *Error) Unwrap() error { return e.Cause }

// IsCode reports whether err or anything it wraps is an *Error with code.
func IsCode(err error, code string) bool {
	var fe *Error
	return errors.As(err, &fe) && fe.Code == code
}
