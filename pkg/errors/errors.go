// Package errors defines the coded errors shared by the layout core, the
// pipeline, the CLI and the HTTP server.
//
// The layout core does not fail on bad geometry by default. INVALID_DIMENSION
// and INVALID_MARGIN are only returned by layouts built in strict mode.
//
// Codes group into kinds so callers can branch without listing every code:
//
//	switch errors.KindOf(err) {
//	case errors.KindInvalid:
//	    // 400, or exit with usage help
//	case errors.KindNotFound:
//	    // 404
//	}
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Code is a machine-readable error code. It is also the "code" field of
// HTTP error bodies.
type Code string

const (
	ErrCodeInvalidInput     Code = "INVALID_INPUT"
	ErrCodeInvalidDimension Code = "INVALID_DIMENSION"
	ErrCodeInvalidMargin    Code = "INVALID_MARGIN"
	ErrCodeInvalidLabel     Code = "INVALID_LABEL"
	ErrCodeInvalidFormat    Code = "INVALID_FORMAT"
	ErrCodeInvalidConfig    Code = "INVALID_CONFIG"

	ErrCodeNotFound     Code = "NOT_FOUND"
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Kind groups codes by how a caller should react.
type Kind int

const (
	KindInternal Kind = iota
	KindInvalid
	KindNotFound
	KindUnsupported
)

// Kind returns the group c belongs to. Unknown and empty codes are internal.
func (c Code) Kind() Kind {
	switch {
	case strings.HasPrefix(string(c), "INVALID_"):
		return KindInvalid
	case strings.HasSuffix(string(c), "NOT_FOUND"):
		return KindNotFound
	case c == ErrCodeUnsupported:
		return KindUnsupported
	}
	return KindInternal
}

// Error carries a code, a message for users and an optional cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return string(e.Code) + ": " + e.Message
	}
	return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
}

func (e *Error) Unwrap() error { return e.Cause }

// New returns an error with code and a formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap is [New] with a cause attached.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	e := New(code, format, args...)
	e.Cause = cause
	return e
}

// Is reports whether the outermost *Error in err's chain has code.
func Is(err error, code Code) bool {
	return err != nil && GetCode(err) == code
}

// GetCode returns the code of the outermost *Error in err's chain, or ""
// when there is none.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// KindOf returns the kind of err's code. Errors without a code are internal.
func KindOf(err error) Kind { return GetCode(err).Kind() }

// UserMessage returns the message of the outermost *Error followed by its
// cause, with code prefixes dropped, or err.Error() for uncoded errors.
//
//	parse chart.toml: unknown key "widht"
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if !errors.As(err, &e) {
		return err.Error()
	}
	if e.Cause == nil {
		return e.Message
	}
	return e.Message + ": " + UserMessage(e.Cause)
}
