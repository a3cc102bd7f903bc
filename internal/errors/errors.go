package errors

import (
	"errors"
	"fmt"
)

// Code is a stable, machine-readable error class mapped to process exit codes.
type Code int

const (
	CodeSuccess     Code = 0
	CodeInternal    Code = 1
	CodeUsage       Code = 2
	CodeAuth        Code = 10
	CodeRateLimited Code = 11
	CodeUnavailable Code = 12
	CodeNotFound    Code = 13
	CodeUpstream    Code = 14
)

// Error carries a stable code, the upstream HTTP status when one was
// observed, and a message fit for direct display to the caller.
type Error struct {
	Code    Code
	Status  int
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Cause)
}

func (e *Error) Unwrap() error { return e.Cause }

func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

func WithStatus(code Code, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message}
}

func Wrap(code Code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, Cause: cause}
}

func As(err error) (*Error, bool) {
	var target *Error
	if errors.As(err, &target) {
		return target, true
	}
	return nil, false
}

// StatusOf returns the HTTP status attached to err, or 0 when none is known.
func StatusOf(err error) int {
	if e, ok := As(err); ok {
		return e.Status
	}
	return 0
}

func ExitCode(err error) int {
	if err == nil {
		return int(CodeSuccess)
	}
	if e, ok := As(err); ok {
		return int(e.Code)
	}
	return int(CodeInternal)
}
