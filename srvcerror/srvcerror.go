// Package srvcerror defines the error type services hand to transports.
// An Error pairs a stable machine-readable code with a message that is
// safe to show the requester; the underlying cause travels separately and
// is only ever logged, never serialized.
package srvcerror

import "net/http"

type Error struct {
	code       string
	userMsg    string // safe to return to the requester
	cause      error  // logged only
	httpStatus int    // zero means internal server error
}

func New(code string, userMsg string) *Error {
	return &Error{
		code:    code,
		userMsg: userMsg,
	}
}

func (e *Error) Error() string {
	return e.userMsg
}

func (e *Error) ErrorCode() string {
	return e.code
}

// DebugInfo returns the underlying cause, if one was attached.
func (e *Error) DebugInfo() error {
	return e.cause
}

// Unwrap lets errors.Is and errors.As see through to the cause.
func (e *Error) Unwrap() error {
	return e.cause
}

// SetDebug attaches the underlying cause and returns the error for
// chaining.
func (e *Error) SetDebug(cause error) *Error {
	e.cause = cause
	return e
}

func (e *Error) HttpStatusCode() int {
	if e.httpStatus == 0 {
		return http.StatusInternalServerError
	}
	return e.httpStatus
}

func (e *Error) SetHttpStatusCode(status int) *Error {
	e.httpStatus = status
	return e
}

const ErrCodeInternalServerError = "internal_server_error"

func ErrInternalSE() *Error {
	return New(
		ErrCodeInternalServerError,
		"internal server error",
	).SetHttpStatusCode(http.StatusInternalServerError)
}
