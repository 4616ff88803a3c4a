package apierr

import (
	"fmt"
	"net/http"
)

// Error carries the HTTP status a handler should report alongside the
// underlying cause.
type Error struct {
	Status int
	Code   string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Code != "" {
		return e.Code
	}
	if e.Status != 0 {
		return fmt.Sprintf("api error (%d)", e.Status)
	}
	return "api error"
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, code string, err error) *Error {
	return &Error{Status: status, Code: code, Err: err}
}

func BadRequest(code string) *Error {
	return New(http.StatusBadRequest, code, nil)
}

func NotFound(code string) *Error {
	return New(http.StatusNotFound, code, nil)
}

func Conflict(code string) *Error {
	return New(http.StatusConflict, code, nil)
}

func Internal(err error) *Error {
	return New(http.StatusInternalServerError, "internal", err)
}
