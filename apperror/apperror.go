// Package apperror carries the domain error taxonomy. Every failed
// precondition surfaces as an AppError with an HTTP-aligned numeric code
// and a human message; nothing is raised as a panic.
package apperror

import "errors"

const (
	CodeBadRequest      = 400
	CodeNotFound        = 404
	CodeConflict        = 409
	CodeUnprocessable   = 422
	CodeTooManyRequests = 429
)

type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	return e.Message
}

func New(code int, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// Require is the precondition guard: it fails with code+message when the
// violation holds and does nothing otherwise.
func Require(violation bool, code int, message string) error {
	if violation {
		return &AppError{Code: code, Message: message}
	}
	return nil
}

// From extracts the AppError from an error chain, if any.
func From(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
