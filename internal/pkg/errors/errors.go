package errors

import (
	stderrors "errors"
	"net/http"
)

// CustomError carries the HTTP status a failure should be reported with.
type CustomError struct {
	Code    int
	Message string
}

func (e *CustomError) Error() string {
	return e.Message
}

func BadRequest(msg string) error {
	return &CustomError{Code: http.StatusBadRequest, Message: msg}
}

func UnauthorizedError(msg string) error {
	return &CustomError{Code: http.StatusUnauthorized, Message: msg}
}

func NotFound(msg string) error {
	return &CustomError{Code: http.StatusNotFound, Message: msg}
}

func Conflict(msg string) error {
	return &CustomError{Code: http.StatusConflict, Message: msg}
}

func InternalServerError(msg string) error {
	return &CustomError{Code: http.StatusInternalServerError, Message: msg}
}

// StatusCode reports the HTTP status carried by err, or 500 when err is not
// a CustomError.
func StatusCode(err error) int {
	var ce *CustomError
	if stderrors.As(err, &ce) {
		return ce.Code
	}
	return http.StatusInternalServerError
}

func New(msg string) error {
	return stderrors.New(msg)
}

func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

func As(err error, target any) bool {
	return stderrors.As(err, target)
}
