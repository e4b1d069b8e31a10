package http

import (
	"errors"
	"net/http"
)

// AppError carries the HTTP status a handler failure maps to. The wire
// protocol reports errors by status alone, so rendering writes no body;
// Code and Message exist for logs.
type AppError struct {
	Status  int
	Code    string
	Message string
}

const (
	// CodeBadRequest marks a malformed target or unsupported method.
	CodeBadRequest = "BAD_REQUEST"
	// CodeNotFound marks a miss or an unsupported POST target.
	CodeNotFound = "NOT_FOUND"
	// CodeInternalError marks an unexpected failure.
	CodeInternalError = "INTERNAL_ERROR"
)

func (e *AppError) Error() string { return e.Code + ": " + e.Message }

// BadRequest builds a 400 error.
func BadRequest(msg string) *AppError {
	return &AppError{Status: http.StatusBadRequest, Code: CodeBadRequest, Message: msg}
}

// NotFound builds a 404 error.
func NotFound(msg string) *AppError {
	return &AppError{Status: http.StatusNotFound, Code: CodeNotFound, Message: msg}
}

// Internal builds a 500 error.
func Internal(msg string) *AppError {
	return &AppError{Status: http.StatusInternalServerError, Code: CodeInternalError, Message: msg}
}

func writeError(w http.ResponseWriter, err error) {
	var app *AppError
	if errors.As(err, &app) {
		w.WriteHeader(app.Status)
		return
	}
	w.WriteHeader(http.StatusInternalServerError)
}

type handlerFunc func(w http.ResponseWriter, r *http.Request) error

func wrap(h handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h(w, r); err != nil {
			writeError(w, err)
		}
	}
}
