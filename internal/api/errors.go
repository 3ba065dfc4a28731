package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
)

// Error is a deliberate HTTP-level failure: its status and message are sent
// to the client verbatim, wrapped in the error envelope.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string { return e.Message }

// NewError builds an Error with an explicit status code.
func NewError(status int, message string) *Error {
	return &Error{Status: status, Message: message}
}

func BadRequest(message string) *Error   { return NewError(http.StatusBadRequest, message) }
func Unauthorized(message string) *Error { return NewError(http.StatusUnauthorized, message) }
func NotFound(message string) *Error     { return NewError(http.StatusNotFound, message) }
func Conflict(message string) *Error     { return NewError(http.StatusConflict, message) }

// FieldErrors maps a request field path to the list of messages explaining
// why it was rejected.
type FieldErrors map[string][]string

// ValidationError is raised when a request body or parameter fails schema
// validation. The mapper turns it into a 400 "Validation Error" envelope
// carrying the field breakdown.
type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string { return "Validation Error" }

// ErrInvalidBody is returned when the request body cannot be decoded at all.
func ErrInvalidBody() *ValidationError {
	return &ValidationError{Fields: FieldErrors{"body": {"must be valid JSON"}}}
}

// HTTPErrorHandler is the single catch-all for handler failures, installed as
// Echo's HTTPErrorHandler. Classification order: deliberate *Error first,
// then validation failures, then Echo's own routing errors (which is how the
// 404 "Not Found" responder works), and finally everything else as an
// internal error that is logged server-side but never echoed to the client.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	resp := Fail("Internal Server Error")

	var apiErr *Error
	var valErr *ValidationError
	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &apiErr):
		status = apiErr.Status
		resp = Fail(apiErr.Message)
	case errors.As(err, &valErr):
		status = http.StatusBadRequest
		resp = Fail("Validation Error")
		resp.Data = valErr.Fields
	case errors.As(err, &httpErr):
		status = httpErr.Code
		if status >= http.StatusInternalServerError {
			log.Printf("http error: %s %s: %v", c.Request().Method, c.Request().URL.Path, err)
			break
		}
		if msg, ok := httpErr.Message.(string); ok {
			resp = Fail(msg)
		} else {
			resp = Fail(http.StatusText(status))
		}
	default:
		log.Printf("internal error: %s %s: %v", c.Request().Method, c.Request().URL.Path, err)
	}

	if err := c.JSON(status, resp); err != nil {
		log.Printf("error response write failed: %v", err)
	}
}
