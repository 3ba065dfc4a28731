// Package api defines the uniform response envelope shared by every endpoint,
// the error taxonomy the central error mapper understands, and the request
// validator wired into Echo. Handlers either respond through Respond or
// return one of the error types defined here; nothing else reaches clients.
package api

import "github.com/labstack/echo/v4"

// Response is the envelope wrapping every success and error body. Data is
// omitted when there is nothing to return (e.g. a not-found error).
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// Success builds a success envelope.
func Success(message string, data any) Response {
	return Response{Success: true, Message: message, Data: data}
}

// Fail builds an error envelope without detail data.
func Fail(message string) Response {
	return Response{Success: false, Message: message}
}

// Respond writes a success envelope with the given status.
func Respond(c echo.Context, status int, message string, data any) error {
	return c.JSON(status, Success(message, data))
}
