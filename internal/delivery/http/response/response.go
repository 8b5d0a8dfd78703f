// Package response holds the wire shapes every handler answers with. The
// bodies keep the exact fields the original storefront client parses:
// `{ "message": ... }` for outcomes and `{ "message", "error" }` for faults.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// MessageBody is the `{message}` outcome shape.
type MessageBody struct {
	Message string `json:"message"`
}

// ErrorBody is the `{message, error}` fault shape. Error carries optional
// detail and is omitted when empty.
type ErrorBody struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// JSON writes a raw payload (rows, single entities, id envelopes).
func JSON(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, data)
}

// Message writes a `{message}` body.
func Message(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, MessageBody{Message: message})
}

// Created writes a 201 with the given payload.
func Created(c echo.Context, data any) error {
	return c.JSON(http.StatusCreated, data)
}

// Error writes a `{message, error}` body.
func Error(c echo.Context, statusCode int, message, details string) error {
	return c.JSON(statusCode, ErrorBody{Message: message, Error: details})
}
