// Package middleware contains the echo middleware of the HTTP delivery.
package middleware

import (
	"context"
	"log/slog"
	"net/http"

	delctx "pepperoni/internal/delivery/context"
	"pepperoni/internal/delivery/http/response"
	domainerrors "pepperoni/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware maps application errors onto the wire shape as Echo's
// central HTTPErrorHandler.
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates the error handling middleware.
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	// Storage work that outlived the request budget surfaces as a
	// persistence failure, not a raw context error.
	if errors.Is(err, context.DeadlineExceeded) {
		err = domainerrors.NewPersistenceError(err, "request deadline exceeded")
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.logger.Error("Request failed",
				"error", err.Error(),
				"requestID", delctx.GetRequestID(c),
				"path", c.Request().URL.Path,
				"method", c.Request().Method,
			)
		}

		_ = response.Error(c, appErr.HTTPCode(), appErr.Message(), appErr.Details())

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}

		_ = response.Error(c, httpErr.Code, message, "")

		return
	}

	m.logger.Error("Unhandled error",
		"error", err.Error(),
		"requestID", delctx.GetRequestID(c),
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
	)

	_ = response.Error(c, http.StatusInternalServerError, "Error en el servidor", "")
}
