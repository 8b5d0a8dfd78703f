package middleware

import (
	"context"
	"time"

	"pepperoni/config"

	"github.com/labstack/echo/v4"
)

// TimeoutMiddleware bounds every request's context with the configured
// budget. Storage calls inherit the deadline through ctx; expiry comes back
// as context.DeadlineExceeded and the error handler turns it into a
// persistence failure.
type TimeoutMiddleware struct {
	timeout time.Duration
}

// NewTimeoutMiddleware creates the request timeout middleware.
func NewTimeoutMiddleware(cfg *config.Config) *TimeoutMiddleware {
	return &TimeoutMiddleware{timeout: cfg.HTTP.RequestTimeout}
}

// Handle wraps the request context with the deadline. A zero budget leaves
// the context unbounded.
func (m *TimeoutMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if m.timeout <= 0 {
			return next(c)
		}

		ctx, cancel := context.WithTimeout(c.Request().Context(), m.timeout)
		defer cancel()

		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
