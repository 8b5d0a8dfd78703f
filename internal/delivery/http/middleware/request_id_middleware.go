package middleware

import (
	"log/slog"

	delctx "pepperoni/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequestIDMiddleware tags every request with an ID and a request-scoped
// logger, echoing the ID back in the X-Request-Id header.
type RequestIDMiddleware struct {
	logger *slog.Logger
}

// NewRequestIDMiddleware creates the request ID middleware.
func NewRequestIDMiddleware(logger *slog.Logger) *RequestIDMiddleware {
	return &RequestIDMiddleware{logger: logger}
}

// Handle attaches the request ID to the echo context, the request context
// and the response header. Inbound IDs are honored so callers can trace
// across services.
func (m *RequestIDMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := c.Request().Header.Get(delctx.HeaderXRequestID)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		delctx.SetRequestID(c, requestID)
		c.Response().Header().Set(delctx.HeaderXRequestID, requestID)

		ctx := delctx.WithRequestID(c.Request().Context(), requestID)
		ctx = delctx.WithLogger(ctx, m.logger.With("requestID", requestID))
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
