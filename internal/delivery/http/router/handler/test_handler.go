package handler

import (
	"net/http"

	"pepperoni/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// TestHandler answers the plain availability endpoints the storefront polls.
type TestHandler struct{}

// NewTestHandler creates a new TestHandler instance.
func NewTestHandler() *TestHandler {
	return &TestHandler{}
}

// Test handles GET /test, the source's original "is the API up" endpoint.
func (h *TestHandler) Test(c echo.Context) error {
	return response.Message(c, http.StatusOK, "API funcionando correctamente")
}

// HealthCheck handles GET /health.
func HealthCheck(c echo.Context) error {
	return response.JSON(c, http.StatusOK, map[string]string{"status": "ok"})
}
