package handler

import (
	"log/slog"
	"net/http"

	"pepperoni/internal/delivery/http/response"
	domainerrors "pepperoni/internal/domain/errors"
	"pepperoni/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ReviewHandler holds dependencies for review-related handlers.
type ReviewHandler struct {
	uc     usecase.ReviewUsecase
	logger *slog.Logger
}

// NewReviewHandler is the constructor for ReviewHandler, injected by Fx.
func NewReviewHandler(uc usecase.ReviewUsecase, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{uc: uc, logger: logger}
}

// Add handles POST /api/resena.
func (h *ReviewHandler) Add(c echo.Context) error {
	var input usecase.AddReviewInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrInvalidRequest.WithDetails(err.Error())
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	review, err := h.uc.Add(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, review)
}

// ListByProduct handles GET /api/resenas/:id_producto. Rows arrive joined
// with the reviewer's name, newest first.
func (h *ReviewHandler) ListByProduct(c echo.Context) error {
	productID, err := parseID(c, "id_producto")
	if err != nil {
		return err
	}

	reviews, err := h.uc.ListByProduct(c.Request().Context(), productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, reviews)
}
