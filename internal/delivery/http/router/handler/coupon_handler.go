package handler

import (
	"log/slog"
	"net/http"

	"pepperoni/internal/delivery/http/response"
	"pepperoni/internal/domain/entity"
	domainerrors "pepperoni/internal/domain/errors"
	"pepperoni/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CouponHandler holds dependencies for coupon-related handlers.
type CouponHandler struct {
	uc     usecase.CouponUsecase
	logger *slog.Logger
}

// NewCouponHandler is the constructor for CouponHandler, injected by Fx.
func NewCouponHandler(uc usecase.CouponUsecase, logger *slog.Logger) *CouponHandler {
	return &CouponHandler{uc: uc, logger: logger}
}

// List handles GET /cupones, optionally filtered by ?id=.
func (h *CouponHandler) List(c echo.Context) error {
	id, err := queryID(c, "id")
	if err != nil {
		return err
	}

	coupons, err := h.uc.List(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, coupons)
}

// Create handles POST /cupones.
func (h *CouponHandler) Create(c echo.Context) error {
	var coupon entity.Coupon
	if err := c.Bind(&coupon); err != nil {
		return domainerrors.ErrInvalidRequest.WithDetails(err.Error())
	}
	if coupon.Name == "" {
		return domainerrors.ErrInvalidRequest
	}

	if err := h.uc.Create(c.Request().Context(), &coupon); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusCreated, "Cupón agregado")
}

// Update handles PUT /cupones/:id.
func (h *CouponHandler) Update(c echo.Context) error {
	couponID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var coupon entity.Coupon
	if err := c.Bind(&coupon); err != nil {
		return domainerrors.ErrInvalidRequest.WithDetails(err.Error())
	}
	coupon.ID = couponID

	if err := h.uc.Update(c.Request().Context(), &coupon); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Cupón actualizado")
}

// Delete handles DELETE /cupones/:id.
func (h *CouponHandler) Delete(c echo.Context) error {
	couponID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), couponID); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Cupón eliminado")
}

// Use handles POST /cupones/:id/usar. A second use by the same user answers
// 409 through the error mapping.
func (h *CouponHandler) Use(c echo.Context) error {
	couponID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var input usecase.UseCouponInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrInvalidRequest.WithDetails(err.Error())
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	if err := h.uc.Use(c.Request().Context(), couponID, &input); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Cupón aplicado")
}
