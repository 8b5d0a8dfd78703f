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

// OrderHandler holds dependencies for order-related handlers.
type OrderHandler struct {
	uc     usecase.OrderUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{uc: uc, logger: logger}
}

// Create handles POST /api/ordenes. A body carrying detalle_orden takes the
// transactional path; without it the header goes in alone (point of sale).
func (h *OrderHandler) Create(c echo.Context) error {
	var input usecase.CreateOrderInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrInvalidRequest.WithDetails(err.Error())
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	var (
		orderID int64
		err     error
	)
	if len(input.Lines) > 0 {
		orderID, err = h.uc.CreateOrder(c.Request().Context(), &input)
	} else {
		orderID, err = h.uc.CreateDirectOrder(c.Request().Context(), &input)
	}
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, map[string]int64{"idorden": orderID})
}

// Get handles GET /api/ordenes/:idorden.
func (h *OrderHandler) Get(c echo.Context) error {
	orderID, err := parseID(c, "idorden")
	if err != nil {
		return err
	}

	order, err := h.uc.GetOrder(c.Request().Context(), orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, order)
}

// List handles GET /api/ordenes. With ?userId= it narrows to one user's
// orders, newest first; without it every order comes back.
func (h *OrderHandler) List(c echo.Context) error {
	userID, err := queryID(c, "userId")
	if err != nil {
		return err
	}

	var orders []*entity.Order
	if userID != nil {
		orders, err = h.uc.ListForUser(c.Request().Context(), *userID)
	} else {
		orders, err = h.uc.ListAll(c.Request().Context())
	}
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, orders)
}

// Update handles PATCH /api/ordenes/:id. Only estado is required; when the
// body also carries payment data the whole header is overwritten.
func (h *OrderHandler) Update(c echo.Context) error {
	orderID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var input usecase.UpdateOrderInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrInvalidRequest.WithDetails(err.Error())
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	if input.PaymentMethod == "" && input.Total.IsZero() {
		err = h.uc.UpdateStatus(c.Request().Context(), orderID, input.Status)
	} else {
		err = h.uc.UpdateHeader(c.Request().Context(), orderID, &input)
	}
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Orden actualizada")
}

// Delete handles DELETE /api/ordenes/:id.
func (h *OrderHandler) Delete(c echo.Context) error {
	orderID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), orderID); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Orden eliminada")
}

// ListLines handles GET /detalle_orden, optionally filtered by ?idorden=.
func (h *OrderHandler) ListLines(c echo.Context) error {
	orderID, err := queryID(c, "idorden")
	if err != nil {
		return err
	}

	lines, err := h.uc.ListLines(c.Request().Context(), orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, lines)
}

// AddLine handles POST /detalle_orden.
func (h *OrderHandler) AddLine(c echo.Context) error {
	var line entity.OrderLine
	if err := c.Bind(&line); err != nil {
		return domainerrors.ErrInvalidRequest.WithDetails(err.Error())
	}
	if line.OrderID <= 0 || line.ProductID <= 0 || line.Quantity <= 0 {
		return domainerrors.ErrInvalidRequest
	}

	if err := h.uc.AddLine(c.Request().Context(), &line); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusCreated, "Detalle de orden agregado")
}

// UpdateLine handles PUT /detalle_orden/:id.
func (h *OrderHandler) UpdateLine(c echo.Context) error {
	lineID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var line entity.OrderLine
	if err := c.Bind(&line); err != nil {
		return domainerrors.ErrInvalidRequest.WithDetails(err.Error())
	}
	line.ID = lineID
	if line.Quantity <= 0 {
		return domainerrors.ErrInvalidRequest
	}

	if err := h.uc.UpdateLine(c.Request().Context(), &line); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Detalle de orden actualizado")
}

// DeleteLine handles DELETE /detalle_orden/:id.
func (h *OrderHandler) DeleteLine(c echo.Context) error {
	lineID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteLine(c.Request().Context(), lineID); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Detalle de orden eliminado")
}
