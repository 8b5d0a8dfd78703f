package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"pepperoni/internal/delivery/http/response"
	domainerrors "pepperoni/internal/domain/errors"
	"pepperoni/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CartHandler holds dependencies for cart-related handlers.
type CartHandler struct {
	uc     usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(uc usecase.CartUsecase, logger *slog.Logger) *CartHandler {
	return &CartHandler{uc: uc, logger: logger}
}

// Add handles POST /api/carrito/agregar.
func (h *CartHandler) Add(c echo.Context) error {
	var input usecase.AddToCartInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrInvalidRequest.WithDetails(err.Error())
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	if err := h.uc.AddToCart(c.Request().Context(), &input); err != nil {
		return errors.WithStack(err)
	}

	// 200 rather than 201: the add may merge into an existing line, and
	// the storefront treats both outcomes the same.
	return response.Message(c, http.StatusOK, "Producto agregado al carrito")
}

// Get handles GET /api/carrito/:idusuario.
func (h *CartHandler) Get(c echo.Context) error {
	userID, err := parseID(c, "idusuario")
	if err != nil {
		return err
	}

	lines, err := h.uc.GetCart(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, lines)
}

// UpdateLine handles PUT /api/carrito/:idproducto.
func (h *CartHandler) UpdateLine(c echo.Context) error {
	productID, err := parseID(c, "idproducto")
	if err != nil {
		return err
	}

	var input usecase.UpdateCartLineInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrInvalidRequest.WithDetails(err.Error())
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	if err := h.uc.UpdateLine(c.Request().Context(), productID, &input); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Carrito actualizado")
}

// RemoveLine handles DELETE /api/carrito/:idproducto. The user arrives in
// the JSON body; a `?idusuario=` query parameter is also accepted for
// clients whose DELETE requests drop the body.
func (h *CartHandler) RemoveLine(c echo.Context) error {
	productID, err := parseID(c, "idproducto")
	if err != nil {
		return err
	}

	userID, err := strconv.ParseInt(c.QueryParam("idusuario"), 10, 64)
	if err != nil || userID <= 0 {
		var body struct {
			UserID int64 `json:"idusuario"`
		}
		if err := c.Bind(&body); err != nil || body.UserID <= 0 {
			return domainerrors.ErrInvalidRequest.WithDetails("parámetro idusuario no válido")
		}
		userID = body.UserID
	}

	if err := h.uc.RemoveLine(c.Request().Context(), productID, userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Producto eliminado del carrito")
}

// Clear handles DELETE /api/carrito/vaciar/:idusuario.
func (h *CartHandler) Clear(c echo.Context) error {
	userID, err := parseID(c, "idusuario")
	if err != nil {
		return err
	}

	if err := h.uc.Clear(c.Request().Context(), userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Carrito vaciado")
}
