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

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{uc: uc, logger: logger}
}

// Register handles POST /registro and POST /usuarios.
func (h *UserHandler) Register(c echo.Context) error {
	var input usecase.RegisterInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrInvalidRequest.WithDetails(err.Error())
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	user, err := h.uc.Register(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, user)
}

// Login handles POST /login.
func (h *UserHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrInvalidRequest.WithDetails(err.Error())
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	user, err := h.uc.Login(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, user)
}

// List handles GET /usuarios.
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, users)
}

// Update handles PUT /usuarios/:id. The source answers 200 whether or not
// the row existed; that behavior is kept.
func (h *UserHandler) Update(c echo.Context) error {
	userID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var user entity.User
	if err := c.Bind(&user); err != nil {
		return domainerrors.ErrInvalidRequest.WithDetails(err.Error())
	}

	if err := h.uc.Update(c.Request().Context(), userID, &user); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Usuario actualizado")
}

// Delete handles DELETE /usuarios/:id.
func (h *UserHandler) Delete(c echo.Context) error {
	userID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Usuario eliminado")
}
