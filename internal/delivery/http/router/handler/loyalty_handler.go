package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"pepperoni/internal/delivery/http/response"
	"pepperoni/internal/domain/entity"
	domainerrors "pepperoni/internal/domain/errors"
	"pepperoni/internal/infra/qrcode"
	"pepperoni/internal/infra/upload"
	"pepperoni/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// LoyaltyHandler holds dependencies for pepper points handlers.
type LoyaltyHandler struct {
	uc      usecase.LoyaltyUsecase
	encoder qrcode.CardEncoder
	store   upload.Store
	logger  *slog.Logger
}

// NewLoyaltyHandler is the constructor for LoyaltyHandler, injected by Fx.
func NewLoyaltyHandler(
	uc usecase.LoyaltyUsecase,
	encoder qrcode.CardEncoder,
	store upload.Store,
	logger *slog.Logger,
) *LoyaltyHandler {
	return &LoyaltyHandler{
		uc:      uc,
		encoder: encoder,
		store:   store,
		logger:  logger,
	}
}

// Activate handles POST /api/pepperpoints/activar.
func (h *LoyaltyHandler) Activate(c echo.Context) error {
	var input usecase.ActivateLoyaltyInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrInvalidRequest.WithDetails(err.Error())
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	account, err := h.uc.Activate(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, map[string]string{"num_tarjeta": account.CardNumber})
}

// Get handles GET /api/pepperpoints/:id_usuario.
func (h *LoyaltyHandler) Get(c echo.Context) error {
	userID, err := parseID(c, "id_usuario")
	if err != nil {
		return err
	}

	account, err := h.uc.GetAccount(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, account)
}

// Update handles PUT /api/pepperpoints/:id_usuario.
func (h *LoyaltyHandler) Update(c echo.Context) error {
	userID, err := parseID(c, "id_usuario")
	if err != nil {
		return err
	}

	var input usecase.UpdateLoyaltyInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrInvalidRequest.WithDetails(err.Error())
	}

	if err := h.uc.UpdateAccount(c.Request().Context(), userID, &input); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Puntos actualizados")
}

// Adjust handles PATCH /api/pepperpoints/:id_usuario. PUT overwrites the
// counters; PATCH moves the balance by a relative amount.
func (h *LoyaltyHandler) Adjust(c echo.Context) error {
	userID, err := parseID(c, "id_usuario")
	if err != nil {
		return err
	}

	var input usecase.AdjustLoyaltyInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrInvalidRequest.WithDetails(err.Error())
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	if err := h.uc.Adjust(c.Request().Context(), userID, &input); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Puntos ajustados")
}

// Delete handles DELETE /api/pepperpoints/:id_usuario.
func (h *LoyaltyHandler) Delete(c echo.Context) error {
	userID, err := parseID(c, "id_usuario")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteAccount(c.Request().Context(), userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Cuenta de puntos eliminada")
}

// Redeem handles POST /api/pepperpoints/canjear.
func (h *LoyaltyHandler) Redeem(c echo.Context) error {
	var input usecase.RedeemInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrInvalidRequest.WithDetails(err.Error())
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	if err := h.uc.Redeem(c.Request().Context(), &input); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Canje realizado")
}

// Card handles GET /api/pepperpoints/:id_usuario/tarjeta. It answers the
// membership card as a QR PNG.
func (h *LoyaltyHandler) Card(c echo.Context) error {
	userID, err := parseID(c, "id_usuario")
	if err != nil {
		return err
	}

	account, err := h.uc.GetAccount(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	png, err := h.encoder.EncodeCard(account.CardNumber, account.UserID)
	if err != nil {
		return errors.Wrap(err, "failed to encode membership card")
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// ListRedeemables handles GET /canjeables, optionally filtered by ?id=.
func (h *LoyaltyHandler) ListRedeemables(c echo.Context) error {
	id, err := queryID(c, "id")
	if err != nil {
		return err
	}

	redeemables, err := h.uc.ListRedeemables(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	for _, r := range redeemables {
		if r.Image != "" {
			r.Image = h.store.URL(r.Image)
		}
	}

	return response.JSON(c, http.StatusOK, redeemables)
}

// redeemableFromForm builds the entity from the multipart fields.
func (h *LoyaltyHandler) redeemableFromForm(c echo.Context, imageRequired bool) (*entity.Redeemable, error) {
	name := c.FormValue("nombre")
	costRaw := c.FormValue("costo_puntos")
	productRaw := c.FormValue("id_producto")
	if name == "" || costRaw == "" || productRaw == "" {
		return nil, domainerrors.ErrInvalidRequest
	}

	cost, err := strconv.Atoi(costRaw)
	if err != nil || cost <= 0 {
		return nil, domainerrors.ErrInvalidRequest.WithDetails("costo_puntos no válido")
	}

	productID, err := strconv.ParseInt(productRaw, 10, 64)
	if err != nil || productID <= 0 {
		return nil, domainerrors.ErrInvalidRequest.WithDetails("id_producto no válido")
	}

	startsAt, err := formDate(c, "fecha_inicio")
	if err != nil {
		return nil, err
	}
	expiresAt, err := formDate(c, "fecha_fin")
	if err != nil {
		return nil, err
	}

	image, err := saveImage(c, h.store, imageRequired)
	if err != nil {
		return nil, err
	}

	return &entity.Redeemable{
		ProductID:   productID,
		Name:        name,
		Description: c.FormValue("descripcion"),
		PointsCost:  cost,
		Image:       image,
		StartsAt:    startsAt,
		ExpiresAt:   expiresAt,
	}, nil
}

// CreateRedeemable handles POST /canjeables (multipart).
func (h *LoyaltyHandler) CreateRedeemable(c echo.Context) error {
	redeemable, err := h.redeemableFromForm(c, true)
	if err != nil {
		return err
	}

	if err := h.uc.CreateRedeemable(c.Request().Context(), redeemable); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusCreated, "Canjeable agregado")
}

// UpdateRedeemable handles PUT /canjeables/:id (multipart, image optional).
func (h *LoyaltyHandler) UpdateRedeemable(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	redeemable, err := h.redeemableFromForm(c, false)
	if err != nil {
		return err
	}
	redeemable.ID = id

	if err := h.uc.UpdateRedeemable(c.Request().Context(), redeemable); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Canjeable actualizado")
}

// DeleteRedeemable handles DELETE /canjeables/:id.
func (h *LoyaltyHandler) DeleteRedeemable(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteRedeemable(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Canjeable eliminado")
}
