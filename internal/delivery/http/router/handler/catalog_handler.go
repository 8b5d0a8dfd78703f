package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"pepperoni/internal/delivery/http/response"
	"pepperoni/internal/domain/entity"
	domainerrors "pepperoni/internal/domain/errors"
	"pepperoni/internal/domain/repository"
	"pepperoni/internal/infra/upload"
	"pepperoni/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// CatalogHandler holds dependencies for catalog-related handlers: products,
// categories, offers, notifications and roles.
type CatalogHandler struct {
	uc     usecase.CatalogUsecase
	store  upload.Store
	logger *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.CatalogUsecase, store upload.Store, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{uc: uc, store: store, logger: logger}
}

// ListProducts handles GET /productos with optional idcategoria/idoferta
// filters. Stored file names expand to full URLs on the way out.
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	categoryID, err := queryID(c, "idcategoria")
	if err != nil {
		return err
	}
	offerID, err := queryID(c, "idoferta")
	if err != nil {
		return err
	}

	products, err := h.uc.ListProducts(c.Request().Context(), repository.ProductFilter{
		CategoryID: categoryID,
		OfferID:    offerID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	for _, p := range products {
		if p.Image != "" {
			p.Image = h.store.URL(p.Image)
		}
	}

	return response.JSON(c, http.StatusOK, products)
}

// GetProduct handles GET /productos/:id_producto.
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	productID, err := parseID(c, "id_producto")
	if err != nil {
		return err
	}

	product, err := h.uc.GetProduct(c.Request().Context(), productID)
	if err != nil {
		return errors.WithStack(err)
	}

	if product.Image != "" {
		product.Image = h.store.URL(product.Image)
	}

	return response.JSON(c, http.StatusOK, product)
}

// productFromForm builds the entity from the multipart fields.
func (h *CatalogHandler) productFromForm(c echo.Context, imageRequired bool) (*entity.Product, error) {
	name := c.FormValue("nombre")
	priceRaw := c.FormValue("precio")
	categoryRaw := c.FormValue("idcategoria")
	if name == "" || priceRaw == "" || categoryRaw == "" {
		return nil, domainerrors.ErrInvalidRequest
	}

	price, err := decimal.NewFromString(priceRaw)
	if err != nil || price.IsNegative() {
		return nil, domainerrors.ErrInvalidRequest.WithDetails("precio no válido")
	}

	categoryID, err := strconv.ParseInt(categoryRaw, 10, 64)
	if err != nil || categoryID <= 0 {
		return nil, domainerrors.ErrInvalidRequest.WithDetails("idcategoria no válido")
	}

	var offerID *int64
	if raw := c.FormValue("idoferta"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			return nil, domainerrors.ErrInvalidRequest.WithDetails("idoferta no válido")
		}
		offerID = &id
	}

	image, err := saveImage(c, h.store, imageRequired)
	if err != nil {
		return nil, err
	}

	return &entity.Product{
		Name:        name,
		Description: c.FormValue("descripcion"),
		Size:        c.FormValue("tamano"),
		Price:       price,
		CategoryID:  categoryID,
		OfferID:     offerID,
		Image:       image,
	}, nil
}

// CreateProduct handles POST /productos (multipart).
func (h *CatalogHandler) CreateProduct(c echo.Context) error {
	product, err := h.productFromForm(c, true)
	if err != nil {
		return err
	}

	if err := h.uc.CreateProduct(c.Request().Context(), product); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusCreated, "Producto agregado")
}

// UpdateProduct handles PUT /productos/:id (multipart, image optional; the
// stored image survives when no new file arrives).
func (h *CatalogHandler) UpdateProduct(c echo.Context) error {
	productID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	product, err := h.productFromForm(c, false)
	if err != nil {
		return err
	}
	product.ID = productID

	if err := h.uc.UpdateProduct(c.Request().Context(), product); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Producto actualizado")
}

// DeleteProduct handles DELETE /productos/:id.
func (h *CatalogHandler) DeleteProduct(c echo.Context) error {
	productID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteProduct(c.Request().Context(), productID); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Producto eliminado")
}

// ListCategories handles GET /categoria.
func (h *CatalogHandler) ListCategories(c echo.Context) error {
	categories, err := h.uc.ListCategories(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, categories)
}

// CreateCategory handles POST /categoria.
func (h *CatalogHandler) CreateCategory(c echo.Context) error {
	var category entity.Category
	if err := c.Bind(&category); err != nil {
		return domainerrors.ErrInvalidRequest.WithDetails(err.Error())
	}
	if category.Name == "" {
		return domainerrors.ErrInvalidRequest
	}

	if err := h.uc.CreateCategory(c.Request().Context(), &category); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusCreated, "Categoría agregada")
}

// UpdateCategory handles PUT /categoria/:id.
func (h *CatalogHandler) UpdateCategory(c echo.Context) error {
	categoryID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var category entity.Category
	if err := c.Bind(&category); err != nil {
		return domainerrors.ErrInvalidRequest.WithDetails(err.Error())
	}
	category.ID = categoryID

	if err := h.uc.UpdateCategory(c.Request().Context(), &category); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Categoría actualizada")
}

// DeleteCategory handles DELETE /categoria/:id.
func (h *CatalogHandler) DeleteCategory(c echo.Context) error {
	categoryID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteCategory(c.Request().Context(), categoryID); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Categoría eliminada")
}

// ListOffers handles GET /ofertas, optionally filtered by ?id=.
func (h *CatalogHandler) ListOffers(c echo.Context) error {
	id, err := queryID(c, "id")
	if err != nil {
		return err
	}

	offers, err := h.uc.ListOffers(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, offers)
}

// CreateOffer handles POST /ofertas.
func (h *CatalogHandler) CreateOffer(c echo.Context) error {
	var offer entity.Offer
	if err := c.Bind(&offer); err != nil {
		return domainerrors.ErrInvalidRequest.WithDetails(err.Error())
	}
	if offer.Name == "" {
		return domainerrors.ErrInvalidRequest
	}

	if err := h.uc.CreateOffer(c.Request().Context(), &offer); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusCreated, "Oferta agregada")
}

// UpdateOffer handles PUT /ofertas/:id.
func (h *CatalogHandler) UpdateOffer(c echo.Context) error {
	offerID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var offer entity.Offer
	if err := c.Bind(&offer); err != nil {
		return domainerrors.ErrInvalidRequest.WithDetails(err.Error())
	}
	offer.ID = offerID

	if err := h.uc.UpdateOffer(c.Request().Context(), &offer); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Oferta actualizada")
}

// DeleteOffer handles DELETE /ofertas/:id.
func (h *CatalogHandler) DeleteOffer(c echo.Context) error {
	offerID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteOffer(c.Request().Context(), offerID); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Oferta eliminada")
}

// ListNotifications handles GET /notificaciones.
func (h *CatalogHandler) ListNotifications(c echo.Context) error {
	notifications, err := h.uc.ListNotifications(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	for _, n := range notifications {
		if n.Image != "" {
			n.Image = h.store.URL(n.Image)
		}
	}

	return response.JSON(c, http.StatusOK, notifications)
}

// CreateNotification handles POST /notificaciones (multipart).
func (h *CatalogHandler) CreateNotification(c echo.Context) error {
	name := c.FormValue("nombre")
	if name == "" {
		return domainerrors.ErrInvalidRequest
	}

	image, err := saveImage(c, h.store, true)
	if err != nil {
		return err
	}

	notification := &entity.Notification{Name: name, Image: image}
	if err := h.uc.CreateNotification(c.Request().Context(), notification); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusCreated, "Notificación agregada")
}

// UpdateNotification handles PUT /notificaciones/:id (multipart, image
// optional).
func (h *CatalogHandler) UpdateNotification(c echo.Context) error {
	notificationID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	name := c.FormValue("nombre")
	if name == "" {
		return domainerrors.ErrInvalidRequest
	}

	image, err := saveImage(c, h.store, false)
	if err != nil {
		return err
	}

	notification := &entity.Notification{ID: notificationID, Name: name, Image: image}
	if err := h.uc.UpdateNotification(c.Request().Context(), notification); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Notificación actualizada")
}

// DeleteNotification handles DELETE /notificaciones/:id.
func (h *CatalogHandler) DeleteNotification(c echo.Context) error {
	notificationID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteNotification(c.Request().Context(), notificationID); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Notificación eliminada")
}

// ListRoles handles GET /roles.
func (h *CatalogHandler) ListRoles(c echo.Context) error {
	roles, err := h.uc.ListRoles(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, roles)
}
