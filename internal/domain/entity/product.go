package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog entry. Read-only from the order/cart/loyalty core;
// managed through the catalog CRUD surface.
type Product struct {
	ID          int64           `json:"id_producto"`
	Name        string          `json:"nombre"`
	Description string          `json:"descripcion"`
	Size        string          `json:"tamano"` // Pizza size label (personal, mediana, familiar...).
	Price       decimal.Decimal `json:"precio"`
	CategoryID  int64           `json:"idcategoria"`
	OfferID     *int64          `json:"idoferta"` // Optional reference to an active offer.
	Image       string          `json:"imagen"`   // Stored file name; expanded to a full URL at the delivery layer.
}

// Category groups products and defines the loyalty points earned per purchase.
type Category struct {
	ID          int64  `json:"idcategoria"`
	Name        string `json:"nombre"`
	Description string `json:"descripcion"`
	Points      int    `json:"puntos"`
}

// Offer is a time-bound discount applied to products.
type Offer struct {
	ID          int64           `json:"idoferta"`
	Name        string          `json:"nombre"`
	Description string          `json:"descripcion"`
	Discount    decimal.Decimal `json:"descuento"`
	StartsAt    *time.Time      `json:"fecha_inicio"`
	ExpiresAt   *time.Time      `json:"fecha_fin"`
}

// Notification is a broadcast banner shown in the storefront.
type Notification struct {
	ID    int64  `json:"idnotificacion"`
	Name  string `json:"nombre"`
	Image string `json:"imagen"`
}
