package entity

import "github.com/shopspring/decimal"

// CartLine is one product entry in a user's shopping cart. There is at most
// one line per (user, product); adding the same product again merges the
// quantity instead of duplicating the row.
//
// Total is supplied by the caller already discount-adjusted; the cart never
// recomputes pricing.
type CartLine struct {
	ProductID  int64           `json:"idproducto"`
	UserID     int64           `json:"idusuario"`
	Name       string          `json:"nombre"`
	Quantity   int             `json:"cantidad"`
	Total      decimal.Decimal `json:"total"`
	Image      string          `json:"imagen"`
	CategoryID int64           `json:"idcategoria"`
}
