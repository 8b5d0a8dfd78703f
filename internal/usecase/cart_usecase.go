// Package usecase defines the interfaces for the application's business rules.
package usecase

import (
	"context"

	"pepperoni/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// AddToCartInput represents a product being added to a user's cart.
type AddToCartInput struct {
	ProductID  int64           `json:"idproducto" validate:"required"`
	UserID     int64           `json:"idusuario" validate:"required"`
	Name       string          `json:"nombre" validate:"required"`
	Quantity   int             `json:"cantidad" validate:"required,gt=0"`
	Total      decimal.Decimal `json:"total" validate:"required"`
	Image      string          `json:"imagen"`
	CategoryID int64           `json:"idcategoria"`
}

// UpdateCartLineInput carries the overwrite values for one cart line.
type UpdateCartLineInput struct {
	UserID   int64           `json:"idusuario" validate:"required"`
	Quantity int             `json:"cantidad" validate:"required,gt=0"`
	Total    decimal.Decimal `json:"total" validate:"required"`
}

// CartUsecase defines the interface for shopping cart use cases.
type CartUsecase interface {
	// AddToCart adds a product to the user's cart, merging quantity when the
	// product is already there. The user must exist.
	AddToCart(ctx context.Context, input *AddToCartInput) error

	// GetCart retrieves the user's cart lines. An empty cart is a valid
	// empty result.
	GetCart(ctx context.Context, userID int64) ([]*entity.CartLine, error)

	// UpdateLine overwrites quantity and total for one line.
	UpdateLine(ctx context.Context, productID int64, input *UpdateCartLineInput) error

	// RemoveLine removes one line. Removing a line that is not there
	// succeeds silently.
	RemoveLine(ctx context.Context, productID, userID int64) error

	// Clear empties the user's cart. Idempotent.
	Clear(ctx context.Context, userID int64) error
}
