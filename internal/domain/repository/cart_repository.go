// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"pepperoni/internal/domain/entity"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// ErrCartLineNotFound is returned when no cart line matched the key.
var ErrCartLineNotFound = errors.New("cart line not found")

// CartRepository defines the interface for shopping cart persistence.
type CartRepository interface {
	// Upsert adds the line to the user's cart. If a line for the same
	// (user, product) already exists, the quantity is merged additively and
	// the total overwritten with the caller-supplied value, in one atomic
	// statement.
	Upsert(ctx context.Context, line *entity.CartLine) error

	// FindByUser retrieves every cart line for the user. An empty cart
	// yields an empty slice, not an error.
	FindByUser(ctx context.Context, userID int64) ([]*entity.CartLine, error)

	// UpdateLine overwrites quantity and total for one line.
	// Returns ErrCartLineNotFound when no row matched.
	UpdateLine(ctx context.Context, productID, userID int64, quantity int, total decimal.Decimal) error

	// DeleteLine removes one line. Deleting a nonexistent line is not an error.
	DeleteLine(ctx context.Context, productID, userID int64) error

	// Clear removes every line of the user's cart. Idempotent.
	Clear(ctx context.Context, userID int64) error
}
