package repository

import (
	"context"

	"pepperoni/internal/domain/entity"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// Domain-specific errors for order persistence.
var (
	// ErrOrderNotFound is returned when no order matched the key.
	ErrOrderNotFound = errors.New("order not found")
	// ErrOrderLineNotFound is returned when no order line matched the key.
	ErrOrderLineNotFound = errors.New("order line not found")
)

// OrderRepository defines the interface for order persistence.
type OrderRepository interface {
	// Create inserts the order header and fills in the generated ID and
	// order date. Lines carried by the entity are NOT inserted here; the
	// workflow inserts them one by one inside the same transaction.
	Create(ctx context.Context, order *entity.Order) error

	// CreateLine inserts a single order line.
	CreateLine(ctx context.Context, line *entity.OrderLine) error

	// FindByID retrieves one order with its lines.
	// Returns ErrOrderNotFound when absent.
	FindByID(ctx context.Context, id int64) (*entity.Order, error)

	// FindByUser retrieves the user's orders, newest first. An empty result
	// is an empty slice; the workflow layer decides what that means.
	FindByUser(ctx context.Context, userID int64) ([]*entity.Order, error)

	// FindAll retrieves every order.
	FindAll(ctx context.Context) ([]*entity.Order, error)

	// UpdateStatus overwrites the status field only.
	// Returns ErrOrderNotFound when no row matched.
	UpdateStatus(ctx context.Context, id int64, status entity.OrderStatus) error

	// UpdateHeader overwrites status, payment method and total.
	// Returns ErrOrderNotFound when no row matched.
	UpdateHeader(ctx context.Context, id int64, status entity.OrderStatus, paymentMethod string, total decimal.Decimal) error

	// Delete removes the order and its lines.
	// Returns ErrOrderNotFound when no row matched.
	Delete(ctx context.Context, id int64) error

	// FindLines retrieves order lines, optionally filtered by order.
	FindLines(ctx context.Context, orderID *int64) ([]*entity.OrderLine, error)

	// UpdateLine overwrites one order line row.
	// Returns ErrOrderLineNotFound when no row matched.
	UpdateLine(ctx context.Context, line *entity.OrderLine) error

	// DeleteLine removes one order line row.
	// Returns ErrOrderLineNotFound when no row matched.
	DeleteLine(ctx context.Context, id int64) error
}
