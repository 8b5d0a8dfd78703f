package usecase

import (
	"context"

	"pepperoni/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// OrderLineInput is one item of an order being created.
type OrderLineInput struct {
	ProductID int64           `json:"id_producto" validate:"required"`
	Quantity  int             `json:"cantidad" validate:"required,gt=0"`
	UnitPrice decimal.Decimal `json:"precio_unitario"`
}

// CreateOrderInput represents a new order. When Lines is non-empty the order
// header and its lines are written in one transaction; the POS path sends no
// Lines field at all and gets a header-only insert.
type CreateOrderInput struct {
	UserID          int64            `json:"idusuario" validate:"required"`
	Status          string           `json:"estado"`
	Total           decimal.Decimal  `json:"total"`
	PaymentMethod   string           `json:"metodopago"`
	DeliveryAddress string           `json:"direccionentrega"`
	ContactPhone    string           `json:"telefonocontacto"`
	Lines           []OrderLineInput `json:"detalle_orden"`
}

// UpdateOrderInput carries the mutable header fields of an order.
type UpdateOrderInput struct {
	Status        string          `json:"estado" validate:"required"`
	PaymentMethod string          `json:"metodopago"`
	Total         decimal.Decimal `json:"total"`
}

// OrderUsecase defines the interface for order workflow use cases.
type OrderUsecase interface {
	// CreateOrder writes the order header and every line atomically and
	// returns the new order ID. One bad line discards the whole order.
	CreateOrder(ctx context.Context, input *CreateOrderInput) (int64, error)

	// CreateDirectOrder writes a header-only order in a single insert.
	CreateDirectOrder(ctx context.Context, input *CreateOrderInput) (int64, error)

	// GetOrder retrieves one order with its lines.
	GetOrder(ctx context.Context, id int64) (*entity.Order, error)

	// ListForUser retrieves the user's orders, newest first. Zero orders is
	// reported as not found, matching the behavior clients already rely on.
	ListForUser(ctx context.Context, userID int64) ([]*entity.Order, error)

	// ListAll retrieves every order.
	ListAll(ctx context.Context) ([]*entity.Order, error)

	// UpdateStatus moves the order to the given status. The status must be a
	// member of the closed set; jumps between any two members are allowed.
	UpdateStatus(ctx context.Context, id int64, status string) error

	// UpdateHeader overwrites status, payment method and total.
	UpdateHeader(ctx context.Context, id int64, input *UpdateOrderInput) error

	// Delete removes the order and its lines.
	Delete(ctx context.Context, id int64) error

	// ListLines retrieves order lines, optionally filtered by order.
	ListLines(ctx context.Context, orderID *int64) ([]*entity.OrderLine, error)

	// AddLine appends a line to an existing order.
	AddLine(ctx context.Context, line *entity.OrderLine) error

	// UpdateLine overwrites one order line.
	UpdateLine(ctx context.Context, line *entity.OrderLine) error

	// DeleteLine removes one order line.
	DeleteLine(ctx context.Context, id int64) error
}
