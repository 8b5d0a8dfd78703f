package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the closed set of states an order moves through.
type OrderStatus string

const (
	StatusCreated        OrderStatus = "created"
	StatusReceived       OrderStatus = "received"
	StatusPreparing      OrderStatus = "preparing"
	StatusReadyForPickup OrderStatus = "ready_for_pickup"
	StatusDelivered      OrderStatus = "delivered"
)

// orderStatuses is the authoritative membership set. Updates may jump
// between any two members; only membership is enforced.
var orderStatuses = map[OrderStatus]bool{
	StatusCreated:        true,
	StatusReceived:       true,
	StatusPreparing:      true,
	StatusReadyForPickup: true,
	StatusDelivered:      true,
}

// IsValid reports whether s is a member of the closed status set.
func (s OrderStatus) IsValid() bool {
	return orderStatuses[s]
}

// OrderStatuses returns all valid statuses, in workflow order.
func OrderStatuses() []OrderStatus {
	return []OrderStatus{
		StatusCreated,
		StatusReceived,
		StatusPreparing,
		StatusReadyForPickup,
		StatusDelivered,
	}
}

// Order is the header record for a purchase. It owns an ordered collection
// of OrderLines, created together with the header in one transaction.
type Order struct {
	ID              int64           `json:"idorden"`
	UserID          int64           `json:"idusuario"`
	OrderDate       time.Time       `json:"fecha_orden"`
	Status          OrderStatus     `json:"estado"`
	Total           decimal.Decimal `json:"total"`
	PaymentMethod   string          `json:"metodopago"`
	DeliveryAddress string          `json:"direccionentrega"`
	ContactPhone    string          `json:"telefonocontacto"`
	Lines           []OrderLine     `json:"detalle_orden,omitempty"`
}

// OrderLine is one (product, quantity, unit price) row of an order.
// Lines are immutable once the order is created; they only disappear
// with the order itself.
type OrderLine struct {
	ID        int64           `json:"iddetalle_orden"`
	OrderID   int64           `json:"idorden"`
	ProductID int64           `json:"id_producto"`
	Quantity  int             `json:"cantidad"`
	UnitPrice decimal.Decimal `json:"precio_unitario"`
}
