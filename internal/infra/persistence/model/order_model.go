package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderModel is the GORM-specific struct for the 'ordenes' table.
type OrderModel struct {
	ID              int64            `gorm:"column:idorden;primaryKey;autoIncrement"`
	UserID          int64            `gorm:"column:idusuario;not null;index"`
	OrderDate       time.Time        `gorm:"column:fecha_orden;not null"`
	Status          string           `gorm:"column:estado;type:varchar(30);not null"`
	Total           decimal.Decimal  `gorm:"column:total;type:decimal(10,2);not null"`
	PaymentMethod   string           `gorm:"column:metodopago;type:varchar(50);not null"`
	DeliveryAddress string           `gorm:"column:direccionentrega;type:varchar(255)"`
	ContactPhone    string           `gorm:"column:telefonocontacto;type:varchar(20)"`
	Lines           []OrderLineModel `gorm:"foreignKey:OrderID;references:ID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "ordenes"
}

// OrderLineModel is the GORM-specific struct for the 'detalle_orden' table.
// The quantity check backs the order workflow's all-or-nothing guarantee in
// tests as well as production: one bad line aborts the whole transaction.
type OrderLineModel struct {
	ID        int64           `gorm:"column:iddetalle_orden;primaryKey;autoIncrement"`
	OrderID   int64           `gorm:"column:idorden;not null;index"`
	ProductID int64           `gorm:"column:id_producto;not null"`
	Quantity  int             `gorm:"column:cantidad;not null;check:cantidad > 0"`
	UnitPrice decimal.Decimal `gorm:"column:precio_unitario;type:decimal(10,2);not null"`
}

// TableName explicitly sets the table name for GORM.
func (OrderLineModel) TableName() string {
	return "detalle_orden"
}
