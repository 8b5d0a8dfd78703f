package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductModel is the GORM-specific struct for the 'productos' table.
type ProductModel struct {
	ID          int64           `gorm:"column:id_producto;primaryKey;autoIncrement"`
	Name        string          `gorm:"column:nombre;type:varchar(100);not null"`
	Description string          `gorm:"column:descripcion;type:varchar(255)"`
	Size        string          `gorm:"column:tamano;type:varchar(50)"`
	Price       decimal.Decimal `gorm:"column:precio;type:decimal(10,2);not null"`
	CategoryID  int64           `gorm:"column:idcategoria;not null;index"`
	OfferID     *int64          `gorm:"column:idoferta"`
	Image       string          `gorm:"column:imagen;type:varchar(255)"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "productos"
}

// CategoryModel is the GORM-specific struct for the 'categoria' table.
type CategoryModel struct {
	ID          int64  `gorm:"column:idcategoria;primaryKey;autoIncrement"`
	Name        string `gorm:"column:nombre;type:varchar(100);not null"`
	Description string `gorm:"column:descripcion;type:varchar(255)"`
	Points      int    `gorm:"column:puntos;not null;default:0"`
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categoria"
}

// OfferModel is the GORM-specific struct for the 'ofertas' table.
type OfferModel struct {
	ID          int64           `gorm:"column:idoferta;primaryKey;autoIncrement"`
	Name        string          `gorm:"column:nombre;type:varchar(100);not null"`
	Description string          `gorm:"column:descripcion;type:varchar(255)"`
	Discount    decimal.Decimal `gorm:"column:descuento;type:decimal(10,2);not null"`
	StartsAt    *time.Time      `gorm:"column:fecha_inicio"`
	ExpiresAt   *time.Time      `gorm:"column:fecha_fin"`
}

// TableName explicitly sets the table name for GORM.
func (OfferModel) TableName() string {
	return "ofertas"
}

// NotificationModel is the GORM-specific struct for the 'notificaciones' table.
type NotificationModel struct {
	ID    int64  `gorm:"column:idnotificacion;primaryKey;autoIncrement"`
	Name  string `gorm:"column:nombre;type:varchar(100);not null"`
	Image string `gorm:"column:imagen;type:varchar(255)"`
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notificaciones"
}
