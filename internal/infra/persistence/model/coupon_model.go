package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// CouponModel is the GORM-specific struct for the 'cupones' table.
type CouponModel struct {
	ID          int64           `gorm:"column:idcupon;primaryKey;autoIncrement"`
	Name        string          `gorm:"column:nombre;type:varchar(100);not null"`
	Description string          `gorm:"column:descripcion;type:varchar(255)"`
	Discount    decimal.Decimal `gorm:"column:descuento;type:decimal(10,2);not null"`
	StartsAt    *time.Time      `gorm:"column:fecha_inicio"`
	ExpiresAt   *time.Time      `gorm:"column:fecha_fin"`
}

// TableName explicitly sets the table name for GORM.
func (CouponModel) TableName() string {
	return "cupones"
}

// UserCouponModel is the GORM-specific struct for the 'user_cupones' join
// table, tracking the per-user used flag.
type UserCouponModel struct {
	CouponID int64      `gorm:"column:idcupon;primaryKey"`
	UserID   int64      `gorm:"column:idusuario;primaryKey"`
	Used     bool       `gorm:"column:usado;not null;default:false"`
	UsedAt   *time.Time `gorm:"column:fecha_uso"`
}

// TableName explicitly sets the table name for GORM.
func (UserCouponModel) TableName() string {
	return "user_cupones"
}
