package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Coupon is a time-bound discount a user can apply once.
type Coupon struct {
	ID          int64           `json:"idcupon"`
	Name        string          `json:"nombre"`
	Description string          `json:"descripcion"`
	Discount    decimal.Decimal `json:"descuento"`
	StartsAt    *time.Time      `json:"fecha_inicio"`
	ExpiresAt   *time.Time      `json:"fecha_fin"`
}

// UserCoupon tracks the per-user used flag for a coupon.
type UserCoupon struct {
	CouponID int64      `json:"idcupon"`
	UserID   int64      `json:"idusuario"`
	Used     bool       `json:"usado"`
	UsedAt   *time.Time `json:"fecha_uso"`
}
