package usecase

import (
	"context"

	"pepperoni/internal/domain/entity"
)

// UseCouponInput marks a coupon as spent for a user.
type UseCouponInput struct {
	UserID int64 `json:"idusuario" validate:"required"`
}

// CouponUsecase defines the interface for coupon use cases.
type CouponUsecase interface {
	// List retrieves coupons, optionally filtered by ID.
	List(ctx context.Context, id *int64) ([]*entity.Coupon, error)

	// Create inserts a coupon.
	Create(ctx context.Context, coupon *entity.Coupon) error

	// Update overwrites a coupon.
	Update(ctx context.Context, coupon *entity.Coupon) error

	// Delete removes a coupon and its per-user flags.
	Delete(ctx context.Context, id int64) error

	// Use marks the coupon as spent for the user. The coupon must exist and
	// be inside its activation window; a coupon can be spent once per user.
	Use(ctx context.Context, couponID int64, input *UseCouponInput) error
}
