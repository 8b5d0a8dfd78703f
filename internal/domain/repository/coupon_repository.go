package repository

import (
	"context"

	"pepperoni/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for coupon persistence.
var (
	// ErrCouponNotFound is returned when no coupon matched the key.
	ErrCouponNotFound = errors.New("coupon not found")
	// ErrCouponAlreadyUsed is returned when the user already spent the coupon.
	ErrCouponAlreadyUsed = errors.New("coupon already used")
)

// CouponRepository defines the interface for coupon persistence, including
// the per-user used flag kept in the user_cupones join table.
type CouponRepository interface {
	// List retrieves coupons, optionally filtered by ID.
	List(ctx context.Context, id *int64) ([]*entity.Coupon, error)

	// Create inserts a coupon and fills in the generated ID.
	Create(ctx context.Context, coupon *entity.Coupon) error

	// Update overwrites a coupon. Returns ErrCouponNotFound when no row matched.
	Update(ctx context.Context, coupon *entity.Coupon) error

	// Delete removes a coupon. Returns ErrCouponNotFound when no row matched.
	Delete(ctx context.Context, id int64) error

	// MarkUsed flags the coupon as spent for the user, atomically: the
	// insert-or-flip only succeeds when the flag was not already set.
	// Returns ErrCouponAlreadyUsed otherwise.
	MarkUsed(ctx context.Context, couponID, userID int64) error
}
