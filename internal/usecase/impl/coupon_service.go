package impl

import (
	"context"
	"log/slog"
	"time"

	"pepperoni/internal/domain/entity"
	domainerrors "pepperoni/internal/domain/errors"
	"pepperoni/internal/domain/repository"
	"pepperoni/internal/errors"
	"pepperoni/internal/usecase"
)

// couponService implements the CouponUsecase interface.
type couponService struct {
	couponRepo repository.CouponRepository
	now        func() time.Time
	logger     *slog.Logger
}

// NewCouponService is the constructor for couponService.
func NewCouponService(
	couponRepo repository.CouponRepository,
	logger *slog.Logger,
) usecase.CouponUsecase {
	return &couponService{
		couponRepo: couponRepo,
		now:        time.Now,
		logger:     logger,
	}
}

// List retrieves coupons, optionally filtered by ID.
func (srv *couponService) List(ctx context.Context, id *int64) ([]*entity.Coupon, error) {
	coupons, err := srv.couponRepo.List(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list coupons")
	}

	return coupons, nil
}

// Create inserts a coupon.
func (srv *couponService) Create(ctx context.Context, coupon *entity.Coupon) error {
	srv.logger.Info("Creating coupon", "name", coupon.Name)

	if err := srv.couponRepo.Create(ctx, coupon); err != nil {
		return errors.Wrap(err, "failed to create coupon")
	}

	return nil
}

// Update overwrites a coupon.
func (srv *couponService) Update(ctx context.Context, coupon *entity.Coupon) error {
	if err := srv.couponRepo.Update(ctx, coupon); err != nil {
		if errors.Is(err, repository.ErrCouponNotFound) {
			return domainerrors.ErrNotFound
		}

		return errors.Wrap(err, "failed to update coupon")
	}

	return nil
}

// Delete removes a coupon and its per-user flags.
func (srv *couponService) Delete(ctx context.Context, id int64) error {
	if err := srv.couponRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrCouponNotFound) {
			return domainerrors.ErrNotFound
		}

		return errors.Wrap(err, "failed to delete coupon")
	}

	return nil
}

// Use marks the coupon as spent for the user. The coupon must exist and be
// inside its activation window; the spend flag flips at most once per user.
func (srv *couponService) Use(ctx context.Context, couponID int64, input *usecase.UseCouponInput) error {
	srv.logger.Info("Using coupon", "couponID", couponID, "userID", input.UserID)

	coupons, err := srv.couponRepo.List(ctx, &couponID)
	if err != nil {
		return errors.Wrap(err, "failed to find coupon")
	}
	if len(coupons) == 0 {
		return domainerrors.ErrNotFound
	}

	coupon := coupons[0]
	now := srv.now()
	if coupon.StartsAt != nil && now.Before(*coupon.StartsAt) {
		return domainerrors.ErrNotFound
	}
	if coupon.ExpiresAt != nil && now.After(*coupon.ExpiresAt) {
		return domainerrors.ErrNotFound
	}

	if err := srv.couponRepo.MarkUsed(ctx, couponID, input.UserID); err != nil {
		switch {
		case errors.Is(err, repository.ErrCouponAlreadyUsed):
			return domainerrors.ErrCouponAlreadyUsed
		case errors.Is(err, repository.ErrCouponNotFound):
			return domainerrors.ErrNotFound
		}

		return errors.Wrap(err, "failed to use coupon")
	}

	return nil
}
