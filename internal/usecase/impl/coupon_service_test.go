package impl

import (
	"context"
	"testing"
	"time"

	"pepperoni/internal/domain/entity"
	domainerrors "pepperoni/internal/domain/errors"
	"pepperoni/internal/domain/repository"
	mockRepo "pepperoni/internal/mocks/repository"
	"pepperoni/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// couponServiceFixtures holds all test dependencies for coupon service tests.
type couponServiceFixtures struct {
	service    usecase.CouponUsecase
	couponRepo *mockRepo.MockCouponRepository
}

func createTestCouponService(t *testing.T) couponServiceFixtures {
	couponRepo := mockRepo.NewMockCouponRepository(t)
	service := NewCouponService(couponRepo, testLogger())

	return couponServiceFixtures{
		service:    service,
		couponRepo: couponRepo,
	}
}

func TestCouponService_Use_Success(t *testing.T) {
	fx := createTestCouponService(t)

	ctx := context.Background()
	couponID := int64(5)
	coupon := &entity.Coupon{
		ID:       couponID,
		Name:     "2x1 martes",
		Discount: decimal.NewFromInt(50),
	}

	fx.couponRepo.EXPECT().
		List(ctx, &couponID).
		Return([]*entity.Coupon{coupon}, nil)

	fx.couponRepo.EXPECT().
		MarkUsed(ctx, couponID, int64(3)).
		Return(nil)

	err := fx.service.Use(ctx, couponID, &usecase.UseCouponInput{UserID: 3})
	require.NoError(t, err)
}

func TestCouponService_Use_CouponMissing(t *testing.T) {
	fx := createTestCouponService(t)

	ctx := context.Background()
	couponID := int64(404)

	fx.couponRepo.EXPECT().
		List(ctx, &couponID).
		Return([]*entity.Coupon{}, nil)

	err := fx.service.Use(ctx, couponID, &usecase.UseCouponInput{UserID: 3})
	assert.Equal(t, domainerrors.ErrNotFound, err)
}

func TestCouponService_Use_Expired(t *testing.T) {
	fx := createTestCouponService(t)

	ctx := context.Background()
	couponID := int64(5)
	expired := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)
	coupon := &entity.Coupon{ID: couponID, ExpiresAt: &expired}

	fx.couponRepo.EXPECT().
		List(ctx, &couponID).
		Return([]*entity.Coupon{coupon}, nil)

	// No MarkUsed expectation: an expired coupon never reaches the flag.
	err := fx.service.Use(ctx, couponID, &usecase.UseCouponInput{UserID: 3})
	assert.Equal(t, domainerrors.ErrNotFound, err)
}

func TestCouponService_Use_NotYetActive(t *testing.T) {
	fx := createTestCouponService(t)

	ctx := context.Background()
	couponID := int64(5)
	starts := time.Now().Add(48 * time.Hour)
	coupon := &entity.Coupon{ID: couponID, StartsAt: &starts}

	fx.couponRepo.EXPECT().
		List(ctx, &couponID).
		Return([]*entity.Coupon{coupon}, nil)

	err := fx.service.Use(ctx, couponID, &usecase.UseCouponInput{UserID: 3})
	assert.Equal(t, domainerrors.ErrNotFound, err)
}

func TestCouponService_Use_AlreadyUsed(t *testing.T) {
	fx := createTestCouponService(t)

	ctx := context.Background()
	couponID := int64(5)
	coupon := &entity.Coupon{ID: couponID}

	fx.couponRepo.EXPECT().
		List(ctx, &couponID).
		Return([]*entity.Coupon{coupon}, nil)

	fx.couponRepo.EXPECT().
		MarkUsed(ctx, couponID, int64(3)).
		Return(repository.ErrCouponAlreadyUsed)

	err := fx.service.Use(ctx, couponID, &usecase.UseCouponInput{UserID: 3})
	assert.Equal(t, domainerrors.ErrCouponAlreadyUsed, err)
}

func TestCouponService_Delete_NotFound(t *testing.T) {
	fx := createTestCouponService(t)

	ctx := context.Background()

	fx.couponRepo.EXPECT().
		Delete(ctx, int64(404)).
		Return(repository.ErrCouponNotFound)

	err := fx.service.Delete(ctx, 404)
	assert.Equal(t, domainerrors.ErrNotFound, err)
}

func TestCouponService_List(t *testing.T) {
	fx := createTestCouponService(t)

	ctx := context.Background()
	expected := []*entity.Coupon{{ID: 1}, {ID: 2}}

	fx.couponRepo.EXPECT().
		List(ctx, (*int64)(nil)).
		Return(expected, nil)

	coupons, err := fx.service.List(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, expected, coupons)
}
