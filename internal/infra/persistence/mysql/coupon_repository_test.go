package mysql

import (
	"context"
	"testing"

	"pepperoni/internal/domain/entity"
	"pepperoni/internal/domain/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCouponRepository_MarkUsedSpendsOnce(t *testing.T) {
	db := newTestDB(t)
	repo := NewCouponRepository(db)
	ctx := context.Background()

	coupon := &entity.Coupon{Name: "2x1 martes", Discount: decimal.NewFromInt(50)}
	require.NoError(t, repo.Create(ctx, coupon))

	require.NoError(t, repo.MarkUsed(ctx, coupon.ID, 1))

	err := repo.MarkUsed(ctx, coupon.ID, 1)
	assert.ErrorIs(t, err, repository.ErrCouponAlreadyUsed)

	// A different user still has their own flag.
	require.NoError(t, repo.MarkUsed(ctx, coupon.ID, 2))
}

func TestCouponRepository_DeleteRemovesFlags(t *testing.T) {
	db := newTestDB(t)
	repo := NewCouponRepository(db)
	ctx := context.Background()

	coupon := &entity.Coupon{Name: "envio gratis", Discount: decimal.NewFromInt(10)}
	require.NoError(t, repo.Create(ctx, coupon))
	require.NoError(t, repo.MarkUsed(ctx, coupon.ID, 1))

	require.NoError(t, repo.Delete(ctx, coupon.ID))

	coupons, err := repo.List(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, coupons)

	assert.ErrorIs(t, repo.Delete(ctx, coupon.ID), repository.ErrCouponNotFound)
}
