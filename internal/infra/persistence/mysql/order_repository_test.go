package mysql

import (
	"context"
	"testing"

	"pepperoni/internal/domain/entity"
	"pepperoni/internal/domain/repository"
	"pepperoni/internal/infra/persistence/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderRepository_CreateFillsIDAndDate(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	seedUser(t, db, 1)

	order := &entity.Order{
		UserID:        1,
		Status:        entity.StatusCreated,
		Total:         decimal.NewFromInt(45),
		PaymentMethod: "efectivo",
	}
	require.NoError(t, repo.Create(ctx, order))
	assert.NotZero(t, order.ID)
	assert.False(t, order.OrderDate.IsZero())
}

func TestOrderRepository_FindByIDPreloadsLines(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	seedUser(t, db, 1)

	order := &entity.Order{UserID: 1, Status: entity.StatusCreated, Total: decimal.NewFromInt(45), PaymentMethod: "tarjeta"}
	require.NoError(t, repo.Create(ctx, order))
	require.NoError(t, repo.CreateLine(ctx, &entity.OrderLine{OrderID: order.ID, ProductID: 7, Quantity: 2, UnitPrice: decimal.NewFromInt(15)}))
	require.NoError(t, repo.CreateLine(ctx, &entity.OrderLine{OrderID: order.ID, ProductID: 9, Quantity: 1, UnitPrice: decimal.NewFromInt(15)}))

	found, err := repo.FindByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, found.ID)
	require.Len(t, found.Lines, 2)
	assert.Equal(t, int64(7), found.Lines[0].ProductID)
}

func TestOrderRepository_FindByIDMissing(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderRepository(db)

	_, err := repo.FindByID(context.Background(), 404)
	assert.ErrorIs(t, err, repository.ErrOrderNotFound)
}

func TestOrderRepository_UpdateStatus(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	seedUser(t, db, 1)
	order := &entity.Order{UserID: 1, Status: entity.StatusCreated, Total: decimal.NewFromInt(20), PaymentMethod: "efectivo"}
	require.NoError(t, repo.Create(ctx, order))

	require.NoError(t, repo.UpdateStatus(ctx, order.ID, entity.StatusPreparing))

	found, err := repo.FindByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPreparing, found.Status)

	assert.ErrorIs(t, repo.UpdateStatus(ctx, 404, entity.StatusDelivered), repository.ErrOrderNotFound)
}

func TestOrderRepository_DeleteRemovesLines(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	seedUser(t, db, 1)
	order := &entity.Order{UserID: 1, Status: entity.StatusCreated, Total: decimal.NewFromInt(20), PaymentMethod: "efectivo"}
	require.NoError(t, repo.Create(ctx, order))
	require.NoError(t, repo.CreateLine(ctx, &entity.OrderLine{OrderID: order.ID, ProductID: 7, Quantity: 1, UnitPrice: decimal.NewFromInt(20)}))

	require.NoError(t, repo.Delete(ctx, order.ID))

	_, err := repo.FindByID(ctx, order.ID)
	assert.ErrorIs(t, err, repository.ErrOrderNotFound)

	var lineCount int64
	require.NoError(t, db.Model(&model.OrderLineModel{}).Count(&lineCount).Error)
	assert.Zero(t, lineCount)

	// Deleting again reports the miss; order deletes are not idempotent.
	assert.ErrorIs(t, repo.Delete(ctx, order.ID), repository.ErrOrderNotFound)
}

// A failing line insert inside the transaction must discard the header and
// the lines already written. The quantity check rejects the third line here.
func TestTransactionManager_OrderRollsBackOnBadLine(t *testing.T) {
	db := newTestDB(t)
	tm := NewTransactionManager(db)
	ctx := context.Background()

	seedUser(t, db, 1)

	err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		orderRepo := f.OrderRepo()

		order := &entity.Order{UserID: 1, Status: entity.StatusCreated, Total: decimal.NewFromInt(60), PaymentMethod: "tarjeta"}
		if err := orderRepo.Create(ctx, order); err != nil {
			return err
		}

		lines := []*entity.OrderLine{
			{OrderID: order.ID, ProductID: 7, Quantity: 2, UnitPrice: decimal.NewFromInt(15)},
			{OrderID: order.ID, ProductID: 9, Quantity: 1, UnitPrice: decimal.NewFromInt(30)},
			{OrderID: order.ID, ProductID: 11, Quantity: 0, UnitPrice: decimal.NewFromInt(10)},
		}
		for _, line := range lines {
			if err := orderRepo.CreateLine(ctx, line); err != nil {
				return err
			}
		}

		return nil
	})
	require.Error(t, err)

	var headerCount, lineCount int64
	require.NoError(t, db.Model(&model.OrderModel{}).Count(&headerCount).Error)
	require.NoError(t, db.Model(&model.OrderLineModel{}).Count(&lineCount).Error)
	assert.Zero(t, headerCount)
	assert.Zero(t, lineCount)
}

func TestTransactionManager_CommitsOnSuccess(t *testing.T) {
	db := newTestDB(t)
	tm := NewTransactionManager(db)
	ctx := context.Background()

	seedUser(t, db, 1)

	err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		orderRepo := f.OrderRepo()

		order := &entity.Order{UserID: 1, Status: entity.StatusCreated, Total: decimal.NewFromInt(30), PaymentMethod: "efectivo"}
		if err := orderRepo.Create(ctx, order); err != nil {
			return err
		}

		return orderRepo.CreateLine(ctx, &entity.OrderLine{OrderID: order.ID, ProductID: 7, Quantity: 2, UnitPrice: decimal.NewFromInt(15)})
	})
	require.NoError(t, err)

	var headerCount, lineCount int64
	require.NoError(t, db.Model(&model.OrderModel{}).Count(&headerCount).Error)
	require.NoError(t, db.Model(&model.OrderLineModel{}).Count(&lineCount).Error)
	assert.EqualValues(t, 1, headerCount)
	assert.EqualValues(t, 1, lineCount)
}
