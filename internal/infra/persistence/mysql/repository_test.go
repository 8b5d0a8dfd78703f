package mysql

import (
	"context"
	"testing"

	"pepperoni/internal/domain/entity"
	"pepperoni/internal/infra/persistence/model"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory database with the full schema. The
// SQL the repositories emit is dialect-neutral, so the sqlite driver stands
// in for MySQL without changing any repository code.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.UserModel{},
		&model.RoleModel{},
		&model.ProductModel{},
		&model.CategoryModel{},
		&model.OfferModel{},
		&model.NotificationModel{},
		&model.CartLineModel{},
		&model.OrderModel{},
		&model.OrderLineModel{},
		&model.LoyaltyAccountModel{},
		&model.RedeemableModel{},
		&model.CouponModel{},
		&model.UserCouponModel{},
		&model.ReviewModel{},
	))

	return db
}

func seedUser(t *testing.T, db *gorm.DB, id int64) {
	t.Helper()

	require.NoError(t, db.Create(&model.UserModel{
		ID:       id,
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "secret",
		RoleID:   1,
	}).Error)
}

func TestCartRepository_UpsertMergesQuantity(t *testing.T) {
	db := newTestDB(t)
	repo := NewCartRepository(db)
	ctx := context.Background()

	line := &entity.CartLine{
		ProductID:  7,
		UserID:     1,
		Name:       "Pizza Pepperoni",
		Quantity:   2,
		Total:      decimal.NewFromInt(30),
		CategoryID: 1,
	}
	require.NoError(t, repo.Upsert(ctx, line))

	// Same (user, product) again: quantity merges, total is overwritten.
	line2 := &entity.CartLine{
		ProductID:  7,
		UserID:     1,
		Name:       "Pizza Pepperoni",
		Quantity:   3,
		Total:      decimal.NewFromInt(75),
		CategoryID: 1,
	}
	require.NoError(t, repo.Upsert(ctx, line2))

	lines, err := repo.FindByUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 5, lines[0].Quantity)
	assert.True(t, decimal.NewFromInt(75).Equal(lines[0].Total))
}

func TestCartRepository_UpsertKeepsUsersApart(t *testing.T) {
	db := newTestDB(t)
	repo := NewCartRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, &entity.CartLine{
		ProductID: 7, UserID: 1, Name: "Pizza", Quantity: 1, Total: decimal.NewFromInt(15),
	}))
	require.NoError(t, repo.Upsert(ctx, &entity.CartLine{
		ProductID: 7, UserID: 2, Name: "Pizza", Quantity: 4, Total: decimal.NewFromInt(60),
	}))

	lines, err := repo.FindByUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 1, lines[0].Quantity)

	lines, err = repo.FindByUser(ctx, 2)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 4, lines[0].Quantity)
}

func TestCartRepository_DeleteLineIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	repo := NewCartRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.DeleteLine(ctx, 99, 1))

	require.NoError(t, repo.Upsert(ctx, &entity.CartLine{
		ProductID: 7, UserID: 1, Name: "Pizza", Quantity: 1, Total: decimal.NewFromInt(15),
	}))
	require.NoError(t, repo.DeleteLine(ctx, 7, 1))
	require.NoError(t, repo.DeleteLine(ctx, 7, 1))

	lines, err := repo.FindByUser(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestCartRepository_ClearRemovesOnlyOwnLines(t *testing.T) {
	db := newTestDB(t)
	repo := NewCartRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, &entity.CartLine{ProductID: 1, UserID: 1, Quantity: 1, Total: decimal.NewFromInt(10)}))
	require.NoError(t, repo.Upsert(ctx, &entity.CartLine{ProductID: 2, UserID: 1, Quantity: 1, Total: decimal.NewFromInt(12)}))
	require.NoError(t, repo.Upsert(ctx, &entity.CartLine{ProductID: 1, UserID: 2, Quantity: 1, Total: decimal.NewFromInt(10)}))

	require.NoError(t, repo.Clear(ctx, 1))

	lines, err := repo.FindByUser(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, lines)

	lines, err = repo.FindByUser(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, lines, 1)
}
