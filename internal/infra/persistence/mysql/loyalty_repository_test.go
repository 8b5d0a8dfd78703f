package mysql

import (
	"context"
	"testing"

	"pepperoni/internal/domain/entity"
	"pepperoni/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedAccount(t *testing.T, repo repository.LoyaltyRepository, userID int64, balance int) *entity.LoyaltyAccount {
	t.Helper()

	account := &entity.LoyaltyAccount{
		UserID:         userID,
		CardNumber:     "PEPPER000001",
		Balance:        balance,
		LifetimeEarned: balance,
	}
	require.NoError(t, repo.Create(context.Background(), account))

	return account
}

func TestLoyaltyRepository_DebitSpendsExactBalance(t *testing.T) {
	db := newTestDB(t)
	repo := NewLoyaltyRepository(db)
	ctx := context.Background()

	seedUser(t, db, 1)
	seedAccount(t, repo, 1, 100)

	require.NoError(t, repo.Debit(ctx, 1, 100))

	account, err := repo.FindByUser(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, account.Balance)
	assert.Equal(t, 100, account.LifetimeSpent)
}

func TestLoyaltyRepository_DebitGuardHoldsOneShort(t *testing.T) {
	db := newTestDB(t)
	repo := NewLoyaltyRepository(db)
	ctx := context.Background()

	seedUser(t, db, 1)
	seedAccount(t, repo, 1, 99)

	err := repo.Debit(ctx, 1, 100)
	assert.ErrorIs(t, err, repository.ErrInsufficientBalance)

	// A failed guard must leave every counter untouched.
	account, findErr := repo.FindByUser(ctx, 1)
	require.NoError(t, findErr)
	assert.Equal(t, 99, account.Balance)
	assert.Equal(t, 0, account.LifetimeSpent)
}

func TestLoyaltyRepository_DebitMissingAccount(t *testing.T) {
	db := newTestDB(t)
	repo := NewLoyaltyRepository(db)

	err := repo.Debit(context.Background(), 404, 10)
	assert.ErrorIs(t, err, repository.ErrAccountNotFound)
}

func TestLoyaltyRepository_AdjustTracksLifetimeCounters(t *testing.T) {
	db := newTestDB(t)
	repo := NewLoyaltyRepository(db)
	ctx := context.Background()

	seedUser(t, db, 1)
	seedAccount(t, repo, 1, 0)

	require.NoError(t, repo.Adjust(ctx, 1, 50))
	require.NoError(t, repo.Adjust(ctx, 1, -20))

	account, err := repo.FindByUser(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 30, account.Balance)
	assert.Equal(t, 50, account.LifetimeEarned)
	assert.Equal(t, 20, account.LifetimeSpent)
}

func TestLoyaltyRepository_OneAccountPerUser(t *testing.T) {
	db := newTestDB(t)
	repo := NewLoyaltyRepository(db)

	seedUser(t, db, 1)
	seedAccount(t, repo, 1, 10)

	err := repo.Create(context.Background(), &entity.LoyaltyAccount{UserID: 1, CardNumber: "PEPPER000002"})
	assert.Error(t, err)
}
