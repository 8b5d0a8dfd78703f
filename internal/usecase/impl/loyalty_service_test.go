package impl

import (
	"context"
	"regexp"
	"testing"
	"time"

	"pepperoni/config"
	"pepperoni/internal/domain/entity"
	domainerrors "pepperoni/internal/domain/errors"
	"pepperoni/internal/domain/repository"
	mockRepo "pepperoni/internal/mocks/repository"
	"pepperoni/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// loyaltyServiceFixtures holds all test dependencies for loyalty service tests.
type loyaltyServiceFixtures struct {
	service        usecase.LoyaltyUsecase
	loyaltyRepo    *mockRepo.MockLoyaltyRepository
	redeemableRepo *mockRepo.MockRedeemableRepository
}

func createTestLoyaltyService(t *testing.T) loyaltyServiceFixtures {
	loyaltyRepo := mockRepo.NewMockLoyaltyRepository(t)
	redeemableRepo := mockRepo.NewMockRedeemableRepository(t)

	cfg := &config.Config{}
	cfg.Loyalty.CardPrefix = "PEPPER"

	service := NewLoyaltyService(loyaltyRepo, redeemableRepo, cfg, testLogger())

	return loyaltyServiceFixtures{
		service:        service,
		loyaltyRepo:    loyaltyRepo,
		redeemableRepo: redeemableRepo,
	}
}

func TestLoyaltyService_Activate_CardFormat(t *testing.T) {
	fx := createTestLoyaltyService(t)

	ctx := context.Background()

	fx.loyaltyRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.LoyaltyAccount")).
		Run(func(_ context.Context, account *entity.LoyaltyAccount) {
			account.ID = 1
		}).
		Return(nil)

	account, err := fx.service.Activate(ctx, &usecase.ActivateLoyaltyInput{UserID: 3})
	require.NoError(t, err)
	require.NotNil(t, account)
	assert.Equal(t, int64(3), account.UserID)
	assert.Regexp(t, regexp.MustCompile(`^PEPPER\d{6}$`), account.CardNumber)
	assert.Zero(t, account.Balance)
}

func TestLoyaltyService_Activate_UserMissing(t *testing.T) {
	fx := createTestLoyaltyService(t)

	ctx := context.Background()

	fx.loyaltyRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.LoyaltyAccount")).
		Return(repository.ErrUserNotFound)

	account, err := fx.service.Activate(ctx, &usecase.ActivateLoyaltyInput{UserID: 99})
	assert.Nil(t, account)
	assert.Equal(t, domainerrors.ErrUserNotFound, err)
}

func TestLoyaltyService_GetAccount_NotFound(t *testing.T) {
	fx := createTestLoyaltyService(t)

	ctx := context.Background()

	fx.loyaltyRepo.EXPECT().
		FindByUser(ctx, int64(3)).
		Return(nil, repository.ErrAccountNotFound)

	account, err := fx.service.GetAccount(ctx, 3)
	assert.Nil(t, account)
	assert.Equal(t, domainerrors.ErrAccountNotFound, err)
}

func TestLoyaltyService_Redeem_Success(t *testing.T) {
	fx := createTestLoyaltyService(t)

	ctx := context.Background()
	redeemable := &entity.Redeemable{
		ID:         1,
		ProductID:  7,
		PointsCost: 120,
	}

	fx.redeemableRepo.EXPECT().
		FindByProduct(ctx, int64(7)).
		Return(redeemable, nil)

	fx.loyaltyRepo.EXPECT().
		Debit(ctx, int64(3), 120).
		Return(nil)

	err := fx.service.Redeem(ctx, &usecase.RedeemInput{UserID: 3, ProductID: 7})
	require.NoError(t, err)
}

func TestLoyaltyService_Redeem_NotInCatalog(t *testing.T) {
	fx := createTestLoyaltyService(t)

	ctx := context.Background()

	fx.redeemableRepo.EXPECT().
		FindByProduct(ctx, int64(7)).
		Return(nil, repository.ErrRedeemableNotFound)

	err := fx.service.Redeem(ctx, &usecase.RedeemInput{UserID: 3, ProductID: 7})
	assert.Equal(t, domainerrors.ErrNotRedeemable, err)
}

func TestLoyaltyService_Redeem_WindowClosed(t *testing.T) {
	fx := createTestLoyaltyService(t)

	ctx := context.Background()
	expired := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
	redeemable := &entity.Redeemable{
		ID:         1,
		ProductID:  7,
		PointsCost: 120,
		ExpiresAt:  &expired,
	}

	fx.redeemableRepo.EXPECT().
		FindByProduct(ctx, int64(7)).
		Return(redeemable, nil)

	// No Debit expectation: an expired window must never reach the balance.
	err := fx.service.Redeem(ctx, &usecase.RedeemInput{UserID: 3, ProductID: 7})
	assert.Equal(t, domainerrors.ErrNotRedeemable, err)
}

func TestLoyaltyService_Redeem_WindowNotYetOpen(t *testing.T) {
	fx := createTestLoyaltyService(t)

	ctx := context.Background()
	opens := time.Now().Add(24 * time.Hour)
	redeemable := &entity.Redeemable{
		ID:         1,
		ProductID:  7,
		PointsCost: 120,
		StartsAt:   &opens,
	}

	fx.redeemableRepo.EXPECT().
		FindByProduct(ctx, int64(7)).
		Return(redeemable, nil)

	err := fx.service.Redeem(ctx, &usecase.RedeemInput{UserID: 3, ProductID: 7})
	assert.Equal(t, domainerrors.ErrNotRedeemable, err)
}

func TestLoyaltyService_Redeem_InsufficientBalance(t *testing.T) {
	fx := createTestLoyaltyService(t)

	ctx := context.Background()
	redeemable := &entity.Redeemable{
		ID:         1,
		ProductID:  7,
		PointsCost: 500,
	}

	fx.redeemableRepo.EXPECT().
		FindByProduct(ctx, int64(7)).
		Return(redeemable, nil)

	fx.loyaltyRepo.EXPECT().
		Debit(ctx, int64(3), 500).
		Return(repository.ErrInsufficientBalance)

	err := fx.service.Redeem(ctx, &usecase.RedeemInput{UserID: 3, ProductID: 7})
	assert.Equal(t, domainerrors.ErrInsufficientBalance, err)
}

func TestLoyaltyService_Redeem_AccountMissing(t *testing.T) {
	fx := createTestLoyaltyService(t)

	ctx := context.Background()
	redeemable := &entity.Redeemable{
		ID:         1,
		ProductID:  7,
		PointsCost: 120,
	}

	fx.redeemableRepo.EXPECT().
		FindByProduct(ctx, int64(7)).
		Return(redeemable, nil)

	fx.loyaltyRepo.EXPECT().
		Debit(ctx, int64(3), 120).
		Return(repository.ErrAccountNotFound)

	err := fx.service.Redeem(ctx, &usecase.RedeemInput{UserID: 3, ProductID: 7})
	assert.Equal(t, domainerrors.ErrAccountNotFound, err)
}

func TestLoyaltyService_UpdateAccount(t *testing.T) {
	fx := createTestLoyaltyService(t)

	ctx := context.Background()
	input := &usecase.UpdateLoyaltyInput{Balance: 30, LifetimeEarned: 50, LifetimeSpent: 20}

	fx.loyaltyRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.LoyaltyAccount")).
		Run(func(_ context.Context, account *entity.LoyaltyAccount) {
			assert.Equal(t, int64(3), account.UserID)
			assert.Equal(t, 30, account.Balance)
			assert.Equal(t, 50, account.LifetimeEarned)
			assert.Equal(t, 20, account.LifetimeSpent)
		}).
		Return(nil)

	err := fx.service.UpdateAccount(ctx, 3, input)
	require.NoError(t, err)
}

func TestLoyaltyService_Adjust_Credit(t *testing.T) {
	fx := createTestLoyaltyService(t)

	ctx := context.Background()

	fx.loyaltyRepo.EXPECT().
		Adjust(ctx, int64(3), 50).
		Return(nil)

	err := fx.service.Adjust(ctx, 3, &usecase.AdjustLoyaltyInput{Delta: 50})
	require.NoError(t, err)
}

func TestLoyaltyService_Adjust_AccountMissing(t *testing.T) {
	fx := createTestLoyaltyService(t)

	ctx := context.Background()

	fx.loyaltyRepo.EXPECT().
		Adjust(ctx, int64(9), -20).
		Return(repository.ErrAccountNotFound)

	err := fx.service.Adjust(ctx, 9, &usecase.AdjustLoyaltyInput{Delta: -20})
	assert.Equal(t, domainerrors.ErrAccountNotFound, err)
}

func TestLoyaltyService_ListRedeemables(t *testing.T) {
	fx := createTestLoyaltyService(t)

	ctx := context.Background()
	expected := []*entity.Redeemable{{ID: 1}, {ID: 2}}

	fx.redeemableRepo.EXPECT().
		List(ctx, (*int64)(nil)).
		Return(expected, nil)

	redeemables, err := fx.service.ListRedeemables(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, expected, redeemables)
}

func TestLoyaltyService_CreateRedeemable_ProductMissing(t *testing.T) {
	fx := createTestLoyaltyService(t)

	ctx := context.Background()
	redeemable := &entity.Redeemable{ProductID: 404, PointsCost: 100}

	fx.redeemableRepo.EXPECT().
		Create(ctx, redeemable).
		Return(repository.ErrProductNotFound)

	err := fx.service.CreateRedeemable(ctx, redeemable)
	assert.Equal(t, domainerrors.ErrProductNotFound, err)
}
