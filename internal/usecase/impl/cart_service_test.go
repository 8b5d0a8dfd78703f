package impl

import (
	"context"
	"testing"

	"pepperoni/internal/domain/entity"
	domainerrors "pepperoni/internal/domain/errors"
	"pepperoni/internal/domain/repository"
	mockRepo "pepperoni/internal/mocks/repository"
	"pepperoni/internal/usecase"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// cartServiceFixtures holds all test dependencies for cart service tests.
type cartServiceFixtures struct {
	service  usecase.CartUsecase
	cartRepo *mockRepo.MockCartRepository
	userRepo *mockRepo.MockUserRepository
}

func createTestCartService(t *testing.T) cartServiceFixtures {
	cartRepo := mockRepo.NewMockCartRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	service := NewCartService(cartRepo, userRepo, testLogger())

	return cartServiceFixtures{
		service:  service,
		cartRepo: cartRepo,
		userRepo: userRepo,
	}
}

func TestCartService_AddToCart_Success(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	input := &usecase.AddToCartInput{
		ProductID:  7,
		UserID:     3,
		Name:       "Pizza Pepperoni",
		Quantity:   2,
		Total:      decimal.NewFromInt(30),
		Image:      "pepperoni.jpg",
		CategoryID: 1,
	}

	fx.userRepo.EXPECT().
		Exists(ctx, int64(3)).
		Return(true, nil)

	fx.cartRepo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.CartLine")).
		Run(func(_ context.Context, line *entity.CartLine) {
			assert.Equal(t, int64(7), line.ProductID)
			assert.Equal(t, int64(3), line.UserID)
			assert.Equal(t, 2, line.Quantity)
			assert.True(t, decimal.NewFromInt(30).Equal(line.Total))
		}).
		Return(nil)

	err := fx.service.AddToCart(ctx, input)
	require.NoError(t, err)
}

func TestCartService_AddToCart_UserMissing(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	input := &usecase.AddToCartInput{
		ProductID: 7,
		UserID:    99,
		Name:      "Pizza Pepperoni",
		Quantity:  1,
		Total:     decimal.NewFromInt(15),
	}

	fx.userRepo.EXPECT().
		Exists(ctx, int64(99)).
		Return(false, nil)

	err := fx.service.AddToCart(ctx, input)
	assert.Error(t, err)
	assert.Equal(t, domainerrors.ErrUserNotFound, err)
}

func TestCartService_AddToCart_UpsertRejectsUser(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	input := &usecase.AddToCartInput{
		ProductID: 7,
		UserID:    3,
		Name:      "Pizza Pepperoni",
		Quantity:  1,
		Total:     decimal.NewFromInt(15),
	}

	// The pre-check can race a concurrent user delete; the store's foreign
	// key is the final word and must map to the same response.
	fx.userRepo.EXPECT().
		Exists(ctx, int64(3)).
		Return(true, nil)

	fx.cartRepo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.CartLine")).
		Return(repository.ErrUserNotFound)

	err := fx.service.AddToCart(ctx, input)
	assert.Equal(t, domainerrors.ErrUserNotFound, err)
}

func TestCartService_GetCart(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	expected := []*entity.CartLine{
		{ProductID: 1, UserID: 3, Quantity: 2},
		{ProductID: 5, UserID: 3, Quantity: 1},
	}

	fx.cartRepo.EXPECT().
		FindByUser(ctx, int64(3)).
		Return(expected, nil)

	lines, err := fx.service.GetCart(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, expected, lines)
}

func TestCartService_GetCart_Empty(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()

	fx.cartRepo.EXPECT().
		FindByUser(ctx, int64(3)).
		Return([]*entity.CartLine{}, nil)

	lines, err := fx.service.GetCart(ctx, 3)
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestCartService_UpdateLine_NotFound(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	input := &usecase.UpdateCartLineInput{
		UserID:   3,
		Quantity: 4,
		Total:    decimal.NewFromInt(60),
	}

	fx.cartRepo.EXPECT().
		UpdateLine(ctx, int64(7), int64(3), 4, decimal.NewFromInt(60)).
		Return(repository.ErrCartLineNotFound)

	err := fx.service.UpdateLine(ctx, 7, input)
	assert.Equal(t, domainerrors.ErrCartLineNotFound, err)
}

func TestCartService_RemoveLine_Success(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()

	fx.cartRepo.EXPECT().
		DeleteLine(ctx, int64(7), int64(3)).
		Return(nil)

	err := fx.service.RemoveLine(ctx, 7, 3)
	require.NoError(t, err)
}

func TestCartService_Clear_StoreError(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()

	fx.cartRepo.EXPECT().
		Clear(ctx, int64(3)).
		Return(errors.New("database error"))

	err := fx.service.Clear(ctx, 3)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to clear cart")
}
