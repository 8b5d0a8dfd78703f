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

// orderServiceFixtures holds all test dependencies for order service tests.
type orderServiceFixtures struct {
	service   usecase.OrderUsecase
	txManager *mockRepo.MockTransactionManager
	orderRepo *mockRepo.MockOrderRepository
	userRepo  *mockRepo.MockUserRepository
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	service := NewOrderService(txManager, orderRepo, userRepo, testLogger())

	return orderServiceFixtures{
		service:   service,
		txManager: txManager,
		orderRepo: orderRepo,
		userRepo:  userRepo,
	}
}

func TestOrderService_CreateOrder_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	input := &usecase.CreateOrderInput{
		UserID:        3,
		Total:         decimal.NewFromInt(45),
		PaymentMethod: "efectivo",
		Lines: []usecase.OrderLineInput{
			{ProductID: 1, Quantity: 2, UnitPrice: decimal.NewFromInt(15)},
			{ProductID: 2, Quantity: 1, UnitPrice: decimal.NewFromInt(15)},
		},
	}

	fx.userRepo.EXPECT().
		Exists(ctx, int64(3)).
		Return(true, nil)

	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().OrderRepo().Return(txOrderRepo)

	txOrderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(_ context.Context, order *entity.Order) {
			order.ID = 42
		}).
		Return(nil)

	var lines []*entity.OrderLine
	txOrderRepo.EXPECT().
		CreateLine(ctx, mock.AnythingOfType("*entity.OrderLine")).
		Run(func(_ context.Context, line *entity.OrderLine) {
			lines = append(lines, line)
		}).
		Return(nil).
		Times(2)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	orderID, err := fx.service.CreateOrder(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, int64(42), orderID)

	require.Len(t, lines, 2)
	assert.Equal(t, int64(42), lines[0].OrderID)
	assert.Equal(t, int64(42), lines[1].OrderID)
	assert.Equal(t, int64(1), lines[0].ProductID)
	assert.Equal(t, int64(2), lines[1].ProductID)
}

func TestOrderService_CreateOrder_DefaultsStatus(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	input := &usecase.CreateOrderInput{
		UserID: 3,
		Lines:  []usecase.OrderLineInput{{ProductID: 1, Quantity: 1}},
	}

	fx.userRepo.EXPECT().
		Exists(ctx, int64(3)).
		Return(true, nil)

	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().OrderRepo().Return(txOrderRepo)

	txOrderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(_ context.Context, order *entity.Order) {
			assert.Equal(t, entity.StatusCreated, order.Status)
		}).
		Return(nil)

	txOrderRepo.EXPECT().
		CreateLine(ctx, mock.AnythingOfType("*entity.OrderLine")).
		Return(nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	_, err := fx.service.CreateOrder(ctx, input)
	require.NoError(t, err)
}

func TestOrderService_CreateOrder_EmptyLines(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	input := &usecase.CreateOrderInput{UserID: 3}

	orderID, err := fx.service.CreateOrder(ctx, input)
	assert.Equal(t, domainerrors.ErrEmptyOrder, err)
	assert.Zero(t, orderID)
}

func TestOrderService_CreateOrder_UserMissing(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	input := &usecase.CreateOrderInput{
		UserID: 99,
		Lines:  []usecase.OrderLineInput{{ProductID: 1, Quantity: 1}},
	}

	fx.userRepo.EXPECT().
		Exists(ctx, int64(99)).
		Return(false, nil)

	orderID, err := fx.service.CreateOrder(ctx, input)
	assert.Equal(t, domainerrors.ErrUserNotFound, err)
	assert.Zero(t, orderID)
}

func TestOrderService_CreateOrder_RollbackSurfacesAsPersistence(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	input := &usecase.CreateOrderInput{
		UserID: 3,
		Lines:  []usecase.OrderLineInput{{ProductID: 1, Quantity: 1}},
	}

	fx.userRepo.EXPECT().
		Exists(ctx, int64(3)).
		Return(true, nil)

	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().OrderRepo().Return(txOrderRepo)

	txOrderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Return(nil)

	txOrderRepo.EXPECT().
		CreateLine(ctx, mock.AnythingOfType("*entity.OrderLine")).
		Return(errors.New("constraint failed"))

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	orderID, err := fx.service.CreateOrder(ctx, input)
	assert.Zero(t, orderID)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "PERSISTENCE_FAILURE", appErr.ErrorCode())
}

func TestOrderService_CreateDirectOrder(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	input := &usecase.CreateOrderInput{
		UserID:        3,
		Status:        "received",
		Total:         decimal.NewFromInt(20),
		PaymentMethod: "tarjeta",
	}

	fx.userRepo.EXPECT().
		Exists(ctx, int64(3)).
		Return(true, nil)

	fx.orderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(_ context.Context, order *entity.Order) {
			assert.Equal(t, entity.StatusReceived, order.Status)
			order.ID = 7
		}).
		Return(nil)

	orderID, err := fx.service.CreateDirectOrder(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, int64(7), orderID)
}

func TestOrderService_GetOrder_NotFound(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()

	fx.orderRepo.EXPECT().
		FindByID(ctx, int64(404)).
		Return(nil, repository.ErrOrderNotFound)

	order, err := fx.service.GetOrder(ctx, 404)
	assert.Nil(t, order)
	assert.Equal(t, domainerrors.ErrOrderNotFound, err)
}

func TestOrderService_ListForUser_EmptyIsNotFound(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()

	fx.orderRepo.EXPECT().
		FindByUser(ctx, int64(3)).
		Return([]*entity.Order{}, nil)

	orders, err := fx.service.ListForUser(ctx, 3)
	assert.Nil(t, orders)
	assert.Equal(t, domainerrors.ErrOrderNotFound, err)
}

func TestOrderService_UpdateStatus_InvalidSkipsStore(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()

	// No expectation on orderRepo: the status check must reject before
	// touching the store.
	err := fx.service.UpdateStatus(ctx, 1, "cancelled")
	assert.Equal(t, domainerrors.ErrInvalidStatus, err)
}

func TestOrderService_UpdateStatus_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()

	fx.orderRepo.EXPECT().
		UpdateStatus(ctx, int64(1), entity.StatusDelivered).
		Return(nil)

	err := fx.service.UpdateStatus(ctx, 1, "delivered")
	require.NoError(t, err)
}

func TestOrderService_UpdateStatus_OrderMissing(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()

	fx.orderRepo.EXPECT().
		UpdateStatus(ctx, int64(404), entity.StatusPreparing).
		Return(repository.ErrOrderNotFound)

	err := fx.service.UpdateStatus(ctx, 404, "preparing")
	assert.Equal(t, domainerrors.ErrOrderNotFound, err)
}

func TestOrderService_UpdateHeader_InvalidStatus(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	input := &usecase.UpdateOrderInput{Status: "bogus"}

	err := fx.service.UpdateHeader(ctx, 1, input)
	assert.Equal(t, domainerrors.ErrInvalidStatus, err)
}

func TestOrderService_Delete_NotFound(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()

	fx.orderRepo.EXPECT().
		Delete(ctx, int64(404)).
		Return(repository.ErrOrderNotFound)

	err := fx.service.Delete(ctx, 404)
	assert.Equal(t, domainerrors.ErrOrderNotFound, err)
}

func TestOrderService_AddLine_OrderMissing(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	line := &entity.OrderLine{OrderID: 404, ProductID: 1, Quantity: 1}

	fx.orderRepo.EXPECT().
		CreateLine(ctx, line).
		Return(repository.ErrOrderNotFound)

	err := fx.service.AddLine(ctx, line)
	assert.Equal(t, domainerrors.ErrOrderNotFound, err)
}

func TestOrderService_ListLines_Filtered(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := int64(42)
	expected := []*entity.OrderLine{{ID: 1, OrderID: 42}}

	fx.orderRepo.EXPECT().
		FindLines(ctx, &orderID).
		Return(expected, nil)

	lines, err := fx.service.ListLines(ctx, &orderID)
	require.NoError(t, err)
	assert.Equal(t, expected, lines)
}
