package impl

import (
	"context"
	"testing"

	"pepperoni/internal/domain/entity"
	domainerrors "pepperoni/internal/domain/errors"
	"pepperoni/internal/domain/repository"
	mockRepo "pepperoni/internal/mocks/repository"
	"pepperoni/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// catalogServiceFixtures holds all test dependencies for catalog service tests.
type catalogServiceFixtures struct {
	service     usecase.CatalogUsecase
	productRepo *mockRepo.MockProductRepository
	catalogRepo *mockRepo.MockCatalogRepository
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	productRepo := mockRepo.NewMockProductRepository(t)
	catalogRepo := mockRepo.NewMockCatalogRepository(t)
	service := NewCatalogService(productRepo, catalogRepo, testLogger())

	return catalogServiceFixtures{
		service:     service,
		productRepo: productRepo,
		catalogRepo: catalogRepo,
	}
}

func TestCatalogService_ListProducts_ByCategory(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	categoryID := int64(2)
	filter := repository.ProductFilter{CategoryID: &categoryID}
	expected := []*entity.Product{{ID: 1, CategoryID: 2}, {ID: 4, CategoryID: 2}}

	fx.productRepo.EXPECT().
		List(ctx, filter).
		Return(expected, nil)

	products, err := fx.service.ListProducts(ctx, filter)
	require.NoError(t, err)
	assert.Equal(t, expected, products)
}

func TestCatalogService_GetProduct_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()

	fx.productRepo.EXPECT().
		FindByID(ctx, int64(404)).
		Return(nil, repository.ErrProductNotFound)

	product, err := fx.service.GetProduct(ctx, 404)
	assert.Nil(t, product)
	assert.Equal(t, domainerrors.ErrProductNotFound, err)
}

func TestCatalogService_CreateProduct_CategoryMissing(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	product := &entity.Product{Name: "Pizza Hawaiana", CategoryID: 404}

	fx.productRepo.EXPECT().
		Create(ctx, product).
		Return(repository.ErrCategoryNotFound)

	err := fx.service.CreateProduct(ctx, product)
	assert.Equal(t, domainerrors.ErrNotFound, err)
}

func TestCatalogService_UpdateProduct_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	product := &entity.Product{ID: 404, Name: "Pizza Hawaiana"}

	fx.productRepo.EXPECT().
		Update(ctx, product).
		Return(repository.ErrProductNotFound)

	err := fx.service.UpdateProduct(ctx, product)
	assert.Equal(t, domainerrors.ErrProductNotFound, err)
}

func TestCatalogService_Categories_CRUD(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	category := &entity.Category{Name: "Bebidas", Points: 5}

	fx.catalogRepo.EXPECT().
		CreateCategory(ctx, category).
		Return(nil)

	require.NoError(t, fx.service.CreateCategory(ctx, category))

	fx.catalogRepo.EXPECT().
		ListCategories(ctx).
		Return([]*entity.Category{category}, nil)

	categories, err := fx.service.ListCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, categories, 1)

	fx.catalogRepo.EXPECT().
		DeleteCategory(ctx, int64(404)).
		Return(repository.ErrCategoryNotFound)

	assert.Equal(t, domainerrors.ErrNotFound, fx.service.DeleteCategory(ctx, 404))
}

func TestCatalogService_UpdateOffer_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	offer := &entity.Offer{ID: 404, Name: "Verano"}

	fx.catalogRepo.EXPECT().
		UpdateOffer(ctx, offer).
		Return(repository.ErrOfferNotFound)

	err := fx.service.UpdateOffer(ctx, offer)
	assert.Equal(t, domainerrors.ErrNotFound, err)
}

func TestCatalogService_Notifications(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	expected := []*entity.Notification{{ID: 1, Name: "Promo"}}

	fx.catalogRepo.EXPECT().
		ListNotifications(ctx).
		Return(expected, nil)

	notifications, err := fx.service.ListNotifications(ctx)
	require.NoError(t, err)
	assert.Equal(t, expected, notifications)

	fx.catalogRepo.EXPECT().
		DeleteNotification(ctx, int64(404)).
		Return(repository.ErrNotificationNotFound)

	assert.Equal(t, domainerrors.ErrNotFound, fx.service.DeleteNotification(ctx, 404))
}

func TestCatalogService_ListRoles(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	expected := []*entity.Role{{ID: 1, Name: "admin"}, {ID: 2, Name: "cliente"}}

	fx.catalogRepo.EXPECT().
		ListRoles(ctx).
		Return(expected, nil)

	roles, err := fx.service.ListRoles(ctx)
	require.NoError(t, err)
	assert.Equal(t, expected, roles)
}
