package usecase

import (
	"context"

	"pepperoni/internal/domain/entity"
	"pepperoni/internal/domain/repository"
)

// CatalogUsecase defines the interface for catalog management: products,
// categories, offers, notifications and role lookups.
type CatalogUsecase interface {
	// ListProducts retrieves products matching the filter.
	ListProducts(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, error)

	// GetProduct retrieves one product.
	GetProduct(ctx context.Context, id int64) (*entity.Product, error)

	// CreateProduct inserts a product.
	CreateProduct(ctx context.Context, product *entity.Product) error

	// UpdateProduct overwrites a product; an empty image keeps the stored one.
	UpdateProduct(ctx context.Context, product *entity.Product) error

	// DeleteProduct removes a product.
	DeleteProduct(ctx context.Context, id int64) error

	ListCategories(ctx context.Context) ([]*entity.Category, error)
	CreateCategory(ctx context.Context, category *entity.Category) error
	UpdateCategory(ctx context.Context, category *entity.Category) error
	DeleteCategory(ctx context.Context, id int64) error

	ListOffers(ctx context.Context, id *int64) ([]*entity.Offer, error)
	CreateOffer(ctx context.Context, offer *entity.Offer) error
	UpdateOffer(ctx context.Context, offer *entity.Offer) error
	DeleteOffer(ctx context.Context, id int64) error

	ListNotifications(ctx context.Context) ([]*entity.Notification, error)
	CreateNotification(ctx context.Context, notification *entity.Notification) error
	UpdateNotification(ctx context.Context, notification *entity.Notification) error
	DeleteNotification(ctx context.Context, id int64) error

	ListRoles(ctx context.Context) ([]*entity.Role, error)
}
