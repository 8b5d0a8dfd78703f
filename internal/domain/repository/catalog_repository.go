package repository

import (
	"context"

	"pepperoni/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for catalog persistence.
var (
	// ErrProductNotFound is returned when no product matched the key.
	ErrProductNotFound = errors.New("product not found")
	// ErrCategoryNotFound is returned when no category matched the key.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrOfferNotFound is returned when no offer matched the key.
	ErrOfferNotFound = errors.New("offer not found")
	// ErrNotificationNotFound is returned when no notification matched the key.
	ErrNotificationNotFound = errors.New("notification not found")
)

// ProductFilter narrows product listings; nil fields match everything.
type ProductFilter struct {
	CategoryID *int64
	OfferID    *int64
}

// ProductRepository defines the interface for product persistence.
type ProductRepository interface {
	// List retrieves products matching the filter.
	List(ctx context.Context, filter ProductFilter) ([]*entity.Product, error)

	// FindByID retrieves one product. Returns ErrProductNotFound when absent.
	FindByID(ctx context.Context, id int64) (*entity.Product, error)

	// Create inserts a product and fills in the generated ID.
	Create(ctx context.Context, product *entity.Product) error

	// Update overwrites a product, keeping the stored image when the entity
	// carries none. Returns ErrProductNotFound when no row matched.
	Update(ctx context.Context, product *entity.Product) error

	// Delete removes a product. Returns ErrProductNotFound when no row matched.
	Delete(ctx context.Context, id int64) error
}

// CatalogRepository covers the plain tabular collaborators: categories,
// offers, notifications and roles. Create/read/update/delete by primary key,
// nothing more.
type CatalogRepository interface {
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
