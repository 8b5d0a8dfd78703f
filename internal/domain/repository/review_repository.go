package repository

import (
	"context"

	"pepperoni/internal/domain/entity"
)

// ReviewRepository defines the interface for product review persistence.
type ReviewRepository interface {
	// Create inserts a review, stamping the review date.
	Create(ctx context.Context, review *entity.Review) error

	// ListByProduct retrieves the product's reviews joined with the
	// reviewer's name.
	ListByProduct(ctx context.Context, productID int64) ([]*entity.Review, error)
}
