package usecase

import (
	"context"

	"pepperoni/internal/domain/entity"
)

// AddReviewInput represents a new product review.
type AddReviewInput struct {
	UserID    int64  `json:"idusuario" validate:"required"`
	ProductID int64  `json:"id_producto" validate:"required"`
	Rating    int    `json:"calificacion" validate:"required,min=1,max=5"`
	Comment   string `json:"comentario" validate:"required"`
}

// ReviewUsecase defines the interface for product review use cases.
type ReviewUsecase interface {
	// Add stores a review for a product.
	Add(ctx context.Context, input *AddReviewInput) (*entity.Review, error)

	// ListByProduct retrieves the product's reviews with reviewer names.
	ListByProduct(ctx context.Context, productID int64) ([]*entity.Review, error)
}
