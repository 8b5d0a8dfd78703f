package impl

import (
	"context"
	"log/slog"

	"pepperoni/internal/domain/entity"
	domainerrors "pepperoni/internal/domain/errors"
	"pepperoni/internal/domain/repository"
	"pepperoni/internal/errors"
	"pepperoni/internal/usecase"
)

// reviewService implements the ReviewUsecase interface.
type reviewService struct {
	reviewRepo repository.ReviewRepository
	logger     *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(
	reviewRepo repository.ReviewRepository,
	logger *slog.Logger,
) usecase.ReviewUsecase {
	return &reviewService{
		reviewRepo: reviewRepo,
		logger:     logger,
	}
}

// Add stores a review for a product.
func (srv *reviewService) Add(ctx context.Context, input *usecase.AddReviewInput) (*entity.Review, error) {
	srv.logger.Debug("Adding review", "userID", input.UserID, "productID", input.ProductID)

	review := &entity.Review{
		UserID:    input.UserID,
		ProductID: input.ProductID,
		Rating:    input.Rating,
		Comment:   input.Comment,
	}

	if err := srv.reviewRepo.Create(ctx, review); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to add review")
	}

	return review, nil
}

// ListByProduct retrieves the product's reviews with reviewer names.
func (srv *reviewService) ListByProduct(ctx context.Context, productID int64) ([]*entity.Review, error) {
	reviews, err := srv.reviewRepo.ListByProduct(ctx, productID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	return reviews, nil
}
