// Package impl contains the application-specific business rules implementations.
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

// cartService implements the CartUsecase interface.
type cartService struct {
	cartRepo repository.CartRepository
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(
	cartRepo repository.CartRepository,
	userRepo repository.UserRepository,
	logger *slog.Logger,
) usecase.CartUsecase {
	return &cartService{
		cartRepo: cartRepo,
		userRepo: userRepo,
		logger:   logger,
	}
}

// AddToCart adds a product to the user's cart, merging quantity when a line
// for the same product already exists. The merge itself is atomic at the
// storage layer; only the user check happens up front.
func (srv *cartService) AddToCart(ctx context.Context, input *usecase.AddToCartInput) error {
	srv.logger.Debug("Adding product to cart", "userID", input.UserID, "productID", input.ProductID)

	exists, err := srv.userRepo.Exists(ctx, input.UserID)
	if err != nil {
		return errors.Wrap(err, "failed to check user")
	}
	if !exists {
		return domainerrors.ErrUserNotFound
	}

	line := &entity.CartLine{
		ProductID:  input.ProductID,
		UserID:     input.UserID,
		Name:       input.Name,
		Quantity:   input.Quantity,
		Total:      input.Total,
		Image:      input.Image,
		CategoryID: input.CategoryID,
	}

	if err := srv.cartRepo.Upsert(ctx, line); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to add to cart")
	}

	return nil
}

// GetCart retrieves the user's cart lines.
func (srv *cartService) GetCart(ctx context.Context, userID int64) ([]*entity.CartLine, error) {
	lines, err := srv.cartRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get cart")
	}

	return lines, nil
}

// UpdateLine overwrites quantity and total for one line.
func (srv *cartService) UpdateLine(ctx context.Context, productID int64, input *usecase.UpdateCartLineInput) error {
	err := srv.cartRepo.UpdateLine(ctx, productID, input.UserID, input.Quantity, input.Total)
	if err != nil {
		if errors.Is(err, repository.ErrCartLineNotFound) {
			return domainerrors.ErrCartLineNotFound
		}

		return errors.Wrap(err, "failed to update cart line")
	}

	return nil
}

// RemoveLine removes one line. Silently succeeds when the line is not there.
func (srv *cartService) RemoveLine(ctx context.Context, productID, userID int64) error {
	if err := srv.cartRepo.DeleteLine(ctx, productID, userID); err != nil {
		return errors.Wrap(err, "failed to remove cart line")
	}

	return nil
}

// Clear empties the user's cart.
func (srv *cartService) Clear(ctx context.Context, userID int64) error {
	if err := srv.cartRepo.Clear(ctx, userID); err != nil {
		return errors.Wrap(err, "failed to clear cart")
	}

	return nil
}
