package impl

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"pepperoni/config"
	"pepperoni/internal/domain/entity"
	domainerrors "pepperoni/internal/domain/errors"
	"pepperoni/internal/domain/repository"
	"pepperoni/internal/errors"
	"pepperoni/internal/usecase"
)

// loyaltyService implements the LoyaltyUsecase interface.
type loyaltyService struct {
	loyaltyRepo    repository.LoyaltyRepository
	redeemableRepo repository.RedeemableRepository
	cardPrefix     string
	now            func() time.Time
	logger         *slog.Logger
}

// NewLoyaltyService is the constructor for loyaltyService.
func NewLoyaltyService(
	loyaltyRepo repository.LoyaltyRepository,
	redeemableRepo repository.RedeemableRepository,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.LoyaltyUsecase {
	return &loyaltyService{
		loyaltyRepo:    loyaltyRepo,
		redeemableRepo: redeemableRepo,
		cardPrefix:     cfg.Loyalty.CardPrefix,
		now:            time.Now,
		logger:         logger,
	}
}

// Activate opens a zero-balance loyalty account. The card number is the
// configured prefix plus six zero-padded random digits, as the source issues
// them.
func (srv *loyaltyService) Activate(ctx context.Context, input *usecase.ActivateLoyaltyInput) (*entity.LoyaltyAccount, error) {
	srv.logger.Info("Activating loyalty account", "userID", input.UserID)

	account := &entity.LoyaltyAccount{
		UserID:     input.UserID,
		CardNumber: fmt.Sprintf("%s%06d", srv.cardPrefix, rand.IntN(1000000)),
	}

	if err := srv.loyaltyRepo.Create(ctx, account); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to activate loyalty account")
	}

	return account, nil
}

// GetAccount retrieves the user's loyalty account.
func (srv *loyaltyService) GetAccount(ctx context.Context, userID int64) (*entity.LoyaltyAccount, error) {
	account, err := srv.loyaltyRepo.FindByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to get loyalty account")
	}

	return account, nil
}

// UpdateAccount overwrites the account's point counters.
func (srv *loyaltyService) UpdateAccount(ctx context.Context, userID int64, input *usecase.UpdateLoyaltyInput) error {
	account := &entity.LoyaltyAccount{
		UserID:         userID,
		Balance:        input.Balance,
		LifetimeEarned: input.LifetimeEarned,
		LifetimeSpent:  input.LifetimeSpent,
	}

	if err := srv.loyaltyRepo.Update(ctx, account); err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return domainerrors.ErrAccountNotFound
		}

		return errors.Wrap(err, "failed to update loyalty account")
	}

	return nil
}

// Adjust credits or debits points relative to the current balance. The
// update is a single `puntos_actuales + delta` statement at the storage
// layer, so concurrent accruals never lose points.
func (srv *loyaltyService) Adjust(ctx context.Context, userID int64, input *usecase.AdjustLoyaltyInput) error {
	srv.logger.Info("Adjusting loyalty balance", "userID", userID, "delta", input.Delta)

	if err := srv.loyaltyRepo.Adjust(ctx, userID, input.Delta); err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return domainerrors.ErrAccountNotFound
		}

		return errors.Wrap(err, "failed to adjust loyalty balance")
	}

	return nil
}

// DeleteAccount removes the user's loyalty account.
func (srv *loyaltyService) DeleteAccount(ctx context.Context, userID int64) error {
	if err := srv.loyaltyRepo.Delete(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return domainerrors.ErrAccountNotFound
		}

		return errors.Wrap(err, "failed to delete loyalty account")
	}

	return nil
}

// Redeem exchanges points for the redeemable tied to the product. The debit
// is a single conditional statement at the storage layer, so two concurrent
// redemptions can never spend the same points twice.
func (srv *loyaltyService) Redeem(ctx context.Context, input *usecase.RedeemInput) error {
	srv.logger.Info("Redeeming product", "userID", input.UserID, "productID", input.ProductID)

	redeemable, err := srv.redeemableRepo.FindByProduct(ctx, input.ProductID)
	if err != nil {
		if errors.Is(err, repository.ErrRedeemableNotFound) {
			return domainerrors.ErrNotRedeemable
		}

		return errors.Wrap(err, "failed to find redeemable")
	}

	if !redeemable.ActiveAt(srv.now()) {
		return domainerrors.ErrNotRedeemable
	}

	if err := srv.loyaltyRepo.Debit(ctx, input.UserID, redeemable.PointsCost); err != nil {
		switch {
		case errors.Is(err, repository.ErrInsufficientBalance):
			return domainerrors.ErrInsufficientBalance
		case errors.Is(err, repository.ErrAccountNotFound):
			return domainerrors.ErrAccountNotFound
		}

		return errors.Wrap(err, "failed to debit points")
	}

	return nil
}

// ListRedeemables retrieves redeemables, optionally filtered by ID.
func (srv *loyaltyService) ListRedeemables(ctx context.Context, id *int64) ([]*entity.Redeemable, error) {
	redeemables, err := srv.redeemableRepo.List(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list redeemables")
	}

	return redeemables, nil
}

// CreateRedeemable adds a product to the redeemable catalog.
func (srv *loyaltyService) CreateRedeemable(ctx context.Context, redeemable *entity.Redeemable) error {
	if err := srv.redeemableRepo.Create(ctx, redeemable); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}

		return errors.Wrap(err, "failed to create redeemable")
	}

	return nil
}

// UpdateRedeemable overwrites a redeemable catalog entry.
func (srv *loyaltyService) UpdateRedeemable(ctx context.Context, redeemable *entity.Redeemable) error {
	if err := srv.redeemableRepo.Update(ctx, redeemable); err != nil {
		if errors.Is(err, repository.ErrRedeemableNotFound) {
			return domainerrors.ErrNotFound
		}

		return errors.Wrap(err, "failed to update redeemable")
	}

	return nil
}

// DeleteRedeemable removes a redeemable catalog entry.
func (srv *loyaltyService) DeleteRedeemable(ctx context.Context, id int64) error {
	if err := srv.redeemableRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrRedeemableNotFound) {
			return domainerrors.ErrNotFound
		}

		return errors.Wrap(err, "failed to delete redeemable")
	}

	return nil
}
