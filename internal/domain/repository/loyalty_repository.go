package repository

import (
	"context"

	"pepperoni/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for loyalty persistence.
var (
	// ErrAccountNotFound is returned when the user has no loyalty account.
	ErrAccountNotFound = errors.New("loyalty account not found")
	// ErrInsufficientBalance is returned when a conditional debit matched the
	// account but the balance guard failed.
	ErrInsufficientBalance = errors.New("insufficient point balance")
	// ErrRedeemableNotFound is returned when a product has no redeemable entry.
	ErrRedeemableNotFound = errors.New("redeemable not found")
)

// LoyaltyRepository defines the interface for pepper points persistence.
type LoyaltyRepository interface {
	// Create inserts a new loyalty account and fills in the generated ID.
	Create(ctx context.Context, account *entity.LoyaltyAccount) error

	// FindByUser retrieves the user's loyalty account.
	// Returns ErrAccountNotFound when absent.
	FindByUser(ctx context.Context, userID int64) (*entity.LoyaltyAccount, error)

	// Update overwrites the account's point fields.
	// Returns ErrAccountNotFound when no row matched.
	Update(ctx context.Context, account *entity.LoyaltyAccount) error

	// Delete removes the user's loyalty account.
	// Returns ErrAccountNotFound when no row matched.
	Delete(ctx context.Context, userID int64) error

	// Adjust applies `balance = balance + delta` as a single atomic update.
	// Positive deltas also bump lifetime earned, negative ones lifetime spent.
	// Returns ErrAccountNotFound when no row matched.
	Adjust(ctx context.Context, userID int64, delta int) error

	// Debit spends cost points with a balance guard in the same statement
	// (`balance = balance - cost WHERE balance >= cost`), so two concurrent
	// redemptions can never double-spend. Returns ErrInsufficientBalance when
	// the account exists but the guard failed, ErrAccountNotFound when the
	// user has no account.
	Debit(ctx context.Context, userID int64, cost int) error
}

// RedeemableRepository defines the interface for redeemable catalog lookups.
type RedeemableRepository interface {
	// FindByProduct retrieves the redeemable entry for a catalog product.
	// Returns ErrRedeemableNotFound when the product is not redeemable.
	FindByProduct(ctx context.Context, productID int64) (*entity.Redeemable, error)

	// List retrieves redeemables, optionally filtered by ID.
	List(ctx context.Context, id *int64) ([]*entity.Redeemable, error)

	// Create inserts a redeemable and fills in the generated ID.
	Create(ctx context.Context, redeemable *entity.Redeemable) error

	// Update overwrites a redeemable. Returns ErrRedeemableNotFound when no
	// row matched.
	Update(ctx context.Context, redeemable *entity.Redeemable) error

	// Delete removes a redeemable. Returns ErrRedeemableNotFound when no row
	// matched.
	Delete(ctx context.Context, id int64) error
}
