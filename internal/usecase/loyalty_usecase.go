package usecase

import (
	"context"

	"pepperoni/internal/domain/entity"
)

// ActivateLoyaltyInput opens a loyalty account for a user.
type ActivateLoyaltyInput struct {
	UserID int64 `json:"id_usuario" validate:"required"`
}

// RedeemInput exchanges points for a redeemable product. The field names
// follow the storefront's cart vocabulary (idusuario/idproducto), not the
// activation endpoint's id_usuario.
type RedeemInput struct {
	UserID    int64 `json:"idusuario" validate:"required"`
	ProductID int64 `json:"idproducto" validate:"required"`
}

// UpdateLoyaltyInput overwrites the point counters of an account.
type UpdateLoyaltyInput struct {
	Balance        int `json:"puntos_actuales"`
	LifetimeEarned int `json:"puntos_totales"`
	LifetimeSpent  int `json:"puntos_gastados"`
}

// AdjustLoyaltyInput credits or debits points relative to the current
// balance. A zero delta is rejected at validation.
type AdjustLoyaltyInput struct {
	Delta int `json:"puntos" validate:"required"`
}

// LoyaltyUsecase defines the interface for pepper points use cases.
type LoyaltyUsecase interface {
	// Activate opens a zero-balance account with a fresh membership card
	// number and returns it.
	Activate(ctx context.Context, input *ActivateLoyaltyInput) (*entity.LoyaltyAccount, error)

	// GetAccount retrieves the user's loyalty account.
	GetAccount(ctx context.Context, userID int64) (*entity.LoyaltyAccount, error)

	// UpdateAccount overwrites the account's point counters.
	UpdateAccount(ctx context.Context, userID int64, input *UpdateLoyaltyInput) error

	// Adjust applies a relative point credit or debit. Positive deltas
	// accrue, negative deltas spend; lifetime counters follow the sign.
	Adjust(ctx context.Context, userID int64, input *AdjustLoyaltyInput) error

	// DeleteAccount removes the user's loyalty account.
	DeleteAccount(ctx context.Context, userID int64) error

	// Redeem exchanges points for the redeemable tied to the product. The
	// redeemable must exist and be inside its activation window; the debit
	// is conditional on sufficient balance.
	Redeem(ctx context.Context, input *RedeemInput) error

	// ListRedeemables retrieves redeemables, optionally filtered by ID.
	ListRedeemables(ctx context.Context, id *int64) ([]*entity.Redeemable, error)

	// CreateRedeemable adds a product to the redeemable catalog.
	CreateRedeemable(ctx context.Context, redeemable *entity.Redeemable) error

	// UpdateRedeemable overwrites a redeemable catalog entry.
	UpdateRedeemable(ctx context.Context, redeemable *entity.Redeemable) error

	// DeleteRedeemable removes a redeemable catalog entry.
	DeleteRedeemable(ctx context.Context, id int64) error
}
