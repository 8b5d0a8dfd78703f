package mysql

import (
	"context"

	"pepperoni/internal/domain/entity"
	domainerrors "pepperoni/internal/domain/errors"
	"pepperoni/internal/domain/repository"
	"pepperoni/internal/errors"
	"pepperoni/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// loyaltyRepository implements the repository.LoyaltyRepository interface.
type loyaltyRepository struct {
	db *gorm.DB
}

// NewLoyaltyRepository is the constructor for loyaltyRepository.
func NewLoyaltyRepository(db *gorm.DB) repository.LoyaltyRepository {
	return &loyaltyRepository{
		db: db,
	}
}

// Create inserts a new loyalty account and fills in the generated ID.
func (repo *loyaltyRepository) Create(ctx context.Context, account *entity.LoyaltyAccount) error {
	accountM := fromLoyaltyDomain(account)

	if err := repo.db.WithContext(ctx).Create(accountM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.NewPersistenceError(err, "loyalty account already exists for user")
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewPersistenceError(err, "failed to insert loyalty account")
	}

	account.ID = accountM.ID

	return nil
}

// FindByUser retrieves the user's loyalty account.
func (repo *loyaltyRepository) FindByUser(ctx context.Context, userID int64) (*entity.LoyaltyAccount, error) {
	var accountM model.LoyaltyAccountModel

	if err := repo.db.WithContext(ctx).
		First(&accountM, "id_usuario = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, domainerrors.NewPersistenceError(err, "failed to find loyalty account by user")
	}

	return toLoyaltyDomain(&accountM), nil
}

// Update overwrites the account's point fields.
func (repo *loyaltyRepository) Update(ctx context.Context, account *entity.LoyaltyAccount) error {
	result := repo.db.WithContext(ctx).
		Model(&model.LoyaltyAccountModel{}).
		Where("id_usuario = ?", account.UserID).
		Updates(map[string]any{
			"puntos_actuales": account.Balance,
			"puntos_totales":  account.LifetimeEarned,
			"puntos_gastados": account.LifetimeSpent,
		})

	if result.Error != nil {
		return domainerrors.NewPersistenceError(result.Error, "failed to update loyalty account")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

// Delete removes the user's loyalty account.
func (repo *loyaltyRepository) Delete(ctx context.Context, userID int64) error {
	result := repo.db.WithContext(ctx).
		Where("id_usuario = ?", userID).
		Delete(&model.LoyaltyAccountModel{})

	if result.Error != nil {
		return domainerrors.NewPersistenceError(result.Error, "failed to delete loyalty account")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

// Adjust applies `puntos_actuales = puntos_actuales + delta` in one statement.
// Positive deltas also bump lifetime earned, negative ones lifetime spent, so
// the running totals stay consistent with the balance no matter how many
// writers race.
func (repo *loyaltyRepository) Adjust(ctx context.Context, userID int64, delta int) error {
	updates := map[string]any{
		"puntos_actuales": gorm.Expr("puntos_actuales + ?", delta),
	}
	if delta >= 0 {
		updates["puntos_totales"] = gorm.Expr("puntos_totales + ?", delta)
	} else {
		updates["puntos_gastados"] = gorm.Expr("puntos_gastados + ?", -delta)
	}

	result := repo.db.WithContext(ctx).
		Model(&model.LoyaltyAccountModel{}).
		Where("id_usuario = ?", userID).
		Updates(updates)

	if result.Error != nil {
		return domainerrors.NewPersistenceError(result.Error, "failed to adjust loyalty balance")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

// Debit spends cost points with the balance guard in the same statement, so
// two concurrent redemptions can never drive the balance negative. The
// follow-up existence check splits "account missing" from "balance short".
func (repo *loyaltyRepository) Debit(ctx context.Context, userID int64, cost int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.LoyaltyAccountModel{}).
		Where("id_usuario = ? AND puntos_actuales >= ?", userID, cost).
		Updates(map[string]any{
			"puntos_actuales": gorm.Expr("puntos_actuales - ?", cost),
			"puntos_gastados": gorm.Expr("puntos_gastados + ?", cost),
		})

	if result.Error != nil {
		return domainerrors.NewPersistenceError(result.Error, "failed to debit loyalty balance")
	}

	if result.RowsAffected > 0 {
		return nil
	}

	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.LoyaltyAccountModel{}).
		Where("id_usuario = ?", userID).
		Count(&count).Error; err != nil {
		return domainerrors.NewPersistenceError(err, "failed to check loyalty account existence")
	}

	if count == 0 {
		return repository.ErrAccountNotFound
	}

	return repository.ErrInsufficientBalance
}

// --- Mapper Functions ---

// toLoyaltyDomain converts a GORM LoyaltyAccountModel to a domain entity.
func toLoyaltyDomain(data *model.LoyaltyAccountModel) *entity.LoyaltyAccount {
	if data == nil {
		return nil
	}

	return &entity.LoyaltyAccount{
		ID:             data.ID,
		UserID:         data.UserID,
		CardNumber:     data.CardNumber,
		Balance:        data.Balance,
		LifetimeEarned: data.LifetimeEarned,
		LifetimeSpent:  data.LifetimeSpent,
	}
}

// fromLoyaltyDomain converts a domain LoyaltyAccount to a GORM model.
func fromLoyaltyDomain(data *entity.LoyaltyAccount) *model.LoyaltyAccountModel {
	if data == nil {
		return nil
	}

	return &model.LoyaltyAccountModel{
		ID:             data.ID,
		UserID:         data.UserID,
		CardNumber:     data.CardNumber,
		Balance:        data.Balance,
		LifetimeEarned: data.LifetimeEarned,
		LifetimeSpent:  data.LifetimeSpent,
	}
}
