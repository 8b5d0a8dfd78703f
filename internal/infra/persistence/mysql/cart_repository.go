package mysql

import (
	"context"

	"pepperoni/internal/domain/entity"
	domainerrors "pepperoni/internal/domain/errors"
	"pepperoni/internal/domain/repository"
	"pepperoni/internal/infra/persistence/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// cartRepository implements the repository.CartRepository interface.
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{
		db: db,
	}
}

// Upsert adds the line to the user's cart, merging quantity additively when a
// line for the same (user, product) already exists. The merge is a single
// `cantidad = cantidad + ?` statement, so concurrent adds cannot lose updates;
// a concurrent duplicate insert trips the composite key and is folded back
// into the merge.
func (repo *cartRepository) Upsert(ctx context.Context, line *entity.CartLine) error {
	merged, err := repo.merge(ctx, line)
	if err != nil {
		return err
	}
	if merged {
		return nil
	}

	if err := repo.db.WithContext(ctx).Create(fromCartDomain(line)).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			// Lost the insert race; the line exists now, merge into it.
			if merged, err = repo.merge(ctx, line); err != nil {
				return err
			}
			if merged {
				return nil
			}

			return domainerrors.NewPersistenceError(err, "cart line vanished between insert and merge")
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewPersistenceError(err, "failed to insert cart line")
	}

	return nil
}

// merge applies the additive quantity update; reports whether a row matched.
func (repo *cartRepository) merge(ctx context.Context, line *entity.CartLine) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.CartLineModel{}).
		Where("idproducto = ? AND idusuario = ?", line.ProductID, line.UserID).
		Updates(map[string]any{
			"cantidad": gorm.Expr("cantidad + ?", line.Quantity),
			"total":    line.Total,
		})

	if result.Error != nil {
		return false, domainerrors.NewPersistenceError(result.Error, "failed to merge cart line")
	}

	return result.RowsAffected > 0, nil
}

// FindByUser retrieves every cart line for the user. An empty cart is an
// empty slice, not an error.
func (repo *cartRepository) FindByUser(ctx context.Context, userID int64) ([]*entity.CartLine, error) {
	var lineModels []*model.CartLineModel

	if err := repo.db.WithContext(ctx).
		Where("idusuario = ?", userID).
		Order("idproducto").
		Find(&lineModels).Error; err != nil {
		return nil, domainerrors.NewPersistenceError(err, "failed to find cart lines by user")
	}

	lines := make([]*entity.CartLine, 0, len(lineModels))
	for _, lineM := range lineModels {
		lines = append(lines, toCartDomain(lineM))
	}

	return lines, nil
}

// UpdateLine overwrites quantity and total for one line.
func (repo *cartRepository) UpdateLine(ctx context.Context, productID, userID int64, quantity int, total decimal.Decimal) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CartLineModel{}).
		Where("idproducto = ? AND idusuario = ?", productID, userID).
		Updates(map[string]any{
			"cantidad": quantity,
			"total":    total,
		})

	if result.Error != nil {
		return domainerrors.NewPersistenceError(result.Error, "failed to update cart line")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCartLineNotFound
	}

	return nil
}

// DeleteLine removes one line. Idempotent: a missing line is not an error.
func (repo *cartRepository) DeleteLine(ctx context.Context, productID, userID int64) error {
	if err := repo.db.WithContext(ctx).
		Where("idproducto = ? AND idusuario = ?", productID, userID).
		Delete(&model.CartLineModel{}).Error; err != nil {
		return domainerrors.NewPersistenceError(err, "failed to delete cart line")
	}

	return nil
}

// Clear removes every line of the user's cart. Idempotent.
func (repo *cartRepository) Clear(ctx context.Context, userID int64) error {
	if err := repo.db.WithContext(ctx).
		Where("idusuario = ?", userID).
		Delete(&model.CartLineModel{}).Error; err != nil {
		return domainerrors.NewPersistenceError(err, "failed to clear cart")
	}

	return nil
}

// --- Mapper Functions ---

// toCartDomain converts a GORM CartLineModel to a domain CartLine entity.
func toCartDomain(data *model.CartLineModel) *entity.CartLine {
	if data == nil {
		return nil
	}

	return &entity.CartLine{
		ProductID:  data.ProductID,
		UserID:     data.UserID,
		Name:       data.Name,
		Quantity:   data.Quantity,
		Total:      data.Total,
		Image:      data.Image,
		CategoryID: data.CategoryID,
	}
}

// fromCartDomain converts a domain CartLine entity to a GORM CartLineModel.
func fromCartDomain(data *entity.CartLine) *model.CartLineModel {
	if data == nil {
		return nil
	}

	return &model.CartLineModel{
		ProductID:  data.ProductID,
		UserID:     data.UserID,
		Name:       data.Name,
		Quantity:   data.Quantity,
		Total:      data.Total,
		Image:      data.Image,
		CategoryID: data.CategoryID,
	}
}
