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

// redeemableRepository implements the repository.RedeemableRepository interface.
type redeemableRepository struct {
	db *gorm.DB
}

// NewRedeemableRepository is the constructor for redeemableRepository.
func NewRedeemableRepository(db *gorm.DB) repository.RedeemableRepository {
	return &redeemableRepository{
		db: db,
	}
}

// FindByProduct retrieves the redeemable entry for a catalog product.
func (repo *redeemableRepository) FindByProduct(ctx context.Context, productID int64) (*entity.Redeemable, error) {
	var redeemableM model.RedeemableModel

	if err := repo.db.WithContext(ctx).
		First(&redeemableM, "id_producto = ?", productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRedeemableNotFound
		}

		return nil, domainerrors.NewPersistenceError(err, "failed to find redeemable by product")
	}

	return toRedeemableDomain(&redeemableM), nil
}

// List retrieves redeemables, optionally filtered by ID.
func (repo *redeemableRepository) List(ctx context.Context, id *int64) ([]*entity.Redeemable, error) {
	query := repo.db.WithContext(ctx).Model(&model.RedeemableModel{})
	if id != nil {
		query = query.Where("id_canjeable = ?", *id)
	}

	var redeemableModels []*model.RedeemableModel
	if err := query.Order("id_canjeable").Find(&redeemableModels).Error; err != nil {
		return nil, domainerrors.NewPersistenceError(err, "failed to list redeemables")
	}

	redeemables := make([]*entity.Redeemable, 0, len(redeemableModels))
	for _, redeemableM := range redeemableModels {
		redeemables = append(redeemables, toRedeemableDomain(redeemableM))
	}

	return redeemables, nil
}

// Create inserts a redeemable and fills in the generated ID.
func (repo *redeemableRepository) Create(ctx context.Context, redeemable *entity.Redeemable) error {
	redeemableM := fromRedeemableDomain(redeemable)

	if err := repo.db.WithContext(ctx).Create(redeemableM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProductNotFound
		}

		return domainerrors.NewPersistenceError(err, "failed to insert redeemable")
	}

	redeemable.ID = redeemableM.ID

	return nil
}

// Update overwrites a redeemable.
func (repo *redeemableRepository) Update(ctx context.Context, redeemable *entity.Redeemable) error {
	updates := map[string]any{
		"id_producto":  redeemable.ProductID,
		"nombre":       redeemable.Name,
		"descripcion":  redeemable.Description,
		"costo_puntos": redeemable.PointsCost,
		"fecha_inicio": redeemable.StartsAt,
		"fecha_fin":    redeemable.ExpiresAt,
	}
	if redeemable.Image != "" {
		updates["imagen"] = redeemable.Image
	}

	result := repo.db.WithContext(ctx).
		Model(&model.RedeemableModel{}).
		Where("id_canjeable = ?", redeemable.ID).
		Updates(updates)

	if result.Error != nil {
		return domainerrors.NewPersistenceError(result.Error, "failed to update redeemable")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRedeemableNotFound
	}

	return nil
}

// Delete removes a redeemable.
func (repo *redeemableRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id_canjeable = ?", id).
		Delete(&model.RedeemableModel{})

	if result.Error != nil {
		return domainerrors.NewPersistenceError(result.Error, "failed to delete redeemable")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRedeemableNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toRedeemableDomain converts a GORM RedeemableModel to a domain entity.
func toRedeemableDomain(data *model.RedeemableModel) *entity.Redeemable {
	if data == nil {
		return nil
	}

	return &entity.Redeemable{
		ID:          data.ID,
		ProductID:   data.ProductID,
		Name:        data.Name,
		Description: data.Description,
		PointsCost:  data.PointsCost,
		Image:       data.Image,
		StartsAt:    data.StartsAt,
		ExpiresAt:   data.ExpiresAt,
	}
}

// fromRedeemableDomain converts a domain Redeemable to a GORM model.
func fromRedeemableDomain(data *entity.Redeemable) *model.RedeemableModel {
	if data == nil {
		return nil
	}

	return &model.RedeemableModel{
		ID:          data.ID,
		ProductID:   data.ProductID,
		Name:        data.Name,
		Description: data.Description,
		PointsCost:  data.PointsCost,
		Image:       data.Image,
		StartsAt:    data.StartsAt,
		ExpiresAt:   data.ExpiresAt,
	}
}
