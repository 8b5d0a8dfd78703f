package mysql

import (
	"context"

	"pepperoni/internal/domain/entity"
	domainerrors "pepperoni/internal/domain/errors"
	"pepperoni/internal/domain/repository"
	"pepperoni/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// catalogRepository implements the repository.CatalogRepository interface.
// Categories, offers, notifications and roles are plain tabular rows; the
// CRUD here is deliberately uniform.
type catalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository is the constructor for catalogRepository.
func NewCatalogRepository(db *gorm.DB) repository.CatalogRepository {
	return &catalogRepository{
		db: db,
	}
}

func (repo *catalogRepository) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	var categoryModels []*model.CategoryModel

	if err := repo.db.WithContext(ctx).
		Order("idcategoria").
		Find(&categoryModels).Error; err != nil {
		return nil, domainerrors.NewPersistenceError(err, "failed to list categories")
	}

	categories := make([]*entity.Category, 0, len(categoryModels))
	for _, categoryM := range categoryModels {
		categories = append(categories, &entity.Category{
			ID:          categoryM.ID,
			Name:        categoryM.Name,
			Description: categoryM.Description,
			Points:      categoryM.Points,
		})
	}

	return categories, nil
}

func (repo *catalogRepository) CreateCategory(ctx context.Context, category *entity.Category) error {
	categoryM := &model.CategoryModel{
		Name:        category.Name,
		Description: category.Description,
		Points:      category.Points,
	}

	if err := repo.db.WithContext(ctx).Create(categoryM).Error; err != nil {
		return domainerrors.NewPersistenceError(err, "failed to insert category")
	}

	category.ID = categoryM.ID

	return nil
}

func (repo *catalogRepository) UpdateCategory(ctx context.Context, category *entity.Category) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CategoryModel{}).
		Where("idcategoria = ?", category.ID).
		Updates(map[string]any{
			"nombre":      category.Name,
			"descripcion": category.Description,
			"puntos":      category.Points,
		})

	if result.Error != nil {
		return domainerrors.NewPersistenceError(result.Error, "failed to update category")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCategoryNotFound
	}

	return nil
}

func (repo *catalogRepository) DeleteCategory(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("idcategoria = ?", id).
		Delete(&model.CategoryModel{})

	if result.Error != nil {
		return domainerrors.NewPersistenceError(result.Error, "failed to delete category")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCategoryNotFound
	}

	return nil
}

func (repo *catalogRepository) ListOffers(ctx context.Context, id *int64) ([]*entity.Offer, error) {
	query := repo.db.WithContext(ctx).Model(&model.OfferModel{})
	if id != nil {
		query = query.Where("idoferta = ?", *id)
	}

	var offerModels []*model.OfferModel
	if err := query.Order("idoferta").Find(&offerModels).Error; err != nil {
		return nil, domainerrors.NewPersistenceError(err, "failed to list offers")
	}

	offers := make([]*entity.Offer, 0, len(offerModels))
	for _, offerM := range offerModels {
		offers = append(offers, &entity.Offer{
			ID:          offerM.ID,
			Name:        offerM.Name,
			Description: offerM.Description,
			Discount:    offerM.Discount,
			StartsAt:    offerM.StartsAt,
			ExpiresAt:   offerM.ExpiresAt,
		})
	}

	return offers, nil
}

func (repo *catalogRepository) CreateOffer(ctx context.Context, offer *entity.Offer) error {
	offerM := &model.OfferModel{
		Name:        offer.Name,
		Description: offer.Description,
		Discount:    offer.Discount,
		StartsAt:    offer.StartsAt,
		ExpiresAt:   offer.ExpiresAt,
	}

	if err := repo.db.WithContext(ctx).Create(offerM).Error; err != nil {
		return domainerrors.NewPersistenceError(err, "failed to insert offer")
	}

	offer.ID = offerM.ID

	return nil
}

func (repo *catalogRepository) UpdateOffer(ctx context.Context, offer *entity.Offer) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OfferModel{}).
		Where("idoferta = ?", offer.ID).
		Updates(map[string]any{
			"nombre":       offer.Name,
			"descripcion":  offer.Description,
			"descuento":    offer.Discount,
			"fecha_inicio": offer.StartsAt,
			"fecha_fin":    offer.ExpiresAt,
		})

	if result.Error != nil {
		return domainerrors.NewPersistenceError(result.Error, "failed to update offer")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOfferNotFound
	}

	return nil
}

func (repo *catalogRepository) DeleteOffer(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("idoferta = ?", id).
		Delete(&model.OfferModel{})

	if result.Error != nil {
		return domainerrors.NewPersistenceError(result.Error, "failed to delete offer")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOfferNotFound
	}

	return nil
}

func (repo *catalogRepository) ListNotifications(ctx context.Context) ([]*entity.Notification, error) {
	var notificationModels []*model.NotificationModel

	if err := repo.db.WithContext(ctx).
		Order("idnotificacion").
		Find(&notificationModels).Error; err != nil {
		return nil, domainerrors.NewPersistenceError(err, "failed to list notifications")
	}

	notifications := make([]*entity.Notification, 0, len(notificationModels))
	for _, notificationM := range notificationModels {
		notifications = append(notifications, &entity.Notification{
			ID:    notificationM.ID,
			Name:  notificationM.Name,
			Image: notificationM.Image,
		})
	}

	return notifications, nil
}

func (repo *catalogRepository) CreateNotification(ctx context.Context, notification *entity.Notification) error {
	notificationM := &model.NotificationModel{
		Name:  notification.Name,
		Image: notification.Image,
	}

	if err := repo.db.WithContext(ctx).Create(notificationM).Error; err != nil {
		return domainerrors.NewPersistenceError(err, "failed to insert notification")
	}

	notification.ID = notificationM.ID

	return nil
}

func (repo *catalogRepository) UpdateNotification(ctx context.Context, notification *entity.Notification) error {
	updates := map[string]any{
		"nombre": notification.Name,
	}
	if notification.Image != "" {
		updates["imagen"] = notification.Image
	}

	result := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("idnotificacion = ?", notification.ID).
		Updates(updates)

	if result.Error != nil {
		return domainerrors.NewPersistenceError(result.Error, "failed to update notification")
	}

	if result.RowsAffected == 0 {
		return repository.ErrNotificationNotFound
	}

	return nil
}

func (repo *catalogRepository) DeleteNotification(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("idnotificacion = ?", id).
		Delete(&model.NotificationModel{})

	if result.Error != nil {
		return domainerrors.NewPersistenceError(result.Error, "failed to delete notification")
	}

	if result.RowsAffected == 0 {
		return repository.ErrNotificationNotFound
	}

	return nil
}

func (repo *catalogRepository) ListRoles(ctx context.Context) ([]*entity.Role, error) {
	var roleModels []*model.RoleModel

	if err := repo.db.WithContext(ctx).
		Order("idrol").
		Find(&roleModels).Error; err != nil {
		return nil, domainerrors.NewPersistenceError(err, "failed to list roles")
	}

	roles := make([]*entity.Role, 0, len(roleModels))
	for _, roleM := range roleModels {
		roles = append(roles, &entity.Role{
			ID:   roleM.ID,
			Name: roleM.Name,
		})
	}

	return roles, nil
}
