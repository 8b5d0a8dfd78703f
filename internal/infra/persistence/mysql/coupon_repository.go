package mysql

import (
	"context"
	"time"

	"pepperoni/internal/domain/entity"
	domainerrors "pepperoni/internal/domain/errors"
	"pepperoni/internal/domain/repository"
	"pepperoni/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// couponRepository implements the repository.CouponRepository interface.
type couponRepository struct {
	db *gorm.DB
}

// NewCouponRepository is the constructor for couponRepository.
func NewCouponRepository(db *gorm.DB) repository.CouponRepository {
	return &couponRepository{
		db: db,
	}
}

// List retrieves coupons, optionally filtered by ID.
func (repo *couponRepository) List(ctx context.Context, id *int64) ([]*entity.Coupon, error) {
	query := repo.db.WithContext(ctx).Model(&model.CouponModel{})
	if id != nil {
		query = query.Where("idcupon = ?", *id)
	}

	var couponModels []*model.CouponModel
	if err := query.Order("idcupon").Find(&couponModels).Error; err != nil {
		return nil, domainerrors.NewPersistenceError(err, "failed to list coupons")
	}

	coupons := make([]*entity.Coupon, 0, len(couponModels))
	for _, couponM := range couponModels {
		coupons = append(coupons, toCouponDomain(couponM))
	}

	return coupons, nil
}

// Create inserts a coupon and fills in the generated ID.
func (repo *couponRepository) Create(ctx context.Context, coupon *entity.Coupon) error {
	couponM := fromCouponDomain(coupon)

	if err := repo.db.WithContext(ctx).Create(couponM).Error; err != nil {
		return domainerrors.NewPersistenceError(err, "failed to insert coupon")
	}

	coupon.ID = couponM.ID

	return nil
}

// Update overwrites a coupon.
func (repo *couponRepository) Update(ctx context.Context, coupon *entity.Coupon) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CouponModel{}).
		Where("idcupon = ?", coupon.ID).
		Updates(map[string]any{
			"nombre":       coupon.Name,
			"descripcion":  coupon.Description,
			"descuento":    coupon.Discount,
			"fecha_inicio": coupon.StartsAt,
			"fecha_fin":    coupon.ExpiresAt,
		})

	if result.Error != nil {
		return domainerrors.NewPersistenceError(result.Error, "failed to update coupon")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCouponNotFound
	}

	return nil
}

// Delete removes a coupon and any per-user flags for it.
func (repo *couponRepository) Delete(ctx context.Context, id int64) error {
	if err := repo.db.WithContext(ctx).
		Where("idcupon = ?", id).
		Delete(&model.UserCouponModel{}).Error; err != nil {
		return domainerrors.NewPersistenceError(err, "failed to delete coupon flags")
	}

	result := repo.db.WithContext(ctx).
		Where("idcupon = ?", id).
		Delete(&model.CouponModel{})

	if result.Error != nil {
		return domainerrors.NewPersistenceError(result.Error, "failed to delete coupon")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCouponNotFound
	}

	return nil
}

// MarkUsed flags the coupon as spent for the user. The flip only matches
// unset rows, so spending the same coupon twice loses the race exactly once;
// a fresh (coupon, user) pair is inserted already spent.
func (repo *couponRepository) MarkUsed(ctx context.Context, couponID, userID int64) error {
	now := time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.UserCouponModel{}).
		Where("idcupon = ? AND idusuario = ? AND usado = ?", couponID, userID, false).
		Updates(map[string]any{
			"usado":     true,
			"fecha_uso": now,
		})

	if result.Error != nil {
		return domainerrors.NewPersistenceError(result.Error, "failed to mark coupon used")
	}

	if result.RowsAffected > 0 {
		return nil
	}

	flagM := &model.UserCouponModel{
		CouponID: couponID,
		UserID:   userID,
		Used:     true,
		UsedAt:   &now,
	}

	if err := repo.db.WithContext(ctx).Create(flagM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			// Row exists and the flip matched nothing: already spent.
			return repository.ErrCouponAlreadyUsed
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrCouponNotFound
		}

		return domainerrors.NewPersistenceError(err, "failed to insert coupon flag")
	}

	return nil
}

// --- Mapper Functions ---

// toCouponDomain converts a GORM CouponModel to a domain Coupon entity.
func toCouponDomain(data *model.CouponModel) *entity.Coupon {
	if data == nil {
		return nil
	}

	return &entity.Coupon{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Discount:    data.Discount,
		StartsAt:    data.StartsAt,
		ExpiresAt:   data.ExpiresAt,
	}
}

// fromCouponDomain converts a domain Coupon entity to a GORM CouponModel.
func fromCouponDomain(data *entity.Coupon) *model.CouponModel {
	if data == nil {
		return nil
	}

	return &model.CouponModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Discount:    data.Discount,
		StartsAt:    data.StartsAt,
		ExpiresAt:   data.ExpiresAt,
	}
}
