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

// reviewRepository implements the repository.ReviewRepository interface.
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{
		db: db,
	}
}

// Create inserts a review, stamping the review date.
func (repo *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	reviewM := &model.ReviewModel{
		UserID:    review.UserID,
		ProductID: review.ProductID,
		Rating:    review.Rating,
		Comment:   review.Comment,
		Date:      time.Now(),
	}

	if err := repo.db.WithContext(ctx).Create(reviewM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProductNotFound
		}

		return domainerrors.NewPersistenceError(err, "failed to insert review")
	}

	review.ID = reviewM.ID
	review.Date = reviewM.Date

	return nil
}

// reviewRow is the scan target for the reviews-with-reviewer join.
type reviewRow struct {
	ID       int64     `gorm:"column:id_resena"`
	Rating   int       `gorm:"column:calificacion"`
	Comment  string    `gorm:"column:comentario"`
	Date     time.Time `gorm:"column:fecha"`
	UserName string    `gorm:"column:nombre_usuario"`
}

// ListByProduct retrieves the product's reviews joined with the reviewer's
// name, newest first.
func (repo *reviewRepository) ListByProduct(ctx context.Context, productID int64) ([]*entity.Review, error) {
	var rows []reviewRow

	if err := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Select("resenas.id_resena, resenas.calificacion, resenas.comentario, resenas.fecha, usuarios.nombre AS nombre_usuario").
		Joins("JOIN usuarios ON usuarios.idusuario = resenas.idusuario").
		Where("resenas.id_producto = ?", productID).
		Order("resenas.fecha DESC").
		Scan(&rows).Error; err != nil {
		return nil, domainerrors.NewPersistenceError(err, "failed to list reviews by product")
	}

	reviews := make([]*entity.Review, 0, len(rows))
	for _, row := range rows {
		reviews = append(reviews, &entity.Review{
			ID:       row.ID,
			Rating:   row.Rating,
			Comment:  row.Comment,
			Date:     row.Date,
			UserName: row.UserName,
		})
	}

	return reviews, nil
}
