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

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{
		db: db,
	}
}

// List retrieves products matching the filter.
func (repo *productRepository) List(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	query := repo.db.WithContext(ctx).Model(&model.ProductModel{})
	if filter.CategoryID != nil {
		query = query.Where("idcategoria = ?", *filter.CategoryID)
	}
	if filter.OfferID != nil {
		query = query.Where("idoferta = ?", *filter.OfferID)
	}

	var productModels []*model.ProductModel
	if err := query.Order("id_producto").Find(&productModels).Error; err != nil {
		return nil, domainerrors.NewPersistenceError(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toProductDomain(productM))
	}

	return products, nil
}

// FindByID retrieves one product.
func (repo *productRepository) FindByID(ctx context.Context, id int64) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		First(&productM, "id_producto = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, domainerrors.NewPersistenceError(err, "failed to find product by id")
	}

	return toProductDomain(&productM), nil
}

// Create inserts a product and fills in the generated ID.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrCategoryNotFound
		}

		return domainerrors.NewPersistenceError(err, "failed to insert product")
	}

	product.ID = productM.ID

	return nil
}

// Update overwrites a product. When the entity carries no image the stored
// file name is kept, matching the upload-optional edit flow.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	updates := map[string]any{
		"nombre":      product.Name,
		"descripcion": product.Description,
		"tamano":      product.Size,
		"precio":      product.Price,
		"idcategoria": product.CategoryID,
		"idoferta":    product.OfferID,
	}
	if product.Image != "" {
		updates["imagen"] = product.Image
	}

	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id_producto = ?", product.ID).
		Updates(updates)

	if result.Error != nil {
		return domainerrors.NewPersistenceError(result.Error, "failed to update product")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// Delete removes a product.
func (repo *productRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id_producto = ?", id).
		Delete(&model.ProductModel{})

	if result.Error != nil {
		return domainerrors.NewPersistenceError(result.Error, "failed to delete product")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toProductDomain converts a GORM ProductModel to a domain Product entity.
func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Size:        data.Size,
		Price:       data.Price,
		CategoryID:  data.CategoryID,
		OfferID:     data.OfferID,
		Image:       data.Image,
	}
}

// fromProductDomain converts a domain Product entity to a GORM ProductModel.
func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Size:        data.Size,
		Price:       data.Price,
		CategoryID:  data.CategoryID,
		OfferID:     data.OfferID,
		Image:       data.Image,
	}
}
