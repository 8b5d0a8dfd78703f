package impl

import (
	"context"
	"log/slog"

	"pepperoni/internal/domain/entity"
	domainerrors "pepperoni/internal/domain/errors"
	"pepperoni/internal/domain/repository"
	"pepperoni/internal/errors"
	"pepperoni/internal/usecase"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	productRepo repository.ProductRepository
	catalogRepo repository.CatalogRepository
	logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(
	productRepo repository.ProductRepository,
	catalogRepo repository.CatalogRepository,
	logger *slog.Logger,
) usecase.CatalogUsecase {
	return &catalogService{
		productRepo: productRepo,
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

func (srv *catalogService) ListProducts(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	products, err := srv.productRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

func (srv *catalogService) GetProduct(ctx context.Context, id int64) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to get product")
	}

	return product, nil
}

func (srv *catalogService) CreateProduct(ctx context.Context, product *entity.Product) error {
	srv.logger.Info("Creating product", "name", product.Name)

	if err := srv.productRepo.Create(ctx, product); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return domainerrors.ErrNotFound
		}

		return errors.Wrap(err, "failed to create product")
	}

	return nil
}

func (srv *catalogService) UpdateProduct(ctx context.Context, product *entity.Product) error {
	if err := srv.productRepo.Update(ctx, product); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}

		return errors.Wrap(err, "failed to update product")
	}

	return nil
}

func (srv *catalogService) DeleteProduct(ctx context.Context, id int64) error {
	if err := srv.productRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}

		return errors.Wrap(err, "failed to delete product")
	}

	return nil
}

func (srv *catalogService) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := srv.catalogRepo.ListCategories(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

func (srv *catalogService) CreateCategory(ctx context.Context, category *entity.Category) error {
	if err := srv.catalogRepo.CreateCategory(ctx, category); err != nil {
		return errors.Wrap(err, "failed to create category")
	}

	return nil
}

func (srv *catalogService) UpdateCategory(ctx context.Context, category *entity.Category) error {
	if err := srv.catalogRepo.UpdateCategory(ctx, category); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return domainerrors.ErrNotFound
		}

		return errors.Wrap(err, "failed to update category")
	}

	return nil
}

func (srv *catalogService) DeleteCategory(ctx context.Context, id int64) error {
	if err := srv.catalogRepo.DeleteCategory(ctx, id); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return domainerrors.ErrNotFound
		}

		return errors.Wrap(err, "failed to delete category")
	}

	return nil
}

func (srv *catalogService) ListOffers(ctx context.Context, id *int64) ([]*entity.Offer, error) {
	offers, err := srv.catalogRepo.ListOffers(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list offers")
	}

	return offers, nil
}

func (srv *catalogService) CreateOffer(ctx context.Context, offer *entity.Offer) error {
	if err := srv.catalogRepo.CreateOffer(ctx, offer); err != nil {
		return errors.Wrap(err, "failed to create offer")
	}

	return nil
}

func (srv *catalogService) UpdateOffer(ctx context.Context, offer *entity.Offer) error {
	if err := srv.catalogRepo.UpdateOffer(ctx, offer); err != nil {
		if errors.Is(err, repository.ErrOfferNotFound) {
			return domainerrors.ErrNotFound
		}

		return errors.Wrap(err, "failed to update offer")
	}

	return nil
}

func (srv *catalogService) DeleteOffer(ctx context.Context, id int64) error {
	if err := srv.catalogRepo.DeleteOffer(ctx, id); err != nil {
		if errors.Is(err, repository.ErrOfferNotFound) {
			return domainerrors.ErrNotFound
		}

		return errors.Wrap(err, "failed to delete offer")
	}

	return nil
}

func (srv *catalogService) ListNotifications(ctx context.Context) ([]*entity.Notification, error) {
	notifications, err := srv.catalogRepo.ListNotifications(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notifications")
	}

	return notifications, nil
}

func (srv *catalogService) CreateNotification(ctx context.Context, notification *entity.Notification) error {
	if err := srv.catalogRepo.CreateNotification(ctx, notification); err != nil {
		return errors.Wrap(err, "failed to create notification")
	}

	return nil
}

func (srv *catalogService) UpdateNotification(ctx context.Context, notification *entity.Notification) error {
	if err := srv.catalogRepo.UpdateNotification(ctx, notification); err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return domainerrors.ErrNotFound
		}

		return errors.Wrap(err, "failed to update notification")
	}

	return nil
}

func (srv *catalogService) DeleteNotification(ctx context.Context, id int64) error {
	if err := srv.catalogRepo.DeleteNotification(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return domainerrors.ErrNotFound
		}

		return errors.Wrap(err, "failed to delete notification")
	}

	return nil
}

func (srv *catalogService) ListRoles(ctx context.Context) ([]*entity.Role, error) {
	roles, err := srv.catalogRepo.ListRoles(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list roles")
	}

	return roles, nil
}
