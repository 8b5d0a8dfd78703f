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

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager repository.TransactionManager
	orderRepo repository.OrderRepository
	userRepo  repository.UserRepository
	logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(
	txManager repository.TransactionManager,
	orderRepo repository.OrderRepository,
	userRepo repository.UserRepository,
	logger *slog.Logger,
) usecase.OrderUsecase {
	return &orderService{
		txManager: txManager,
		orderRepo: orderRepo,
		userRepo:  userRepo,
		logger:    logger,
	}
}

func (srv *orderService) headerFromInput(input *usecase.CreateOrderInput) *entity.Order {
	status := entity.OrderStatus(input.Status)
	if input.Status == "" {
		status = entity.StatusCreated
	}

	return &entity.Order{
		UserID:          input.UserID,
		Status:          status,
		Total:           input.Total,
		PaymentMethod:   input.PaymentMethod,
		DeliveryAddress: input.DeliveryAddress,
		ContactPhone:    input.ContactPhone,
	}
}

// CreateOrder writes the order header and every line in one transaction.
// Any line failure rolls back the header and the lines already written.
func (srv *orderService) CreateOrder(ctx context.Context, input *usecase.CreateOrderInput) (int64, error) {
	srv.logger.Info("Creating order", "userID", input.UserID, "lines", len(input.Lines))

	if len(input.Lines) == 0 {
		return 0, domainerrors.ErrEmptyOrder
	}

	exists, err := srv.userRepo.Exists(ctx, input.UserID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to check user")
	}
	if !exists {
		return 0, domainerrors.ErrUserNotFound
	}

	order := srv.headerFromInput(input)

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.OrderRepo()

		if err := orderRepo.Create(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order header")
		}

		for _, item := range input.Lines {
			line := &entity.OrderLine{
				OrderID:   order.ID,
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				UnitPrice: item.UnitPrice,
			}
			if err := orderRepo.CreateLine(ctx, line); err != nil {
				return errors.Wrapf(err, "failed to create order line for product %d", item.ProductID)
			}
		}

		return nil
	})
	if err != nil {
		srv.logger.Error("Order transaction rolled back", "userID", input.UserID, "error", err)

		return 0, domainerrors.NewPersistenceError(err, "order transaction failed")
	}

	return order.ID, nil
}

// CreateDirectOrder writes a header-only order in a single insert. This is
// the point-of-sale path: no lines, no transaction.
func (srv *orderService) CreateDirectOrder(ctx context.Context, input *usecase.CreateOrderInput) (int64, error) {
	srv.logger.Info("Creating direct order", "userID", input.UserID)

	exists, err := srv.userRepo.Exists(ctx, input.UserID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to check user")
	}
	if !exists {
		return 0, domainerrors.ErrUserNotFound
	}

	order := srv.headerFromInput(input)
	if err := srv.orderRepo.Create(ctx, order); err != nil {
		return 0, errors.Wrap(err, "failed to create direct order")
	}

	return order.ID, nil
}

// GetOrder retrieves one order with its lines.
func (srv *orderService) GetOrder(ctx context.Context, id int64) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to get order")
	}

	return order, nil
}

// ListForUser retrieves the user's orders. Zero orders is reported as not
// found; clients of the source system distinguish "no orders yet" this way.
func (srv *orderService) ListForUser(ctx context.Context, userID int64) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	if len(orders) == 0 {
		return nil, domainerrors.ErrOrderNotFound
	}

	return orders, nil
}

// ListAll retrieves every order.
func (srv *orderService) ListAll(ctx context.Context) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list all orders")
	}

	return orders, nil
}

// UpdateStatus moves the order to the given status. Membership in the closed
// set is checked before touching the store, so an invalid status is always a
// 400 even for a missing order.
func (srv *orderService) UpdateStatus(ctx context.Context, id int64, status string) error {
	next := entity.OrderStatus(status)
	if !next.IsValid() {
		return domainerrors.ErrInvalidStatus
	}

	if err := srv.orderRepo.UpdateStatus(ctx, id, next); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return domainerrors.ErrOrderNotFound
		}

		return errors.Wrap(err, "failed to update order status")
	}

	return nil
}

// UpdateHeader overwrites status, payment method and total.
func (srv *orderService) UpdateHeader(ctx context.Context, id int64, input *usecase.UpdateOrderInput) error {
	next := entity.OrderStatus(input.Status)
	if !next.IsValid() {
		return domainerrors.ErrInvalidStatus
	}

	if err := srv.orderRepo.UpdateHeader(ctx, id, next, input.PaymentMethod, input.Total); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return domainerrors.ErrOrderNotFound
		}

		return errors.Wrap(err, "failed to update order header")
	}

	return nil
}

// Delete removes the order and its lines.
func (srv *orderService) Delete(ctx context.Context, id int64) error {
	if err := srv.orderRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return domainerrors.ErrOrderNotFound
		}

		return errors.Wrap(err, "failed to delete order")
	}

	return nil
}

// ListLines retrieves order lines, optionally filtered by order.
func (srv *orderService) ListLines(ctx context.Context, orderID *int64) ([]*entity.OrderLine, error) {
	lines, err := srv.orderRepo.FindLines(ctx, orderID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list order lines")
	}

	return lines, nil
}

// AddLine appends a line to an existing order. Lines normally arrive through
// CreateOrder; this path serves the raw detalle_orden surface.
func (srv *orderService) AddLine(ctx context.Context, line *entity.OrderLine) error {
	if err := srv.orderRepo.CreateLine(ctx, line); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return domainerrors.ErrOrderNotFound
		}

		return errors.Wrap(err, "failed to add order line")
	}

	return nil
}

// UpdateLine overwrites one order line.
func (srv *orderService) UpdateLine(ctx context.Context, line *entity.OrderLine) error {
	if err := srv.orderRepo.UpdateLine(ctx, line); err != nil {
		if errors.Is(err, repository.ErrOrderLineNotFound) {
			return domainerrors.ErrNotFound
		}

		return errors.Wrap(err, "failed to update order line")
	}

	return nil
}

// DeleteLine removes one order line.
func (srv *orderService) DeleteLine(ctx context.Context, id int64) error {
	if err := srv.orderRepo.DeleteLine(ctx, id); err != nil {
		if errors.Is(err, repository.ErrOrderLineNotFound) {
			return domainerrors.ErrNotFound
		}

		return errors.Wrap(err, "failed to delete order line")
	}

	return nil
}
