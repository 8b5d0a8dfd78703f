package mysql

import (
	"context"
	"time"

	"pepperoni/internal/domain/entity"
	domainerrors "pepperoni/internal/domain/errors"
	"pepperoni/internal/domain/repository"
	"pepperoni/internal/errors"
	"pepperoni/internal/infra/persistence/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// Create inserts the order header and fills in the generated ID and stamp.
// Lines carried by the entity are not touched; the workflow inserts them one
// by one inside the same transaction.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)
	orderM.OrderDate = time.Now()

	if err := repo.db.WithContext(ctx).Omit("Lines").Create(orderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewPersistenceError(err, "failed to insert order header")
	}

	order.ID = orderM.ID
	order.OrderDate = orderM.OrderDate

	return nil
}

// CreateLine inserts a single order line.
func (repo *orderRepository) CreateLine(ctx context.Context, line *entity.OrderLine) error {
	lineM := fromOrderLineDomain(line)

	if err := repo.db.WithContext(ctx).Create(lineM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrOrderNotFound
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.NewPersistenceError(err, "order line rejected by quantity check")
		}

		return domainerrors.NewPersistenceError(err, "failed to insert order line")
	}

	line.ID = lineM.ID

	return nil
}

// FindByID retrieves one order with its lines preloaded.
func (repo *orderRepository) FindByID(ctx context.Context, id int64) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Lines").
		First(&orderM, "idorden = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, domainerrors.NewPersistenceError(err, "failed to find order by id")
	}

	return toOrderDomain(&orderM), nil
}

// FindByUser retrieves the user's orders, newest first.
func (repo *orderRepository) FindByUser(ctx context.Context, userID int64) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Lines").
		Where("idusuario = ?", userID).
		Order("fecha_orden DESC").
		Find(&orderModels).Error; err != nil {
		return nil, domainerrors.NewPersistenceError(err, "failed to find orders by user")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

// FindAll retrieves every order.
func (repo *orderRepository) FindAll(ctx context.Context) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Lines").
		Order("idorden").
		Find(&orderModels).Error; err != nil {
		return nil, domainerrors.NewPersistenceError(err, "failed to find all orders")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

// UpdateStatus overwrites the status column only.
func (repo *orderRepository) UpdateStatus(ctx context.Context, id int64, status entity.OrderStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("idorden = ?", id).
		Update("estado", string(status))

	if result.Error != nil {
		return domainerrors.NewPersistenceError(result.Error, "failed to update order status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// UpdateHeader overwrites status, payment method and total in one statement.
func (repo *orderRepository) UpdateHeader(ctx context.Context, id int64, status entity.OrderStatus, paymentMethod string, total decimal.Decimal) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("idorden = ?", id).
		Updates(map[string]any{
			"estado":     string(status),
			"metodopago": paymentMethod,
			"total":      total,
		})

	if result.Error != nil {
		return domainerrors.NewPersistenceError(result.Error, "failed to update order header")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// Delete removes the order and its lines. Lines go first so the foreign key
// never dangles mid-delete.
func (repo *orderRepository) Delete(ctx context.Context, id int64) error {
	if err := repo.db.WithContext(ctx).
		Where("idorden = ?", id).
		Delete(&model.OrderLineModel{}).Error; err != nil {
		return domainerrors.NewPersistenceError(err, "failed to delete order lines")
	}

	result := repo.db.WithContext(ctx).
		Where("idorden = ?", id).
		Delete(&model.OrderModel{})

	if result.Error != nil {
		return domainerrors.NewPersistenceError(result.Error, "failed to delete order")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// FindLines retrieves order lines, optionally filtered by order.
func (repo *orderRepository) FindLines(ctx context.Context, orderID *int64) ([]*entity.OrderLine, error) {
	query := repo.db.WithContext(ctx).Model(&model.OrderLineModel{})
	if orderID != nil {
		query = query.Where("idorden = ?", *orderID)
	}

	var lineModels []*model.OrderLineModel
	if err := query.Order("iddetalle_orden").Find(&lineModels).Error; err != nil {
		return nil, domainerrors.NewPersistenceError(err, "failed to find order lines")
	}

	lines := make([]*entity.OrderLine, 0, len(lineModels))
	for _, lineM := range lineModels {
		line := toOrderLineDomain(lineM)
		lines = append(lines, &line)
	}

	return lines, nil
}

// UpdateLine overwrites one order line row.
func (repo *orderRepository) UpdateLine(ctx context.Context, line *entity.OrderLine) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderLineModel{}).
		Where("iddetalle_orden = ?", line.ID).
		Updates(map[string]any{
			"idorden":         line.OrderID,
			"id_producto":     line.ProductID,
			"cantidad":        line.Quantity,
			"precio_unitario": line.UnitPrice,
		})

	if result.Error != nil {
		return domainerrors.NewPersistenceError(result.Error, "failed to update order line")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOrderLineNotFound
	}

	return nil
}

// DeleteLine removes one order line row.
func (repo *orderRepository) DeleteLine(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("iddetalle_orden = ?", id).
		Delete(&model.OrderLineModel{})

	if result.Error != nil {
		return domainerrors.NewPersistenceError(result.Error, "failed to delete order line")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOrderLineNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toOrderDomain converts a GORM OrderModel to a domain Order entity.
func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	lines := make([]entity.OrderLine, 0, len(data.Lines))
	for i := range data.Lines {
		lines = append(lines, toOrderLineDomain(&data.Lines[i]))
	}

	return &entity.Order{
		ID:              data.ID,
		UserID:          data.UserID,
		OrderDate:       data.OrderDate,
		Status:          entity.OrderStatus(data.Status),
		Total:           data.Total,
		PaymentMethod:   data.PaymentMethod,
		DeliveryAddress: data.DeliveryAddress,
		ContactPhone:    data.ContactPhone,
		Lines:           lines,
	}
}

// fromOrderDomain converts a domain Order entity to a GORM OrderModel.
func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	return &model.OrderModel{
		ID:              data.ID,
		UserID:          data.UserID,
		OrderDate:       data.OrderDate,
		Status:          string(data.Status),
		Total:           data.Total,
		PaymentMethod:   data.PaymentMethod,
		DeliveryAddress: data.DeliveryAddress,
		ContactPhone:    data.ContactPhone,
	}
}

// toOrderLineDomain converts a GORM OrderLineModel to a domain OrderLine.
func toOrderLineDomain(data *model.OrderLineModel) entity.OrderLine {
	return entity.OrderLine{
		ID:        data.ID,
		OrderID:   data.OrderID,
		ProductID: data.ProductID,
		Quantity:  data.Quantity,
		UnitPrice: data.UnitPrice,
	}
}

// fromOrderLineDomain converts a domain OrderLine to a GORM OrderLineModel.
func fromOrderLineDomain(data *entity.OrderLine) *model.OrderLineModel {
	if data == nil {
		return nil
	}

	return &model.OrderLineModel{
		ID:        data.ID,
		OrderID:   data.OrderID,
		ProductID: data.ProductID,
		Quantity:  data.Quantity,
		UnitPrice: data.UnitPrice,
	}
}
