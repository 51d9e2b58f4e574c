package repository

import (
	"context"
	"errors"

	"pathlab/internal/domain/entity"
	domainRepo "pathlab/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) domainRepo.OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(ctx context.Context, order *entity.Order, line *entity.OrderedTest) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		line.OrderID = order.ID
		return tx.Create(line).Error
	})
}

func (r *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var order entity.Order
	err := r.db.WithContext(ctx).
		Preload("Line.Test").
		Where("id = ?", id).
		First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) FindByUserID(ctx context.Context, userID uuid.UUID, filter *domainRepo.OrderFilter) ([]entity.Order, error) {
	query := r.db.WithContext(ctx).
		Preload("Line.Test").
		Where("user_id = ?", userID)

	if filter != nil && filter.PaymentStatus != nil {
		query = query.Where("payment_status = ?", *filter.PaymentStatus)
	}

	var orders []entity.Order
	err := query.Order("placed_at DESC, payment_status DESC").Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *orderRepository) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status entity.PaymentStatus) error {
	return r.db.WithContext(ctx).Model(&entity.Order{}).
		Where("id = ?", id).
		Update("payment_status", status).Error
}

func (r *orderRepository) CountByTestID(ctx context.Context, testID int) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.OrderedTest{}).
		Where("test_id = ?", testID).
		Count(&count).Error
	return count, err
}
