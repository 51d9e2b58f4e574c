package repository

import (
	"context"

	"pathlab/internal/domain/entity"

	"github.com/google/uuid"
)

// OrderFilter carries the supported order listing filters
type OrderFilter struct {
	PaymentStatus *entity.PaymentStatus
}

type OrderRepository interface {
	// Create persists the order and its single line in one transaction.
	// An order without a line must never be observable.
	Create(ctx context.Context, order *entity.Order, line *entity.OrderedTest) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	FindByUserID(ctx context.Context, userID uuid.UUID, filter *OrderFilter) ([]entity.Order, error)
	UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status entity.PaymentStatus) error
	CountByTestID(ctx context.Context, testID int) (int64, error)
}
