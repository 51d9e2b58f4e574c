package repository

import (
	"context"

	"pathlab/internal/domain/entity"

	"github.com/google/uuid"
)

type ReportRepository interface {
	Create(ctx context.Context, report *entity.Report) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Report, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]entity.Report, error)
	// FindByOrderID returns (nil, nil) when the order has no report yet;
	// at most one report per order is enforced by this lookup only.
	FindByOrderID(ctx context.Context, orderID uuid.UUID) (*entity.Report, error)
}
