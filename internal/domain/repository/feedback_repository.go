package repository

import (
	"context"

	"pathlab/internal/domain/entity"
)

// QueryFilter carries the supported query listing filters
type QueryFilter struct {
	ID           *int64
	NameContains string
}

type QueryRepository interface {
	Create(ctx context.Context, query *entity.Query) error
	FindAll(ctx context.Context, filter *QueryFilter) ([]entity.Query, error)
	FindByID(ctx context.Context, id int64) (*entity.Query, error)
	UpdateAnswer(ctx context.Context, id int64, answer string) error
}

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	FindAll(ctx context.Context, testID *int) ([]entity.Review, error)
}

type SubscribeRepository interface {
	Create(ctx context.Context, subscribe *entity.Subscribe) error
	FindByEmail(ctx context.Context, email string) (*entity.Subscribe, error)
}
