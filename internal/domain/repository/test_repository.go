package repository

import (
	"context"

	"pathlab/internal/domain/entity"
)

type TestRepository interface {
	Create(ctx context.Context, test *entity.Test) error
	FindAll(ctx context.Context, filter *entity.TestFilter) ([]entity.Test, int64, error)
	FindByID(ctx context.Context, id int) (*entity.Test, error)
	FindByCode(ctx context.Context, code string) (*entity.Test, error)
	Update(ctx context.Context, test *entity.Test) error
	Delete(ctx context.Context, id int) error
	CountByCollectionID(ctx context.Context, collectionID int) (int64, error)
}
