package repository

import (
	"context"
	"time"

	"pathlab/internal/domain/entity"

	"github.com/google/uuid"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindByEmailAndBirthDate(ctx context.Context, email string, birthDate time.Time) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
}
