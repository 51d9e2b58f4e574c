package repository

import (
	"context"
	"time"

	"pathlab/internal/domain/entity"

	"github.com/google/uuid"
)

type CheckupRepository interface {
	// FindPendingByUserAndDate returns the day's open booking bucket, or
	// (nil, nil) when the user has no Pending checkup for that date.
	// Settled checkups for the same day are deliberately not matched.
	FindPendingByUserAndDate(ctx context.Context, userID uuid.UUID, date time.Time) (*entity.Checkup, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Checkup, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]entity.Checkup, error)
	// CreateWithLine persists a fresh checkup and its first line atomically
	CreateWithLine(ctx context.Context, checkup *entity.Checkup, line *entity.DoctorForCheckup) error
	FindLine(ctx context.Context, checkupID uuid.UUID, doctorID int) (*entity.DoctorForCheckup, error)
	CreateLine(ctx context.Context, line *entity.DoctorForCheckup) error
	UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status entity.PaymentStatus) error
	CountByDoctorID(ctx context.Context, doctorID int) (int64, error)
}
