package repository

import (
	"context"
	"errors"
	"time"

	"pathlab/internal/domain/entity"
	domainRepo "pathlab/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type checkupRepository struct {
	db *gorm.DB
}

func NewCheckupRepository(db *gorm.DB) domainRepo.CheckupRepository {
	return &checkupRepository{db: db}
}

func (r *checkupRepository) FindPendingByUserAndDate(ctx context.Context, userID uuid.UUID, date time.Time) (*entity.Checkup, error) {
	var checkup entity.Checkup
	err := r.db.WithContext(ctx).
		Preload("Doctors.Doctor").
		Where("user_id = ? AND booked_at = ? AND payment_status = ?",
			userID, date.Format("2006-01-02"), entity.PaymentStatusPending).
		First(&checkup).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &checkup, nil
}

func (r *checkupRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Checkup, error) {
	var checkup entity.Checkup
	err := r.db.WithContext(ctx).
		Preload("Doctors.Doctor").
		Where("id = ?", id).
		First(&checkup).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &checkup, nil
}

func (r *checkupRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]entity.Checkup, error) {
	var checkups []entity.Checkup
	err := r.db.WithContext(ctx).
		Preload("Doctors.Doctor").
		Where("user_id = ?", userID).
		Order("booked_at DESC, payment_status DESC").
		Find(&checkups).Error
	if err != nil {
		return nil, err
	}
	return checkups, nil
}

func (r *checkupRepository) CreateWithLine(ctx context.Context, checkup *entity.Checkup, line *entity.DoctorForCheckup) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(checkup).Error; err != nil {
			return err
		}
		line.CheckupID = checkup.ID
		return tx.Create(line).Error
	})
}

func (r *checkupRepository) FindLine(ctx context.Context, checkupID uuid.UUID, doctorID int) (*entity.DoctorForCheckup, error) {
	var line entity.DoctorForCheckup
	err := r.db.WithContext(ctx).
		Where("checkup_id = ? AND doctor_id = ?", checkupID, doctorID).
		First(&line).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &line, nil
}

func (r *checkupRepository) CreateLine(ctx context.Context, line *entity.DoctorForCheckup) error {
	return r.db.WithContext(ctx).Create(line).Error
}

func (r *checkupRepository) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status entity.PaymentStatus) error {
	return r.db.WithContext(ctx).Model(&entity.Checkup{}).
		Where("id = ?", id).
		Update("payment_status", status).Error
}

func (r *checkupRepository) CountByDoctorID(ctx context.Context, doctorID int) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.DoctorForCheckup{}).
		Where("doctor_id = ?", doctorID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
