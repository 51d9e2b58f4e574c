package repository

import (
	"context"
	"errors"

	"pathlab/internal/domain/entity"
	domainRepo "pathlab/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type reportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) domainRepo.ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) Create(ctx context.Context, report *entity.Report) error {
	return r.db.WithContext(ctx).Create(report).Error
}

func (r *reportRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Report, error) {
	var report entity.Report
	err := r.db.WithContext(ctx).
		Preload("Test").
		Preload("User").
		Where("id = ?", id).
		First(&report).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &report, nil
}

func (r *reportRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]entity.Report, error) {
	var reports []entity.Report
	err := r.db.WithContext(ctx).
		Preload("Test").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&reports).Error
	if err != nil {
		return nil, err
	}
	return reports, nil
}

func (r *reportRepository) FindByOrderID(ctx context.Context, orderID uuid.UUID) (*entity.Report, error) {
	var report entity.Report
	err := r.db.WithContext(ctx).Where("order_id = ?", orderID).First(&report).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &report, nil
}
