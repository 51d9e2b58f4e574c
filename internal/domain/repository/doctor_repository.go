package repository

import (
	"context"

	"pathlab/internal/domain/entity"
)

// DoctorFilter carries the supported doctor listing filters
type DoctorFilter struct {
	DepartmentID    *int
	QualificationID *int
}

type DoctorRepository interface {
	Create(ctx context.Context, doctor *entity.Doctor) error
	FindAll(ctx context.Context, filter *DoctorFilter) ([]entity.Doctor, error)
	FindByID(ctx context.Context, id int) (*entity.Doctor, error)
	Update(ctx context.Context, doctor *entity.Doctor) error
	Delete(ctx context.Context, id int) error
	FindTimings(ctx context.Context, doctorID int) ([]entity.Timing, error)
	CountByDepartmentID(ctx context.Context, departmentID int) (int64, error)
	CountByQualificationID(ctx context.Context, qualificationID int) (int64, error)
}
