package repository

import (
	"context"
	"errors"

	"pathlab/internal/domain/entity"
	domainRepo "pathlab/internal/domain/repository"

	"gorm.io/gorm"
)

type doctorRepository struct {
	db *gorm.DB
}

func NewDoctorRepository(db *gorm.DB) domainRepo.DoctorRepository {
	return &doctorRepository{db: db}
}

func (r *doctorRepository) Create(ctx context.Context, doctor *entity.Doctor) error {
	return r.db.WithContext(ctx).Create(doctor).Error
}

func (r *doctorRepository) FindAll(ctx context.Context, filter *domainRepo.DoctorFilter) ([]entity.Doctor, error) {
	query := r.db.WithContext(ctx).
		Preload("Department").
		Preload("Qualification").
		Preload("Timings.Day")

	if filter != nil {
		if filter.DepartmentID != nil {
			query = query.Where("department_id = ?", *filter.DepartmentID)
		}
		if filter.QualificationID != nil {
			query = query.Where("qualification_id = ?", *filter.QualificationID)
		}
	}

	var doctors []entity.Doctor
	err := query.Order("first_name ASC, last_name ASC").Find(&doctors).Error
	if err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *doctorRepository) FindByID(ctx context.Context, id int) (*entity.Doctor, error) {
	var doctor entity.Doctor
	err := r.db.WithContext(ctx).
		Preload("Department").
		Preload("Qualification").
		Preload("Timings.Day").
		Where("id = ?", id).
		First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doctor, nil
}

func (r *doctorRepository) Update(ctx context.Context, doctor *entity.Doctor) error {
	return r.db.WithContext(ctx).Save(doctor).Error
}

func (r *doctorRepository) Delete(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Doctor{}).Error
}

func (r *doctorRepository) FindTimings(ctx context.Context, doctorID int) ([]entity.Timing, error) {
	var timings []entity.Timing
	err := r.db.WithContext(ctx).
		Preload("Day").
		Where("doctor_id = ?", doctorID).
		Order("day_id ASC, start ASC").
		Find(&timings).Error
	if err != nil {
		return nil, err
	}
	return timings, nil
}

func (r *doctorRepository) CountByDepartmentID(ctx context.Context, departmentID int) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Doctor{}).
		Where("department_id = ?", departmentID).
		Count(&count).Error
	return count, err
}

func (r *doctorRepository) CountByQualificationID(ctx context.Context, qualificationID int) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Doctor{}).
		Where("qualification_id = ?", qualificationID).
		Count(&count).Error
	return count, err
}
