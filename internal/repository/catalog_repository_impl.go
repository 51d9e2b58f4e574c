package repository

import (
	"context"
	"errors"

	"pathlab/internal/domain/entity"
	domainRepo "pathlab/internal/domain/repository"

	"gorm.io/gorm"
)

type departmentRepository struct {
	db *gorm.DB
}

func NewDepartmentRepository(db *gorm.DB) domainRepo.DepartmentRepository {
	return &departmentRepository{db: db}
}

func (r *departmentRepository) Create(ctx context.Context, department *entity.Department) error {
	return r.db.WithContext(ctx).Create(department).Error
}

func (r *departmentRepository) FindAll(ctx context.Context) ([]domainRepo.DepartmentWithCount, error) {
	var results []domainRepo.DepartmentWithCount
	err := r.db.WithContext(ctx).Model(&entity.Department{}).
		Select("departments.*, COUNT(doctors.id) AS doctors_count").
		Joins("LEFT JOIN doctors ON doctors.department_id = departments.id").
		Group("departments.id").
		Order("departments.title ASC").
		Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (r *departmentRepository) FindByID(ctx context.Context, id int) (*entity.Department, error) {
	var department entity.Department
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&department).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &department, nil
}

func (r *departmentRepository) Update(ctx context.Context, department *entity.Department) error {
	return r.db.WithContext(ctx).Save(department).Error
}

func (r *departmentRepository) Delete(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Department{}).Error
}

type collectionRepository struct {
	db *gorm.DB
}

func NewCollectionRepository(db *gorm.DB) domainRepo.CollectionRepository {
	return &collectionRepository{db: db}
}

func (r *collectionRepository) Create(ctx context.Context, collection *entity.Collection) error {
	return r.db.WithContext(ctx).Create(collection).Error
}

func (r *collectionRepository) FindAll(ctx context.Context) ([]domainRepo.CollectionWithCount, error) {
	var results []domainRepo.CollectionWithCount
	err := r.db.WithContext(ctx).Model(&entity.Collection{}).
		Select("collections.*, COUNT(tests.id) AS tests_count").
		Joins("LEFT JOIN tests ON tests.collection_id = collections.id").
		Group("collections.id").
		Order("collections.title ASC").
		Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (r *collectionRepository) FindByID(ctx context.Context, id int) (*entity.Collection, error) {
	var collection entity.Collection
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&collection).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &collection, nil
}

func (r *collectionRepository) Update(ctx context.Context, collection *entity.Collection) error {
	return r.db.WithContext(ctx).Save(collection).Error
}

func (r *collectionRepository) Delete(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Collection{}).Error
}

type qualificationRepository struct {
	db *gorm.DB
}

func NewQualificationRepository(db *gorm.DB) domainRepo.QualificationRepository {
	return &qualificationRepository{db: db}
}

func (r *qualificationRepository) Create(ctx context.Context, qualification *entity.Qualification) error {
	return r.db.WithContext(ctx).Create(qualification).Error
}

func (r *qualificationRepository) FindAll(ctx context.Context) ([]domainRepo.QualificationWithCount, error) {
	var results []domainRepo.QualificationWithCount
	err := r.db.WithContext(ctx).Model(&entity.Qualification{}).
		Select("qualifications.*, COUNT(doctors.id) AS doctors_count").
		Joins("LEFT JOIN doctors ON doctors.qualification_id = qualifications.id").
		Group("qualifications.id").
		Order("qualifications.title ASC").
		Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (r *qualificationRepository) FindByID(ctx context.Context, id int) (*entity.Qualification, error) {
	var qualification entity.Qualification
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&qualification).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &qualification, nil
}

func (r *qualificationRepository) Update(ctx context.Context, qualification *entity.Qualification) error {
	return r.db.WithContext(ctx).Save(qualification).Error
}

func (r *qualificationRepository) Delete(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Qualification{}).Error
}
