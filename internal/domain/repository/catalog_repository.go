package repository

import (
	"context"

	"pathlab/internal/domain/entity"
)

// DepartmentWithCount pairs a department with its doctor headcount
type DepartmentWithCount struct {
	entity.Department
	DoctorsCount int64 `json:"doctors_count"`
}

type DepartmentRepository interface {
	Create(ctx context.Context, department *entity.Department) error
	FindAll(ctx context.Context) ([]DepartmentWithCount, error)
	FindByID(ctx context.Context, id int) (*entity.Department, error)
	Update(ctx context.Context, department *entity.Department) error
	Delete(ctx context.Context, id int) error
}

// QualificationWithCount pairs a qualification with the number of doctors
// holding it
type QualificationWithCount struct {
	entity.Qualification
	DoctorsCount int64 `json:"doctors_count"`
}

type QualificationRepository interface {
	Create(ctx context.Context, qualification *entity.Qualification) error
	FindAll(ctx context.Context) ([]QualificationWithCount, error)
	FindByID(ctx context.Context, id int) (*entity.Qualification, error)
	Update(ctx context.Context, qualification *entity.Qualification) error
	Delete(ctx context.Context, id int) error
}

// CollectionWithCount pairs a collection with the number of tests in it
type CollectionWithCount struct {
	entity.Collection
	TestsCount int64 `json:"tests_count"`
}

type CollectionRepository interface {
	Create(ctx context.Context, collection *entity.Collection) error
	FindAll(ctx context.Context) ([]CollectionWithCount, error)
	FindByID(ctx context.Context, id int) (*entity.Collection, error)
	Update(ctx context.Context, collection *entity.Collection) error
	Delete(ctx context.Context, id int) error
}
