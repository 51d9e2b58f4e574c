package usecase

import (
	"context"
	"errors"

	"pathlab/internal/converter"
	"pathlab/internal/delivery/dto"
	"pathlab/internal/domain/entity"
	"pathlab/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

var (
	ErrDepartmentNotFound      = errors.New("department not found")
	ErrDepartmentTitleTaken    = errors.New("department title already in use")
	ErrDepartmentNotEmpty      = errors.New("department still has doctors assigned")
	ErrQualificationNotFound   = errors.New("qualification not found")
	ErrQualificationTitleTaken = errors.New("qualification title already in use")
	ErrQualificationInUse      = errors.New("qualification still has doctors holding it")
	ErrCollectionNotFound      = errors.New("collection not found")
	ErrCollectionTitleTaken    = errors.New("collection title already in use")
	ErrCollectionNotEmpty      = errors.New("collection still has tests assigned")
)

type DepartmentUsecase interface {
	List(ctx context.Context) ([]dto.DepartmentResponse, error)
	Create(ctx context.Context, req *dto.CreateDepartmentRequest) (*dto.DepartmentResponse, error)
	Update(ctx context.Context, id int, req *dto.UpdateDepartmentRequest) (*dto.DepartmentResponse, error)
	Delete(ctx context.Context, id int) error
}

type QualificationUsecase interface {
	List(ctx context.Context) ([]dto.QualificationResponse, error)
	Create(ctx context.Context, req *dto.CreateQualificationRequest) (*dto.QualificationResponse, error)
	Update(ctx context.Context, id int, req *dto.UpdateQualificationRequest) (*dto.QualificationResponse, error)
	Delete(ctx context.Context, id int) error
}

type CollectionUsecase interface {
	List(ctx context.Context) ([]dto.CollectionResponse, error)
	Create(ctx context.Context, req *dto.CreateCollectionRequest) (*dto.CollectionResponse, error)
	Update(ctx context.Context, id int, req *dto.UpdateCollectionRequest) (*dto.CollectionResponse, error)
	Delete(ctx context.Context, id int) error
}

type departmentUsecase struct {
	log            *logrus.Logger
	departmentRepo repository.DepartmentRepository
	doctorRepo     repository.DoctorRepository
}

func NewDepartmentUsecase(
	log *logrus.Logger,
	departmentRepo repository.DepartmentRepository,
	doctorRepo repository.DoctorRepository,
) DepartmentUsecase {
	return &departmentUsecase{
		log:            log,
		departmentRepo: departmentRepo,
		doctorRepo:     doctorRepo,
	}
}

func (u *departmentUsecase) List(ctx context.Context) ([]dto.DepartmentResponse, error) {
	departments, err := u.departmentRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list departments: %+v", err)
		return nil, err
	}
	return converter.DepartmentsToResponses(departments), nil
}

func (u *departmentUsecase) Create(ctx context.Context, req *dto.CreateDepartmentRequest) (*dto.DepartmentResponse, error) {
	department := &entity.Department{Title: req.Title}
	if err := u.departmentRepo.Create(ctx, department); err != nil {
		if isDuplicateKeyError(err, "title") {
			return nil, ErrDepartmentTitleTaken
		}
		u.log.Warnf("Failed to create department: %+v", err)
		return nil, err
	}
	return &dto.DepartmentResponse{ID: department.ID, Title: department.Title}, nil
}

func (u *departmentUsecase) Update(ctx context.Context, id int, req *dto.UpdateDepartmentRequest) (*dto.DepartmentResponse, error) {
	department, err := u.departmentRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find department %d: %+v", id, err)
		return nil, err
	}
	if department == nil {
		return nil, ErrDepartmentNotFound
	}

	department.Title = req.Title
	if err := u.departmentRepo.Update(ctx, department); err != nil {
		if isDuplicateKeyError(err, "title") {
			return nil, ErrDepartmentTitleTaken
		}
		u.log.Warnf("Failed to update department %d: %+v", id, err)
		return nil, err
	}
	return &dto.DepartmentResponse{ID: department.ID, Title: department.Title}, nil
}

func (u *departmentUsecase) Delete(ctx context.Context, id int) error {
	department, err := u.departmentRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find department %d: %+v", id, err)
		return err
	}
	if department == nil {
		return ErrDepartmentNotFound
	}

	doctors, err := u.doctorRepo.CountByDepartmentID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to count doctors for department %d: %+v", id, err)
		return err
	}
	if doctors > 0 {
		return ErrDepartmentNotEmpty
	}

	if err := u.departmentRepo.Delete(ctx, id); err != nil {
		if isForeignKeyError(err, "department") {
			return ErrDepartmentNotEmpty
		}
		u.log.Warnf("Failed to delete department %d: %+v", id, err)
		return err
	}
	return nil
}

type qualificationUsecase struct {
	log               *logrus.Logger
	qualificationRepo repository.QualificationRepository
	doctorRepo        repository.DoctorRepository
}

func NewQualificationUsecase(
	log *logrus.Logger,
	qualificationRepo repository.QualificationRepository,
	doctorRepo repository.DoctorRepository,
) QualificationUsecase {
	return &qualificationUsecase{
		log:               log,
		qualificationRepo: qualificationRepo,
		doctorRepo:        doctorRepo,
	}
}

func (u *qualificationUsecase) List(ctx context.Context) ([]dto.QualificationResponse, error) {
	qualifications, err := u.qualificationRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list qualifications: %+v", err)
		return nil, err
	}
	return converter.QualificationsToResponses(qualifications), nil
}

func (u *qualificationUsecase) Create(ctx context.Context, req *dto.CreateQualificationRequest) (*dto.QualificationResponse, error) {
	qualification := &entity.Qualification{Name: req.Name, Title: req.Title}
	if err := u.qualificationRepo.Create(ctx, qualification); err != nil {
		if isDuplicateKeyError(err, "name") || isDuplicateKeyError(err, "title") {
			return nil, ErrQualificationTitleTaken
		}
		u.log.Warnf("Failed to create qualification: %+v", err)
		return nil, err
	}
	return &dto.QualificationResponse{ID: qualification.ID, Name: qualification.Name, Title: qualification.Title}, nil
}

func (u *qualificationUsecase) Update(ctx context.Context, id int, req *dto.UpdateQualificationRequest) (*dto.QualificationResponse, error) {
	qualification, err := u.qualificationRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find qualification %d: %+v", id, err)
		return nil, err
	}
	if qualification == nil {
		return nil, ErrQualificationNotFound
	}

	qualification.Name = req.Name
	qualification.Title = req.Title
	if err := u.qualificationRepo.Update(ctx, qualification); err != nil {
		if isDuplicateKeyError(err, "name") || isDuplicateKeyError(err, "title") {
			return nil, ErrQualificationTitleTaken
		}
		u.log.Warnf("Failed to update qualification %d: %+v", id, err)
		return nil, err
	}
	return &dto.QualificationResponse{ID: qualification.ID, Name: qualification.Name, Title: qualification.Title}, nil
}

func (u *qualificationUsecase) Delete(ctx context.Context, id int) error {
	qualification, err := u.qualificationRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find qualification %d: %+v", id, err)
		return err
	}
	if qualification == nil {
		return ErrQualificationNotFound
	}

	doctors, err := u.doctorRepo.CountByQualificationID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to count doctors for qualification %d: %+v", id, err)
		return err
	}
	if doctors > 0 {
		return ErrQualificationInUse
	}

	if err := u.qualificationRepo.Delete(ctx, id); err != nil {
		if isForeignKeyError(err, "qualification") {
			return ErrQualificationInUse
		}
		u.log.Warnf("Failed to delete qualification %d: %+v", id, err)
		return err
	}
	return nil
}

type collectionUsecase struct {
	log            *logrus.Logger
	collectionRepo repository.CollectionRepository
	testRepo       repository.TestRepository
}

func NewCollectionUsecase(
	log *logrus.Logger,
	collectionRepo repository.CollectionRepository,
	testRepo repository.TestRepository,
) CollectionUsecase {
	return &collectionUsecase{
		log:            log,
		collectionRepo: collectionRepo,
		testRepo:       testRepo,
	}
}

func (u *collectionUsecase) List(ctx context.Context) ([]dto.CollectionResponse, error) {
	collections, err := u.collectionRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list collections: %+v", err)
		return nil, err
	}
	return converter.CollectionsToResponses(collections), nil
}

func (u *collectionUsecase) Create(ctx context.Context, req *dto.CreateCollectionRequest) (*dto.CollectionResponse, error) {
	collection := &entity.Collection{
		Title:          req.Title,
		FeaturedTestID: req.FeaturedTestID,
	}
	if err := u.collectionRepo.Create(ctx, collection); err != nil {
		if isDuplicateKeyError(err, "title") {
			return nil, ErrCollectionTitleTaken
		}
		u.log.Warnf("Failed to create collection: %+v", err)
		return nil, err
	}
	return &dto.CollectionResponse{ID: collection.ID, Title: collection.Title}, nil
}

func (u *collectionUsecase) Update(ctx context.Context, id int, req *dto.UpdateCollectionRequest) (*dto.CollectionResponse, error) {
	collection, err := u.collectionRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find collection %d: %+v", id, err)
		return nil, err
	}
	if collection == nil {
		return nil, ErrCollectionNotFound
	}

	collection.Title = req.Title
	collection.FeaturedTestID = req.FeaturedTestID
	if err := u.collectionRepo.Update(ctx, collection); err != nil {
		if isDuplicateKeyError(err, "title") {
			return nil, ErrCollectionTitleTaken
		}
		u.log.Warnf("Failed to update collection %d: %+v", id, err)
		return nil, err
	}
	return &dto.CollectionResponse{ID: collection.ID, Title: collection.Title}, nil
}

func (u *collectionUsecase) Delete(ctx context.Context, id int) error {
	collection, err := u.collectionRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find collection %d: %+v", id, err)
		return err
	}
	if collection == nil {
		return ErrCollectionNotFound
	}

	tests, err := u.testRepo.CountByCollectionID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to count tests for collection %d: %+v", id, err)
		return err
	}
	if tests > 0 {
		return ErrCollectionNotEmpty
	}

	if err := u.collectionRepo.Delete(ctx, id); err != nil {
		if isForeignKeyError(err, "collection") {
			return ErrCollectionNotEmpty
		}
		u.log.Warnf("Failed to delete collection %d: %+v", id, err)
		return err
	}
	return nil
}
