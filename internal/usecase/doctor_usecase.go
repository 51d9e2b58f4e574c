package usecase

import (
	"context"
	"errors"

	"pathlab/internal/converter"
	"pathlab/internal/delivery/dto"
	"pathlab/internal/domain/entity"
	"pathlab/internal/domain/repository"
	"pathlab/internal/service"

	"github.com/sirupsen/logrus"
)

var (
	ErrDoctorEmailTaken = errors.New("doctor email already in use")
	ErrDoctorBooked     = errors.New("doctor is referenced by existing checkups")
)

type DoctorUsecase interface {
	List(ctx context.Context, filter *repository.DoctorFilter) (*dto.DoctorListResponse, error)
	Get(ctx context.Context, id int) (*dto.DoctorResponse, error)
	GetSchedule(ctx context.Context, id int) (*dto.DoctorScheduleResponse, error)
	Create(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error)
	Update(ctx context.Context, id int, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error)
	Delete(ctx context.Context, id int) error
}

type doctorUsecase struct {
	log               *logrus.Logger
	doctorRepo        repository.DoctorRepository
	departmentRepo    repository.DepartmentRepository
	qualificationRepo repository.QualificationRepository
	checkupRepo       repository.CheckupRepository
	audit             service.AuditService
}

func NewDoctorUsecase(
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	departmentRepo repository.DepartmentRepository,
	qualificationRepo repository.QualificationRepository,
	checkupRepo repository.CheckupRepository,
	audit service.AuditService,
) DoctorUsecase {
	return &doctorUsecase{
		log:               log,
		doctorRepo:        doctorRepo,
		departmentRepo:    departmentRepo,
		qualificationRepo: qualificationRepo,
		checkupRepo:       checkupRepo,
		audit:             audit,
	}
}

func (u *doctorUsecase) List(ctx context.Context, filter *repository.DoctorFilter) (*dto.DoctorListResponse, error) {
	doctors, err := u.doctorRepo.FindAll(ctx, filter)
	if err != nil {
		u.log.Warnf("Failed to list doctors: %+v", err)
		return nil, err
	}

	return &dto.DoctorListResponse{
		Doctors: converter.DoctorsToResponses(doctors),
		Total:   len(doctors),
	}, nil
}

func (u *doctorUsecase) Get(ctx context.Context, id int) (*dto.DoctorResponse, error) {
	doctor, err := u.doctorRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find doctor %d: %+v", id, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}
	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) GetSchedule(ctx context.Context, id int) (*dto.DoctorScheduleResponse, error) {
	doctor, err := u.doctorRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find doctor %d: %+v", id, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	timings, err := u.doctorRepo.FindTimings(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to load timings for doctor %d: %+v", id, err)
		return nil, err
	}

	return &dto.DoctorScheduleResponse{
		Name:     doctor.Name(),
		Schedule: converter.TimingsToSchedule(timings),
	}, nil
}

func (u *doctorUsecase) Create(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error) {
	department, err := u.departmentRepo.FindByID(ctx, req.DepartmentID)
	if err != nil {
		u.log.Warnf("Failed to find department %d: %+v", req.DepartmentID, err)
		return nil, err
	}
	if department == nil {
		return nil, ErrDepartmentNotFound
	}

	qualification, err := u.qualificationRepo.FindByID(ctx, req.QualificationID)
	if err != nil {
		u.log.Warnf("Failed to find qualification %d: %+v", req.QualificationID, err)
		return nil, err
	}
	if qualification == nil {
		return nil, ErrQualificationNotFound
	}

	doctor := &entity.Doctor{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		Phone:           req.Phone,
		QualificationID: req.QualificationID,
		DepartmentID:    req.DepartmentID,
		Fees:            req.Fees,
		Address:         req.Address,
	}
	if err := u.doctorRepo.Create(ctx, doctor); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrDoctorEmailTaken
		}
		if isForeignKeyError(err, "qualification") {
			return nil, ErrQualificationNotFound
		}
		u.log.Warnf("Failed to create doctor: %+v", err)
		return nil, err
	}

	doctor.Department = *department
	doctor.Qualification = *qualification
	u.audit.Record(ctx, nil, entity.AuditActionDoctorCreate, entity.JSON{
		"doctor_id": doctor.ID,
	})
	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) Update(ctx context.Context, id int, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error) {
	doctor, err := u.doctorRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find doctor %d: %+v", id, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	department, err := u.departmentRepo.FindByID(ctx, req.DepartmentID)
	if err != nil {
		return nil, err
	}
	if department == nil {
		return nil, ErrDepartmentNotFound
	}

	qualification, err := u.qualificationRepo.FindByID(ctx, req.QualificationID)
	if err != nil {
		return nil, err
	}
	if qualification == nil {
		return nil, ErrQualificationNotFound
	}

	doctor.FirstName = req.FirstName
	doctor.LastName = req.LastName
	doctor.Email = req.Email
	doctor.Phone = req.Phone
	doctor.QualificationID = req.QualificationID
	doctor.DepartmentID = req.DepartmentID
	doctor.Fees = req.Fees
	doctor.Address = req.Address

	if err := u.doctorRepo.Update(ctx, doctor); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrDoctorEmailTaken
		}
		if isForeignKeyError(err, "qualification") {
			return nil, ErrQualificationNotFound
		}
		u.log.Warnf("Failed to update doctor %d: %+v", id, err)
		return nil, err
	}

	doctor.Department = *department
	doctor.Qualification = *qualification
	u.audit.Record(ctx, nil, entity.AuditActionDoctorUpdate, entity.JSON{
		"doctor_id": doctor.ID,
	})
	return converter.DoctorToResponse(doctor), nil
}

// Delete refuses to remove a doctor who appears on any checkup; the booked
// fee snapshots keep pointing at the doctor row.
func (u *doctorUsecase) Delete(ctx context.Context, id int) error {
	doctor, err := u.doctorRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find doctor %d: %+v", id, err)
		return err
	}
	if doctor == nil {
		return ErrDoctorNotFound
	}

	booked, err := u.checkupRepo.CountByDoctorID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to count checkups for doctor %d: %+v", id, err)
		return err
	}
	if booked > 0 {
		return ErrDoctorBooked
	}

	if err := u.doctorRepo.Delete(ctx, id); err != nil {
		if isForeignKeyError(err, "doctor") {
			return ErrDoctorBooked
		}
		u.log.Warnf("Failed to delete doctor %d: %+v", id, err)
		return err
	}

	u.audit.Record(ctx, nil, entity.AuditActionDoctorDelete, entity.JSON{
		"doctor_id": id,
	})
	return nil
}
