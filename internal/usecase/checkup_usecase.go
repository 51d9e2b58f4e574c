package usecase

import (
	"context"
	"errors"
	"time"

	"pathlab/internal/converter"
	"pathlab/internal/delivery/dto"
	"pathlab/internal/domain/entity"
	"pathlab/internal/domain/repository"
	"pathlab/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrCheckupNotFound = errors.New("checkup not found")
	ErrCheckupNotOwned = errors.New("checkup does not belong to you")
	ErrDoctorNotFound  = errors.New("doctor not found")
)

type CheckupUsecase interface {
	BookDoctor(ctx context.Context, userID uuid.UUID, req *dto.BookDoctorRequest) (*dto.BookDoctorResponse, error)
	PayCheckup(ctx context.Context, userID, checkupID uuid.UUID) (*dto.CheckupPaymentResponse, error)
	GetMyCheckups(ctx context.Context, userID uuid.UUID) (*dto.CheckupListResponse, error)
	GetCheckup(ctx context.Context, userID, checkupID uuid.UUID) (*dto.CheckupResponse, error)
}

type checkupUsecase struct {
	log         *logrus.Logger
	checkupRepo repository.CheckupRepository
	doctorRepo  repository.DoctorRepository
	gateway     service.PaymentGateway
	audit       service.AuditService
	// now is swappable in tests
	now func() time.Time
}

func NewCheckupUsecase(
	log *logrus.Logger,
	checkupRepo repository.CheckupRepository,
	doctorRepo repository.DoctorRepository,
	gateway service.PaymentGateway,
	audit service.AuditService,
) CheckupUsecase {
	return &checkupUsecase{
		log:         log,
		checkupRepo: checkupRepo,
		doctorRepo:  doctorRepo,
		gateway:     gateway,
		audit:       audit,
		now:         time.Now,
	}
}

// BookDoctor books a doctor into the user's open checkup bucket for today.
//
// Flow:
// 1. Find the user's Pending checkup for today.
// 2. If found and the doctor is already attached, return the existing
//    line unchanged (rebooking is idempotent, no duplicate charge).
// 3. If found without the doctor, append a line snapshotting the fee.
// 4. If no Pending checkup exists, create one with its first line.
//
// A settled (Complete/Failed) checkup for today is never matched, so a
// booking after settlement starts a second bucket for the same day.
func (u *checkupUsecase) BookDoctor(ctx context.Context, userID uuid.UUID, req *dto.BookDoctorRequest) (*dto.BookDoctorResponse, error) {
	doctor, err := u.doctorRepo.FindByID(ctx, req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %d: %+v", req.DoctorID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	today := u.today()

	checkup, err := u.checkupRepo.FindPendingByUserAndDate(ctx, userID, today)
	if err != nil {
		u.log.Warnf("Failed to find pending checkup for user %s: %+v", userID, err)
		return nil, err
	}

	if checkup != nil {
		existing, err := u.checkupRepo.FindLine(ctx, checkup.ID, doctor.ID)
		if err != nil {
			u.log.Warnf("Failed to find checkup line: %+v", err)
			return nil, err
		}
		if existing != nil {
			existing.Doctor = *doctor
			return &dto.BookDoctorResponse{
				CheckupID: checkup.ID,
				Booking:   *converter.LineToResponse(existing),
			}, nil
		}

		line := &entity.DoctorForCheckup{
			CheckupID:  checkup.ID,
			DoctorID:   doctor.ID,
			DoctorFees: doctor.Fees,
		}
		if err := u.checkupRepo.CreateLine(ctx, line); err != nil {
			u.log.Errorf("Failed to add doctor %d to checkup %s: %+v", doctor.ID, checkup.ID, err)
			return nil, err
		}

		u.audit.Record(ctx, &userID, entity.AuditActionCheckupBook, entity.JSON{
			"checkup_id": checkup.ID.String(),
			"doctor_id":  doctor.ID,
			"fees":       doctor.Fees.String(),
		})

		line.Doctor = *doctor
		u.log.Infof("Doctor booked: checkup=%s, doctor=%d", checkup.ID, doctor.ID)
		return &dto.BookDoctorResponse{
			CheckupID: checkup.ID,
			Booking:   *converter.LineToResponse(line),
		}, nil
	}

	checkup = &entity.Checkup{
		UserID:        userID,
		PaymentStatus: entity.PaymentStatusPending,
		BookedAt:      today,
	}
	line := &entity.DoctorForCheckup{
		DoctorID:   doctor.ID,
		DoctorFees: doctor.Fees,
	}
	if err := u.checkupRepo.CreateWithLine(ctx, checkup, line); err != nil {
		u.log.Errorf("Failed to create checkup for user %s: %+v", userID, err)
		return nil, err
	}

	u.audit.Record(ctx, &userID, entity.AuditActionCheckupBook, entity.JSON{
		"checkup_id": checkup.ID.String(),
		"doctor_id":  doctor.ID,
		"fees":       doctor.Fees.String(),
	})

	line.Doctor = *doctor
	u.log.Infof("Checkup created: id=%s, user=%s, doctor=%d", checkup.ID, userID, doctor.ID)
	return &dto.BookDoctorResponse{
		CheckupID: checkup.ID,
		Booking:   *converter.LineToResponse(line),
	}, nil
}

// PayCheckup charges the sum of the fee snapshots of all attached lines.
// Live doctor fees are never consulted. Paying a Complete checkup is a
// no-op; a declined charge marks it Failed.
func (u *checkupUsecase) PayCheckup(ctx context.Context, userID, checkupID uuid.UUID) (*dto.CheckupPaymentResponse, error) {
	checkup, err := u.checkupRepo.FindByID(ctx, checkupID)
	if err != nil {
		u.log.Warnf("Failed to find checkup %s: %+v", checkupID, err)
		return nil, err
	}
	if checkup == nil {
		return nil, ErrCheckupNotFound
	}
	if checkup.UserID != userID {
		return nil, ErrCheckupNotOwned
	}

	total := checkup.TotalPayable()

	if checkup.PaymentStatus.IsComplete() {
		return &dto.CheckupPaymentResponse{
			Checkup: *converter.CheckupToResponse(checkup),
			Paid:    total,
			Message: "Payment already completed",
		}, nil
	}

	result, err := u.gateway.Charge(ctx, checkup.ID.String(), total)
	if err != nil {
		u.log.Errorf("Gateway charge failed for checkup %s: %+v", checkupID, err)
		return nil, err
	}

	status := entity.PaymentStatusComplete
	if !result.Approved {
		status = entity.PaymentStatusFailed
	}

	if err := u.checkupRepo.UpdatePaymentStatus(ctx, checkup.ID, status); err != nil {
		u.log.Errorf("Failed to update payment status for checkup %s: %+v", checkupID, err)
		return nil, err
	}
	checkup.PaymentStatus = status

	u.audit.Record(ctx, &userID, entity.AuditActionCheckupPay, entity.JSON{
		"checkup_id": checkup.ID.String(),
		"status":     string(status),
		"reference":  result.Reference,
	})

	if !result.Approved {
		return nil, ErrPaymentFailed
	}

	u.log.Infof("Checkup paid: id=%s, total=%s, ref=%s", checkup.ID, total.String(), result.Reference)
	return &dto.CheckupPaymentResponse{
		Checkup:   *converter.CheckupToResponse(checkup),
		Paid:      total,
		Reference: result.Reference,
		Message:   "Payment successful",
	}, nil
}

func (u *checkupUsecase) GetMyCheckups(ctx context.Context, userID uuid.UUID) (*dto.CheckupListResponse, error) {
	checkups, err := u.checkupRepo.FindByUserID(ctx, userID)
	if err != nil {
		u.log.Warnf("Failed to find checkups for user %s: %+v", userID, err)
		return nil, err
	}

	return &dto.CheckupListResponse{
		Checkups: converter.CheckupsToResponses(checkups),
		Total:    len(checkups),
	}, nil
}

func (u *checkupUsecase) GetCheckup(ctx context.Context, userID, checkupID uuid.UUID) (*dto.CheckupResponse, error) {
	checkup, err := u.checkupRepo.FindByID(ctx, checkupID)
	if err != nil {
		u.log.Warnf("Failed to find checkup %s: %+v", checkupID, err)
		return nil, err
	}
	if checkup == nil {
		return nil, ErrCheckupNotFound
	}
	if checkup.UserID != userID {
		return nil, ErrCheckupNotOwned
	}

	return converter.CheckupToResponse(checkup), nil
}

func (u *checkupUsecase) today() time.Time {
	return u.now().UTC().Truncate(24 * time.Hour)
}
