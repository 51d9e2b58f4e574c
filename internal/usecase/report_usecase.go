package usecase

import (
	"context"
	"errors"

	"pathlab/internal/converter"
	"pathlab/internal/delivery/dto"
	"pathlab/internal/domain/entity"
	"pathlab/internal/domain/repository"
	"pathlab/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrReportNotFound      = errors.New("report not found")
	ErrReportNotOwned      = errors.New("report does not belong to you")
	ErrReportAlreadyExists = errors.New("order already has a report")
	ErrOrderNotPaid        = errors.New("order payment is not complete")
	ErrOrderLineMissing    = errors.New("order has no test line")
)

type ReportUsecase interface {
	Create(ctx context.Context, req *dto.CreateReportRequest) (*dto.ReportResponse, error)
	GetMyReports(ctx context.Context, userID uuid.UUID) (*dto.ReportListResponse, error)
	Get(ctx context.Context, userID, reportID uuid.UUID) (*dto.ReportResponse, error)
	// Download renders the report PDF and returns (payload, filename)
	Download(ctx context.Context, userID, reportID uuid.UUID) ([]byte, string, error)
}

type reportUsecase struct {
	log        *logrus.Logger
	reportRepo repository.ReportRepository
	orderRepo  repository.OrderRepository
	userRepo   repository.UserRepository
	renderer   service.ReportRenderer
	audit      service.AuditService
}

func NewReportUsecase(
	log *logrus.Logger,
	reportRepo repository.ReportRepository,
	orderRepo repository.OrderRepository,
	userRepo repository.UserRepository,
	renderer service.ReportRenderer,
	audit service.AuditService,
) ReportUsecase {
	return &reportUsecase{
		log:        log,
		reportRepo: reportRepo,
		orderRepo:  orderRepo,
		userRepo:   userRepo,
		renderer:   renderer,
		audit:      audit,
	}
}

// Create publishes a result for a settled order. An order carries at most
// one report; results for unpaid orders are withheld.
func (u *reportUsecase) Create(ctx context.Context, req *dto.CreateReportRequest) (*dto.ReportResponse, error) {
	order, err := u.orderRepo.FindByID(ctx, req.OrderID)
	if err != nil {
		u.log.Warnf("Failed to find order %s: %+v", req.OrderID, err)
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if !order.PaymentStatus.IsComplete() {
		return nil, ErrOrderNotPaid
	}
	if order.Line == nil {
		return nil, ErrOrderLineMissing
	}

	existing, err := u.reportRepo.FindByOrderID(ctx, req.OrderID)
	if err != nil {
		u.log.Warnf("Failed to check existing report for order %s: %+v", req.OrderID, err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrReportAlreadyExists
	}

	report := &entity.Report{
		OrderID: order.ID,
		TestID:  order.Line.TestID,
		UserID:  order.UserID,
		Detail:  req.Detail,
	}
	if err := u.reportRepo.Create(ctx, report); err != nil {
		u.log.Errorf("Failed to create report for order %s: %+v", req.OrderID, err)
		return nil, err
	}

	report.Test = order.Line.Test
	u.audit.Record(ctx, nil, entity.AuditActionReportCreate, entity.JSON{
		"report_id": report.ID.String(),
		"order_id":  order.ID.String(),
	})
	return converter.ReportToResponse(report), nil
}

func (u *reportUsecase) GetMyReports(ctx context.Context, userID uuid.UUID) (*dto.ReportListResponse, error) {
	reports, err := u.reportRepo.FindByUserID(ctx, userID)
	if err != nil {
		u.log.Warnf("Failed to list reports for user %s: %+v", userID, err)
		return nil, err
	}

	return &dto.ReportListResponse{
		Reports: converter.ReportsToResponses(reports),
		Total:   len(reports),
	}, nil
}

func (u *reportUsecase) Get(ctx context.Context, userID, reportID uuid.UUID) (*dto.ReportResponse, error) {
	report, err := u.findOwned(ctx, userID, reportID)
	if err != nil {
		return nil, err
	}
	return converter.ReportToResponse(report), nil
}

func (u *reportUsecase) Download(ctx context.Context, userID, reportID uuid.UUID) ([]byte, string, error) {
	report, err := u.findOwned(ctx, userID, reportID)
	if err != nil {
		return nil, "", err
	}

	user, err := u.userRepo.FindByID(ctx, userID)
	if err != nil {
		u.log.Warnf("Failed to find user %s: %+v", userID, err)
		return nil, "", err
	}
	if user == nil {
		return nil, "", ErrUserNotFound
	}

	payload, filename, err := u.renderer.Render(user.Username, report.OrderID.String(), report.Test.Title, report.Detail)
	if err != nil {
		u.log.Errorf("Failed to render report %s: %+v", reportID, err)
		return nil, "", err
	}

	u.audit.Record(ctx, &userID, entity.AuditActionReportDownload, entity.JSON{
		"report_id": reportID.String(),
	})
	return payload, filename, nil
}

func (u *reportUsecase) findOwned(ctx context.Context, userID, reportID uuid.UUID) (*entity.Report, error) {
	report, err := u.reportRepo.FindByID(ctx, reportID)
	if err != nil {
		u.log.Warnf("Failed to find report %s: %+v", reportID, err)
		return nil, err
	}
	if report == nil {
		return nil, ErrReportNotFound
	}
	if report.UserID != userID {
		return nil, ErrReportNotOwned
	}
	return report, nil
}
