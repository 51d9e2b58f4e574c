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
	ErrOrderNotFound = errors.New("order not found")
	ErrOrderNotOwned = errors.New("order does not belong to you")
	ErrTestNotFound  = errors.New("test not found")
	ErrPaymentFailed = errors.New("payment was declined")
)

type OrderUsecase interface {
	PlaceOrder(ctx context.Context, userID uuid.UUID, req *dto.PlaceOrderRequest) (*dto.OrderResponse, error)
	PayOrder(ctx context.Context, userID, orderID uuid.UUID) (*dto.OrderPaymentResponse, error)
	GetMyOrders(ctx context.Context, userID uuid.UUID, filter *repository.OrderFilter) (*dto.OrderListResponse, error)
	GetOrder(ctx context.Context, userID, orderID uuid.UUID) (*dto.OrderResponse, error)
}

type orderUsecase struct {
	log        *logrus.Logger
	orderRepo  repository.OrderRepository
	testRepo   repository.TestRepository
	reportRepo repository.ReportRepository
	gateway    service.PaymentGateway
	audit      service.AuditService
}

func NewOrderUsecase(
	log *logrus.Logger,
	orderRepo repository.OrderRepository,
	testRepo repository.TestRepository,
	reportRepo repository.ReportRepository,
	gateway service.PaymentGateway,
	audit service.AuditService,
) OrderUsecase {
	return &orderUsecase{
		log:        log,
		orderRepo:  orderRepo,
		testRepo:   testRepo,
		reportRepo: reportRepo,
		gateway:    gateway,
		audit:      audit,
	}
}

// PlaceOrder always creates a fresh order wrapping one test line. The
// test's current price is snapshotted into the line, so later catalog
// price changes never touch an existing order.
func (u *orderUsecase) PlaceOrder(ctx context.Context, userID uuid.UUID, req *dto.PlaceOrderRequest) (*dto.OrderResponse, error) {
	test, err := u.testRepo.FindByID(ctx, req.TestID)
	if err != nil {
		u.log.Warnf("Failed to find test %d: %+v", req.TestID, err)
		return nil, err
	}
	if test == nil {
		return nil, ErrTestNotFound
	}

	order := &entity.Order{
		UserID:        userID,
		PaymentStatus: entity.PaymentStatusPending,
	}
	line := &entity.OrderedTest{
		TestID:    test.ID,
		Quantity:  entity.DefaultOrderQuantity,
		UnitPrice: test.UnitPrice,
	}

	if err := u.orderRepo.Create(ctx, order, line); err != nil {
		u.log.Errorf("Failed to create order for user %s: %+v", userID, err)
		return nil, err
	}

	u.audit.Record(ctx, &userID, entity.AuditActionOrderPlace, entity.JSON{
		"order_id": order.ID.String(),
		"test_id":  test.ID,
		"price":    test.UnitPrice.String(),
	})

	line.Test = *test
	order.Line = line

	u.log.Infof("Order placed: id=%s, user=%s, test=%s", order.ID, userID, test.Code)
	return converter.OrderToResponse(order), nil
}

// PayOrder charges the order total through the gateway. Paying an order
// that already settled Complete is a no-op returning the order as is;
// a declined charge marks the order Failed and a later attempt may retry.
func (u *orderUsecase) PayOrder(ctx context.Context, userID, orderID uuid.UUID) (*dto.OrderPaymentResponse, error) {
	order, err := u.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		u.log.Warnf("Failed to find order %s: %+v", orderID, err)
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if order.UserID != userID {
		return nil, ErrOrderNotOwned
	}

	total := order.TotalPayable()

	if order.PaymentStatus.IsComplete() {
		return &dto.OrderPaymentResponse{
			Order:   *converter.OrderToResponse(order),
			Paid:    total,
			Message: "Payment already completed",
		}, nil
	}

	result, err := u.gateway.Charge(ctx, order.ID.String(), total)
	if err != nil {
		u.log.Errorf("Gateway charge failed for order %s: %+v", orderID, err)
		return nil, err
	}

	status := entity.PaymentStatusComplete
	if !result.Approved {
		status = entity.PaymentStatusFailed
	}

	if err := u.orderRepo.UpdatePaymentStatus(ctx, order.ID, status); err != nil {
		u.log.Errorf("Failed to update payment status for order %s: %+v", orderID, err)
		return nil, err
	}
	order.PaymentStatus = status

	u.audit.Record(ctx, &userID, entity.AuditActionOrderPay, entity.JSON{
		"order_id":  order.ID.String(),
		"status":    string(status),
		"reference": result.Reference,
	})

	if !result.Approved {
		return nil, ErrPaymentFailed
	}

	u.log.Infof("Order paid: id=%s, total=%s, ref=%s", order.ID, total.String(), result.Reference)
	return &dto.OrderPaymentResponse{
		Order:     *converter.OrderToResponse(order),
		Paid:      total,
		Reference: result.Reference,
		Message:   "Payment successful",
	}, nil
}

// GetMyOrders returns the user's orders, newest first, each annotated
// with its report id when a result document exists.
func (u *orderUsecase) GetMyOrders(ctx context.Context, userID uuid.UUID, filter *repository.OrderFilter) (*dto.OrderListResponse, error) {
	orders, err := u.orderRepo.FindByUserID(ctx, userID, filter)
	if err != nil {
		u.log.Warnf("Failed to find orders for user %s: %+v", userID, err)
		return nil, err
	}

	responses := make([]dto.OrderResponse, len(orders))
	for i := range orders {
		responses[i] = *converter.OrderToResponseWithReport(&orders[i], u.reportIDForOrder(ctx, orders[i].ID))
	}

	return &dto.OrderListResponse{
		Orders: responses,
		Total:  len(responses),
	}, nil
}

func (u *orderUsecase) GetOrder(ctx context.Context, userID, orderID uuid.UUID) (*dto.OrderResponse, error) {
	order, err := u.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		u.log.Warnf("Failed to find order %s: %+v", orderID, err)
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if order.UserID != userID {
		return nil, ErrOrderNotOwned
	}

	return converter.OrderToResponseWithReport(order, u.reportIDForOrder(ctx, order.ID)), nil
}

func (u *orderUsecase) reportIDForOrder(ctx context.Context, orderID uuid.UUID) *uuid.UUID {
	report, err := u.reportRepo.FindByOrderID(ctx, orderID)
	if err != nil {
		u.log.Warnf("Failed to look up report for order %s (non-fatal): %+v", orderID, err)
		return nil
	}
	if report == nil {
		return nil
	}
	return &report.ID
}
