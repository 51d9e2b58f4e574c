package usecase

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"pathlab/internal/delivery/dto"
	"pathlab/internal/domain/entity"
	"pathlab/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type reportFixture struct {
	uc        ReportUsecase
	orders    OrderUsecase
	userRepo  *fakeUserRepo
	orderRepo *fakeOrderRepo
	userID    uuid.UUID
}

func newReportFixture(t *testing.T) *reportFixture {
	t.Helper()

	testRepo := &fakeTestRepo{tests: map[int]*entity.Test{
		1: {ID: 1, Title: "CBC", Code: "CBC", UnitPrice: decimal.NewFromInt(300), CollectionID: 1},
	}}
	orderRepo := newFakeOrderRepo()
	reportRepo := newFakeReportRepo()
	userRepo := newFakeUserRepo()
	gateway := &fakeGateway{approve: true}

	user := &entity.User{ID: uuid.New(), Username: "alice", Email: "alice@example.com"}
	userRepo.users[user.ID] = user

	orders := NewOrderUsecase(testLogger(), orderRepo, testRepo, reportRepo, gateway, noopAudit{})
	uc := NewReportUsecase(testLogger(), reportRepo, orderRepo, userRepo, service.NewPDFReportRenderer(), noopAudit{})

	return &reportFixture{uc: uc, orders: orders, userRepo: userRepo, orderRepo: orderRepo, userID: user.ID}
}

func (f *reportFixture) paidOrder(t *testing.T, ctx context.Context) uuid.UUID {
	t.Helper()
	order, err := f.orders.PlaceOrder(ctx, f.userID, &dto.PlaceOrderRequest{TestID: 1})
	if err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}
	if _, err := f.orders.PayOrder(ctx, f.userID, order.ID); err != nil {
		t.Fatalf("PayOrder: %v", err)
	}
	return order.ID
}

func TestCreateReport(t *testing.T) {
	ctx := context.Background()

	t.Run("publishes a result for a settled order", func(t *testing.T) {
		f := newReportFixture(t)
		orderID := f.paidOrder(t, ctx)

		report, err := f.uc.Create(ctx, &dto.CreateReportRequest{OrderID: orderID, Detail: "All clear"})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if report.OrderID != orderID {
			t.Errorf("report order = %s, want %s", report.OrderID, orderID)
		}
		if report.Detail != "All clear" {
			t.Errorf("detail = %q", report.Detail)
		}
	})

	t.Run("withholds results for unpaid orders", func(t *testing.T) {
		f := newReportFixture(t)
		order, _ := f.orders.PlaceOrder(ctx, f.userID, &dto.PlaceOrderRequest{TestID: 1})

		_, err := f.uc.Create(ctx, &dto.CreateReportRequest{OrderID: order.ID, Detail: "early"})
		if !errors.Is(err, ErrOrderNotPaid) {
			t.Errorf("err = %v, want ErrOrderNotPaid", err)
		}
	})

	t.Run("one report per order", func(t *testing.T) {
		f := newReportFixture(t)
		orderID := f.paidOrder(t, ctx)

		if _, err := f.uc.Create(ctx, &dto.CreateReportRequest{OrderID: orderID, Detail: "first"}); err != nil {
			t.Fatalf("Create: %v", err)
		}
		_, err := f.uc.Create(ctx, &dto.CreateReportRequest{OrderID: orderID, Detail: "second"})
		if !errors.Is(err, ErrReportAlreadyExists) {
			t.Errorf("err = %v, want ErrReportAlreadyExists", err)
		}
	})

	t.Run("unknown order", func(t *testing.T) {
		f := newReportFixture(t)

		_, err := f.uc.Create(ctx, &dto.CreateReportRequest{OrderID: uuid.New(), Detail: "x"})
		if !errors.Is(err, ErrOrderNotFound) {
			t.Errorf("err = %v, want ErrOrderNotFound", err)
		}
	})
}

func TestDownloadReport(t *testing.T) {
	ctx := context.Background()

	t.Run("renders the owner's PDF", func(t *testing.T) {
		f := newReportFixture(t)
		orderID := f.paidOrder(t, ctx)
		report, _ := f.uc.Create(ctx, &dto.CreateReportRequest{OrderID: orderID, Detail: "All clear"})

		payload, filename, err := f.uc.Download(ctx, f.userID, report.ID)
		if err != nil {
			t.Fatalf("Download: %v", err)
		}
		if !bytes.HasPrefix(payload, []byte("%PDF")) {
			t.Error("payload does not start with %PDF header")
		}
		want := "alice_" + orderID.String() + "_CBC.pdf"
		if filename != want {
			t.Errorf("filename = %q, want %q", filename, want)
		}
	})

	t.Run("someone else's report", func(t *testing.T) {
		f := newReportFixture(t)
		orderID := f.paidOrder(t, ctx)
		report, _ := f.uc.Create(ctx, &dto.CreateReportRequest{OrderID: orderID, Detail: "All clear"})

		_, _, err := f.uc.Download(ctx, uuid.New(), report.ID)
		if !errors.Is(err, ErrReportNotOwned) {
			t.Errorf("err = %v, want ErrReportNotOwned", err)
		}
	})

	t.Run("unknown report", func(t *testing.T) {
		f := newReportFixture(t)

		_, _, err := f.uc.Download(ctx, f.userID, uuid.New())
		if !errors.Is(err, ErrReportNotFound) {
			t.Errorf("err = %v, want ErrReportNotFound", err)
		}
	})
}

func TestGetMyReports(t *testing.T) {
	ctx := context.Background()
	f := newReportFixture(t)
	orderID := f.paidOrder(t, ctx)
	f.uc.Create(ctx, &dto.CreateReportRequest{OrderID: orderID, Detail: "All clear"})

	list, err := f.uc.GetMyReports(ctx, f.userID)
	if err != nil {
		t.Fatalf("GetMyReports: %v", err)
	}
	if list.Total != 1 {
		t.Fatalf("total = %d, want 1", list.Total)
	}

	other, err := f.uc.GetMyReports(ctx, uuid.New())
	if err != nil {
		t.Fatalf("GetMyReports: %v", err)
	}
	if other.Total != 0 {
		t.Errorf("foreign total = %d, want 0", other.Total)
	}
}
