package usecase

import (
	"context"
	"errors"
	"testing"

	"pathlab/internal/delivery/dto"
	"pathlab/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func newOrderFixture(approve bool) (OrderUsecase, *fakeTestRepo, *fakeOrderRepo, *fakeGateway) {
	testRepo := &fakeTestRepo{tests: map[int]*entity.Test{
		1: {ID: 1, Title: "Complete Blood Count", Code: "CBC", UnitPrice: decimal.NewFromInt(300), CollectionID: 1},
	}}
	orderRepo := newFakeOrderRepo()
	gateway := &fakeGateway{approve: approve}
	uc := NewOrderUsecase(testLogger(), orderRepo, testRepo, newFakeReportRepo(), gateway, noopAudit{})
	return uc, testRepo, orderRepo, gateway
}

func TestPlaceOrder(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("snapshots the current price", func(t *testing.T) {
		uc, testRepo, orderRepo, _ := newOrderFixture(true)

		order, err := uc.PlaceOrder(ctx, userID, &dto.PlaceOrderRequest{TestID: 1})
		if err != nil {
			t.Fatalf("PlaceOrder: %v", err)
		}
		if order.Line == nil {
			t.Fatal("expected order line")
		}
		if !order.Line.UnitPrice.Equal(decimal.NewFromInt(300)) {
			t.Errorf("snapshot price = %s, want 300", order.Line.UnitPrice)
		}
		if order.PaymentStatus != "Pending" {
			t.Errorf("payment status = %s, want Pending", order.PaymentStatus)
		}

		// A later catalog change must not move the stored snapshot
		testRepo.tests[1].UnitPrice = decimal.NewFromInt(999)
		stored := orderRepo.orders[order.ID]
		if !stored.Line.UnitPrice.Equal(decimal.NewFromInt(300)) {
			t.Errorf("stored snapshot = %s, want 300", stored.Line.UnitPrice)
		}
	})

	t.Run("unknown test", func(t *testing.T) {
		uc, _, _, _ := newOrderFixture(true)

		_, err := uc.PlaceOrder(ctx, userID, &dto.PlaceOrderRequest{TestID: 99})
		if !errors.Is(err, ErrTestNotFound) {
			t.Errorf("err = %v, want ErrTestNotFound", err)
		}
	})

	t.Run("each placement creates a fresh order", func(t *testing.T) {
		uc, _, orderRepo, _ := newOrderFixture(true)

		first, _ := uc.PlaceOrder(ctx, userID, &dto.PlaceOrderRequest{TestID: 1})
		second, _ := uc.PlaceOrder(ctx, userID, &dto.PlaceOrderRequest{TestID: 1})
		if first.ID == second.ID {
			t.Error("expected distinct order IDs")
		}
		if len(orderRepo.orders) != 2 {
			t.Errorf("stored orders = %d, want 2", len(orderRepo.orders))
		}
	})
}

func TestPayOrder(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("approved charge settles the order", func(t *testing.T) {
		uc, _, orderRepo, gateway := newOrderFixture(true)
		order, _ := uc.PlaceOrder(ctx, userID, &dto.PlaceOrderRequest{TestID: 1})

		payment, err := uc.PayOrder(ctx, userID, order.ID)
		if err != nil {
			t.Fatalf("PayOrder: %v", err)
		}
		if !payment.Paid.Equal(decimal.NewFromInt(300)) {
			t.Errorf("paid = %s, want 300", payment.Paid)
		}
		if orderRepo.orders[order.ID].PaymentStatus != entity.PaymentStatusComplete {
			t.Error("expected order marked Complete")
		}
		if len(gateway.charges) != 1 || !gateway.charges[0].Equal(decimal.NewFromInt(300)) {
			t.Errorf("gateway charged %v, want one charge of 300", gateway.charges)
		}
	})

	t.Run("charge amount comes from the snapshot", func(t *testing.T) {
		uc, testRepo, _, gateway := newOrderFixture(true)
		order, _ := uc.PlaceOrder(ctx, userID, &dto.PlaceOrderRequest{TestID: 1})

		// Price hike between placement and payment
		testRepo.tests[1].UnitPrice = decimal.NewFromInt(999)

		if _, err := uc.PayOrder(ctx, userID, order.ID); err != nil {
			t.Fatalf("PayOrder: %v", err)
		}
		if !gateway.charges[0].Equal(decimal.NewFromInt(300)) {
			t.Errorf("charged %s, want snapshot price 300", gateway.charges[0])
		}
	})

	t.Run("paying a settled order is a no-op", func(t *testing.T) {
		uc, _, _, gateway := newOrderFixture(true)
		order, _ := uc.PlaceOrder(ctx, userID, &dto.PlaceOrderRequest{TestID: 1})

		if _, err := uc.PayOrder(ctx, userID, order.ID); err != nil {
			t.Fatalf("first PayOrder: %v", err)
		}
		payment, err := uc.PayOrder(ctx, userID, order.ID)
		if err != nil {
			t.Fatalf("second PayOrder: %v", err)
		}
		if payment.Message != "Payment already completed" {
			t.Errorf("message = %q", payment.Message)
		}
		if len(gateway.charges) != 1 {
			t.Errorf("gateway charges = %d, want 1 (no double charge)", len(gateway.charges))
		}
	})

	t.Run("declined charge marks the order Failed", func(t *testing.T) {
		uc, _, orderRepo, _ := newOrderFixture(false)
		order, _ := uc.PlaceOrder(ctx, userID, &dto.PlaceOrderRequest{TestID: 1})

		_, err := uc.PayOrder(ctx, userID, order.ID)
		if !errors.Is(err, ErrPaymentFailed) {
			t.Fatalf("err = %v, want ErrPaymentFailed", err)
		}
		if orderRepo.orders[order.ID].PaymentStatus != entity.PaymentStatusFailed {
			t.Error("expected order marked Failed")
		}
	})

	t.Run("a Failed order can be retried", func(t *testing.T) {
		uc, _, orderRepo, gateway := newOrderFixture(false)
		order, _ := uc.PlaceOrder(ctx, userID, &dto.PlaceOrderRequest{TestID: 1})

		uc.PayOrder(ctx, userID, order.ID)
		gateway.approve = true

		if _, err := uc.PayOrder(ctx, userID, order.ID); err != nil {
			t.Fatalf("retry PayOrder: %v", err)
		}
		if orderRepo.orders[order.ID].PaymentStatus != entity.PaymentStatusComplete {
			t.Error("expected retried order marked Complete")
		}
	})

	t.Run("someone else's order", func(t *testing.T) {
		uc, _, _, _ := newOrderFixture(true)
		order, _ := uc.PlaceOrder(ctx, userID, &dto.PlaceOrderRequest{TestID: 1})

		_, err := uc.PayOrder(ctx, uuid.New(), order.ID)
		if !errors.Is(err, ErrOrderNotOwned) {
			t.Errorf("err = %v, want ErrOrderNotOwned", err)
		}
	})

	t.Run("unknown order", func(t *testing.T) {
		uc, _, _, _ := newOrderFixture(true)

		_, err := uc.PayOrder(ctx, userID, uuid.New())
		if !errors.Is(err, ErrOrderNotFound) {
			t.Errorf("err = %v, want ErrOrderNotFound", err)
		}
	})
}

func TestGetOrder(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	uc, _, _, _ := newOrderFixture(true)
	order, _ := uc.PlaceOrder(ctx, userID, &dto.PlaceOrderRequest{TestID: 1})

	got, err := uc.GetOrder(ctx, userID, order.ID)
	if err != nil {
		t.Fatalf("GetOrder: %v", err)
	}
	if got.ID != order.ID {
		t.Errorf("got order %s, want %s", got.ID, order.ID)
	}

	if _, err := uc.GetOrder(ctx, uuid.New(), order.ID); !errors.Is(err, ErrOrderNotOwned) {
		t.Errorf("foreign access err = %v, want ErrOrderNotOwned", err)
	}
}
