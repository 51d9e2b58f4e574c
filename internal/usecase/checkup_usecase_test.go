package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"pathlab/internal/delivery/dto"
	"pathlab/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type checkupFixture struct {
	uc          *checkupUsecase
	checkupRepo *fakeCheckupRepo
	doctorRepo  *fakeDoctorRepo
	gateway     *fakeGateway
}

func newCheckupFixture(approve bool) *checkupFixture {
	doctorRepo := &fakeDoctorRepo{doctors: map[int]*entity.Doctor{
		1: {ID: 1, FirstName: "Asha", LastName: "Verma", Fees: decimal.NewFromInt(500), DepartmentID: 1},
		2: {ID: 2, FirstName: "Ravi", LastName: "Nair", Fees: decimal.NewFromInt(700), DepartmentID: 1},
	}}
	checkupRepo := newFakeCheckupRepo()
	gateway := &fakeGateway{approve: approve}
	uc := NewCheckupUsecase(testLogger(), checkupRepo, doctorRepo, gateway, noopAudit{}).(*checkupUsecase)
	uc.now = func() time.Time {
		return time.Date(2025, time.March, 10, 14, 30, 0, 0, time.UTC)
	}
	return &checkupFixture{uc: uc, checkupRepo: checkupRepo, doctorRepo: doctorRepo, gateway: gateway}
}

func TestBookDoctor(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("first booking of the day opens a checkup", func(t *testing.T) {
		f := newCheckupFixture(true)

		booking, err := f.uc.BookDoctor(ctx, userID, &dto.BookDoctorRequest{DoctorID: 1})
		if err != nil {
			t.Fatalf("BookDoctor: %v", err)
		}
		if booking.Booking.DoctorID != 1 {
			t.Errorf("booked doctor = %d, want 1", booking.Booking.DoctorID)
		}
		if !booking.Booking.VisitingCharge.Equal(decimal.NewFromInt(500)) {
			t.Errorf("visiting charge = %s, want 500", booking.Booking.VisitingCharge)
		}
		if len(f.checkupRepo.checkups) != 1 {
			t.Errorf("checkups = %d, want 1", len(f.checkupRepo.checkups))
		}
	})

	t.Run("second doctor joins the same day's checkup", func(t *testing.T) {
		f := newCheckupFixture(true)

		first, _ := f.uc.BookDoctor(ctx, userID, &dto.BookDoctorRequest{DoctorID: 1})
		second, err := f.uc.BookDoctor(ctx, userID, &dto.BookDoctorRequest{DoctorID: 2})
		if err != nil {
			t.Fatalf("BookDoctor: %v", err)
		}
		if first.CheckupID != second.CheckupID {
			t.Error("expected both doctors in the same checkup")
		}
		if len(f.checkupRepo.lines) != 2 {
			t.Errorf("lines = %d, want 2", len(f.checkupRepo.lines))
		}
	})

	t.Run("rebooking the same doctor is idempotent", func(t *testing.T) {
		f := newCheckupFixture(true)

		first, _ := f.uc.BookDoctor(ctx, userID, &dto.BookDoctorRequest{DoctorID: 1})
		again, err := f.uc.BookDoctor(ctx, userID, &dto.BookDoctorRequest{DoctorID: 1})
		if err != nil {
			t.Fatalf("BookDoctor: %v", err)
		}
		if first.CheckupID != again.CheckupID {
			t.Error("expected the same checkup")
		}
		if first.Booking.ID != again.Booking.ID {
			t.Error("expected the same booking line")
		}
		if len(f.checkupRepo.lines) != 1 {
			t.Errorf("lines = %d, want 1", len(f.checkupRepo.lines))
		}
	})

	t.Run("booking snapshots the fee", func(t *testing.T) {
		f := newCheckupFixture(true)

		booking, _ := f.uc.BookDoctor(ctx, userID, &dto.BookDoctorRequest{DoctorID: 2})

		// Fee change after booking must not move the snapshot
		f.doctorRepo.doctors[2].Fees = decimal.NewFromInt(1500)

		if _, err := f.uc.PayCheckup(ctx, userID, booking.CheckupID); err != nil {
			t.Fatalf("PayCheckup: %v", err)
		}
		if !f.gateway.charges[0].Equal(decimal.NewFromInt(700)) {
			t.Errorf("charged %s, want snapshot fee 700", f.gateway.charges[0])
		}
	})

	t.Run("a new day gets a new checkup", func(t *testing.T) {
		f := newCheckupFixture(true)

		first, _ := f.uc.BookDoctor(ctx, userID, &dto.BookDoctorRequest{DoctorID: 1})

		f.uc.now = func() time.Time {
			return time.Date(2025, time.March, 11, 9, 0, 0, 0, time.UTC)
		}
		second, _ := f.uc.BookDoctor(ctx, userID, &dto.BookDoctorRequest{DoctorID: 1})

		if first.CheckupID == second.CheckupID {
			t.Error("expected a fresh checkup on the next day")
		}
		if len(f.checkupRepo.checkups) != 2 {
			t.Errorf("checkups = %d, want 2", len(f.checkupRepo.checkups))
		}
	})

	t.Run("booking after settlement opens a second bucket", func(t *testing.T) {
		f := newCheckupFixture(true)

		first, _ := f.uc.BookDoctor(ctx, userID, &dto.BookDoctorRequest{DoctorID: 1})
		if _, err := f.uc.PayCheckup(ctx, userID, first.CheckupID); err != nil {
			t.Fatalf("PayCheckup: %v", err)
		}

		second, err := f.uc.BookDoctor(ctx, userID, &dto.BookDoctorRequest{DoctorID: 1})
		if err != nil {
			t.Fatalf("BookDoctor: %v", err)
		}
		if first.CheckupID == second.CheckupID {
			t.Error("expected a new checkup after the previous one settled")
		}
	})

	t.Run("buckets are per user", func(t *testing.T) {
		f := newCheckupFixture(true)

		mine, _ := f.uc.BookDoctor(ctx, userID, &dto.BookDoctorRequest{DoctorID: 1})
		theirs, _ := f.uc.BookDoctor(ctx, uuid.New(), &dto.BookDoctorRequest{DoctorID: 1})
		if mine.CheckupID == theirs.CheckupID {
			t.Error("expected separate checkups for separate users")
		}
	})

	t.Run("unknown doctor", func(t *testing.T) {
		f := newCheckupFixture(true)

		_, err := f.uc.BookDoctor(ctx, userID, &dto.BookDoctorRequest{DoctorID: 99})
		if !errors.Is(err, ErrDoctorNotFound) {
			t.Errorf("err = %v, want ErrDoctorNotFound", err)
		}
	})
}

func TestPayCheckup(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("charges the sum of the fee snapshots", func(t *testing.T) {
		f := newCheckupFixture(true)

		booking, _ := f.uc.BookDoctor(ctx, userID, &dto.BookDoctorRequest{DoctorID: 1})
		f.uc.BookDoctor(ctx, userID, &dto.BookDoctorRequest{DoctorID: 2})

		payment, err := f.uc.PayCheckup(ctx, userID, booking.CheckupID)
		if err != nil {
			t.Fatalf("PayCheckup: %v", err)
		}
		if !payment.Paid.Equal(decimal.NewFromInt(1200)) {
			t.Errorf("paid = %s, want 1200", payment.Paid)
		}
		if !f.gateway.charges[0].Equal(decimal.NewFromInt(1200)) {
			t.Errorf("charged %s, want 1200", f.gateway.charges[0])
		}
		if f.checkupRepo.checkups[booking.CheckupID].PaymentStatus != entity.PaymentStatusComplete {
			t.Error("expected checkup marked Complete")
		}
	})

	t.Run("paying a settled checkup is a no-op", func(t *testing.T) {
		f := newCheckupFixture(true)
		booking, _ := f.uc.BookDoctor(ctx, userID, &dto.BookDoctorRequest{DoctorID: 1})

		if _, err := f.uc.PayCheckup(ctx, userID, booking.CheckupID); err != nil {
			t.Fatalf("first PayCheckup: %v", err)
		}
		payment, err := f.uc.PayCheckup(ctx, userID, booking.CheckupID)
		if err != nil {
			t.Fatalf("second PayCheckup: %v", err)
		}
		if payment.Message != "Payment already completed" {
			t.Errorf("message = %q", payment.Message)
		}
		if len(f.gateway.charges) != 1 {
			t.Errorf("gateway charges = %d, want 1 (no double charge)", len(f.gateway.charges))
		}
	})

	t.Run("declined charge marks the checkup Failed", func(t *testing.T) {
		f := newCheckupFixture(false)
		booking, _ := f.uc.BookDoctor(ctx, userID, &dto.BookDoctorRequest{DoctorID: 1})

		_, err := f.uc.PayCheckup(ctx, userID, booking.CheckupID)
		if !errors.Is(err, ErrPaymentFailed) {
			t.Fatalf("err = %v, want ErrPaymentFailed", err)
		}
		if f.checkupRepo.checkups[booking.CheckupID].PaymentStatus != entity.PaymentStatusFailed {
			t.Error("expected checkup marked Failed")
		}
	})

	t.Run("someone else's checkup", func(t *testing.T) {
		f := newCheckupFixture(true)
		booking, _ := f.uc.BookDoctor(ctx, userID, &dto.BookDoctorRequest{DoctorID: 1})

		_, err := f.uc.PayCheckup(ctx, uuid.New(), booking.CheckupID)
		if !errors.Is(err, ErrCheckupNotOwned) {
			t.Errorf("err = %v, want ErrCheckupNotOwned", err)
		}
	})

	t.Run("unknown checkup", func(t *testing.T) {
		f := newCheckupFixture(true)

		_, err := f.uc.PayCheckup(ctx, userID, uuid.New())
		if !errors.Is(err, ErrCheckupNotFound) {
			t.Errorf("err = %v, want ErrCheckupNotFound", err)
		}
	})
}

func TestGetMyCheckups(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	f := newCheckupFixture(true)
	f.uc.BookDoctor(ctx, userID, &dto.BookDoctorRequest{DoctorID: 1})
	f.uc.BookDoctor(ctx, userID, &dto.BookDoctorRequest{DoctorID: 2})
	f.uc.BookDoctor(ctx, uuid.New(), &dto.BookDoctorRequest{DoctorID: 1})

	list, err := f.uc.GetMyCheckups(ctx, userID)
	if err != nil {
		t.Fatalf("GetMyCheckups: %v", err)
	}
	if list.Total != 1 {
		t.Fatalf("total = %d, want 1", list.Total)
	}
	if len(list.Checkups[0].Doctors) != 2 {
		t.Errorf("doctors = %d, want 2", len(list.Checkups[0].Doctors))
	}
	if !list.Checkups[0].TotalPayable.Equal(decimal.NewFromInt(1200)) {
		t.Errorf("total payable = %s, want 1200", list.Checkups[0].TotalPayable)
	}
}
