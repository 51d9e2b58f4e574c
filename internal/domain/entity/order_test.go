package entity

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestOrderTotalPayable(t *testing.T) {
	order := &Order{
		Line: &OrderedTest{Quantity: 2, UnitPrice: decimal.NewFromInt(300)},
	}
	if got := order.TotalPayable(); !got.Equal(decimal.NewFromInt(600)) {
		t.Errorf("TotalPayable = %s, want 600", got)
	}

	empty := &Order{}
	if got := empty.TotalPayable(); !got.Equal(decimal.Zero) {
		t.Errorf("TotalPayable without line = %s, want 0", got)
	}
}

func TestCheckupTotalPayable(t *testing.T) {
	checkup := &Checkup{
		Doctors: []DoctorForCheckup{
			{DoctorFees: decimal.NewFromInt(500)},
			{DoctorFees: decimal.NewFromInt(700)},
		},
	}
	if got := checkup.TotalPayable(); !got.Equal(decimal.NewFromInt(1200)) {
		t.Errorf("TotalPayable = %s, want 1200", got)
	}

	empty := &Checkup{}
	if got := empty.TotalPayable(); !got.Equal(decimal.Zero) {
		t.Errorf("TotalPayable without doctors = %s, want 0", got)
	}
}
