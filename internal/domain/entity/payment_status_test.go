package entity

import "testing"

func TestPaymentStatusPredicates(t *testing.T) {
	cases := []struct {
		status   PaymentStatus
		pending  bool
		complete bool
		failed   bool
	}{
		{PaymentStatusPending, true, false, false},
		{PaymentStatusComplete, false, true, false},
		{PaymentStatusFailed, false, false, true},
		{PaymentStatus("X"), false, false, false},
	}

	for _, c := range cases {
		if c.status.IsPending() != c.pending {
			t.Errorf("%q IsPending = %v, want %v", c.status, c.status.IsPending(), c.pending)
		}
		if c.status.IsComplete() != c.complete {
			t.Errorf("%q IsComplete = %v, want %v", c.status, c.status.IsComplete(), c.complete)
		}
		if c.status.IsFailed() != c.failed {
			t.Errorf("%q IsFailed = %v, want %v", c.status, c.status.IsFailed(), c.failed)
		}
	}
}

func TestPaymentStatusLabel(t *testing.T) {
	cases := map[PaymentStatus]string{
		PaymentStatusPending:  "Pending",
		PaymentStatusComplete: "Complete",
		PaymentStatusFailed:   "Failed",
		PaymentStatus("X"):    "X",
	}
	for status, want := range cases {
		if got := status.Label(); got != want {
			t.Errorf("%q Label = %q, want %q", status, got, want)
		}
	}
}
