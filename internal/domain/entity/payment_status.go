package entity

// PaymentStatus is the single-character settlement state stored on
// orders and checkups.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "P"
	PaymentStatusComplete PaymentStatus = "C"
	PaymentStatusFailed   PaymentStatus = "F"
)

func (s PaymentStatus) IsPending() bool {
	return s == PaymentStatusPending
}

func (s PaymentStatus) IsComplete() bool {
	return s == PaymentStatusComplete
}

func (s PaymentStatus) IsFailed() bool {
	return s == PaymentStatusFailed
}

// Label returns the human-readable form used in API responses.
func (s PaymentStatus) Label() string {
	switch s {
	case PaymentStatusPending:
		return "Pending"
	case PaymentStatusComplete:
		return "Complete"
	case PaymentStatusFailed:
		return "Failed"
	default:
		return string(s)
	}
}
