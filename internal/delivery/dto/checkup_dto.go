package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type BookDoctorRequest struct {
	DoctorID int `json:"doctor" validate:"required,gt=0"`
}

// Response DTOs

type DoctorForCheckupResponse struct {
	ID             int64           `json:"id"`
	DoctorID       int             `json:"doctor_id"`
	Name           string          `json:"name"`
	VisitingCharge decimal.Decimal `json:"visiting_charge"`
}

type CheckupResponse struct {
	ID            uuid.UUID                  `json:"id"`
	BookedAt      time.Time                  `json:"booked_at"`
	Doctors       []DoctorForCheckupResponse `json:"doctors"`
	TotalPayable  decimal.Decimal            `json:"total_payable"`
	PaymentStatus string                     `json:"payment_status"`
}

type CheckupListResponse struct {
	Checkups []CheckupResponse `json:"checkups"`
	Total    int               `json:"total"`
}

type BookDoctorResponse struct {
	CheckupID uuid.UUID                `json:"checkup_id"`
	Booking   DoctorForCheckupResponse `json:"booking"`
}

type CheckupPaymentResponse struct {
	Checkup   CheckupResponse `json:"checkup"`
	Paid      decimal.Decimal `json:"paid"`
	Reference string          `json:"reference,omitempty"`
	Message   string          `json:"message"`
}
