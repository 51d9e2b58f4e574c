package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type PlaceOrderRequest struct {
	TestID int `json:"test" validate:"required,gt=0"`
}

// Response DTOs

type OrderedTestResponse struct {
	ID        int64           `json:"id"`
	TestID    int             `json:"test_id"`
	Title     string          `json:"title"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

type OrderResponse struct {
	ID            uuid.UUID            `json:"id"`
	PlacedAt      time.Time            `json:"placed_at"`
	Line          *OrderedTestResponse `json:"line,omitempty"`
	TotalPayable  decimal.Decimal      `json:"total_payable"`
	PaymentStatus string               `json:"payment_status"`
	ReportID      *uuid.UUID           `json:"report_id,omitempty"`
}

type OrderListResponse struct {
	Orders []OrderResponse `json:"orders"`
	Total  int             `json:"total"`
}

type OrderPaymentResponse struct {
	Order     OrderResponse   `json:"order"`
	Paid      decimal.Decimal `json:"paid"`
	Reference string          `json:"reference,omitempty"`
	Message   string          `json:"message"`
}
