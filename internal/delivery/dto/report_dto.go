package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateReportRequest struct {
	OrderID uuid.UUID `json:"order_id" validate:"required"`
	Detail  string    `json:"detail" validate:"required"`
}

// Response DTOs

type ReportResponse struct {
	ID       uuid.UUID `json:"id"`
	OrderID  uuid.UUID `json:"order_id"`
	TestName string    `json:"test_name"`
	Detail   string    `json:"detail"`
	Date     time.Time `json:"date"`
}

type ReportListResponse struct {
	Reports []ReportResponse `json:"reports"`
	Total   int              `json:"total"`
}
