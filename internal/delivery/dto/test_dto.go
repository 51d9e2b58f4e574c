package dto

import (
	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateTestRequest struct {
	Title        string          `json:"title" validate:"required,min=2,max=255"`
	Slug         string          `json:"slug" validate:"required"`
	Code         string          `json:"code" validate:"required,max=255"`
	Description  string          `json:"description"`
	UnitPrice    decimal.Decimal `json:"unit_price" validate:"required"`
	CollectionID int             `json:"collection_id" validate:"required,gt=0"`
}

type UpdateTestRequest struct {
	Title        string          `json:"title" validate:"required,min=2,max=255"`
	Slug         string          `json:"slug" validate:"required"`
	Code         string          `json:"code" validate:"required,max=255"`
	Description  string          `json:"description"`
	UnitPrice    decimal.Decimal `json:"unit_price" validate:"required"`
	CollectionID int             `json:"collection_id" validate:"required,gt=0"`
}

// Response DTOs

type TestResponse struct {
	ID          int             `json:"id"`
	Title       string          `json:"title"`
	Code        string          `json:"code"`
	Description string          `json:"description,omitempty"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Collection  string          `json:"collection"`
}

type TestListResponse struct {
	Tests []TestResponse `json:"tests"`
	Total int64          `json:"total"`
}
