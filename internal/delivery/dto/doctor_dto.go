package dto

import (
	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateDoctorRequest struct {
	FirstName       string          `json:"first_name" validate:"required,max=255"`
	LastName        string          `json:"last_name" validate:"required,max=255"`
	Email           string          `json:"email" validate:"required,email"`
	Phone           string          `json:"phone" validate:"required,len=10"`
	QualificationID int             `json:"qualification_id" validate:"required,gt=0"`
	DepartmentID    int             `json:"department_id" validate:"required,gt=0"`
	Fees            decimal.Decimal `json:"fees" validate:"required"`
	Address         string          `json:"address"`
}

type UpdateDoctorRequest struct {
	FirstName       string          `json:"first_name" validate:"required,max=255"`
	LastName        string          `json:"last_name" validate:"required,max=255"`
	Email           string          `json:"email" validate:"required,email"`
	Phone           string          `json:"phone" validate:"required,len=10"`
	QualificationID int             `json:"qualification_id" validate:"required,gt=0"`
	DepartmentID    int             `json:"department_id" validate:"required,gt=0"`
	Fees            decimal.Decimal `json:"fees" validate:"required"`
	Address         string          `json:"address"`
}

// Response DTOs

type DoctorResponse struct {
	ID            int             `json:"id"`
	Name          string          `json:"name"`
	Qualification string          `json:"qualification"`
	Department    string          `json:"department"`
	Fees          decimal.Decimal `json:"fees"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}

// ScheduleEntry is one weekly availability window rendered for display
type ScheduleEntry struct {
	Day    string `json:"day"`
	Window string `json:"window"`
}

type DoctorScheduleResponse struct {
	Name     string          `json:"name"`
	Schedule []ScheduleEntry `json:"schedule"`
}
