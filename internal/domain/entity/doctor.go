package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Doctor is a catalog entry for a consulting physician
type Doctor struct {
	ID              int             `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName       string          `gorm:"type:varchar(255);not null" json:"first_name"`
	LastName        string          `gorm:"type:varchar(255);not null" json:"last_name"`
	Email           string          `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Phone           string          `gorm:"type:varchar(10);not null" json:"phone"`
	QualificationID int             `gorm:"not null;index" json:"qualification_id"`
	DepartmentID    int             `gorm:"not null;index" json:"department_id"`
	Fees            decimal.Decimal `gorm:"type:decimal(8,2);not null" json:"fees"`
	Address         string          `gorm:"type:text" json:"address"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Qualification Qualification `gorm:"foreignKey:QualificationID" json:"qualification,omitempty"`
	Department    Department    `gorm:"foreignKey:DepartmentID" json:"department,omitempty"`
	Timings       []Timing      `gorm:"foreignKey:DoctorID" json:"timings,omitempty"`
}

func (Doctor) TableName() string {
	return "doctors"
}

// Name returns the doctor's display name
func (d *Doctor) Name() string {
	return fmt.Sprintf("%s %s", d.FirstName, d.LastName)
}

// Day is a weekday reference row for availability windows
type Day struct {
	ID   int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"type:varchar(20);not null" json:"name"`
}

func (Day) TableName() string {
	return "days"
}

// Timing is one weekly availability window of a doctor
type Timing struct {
	ID       int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Start    string `gorm:"type:time;not null" json:"start"`
	End      string `gorm:"type:time;not null" json:"end"`
	DayID    int    `gorm:"not null;index" json:"day_id"`
	DoctorID int    `gorm:"not null;index" json:"doctor_id"`

	// Relationships
	Day    Day    `gorm:"foreignKey:DayID" json:"day,omitempty"`
	Doctor Doctor `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (Timing) TableName() string {
	return "timings"
}

// Window renders the timing as a 12-hour clock range, e.g. "09:00 AM to 01:30 PM"
func (t *Timing) Window() string {
	return fmt.Sprintf("%s to %s", to12Hour(t.Start), to12Hour(t.End))
}

func to12Hour(value string) string {
	parsed, err := time.Parse("15:04:05", value)
	if err != nil {
		if parsed, err = time.Parse("15:04", value); err != nil {
			return value
		}
	}
	return parsed.Format("03:04 PM")
}
