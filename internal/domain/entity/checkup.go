package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Checkup is a per-user, per-day bucket of doctor bookings sharing one
// payment status. A Pending checkup keeps absorbing bookings for the day;
// once settled it is never reused.
type Checkup struct {
	ID            uuid.UUID     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID        uuid.UUID     `gorm:"type:uuid;not null;index" json:"user_id"`
	PaymentStatus PaymentStatus `gorm:"type:varchar(1);not null;default:'P';index" json:"payment_status"`
	BookedAt      time.Time     `gorm:"type:date;not null;index" json:"booked_at"`

	// Relationships
	User    User               `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Doctors []DoctorForCheckup `gorm:"foreignKey:CheckupID" json:"doctors,omitempty"`
}

func (Checkup) TableName() string {
	return "checkups"
}

// TotalPayable sums the fee snapshots of all attached lines. Live doctor
// fees never enter the total.
func (c *Checkup) TotalPayable() decimal.Decimal {
	total := decimal.Zero
	for _, line := range c.Doctors {
		total = total.Add(line.DoctorFees)
	}
	return total
}

// DoctorForCheckup records one doctor booked into a checkup, with the
// doctor's fee snapshotted at booking time.
type DoctorForCheckup struct {
	ID         int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	CheckupID  uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_checkup_doctor" json:"checkup_id"`
	DoctorID   int             `gorm:"not null;uniqueIndex:idx_checkup_doctor" json:"doctor_id"`
	DoctorFees decimal.Decimal `gorm:"type:decimal(6,0);not null" json:"doctor_fees"`

	// Relationships
	Doctor Doctor `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (DoctorForCheckup) TableName() string {
	return "doctor_for_checkups"
}
