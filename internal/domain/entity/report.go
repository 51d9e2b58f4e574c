package entity

import (
	"time"

	"github.com/google/uuid"
)

// Report is the result document of a fulfilled order, rendered to PDF
// on download.
type Report struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null;index" json:"order_id"`
	TestID    int       `gorm:"not null;index" json:"test_id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Detail    string    `gorm:"type:text;not null" json:"detail"`
	CreatedAt time.Time `gorm:"type:date;autoCreateTime" json:"date"`

	// Relationships
	Order Order `gorm:"foreignKey:OrderID" json:"order,omitempty"`
	Test  Test  `gorm:"foreignKey:TestID" json:"test,omitempty"`
	User  User  `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Report) TableName() string {
	return "reports"
}
