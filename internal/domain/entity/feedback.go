package entity

import (
	"time"

	"github.com/google/uuid"
)

// Query is an open question submitted by a visitor; the answer is filled
// in later by an admin and looked up by the returned id.
type Query struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Phone     string    `gorm:"type:varchar(10);not null" json:"phone"`
	Question  string    `gorm:"type:text;not null" json:"question"`
	Answer    *string   `gorm:"type:text" json:"answer,omitempty"`
	CreatedAt time.Time `gorm:"type:date;autoCreateTime" json:"date"`
}

func (Query) TableName() string {
	return "queries"
}

// Review is a customer's feedback on a test
type Review struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	TestID      int       `gorm:"not null;index" json:"test_id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Description string    `gorm:"type:text;not null" json:"description"`
	CreatedAt   time.Time `gorm:"type:date;autoCreateTime" json:"date"`

	// Relationships
	Test Test `gorm:"foreignKey:TestID" json:"test,omitempty"`
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Review) TableName() string {
	return "reviews"
}

// Subscribe is a mailing-list signup
type Subscribe struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"type:varchar(150);not null" json:"name"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	CreatedAt time.Time `gorm:"type:date;autoCreateTime" json:"date"`
}

func (Subscribe) TableName() string {
	return "subscribes"
}
