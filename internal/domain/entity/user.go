package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Sex choices
const (
	SexMale   = "M"
	SexFemale = "F"
	SexTrans  = "T"
)

// User represents a lab customer or admin account
type User struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	RoleID       int        `gorm:"not null;index" json:"role_id"`
	Username     string     `gorm:"type:varchar(150);uniqueIndex;not null" json:"username"`
	Email        string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password     string     `gorm:"type:text;not null" json:"-"`
	RecoveryWord string     `gorm:"type:varchar(250)" json:"-"`
	FirstName    string     `gorm:"type:varchar(150)" json:"first_name"`
	LastName     string     `gorm:"type:varchar(150)" json:"last_name"`
	Address      string     `gorm:"type:varchar(300)" json:"address,omitempty"`
	Phone        string     `gorm:"type:varchar(10)" json:"phone,omitempty"`
	Sex          string     `gorm:"type:varchar(1)" json:"sex,omitempty"`
	Age          string     `gorm:"type:varchar(5)" json:"age,omitempty"`
	BirthDate    *time.Time `gorm:"type:date" json:"birth_date,omitempty"`
	ReferredBy   string     `gorm:"type:varchar(255);default:'self'" json:"referred_by,omitempty"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Role Role `gorm:"foreignKey:RoleID" json:"role,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// Name returns the customer's display name
func (u *User) Name() string {
	return fmt.Sprintf("%s %s", u.FirstName, u.LastName)
}
