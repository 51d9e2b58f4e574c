package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Test is a purchasable lab test in the catalog
type Test struct {
	ID           int             `gorm:"primaryKey;autoIncrement" json:"id"`
	Title        string          `gorm:"type:varchar(255);not null" json:"title"`
	Slug         string          `gorm:"type:varchar(255);not null" json:"slug"`
	Code         string          `gorm:"type:varchar(255);uniqueIndex;not null" json:"code"`
	Description  string          `gorm:"type:text" json:"description,omitempty"`
	UnitPrice    decimal.Decimal `gorm:"type:decimal(8,2);not null" json:"unit_price"`
	CollectionID int             `gorm:"not null;index" json:"collection_id"`
	UpdatedAt    time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Collection Collection `gorm:"foreignKey:CollectionID" json:"collection,omitempty"`
}

func (Test) TableName() string {
	return "tests"
}

// TestFilter carries the supported catalog listing filters
type TestFilter struct {
	CollectionID *int
	PriceGT      *decimal.Decimal
	PriceLT      *decimal.Decimal
	Search       string
	OrderByPrice string // "asc", "desc" or empty
	Page         int
	Limit        int
}
