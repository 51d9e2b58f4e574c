package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultOrderQuantity is the quantity of every ordered test line
const DefaultOrderQuantity = 1

// Order wraps exactly one purchased test line and its payment status
type Order struct {
	ID            uuid.UUID     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID        uuid.UUID     `gorm:"type:uuid;not null;index" json:"user_id"`
	PaymentStatus PaymentStatus `gorm:"type:varchar(1);not null;default:'P';index" json:"payment_status"`
	PlacedAt      time.Time     `gorm:"type:date;autoCreateTime" json:"placed_at"`

	// Relationships
	User User         `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Line *OrderedTest `gorm:"foreignKey:OrderID" json:"line,omitempty"`
}

func (Order) TableName() string {
	return "orders"
}

// TotalPayable is the order total from the line's price snapshot,
// not the test's live price.
func (o *Order) TotalPayable() decimal.Decimal {
	if o.Line == nil {
		return decimal.Zero
	}
	return o.Line.UnitPrice.Mul(decimal.NewFromInt(int64(o.Line.Quantity)))
}

// OrderedTest is the single line item of an order; UnitPrice is the
// test's price snapshotted at purchase time.
type OrderedTest struct {
	ID        int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   uuid.UUID       `gorm:"type:uuid;uniqueIndex;not null" json:"order_id"`
	TestID    int             `gorm:"not null;index" json:"test_id"`
	Quantity  int             `gorm:"not null;default:1" json:"quantity"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(6,2);not null" json:"unit_price"`

	// Relationships
	Test Test `gorm:"foreignKey:TestID" json:"test,omitempty"`
}

func (OrderedTest) TableName() string {
	return "ordered_tests"
}
