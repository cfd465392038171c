package models

import "time"

// Session status values. A session is mutable only while active or
// ready_to_close; closing freezes the lines.
type SessionStatus string

const (
	SessionActive       SessionStatus = "active"
	SessionReadyToClose SessionStatus = "ready_to_close"
	SessionClosed       SessionStatus = "closed"
)

// Payment status values, tracked independently of the session status.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentFailed   PaymentStatus = "failed"
	PaymentRefunded PaymentStatus = "refunded"
)

// Discount kinds shared by line items and sessions. Percent and
// absolute are mutually exclusive on one row.
const (
	DiscountNone     = ""
	DiscountPercent  = "percent"
	DiscountAbsolute = "absolute"
)

// TableSession covers one table's full visit, from the first part
// order to payment close. TotalAmount is never adjusted incrementally:
// every mutation recomputes it from the full set of lines inside the
// same transaction, so retries and concurrent writers converge on the
// same value. At most one session per table is active at any time.
type TableSession struct {
	ID           uint          `gorm:"primaryKey" json:"id"`
	TableNumber  int           `gorm:"not null;index" json:"table_number"`
	ServerID     uint          `gorm:"not null" json:"server_id"`
	Server       User          `gorm:"foreignKey:ServerID" json:"-"`
	CustomerName string        `gorm:"type:varchar(255)" json:"customer_name,omitempty"`
	Status       SessionStatus `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	PayStatus    PaymentStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"payment_status"`

	DiscountType  string  `gorm:"type:varchar(10)" json:"discount_type,omitempty"`
	DiscountValue float64 `gorm:"type:decimal(10,2);not null;default:0" json:"discount_value"`

	TotalAmount float64 `gorm:"type:decimal(12,2);not null;default:0.00" json:"total_amount"`

	PartOrders []PartOrder `gorm:"foreignKey:SessionID" json:"part_orders,omitempty"`

	OpenedAt  time.Time  `gorm:"not null" json:"opened_at"`
	ClosedAt  *time.Time `json:"closed_at,omitempty"`
	CreatedAt time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time  `gorm:"not null" json:"updated_at"`
}
