package models

import "time"

// Payment records one charge attempt against a session. The gateway
// reference is kept even for declined attempts.
type Payment struct {
	ID        uint         `gorm:"primaryKey" json:"id"`
	SessionID uint         `gorm:"not null;index" json:"session_id"`
	Session   TableSession `gorm:"foreignKey:SessionID" json:"-"`

	Amount   float64 `gorm:"type:decimal(12,2);not null" json:"amount"`
	Currency string  `gorm:"type:varchar(3);not null;default:'USD'" json:"currency"`
	Method   string  `gorm:"type:varchar(20);not null;default:'cash'" json:"method"`
	Status   string  `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`

	Reference    string  `gorm:"type:varchar(100)" json:"reference"`
	FailReason   string  `gorm:"type:varchar(255)" json:"fail_reason,omitempty"`
	CashReceived float64 `gorm:"type:decimal(12,2);not null;default:0" json:"cash_received"`
	Change       float64 `gorm:"type:decimal(12,2);not null;default:0" json:"change"`

	PaidAt    *time.Time `json:"paid_at,omitempty"`
	CreatedAt time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time  `gorm:"not null" json:"updated_at"`
}

// Payment methods.
const (
	PayMethodCash   = "cash"
	PayMethodCard   = "card"
	PayMethodOnline = "online"
)

// Per-attempt payment record statuses (distinct from the session's
// PaymentStatus, which reflects the session as a whole).
const (
	PayAttemptPending = "pending"
	PayAttemptSuccess = "success"
	PayAttemptFailed  = "failed"
)
