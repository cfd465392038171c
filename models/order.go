package models

import "time"

// Order is a whole order on the takeaway/delivery path. It does not
// belong to a table session and runs its own state machine (see
// order_status.go); do not confuse it with PartOrder.
type Order struct {
	ID           uint        `gorm:"primaryKey" json:"id"`
	CustomerName string      `gorm:"type:varchar(255)" json:"customer_name"`
	Status       OrderStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	TotalAmount  float64     `gorm:"type:decimal(12,2);not null;default:0.00" json:"total_amount"`
	Items        []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
	CreatedAt    time.Time   `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time   `gorm:"not null" json:"updated_at"`
}
