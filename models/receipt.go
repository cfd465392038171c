package models

import "time"

// Receipt is the frozen, itemized record handed to the printing
// boundary after a successful payment. All amounts are final at
// creation; nothing here is ever recomputed.
type Receipt struct {
	ID        uint         `gorm:"primaryKey" json:"id"`
	SessionID uint         `gorm:"not null" json:"session_id"`
	Session   TableSession `gorm:"foreignKey:SessionID" json:"-"`
	PaymentID uint         `gorm:"not null" json:"payment_id"`
	Payment   Payment      `gorm:"foreignKey:PaymentID" json:"-"`

	ReceiptNumber string `gorm:"type:varchar(50);unique;not null" json:"receipt_number"`
	TableNumber   int    `gorm:"not null" json:"table_number"`

	Subtotal        float64 `gorm:"type:decimal(12,2);not null" json:"subtotal"`
	ItemDiscount    float64 `gorm:"type:decimal(12,2);not null" json:"item_discount"`
	SessionDiscount float64 `gorm:"type:decimal(12,2);not null" json:"session_discount"`
	Tax             float64 `gorm:"type:decimal(12,2);not null" json:"tax"`
	Total           float64 `gorm:"type:decimal(12,2);not null" json:"total"`

	PaymentMethod    string `gorm:"type:varchar(20);not null" json:"payment_method"`
	PaymentReference string `gorm:"type:varchar(100)" json:"payment_reference"`

	Items []ReceiptItem `gorm:"foreignKey:ReceiptID" json:"items"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

type ReceiptItem struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	ReceiptID uint    `gorm:"not null" json:"receipt_id"`
	Receipt   Receipt `gorm:"-" json:"-"`

	Name      string  `gorm:"type:varchar(255);not null" json:"name"`
	Quantity  int     `gorm:"not null" json:"quantity"`
	UnitPrice float64 `gorm:"type:decimal(12,2);not null" json:"unit_price"`
	Discount  float64 `gorm:"type:decimal(12,2);not null" json:"discount"`
	Subtotal  float64 `gorm:"type:decimal(12,2);not null" json:"subtotal"`
	Notes     string  `gorm:"type:text" json:"notes"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}
