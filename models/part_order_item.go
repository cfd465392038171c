package models

import "time"

// PartOrderItem is one line of a part order. Name, unit price and tax
// rate are snapshots of the menu item at creation time; later catalog
// edits do not touch them.
type PartOrderItem struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	PartOrderID uint      `gorm:"not null;index" json:"part_order_id"`
	PartOrder   PartOrder `gorm:"foreignKey:PartOrderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	MenuItemID  uint      `gorm:"not null" json:"menu_item_id"`
	MenuItem    MenuItem  `gorm:"foreignKey:MenuItemID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`

	Name      string  `gorm:"type:varchar(255);not null" json:"name"`
	Quantity  int     `gorm:"not null" json:"quantity"`
	UnitPrice float64 `gorm:"type:decimal(10,2);not null" json:"unit_price"`
	TaxRate   float64 `gorm:"type:decimal(5,2);not null;default:0" json:"tax_rate"`

	DiscountType  string  `gorm:"type:varchar(10)" json:"discount_type,omitempty"`
	DiscountValue float64 `gorm:"type:decimal(10,2);not null;default:0" json:"discount_value"`

	Notes     string    `gorm:"type:text" json:"notes"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}
