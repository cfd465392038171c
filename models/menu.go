package models

import (
	"time"

	"gorm.io/gorm"
)

// MenuItem is a catalog entry. Price and tax rate are captured into
// order lines at creation time; editing or soft-deleting an item never
// rewrites historical lines.
type MenuItem struct {
	ID          uint         `gorm:"primaryKey" json:"id"`
	CategoryID  uint         `gorm:"not null" json:"category_id"`
	Category    MenuCategory `gorm:"foreignKey:CategoryID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"category"`
	Name        string       `gorm:"type:varchar(255);not null" json:"name"`
	Description string       `gorm:"type:text" json:"description"`
	Price       float64      `gorm:"type:decimal(10,2);not null" json:"price"`
	TaxRate     float64      `gorm:"type:decimal(5,2);not null;default:0" json:"tax_rate"` // percent, 0-100
	// No database default here: gorm drops zero-valued fields that
	// carry one on Create, which would turn an explicit false into
	// true. The create path defaults this to true instead.
	Available bool           `gorm:"not null" json:"available"`
	CreatedAt time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
