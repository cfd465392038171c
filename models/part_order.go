package models

import "time"

// PartOrder is one kitchen-bound round of a table session. The table
// number is duplicated from the session so a ticket can be printed
// without a join.
type PartOrder struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	SessionID   uint            `gorm:"not null;index" json:"session_id"`
	Session     TableSession    `gorm:"foreignKey:SessionID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	ServerID    uint            `gorm:"not null" json:"server_id"`
	Server      User            `gorm:"foreignKey:ServerID" json:"-"`
	TableNumber int             `gorm:"not null" json:"table_number"`
	Status      PartOrderStatus `gorm:"type:varchar(20);not null;default:'draft'" json:"status"`
	Items       []PartOrderItem `gorm:"foreignKey:PartOrderID" json:"items"`
	PrintedAt   *time.Time      `json:"printed_at,omitempty"`
	CreatedAt   time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null" json:"updated_at"`
}
