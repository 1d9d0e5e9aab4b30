package models

import "time"

type BulkOrderStatus string

const (
	BulkOrderStatusNew       BulkOrderStatus = "new"
	BulkOrderStatusQuoted    BulkOrderStatus = "quoted"
	BulkOrderStatusConfirmed BulkOrderStatus = "confirmed"
	BulkOrderStatusClosed    BulkOrderStatus = "closed"
)

// BulkOrder is an enquiry for large/event orders, handled manually by admins.
type BulkOrder struct {
	ID           uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string          `gorm:"not null" json:"name"`
	Phone        string          `gorm:"not null" json:"phone"`
	Email        string          `json:"email"`
	Requirements string          `json:"requirements"`
	EventDate    *time.Time      `json:"eventDate,omitempty"`
	Status       BulkOrderStatus `gorm:"type:VARCHAR(20);default:'new'" json:"status"`
	AdminNote    string          `json:"adminNote,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}
