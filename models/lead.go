package models

import "time"

type LeadStatus string

const (
	LeadStatusNew       LeadStatus = "new"
	LeadStatusContacted LeadStatus = "contacted"
	LeadStatusConverted LeadStatus = "converted"
	LeadStatusClosed    LeadStatus = "closed"
)

// WhatsAppLead is captured when a visitor taps the WhatsApp enquiry button on
// the storefront.
type WhatsAppLead struct {
	ID        uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string     `json:"name"`
	Phone     string     `gorm:"not null" json:"phone"`
	Message   string     `json:"message"`
	ProductID *uint      `json:"productId,omitempty"` // Product the enquiry started from, if any
	Status    LeadStatus `gorm:"type:VARCHAR(20);default:'new'" json:"status"`
	CreatedAt time.Time  `json:"createdAt"`
}
