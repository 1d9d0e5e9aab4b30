package models

import "time"

type Testimonial struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CustomerName string    `gorm:"not null" json:"customerName"`
	Message      string    `gorm:"not null" json:"message"`
	Rating       int       `json:"rating"` // 1..5
	Approved     bool      `gorm:"default:false" json:"approved"`
	CreatedAt    time.Time `json:"createdAt"`
}
