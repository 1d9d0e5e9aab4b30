package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type CouponType string

const (
	CouponTypePercentage CouponType = "percentage"
	CouponTypeFlat       CouponType = "flat"
)

// Coupon is the catalog rule. The absolute amount an order actually saves is
// computed when the coupon is validated against a subtotal and stored on the
// order as a CouponApplication.
type Coupon struct {
	ID             uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Code           string          `gorm:"uniqueIndex;not null" json:"code"`
	Description    string          `json:"description"`
	Type           CouponType      `gorm:"type:VARCHAR(20);default:'flat'" json:"type"`
	Value          decimal.Decimal `gorm:"type:decimal(10,2)" json:"value"` // Percent or flat amount per Type
	MaxDiscount    decimal.Decimal `gorm:"type:decimal(10,2)" json:"maxDiscount"`
	MinOrderAmount decimal.Decimal `gorm:"type:decimal(10,2)" json:"minOrderAmount"`
	UsageLimit     int             `json:"usageLimit"` // 0 means unlimited
	UsedCount      int             `json:"usedCount"`
	IsActive       bool            `gorm:"default:true" json:"isActive"`
	ExpiresAt      *time.Time      `json:"expiresAt,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}
