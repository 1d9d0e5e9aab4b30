package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string
type PaymentStatus string
type PaymentMethod string
type RefundStatus string
type OrderSource string
type HistoryActor string

const (
	// Order statuses (bakery fulfilment flow)
	OrderStatusPlaced     OrderStatus = "placed"     // Order received, awaiting acceptance
	OrderStatusAccepted   OrderStatus = "accepted"   // Accepted by the store
	OrderStatusInProgress OrderStatus = "inprogress" // Being prepared/baked
	OrderStatusCompleted  OrderStatus = "completed"  // Packed and handed to courier
	OrderStatusDelivered  OrderStatus = "delivered"  // Customer received the order
	OrderStatusCancelled  OrderStatus = "cancelled"  // Cancelled before preparation

	// Payment statuses
	PaymentStatusUnpaid   PaymentStatus = "unpaid"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusRefunded PaymentStatus = "refunded"

	// Payment methods
	PaymentMethodPrepaid PaymentMethod = "prepaid"
	PaymentMethodCOD     PaymentMethod = "cod"

	// Refund statuses
	RefundStatusNone      RefundStatus = "none"
	RefundStatusPending   RefundStatus = "pending"   // Awaiting gateway confirmation
	RefundStatusProcessed RefundStatus = "processed" // Confirmed by the gateway
	RefundStatusFailed    RefundStatus = "failed"

	// Order sources
	OrderSourceOnline OrderSource = "online" // Placed through the storefront
	OrderSourcePOS    OrderSource = "pos"    // Keyed in at the counter by an admin

	// History actors
	ActorUser  HistoryActor = "user"
	ActorAdmin HistoryActor = "admin"
)

type Order struct {
	ID              uint                 `gorm:"primaryKey" json:"id"`
	OrderRef        string               `gorm:"uniqueIndex;not null" json:"orderRef"`
	CustomerName    string               `json:"customerName"`
	CustomerPhone   string               `json:"customerPhone"`
	CustomerEmail   string               `json:"customerEmail,omitempty"`
	ShippingAddress string               `json:"shippingAddress,omitempty"`
	Items           []OrderLineItem      `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"productsDetails"`
	Coupon          *CouponApplication   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"applyCoupon,omitempty"`
	PaymentMethod   PaymentMethod        `gorm:"type:VARCHAR(20);default:'cod'" json:"paymentMethod"`
	PrepaidDiscount decimal.Decimal      `gorm:"type:decimal(10,2)" json:"prepaidDiscount"`
	CODFee          decimal.Decimal      `gorm:"type:decimal(10,2)" json:"codFee"`
	PaymentStatus   PaymentStatus        `gorm:"type:VARCHAR(20);default:'unpaid'" json:"paymentStatus"`
	PaymentID       string               `json:"paymentId,omitempty"` // Gateway reference, required for refunds
	ShippingCharge  decimal.Decimal      `gorm:"type:decimal(10,2)" json:"shippingCharge"`
	Status          OrderStatus          `gorm:"type:VARCHAR(20);default:'placed'" json:"status"`
	CancelReason    string               `json:"cancelReason,omitempty"`
	StatusHistory   []StatusHistoryEntry `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"statusHistory"`
	Refund          *RefundRecord        `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"refund,omitempty"`
	Source          OrderSource          `gorm:"type:VARCHAR(10);default:'online'" json:"source"`
	CreatedAt       time.Time            `json:"createdAt"`
	UpdatedAt       time.Time            `json:"updatedAt"`
}

type OrderLineItem struct {
	ID           uint            `gorm:"primaryKey" json:"id"`
	OrderID      uint            `gorm:"index" json:"-"`
	ProductID    uint            `json:"productId"`
	ProductName  string          `json:"productName"`
	ProductImage string          `json:"productImage,omitempty"`
	UnitPrice    decimal.Decimal `gorm:"type:decimal(10,2)" json:"unitPrice"`
	UnitDiscount decimal.Decimal `gorm:"type:decimal(10,2)" json:"unitDiscount"`
	Quantity     int             `json:"quantity"`
}

// CouponApplication is the absolute discount snapshot taken when a coupon is
// applied to an order. The amount is fixed at apply time; the order never
// re-derives it from the coupon rule.
type CouponApplication struct {
	ID             uint            `gorm:"primaryKey" json:"-"`
	OrderID        uint            `gorm:"uniqueIndex" json:"-"`
	CouponID       uint            `json:"couponId"`
	CouponCode     string          `json:"couponCode"`
	DiscountAmount decimal.Decimal `gorm:"type:decimal(10,2)" json:"discountAmount"`
	DiscountLabel  string          `json:"discountPercentageLabel,omitempty"`
}

type StatusHistoryEntry struct {
	ID             uint         `gorm:"primaryKey" json:"-"`
	OrderID        uint         `gorm:"index" json:"-"`
	Status         OrderStatus  `gorm:"type:VARCHAR(20)" json:"status"`
	Note           string       `json:"note,omitempty"`
	TrackingLink   string       `json:"trackingLink,omitempty"`
	TrackingNumber string       `json:"trackingNumber,omitempty"`
	CourierName    string       `json:"courierName,omitempty"`
	Actor          HistoryActor `gorm:"type:VARCHAR(10)" json:"actor"`
	CreatedAt      time.Time    `json:"timestamp"`
}

// RefundRecord accumulates refunds issued against one order. RefundAmount is
// the cumulative total refunded so far; History keeps every refund event.
type RefundRecord struct {
	ID           uint                 `gorm:"primaryKey" json:"-"`
	OrderID      uint                 `gorm:"uniqueIndex" json:"-"`
	RefundAmount decimal.Decimal      `gorm:"type:decimal(10,2)" json:"refundAmount"`
	RefundStatus RefundStatus         `gorm:"type:VARCHAR(20);default:'none'" json:"refundStatus"`
	History      []RefundHistoryEntry `gorm:"foreignKey:RefundID;constraint:OnDelete:CASCADE" json:"refundHistory"`
}

type RefundHistoryEntry struct {
	ID        uint            `gorm:"primaryKey" json:"-"`
	RefundID  uint            `gorm:"index" json:"-"`
	Status    RefundStatus    `gorm:"type:VARCHAR(20)" json:"status"`
	Amount    decimal.Decimal `gorm:"type:decimal(10,2)" json:"amount"`
	Note      string          `json:"note,omitempty"`
	CreatedAt time.Time       `json:"timestamp"`
}
