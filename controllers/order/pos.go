package orderControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	couponControllers "github.com/parthvaghani/vinayaknaturals-api/controllers/coupon"
	"github.com/parthvaghani/vinayaknaturals-api/models"
	"github.com/parthvaghani/vinayaknaturals-api/pricing"
)

// -------- Request Structs --------

type POSOrderItemRequest struct {
	ProductID uint `json:"productId" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

type POSOrderRequest struct {
	CustomerName    string                `json:"customerName" binding:"required"`
	CustomerPhone   string                `json:"customerPhone"`
	CustomerEmail   string                `json:"customerEmail"`
	ShippingAddress string                `json:"shippingAddress"`
	Items           []POSOrderItemRequest `json:"items" binding:"required,min=1,dive"`
	CouponCode      string                `json:"couponCode"`
	PaymentMethod   string                `json:"paymentMethod" binding:"required"` // "prepaid" or "cod"
	PrepaidDiscount decimal.Decimal       `json:"prepaidDiscount"`
	CODFee          decimal.Decimal       `json:"codFee"`
	ShippingCharge  decimal.Decimal       `json:"shippingCharge"`
	PaymentID       string                `json:"paymentId"`
	MarkPaid        bool                  `json:"markPaid"` // Counter sales are usually settled on the spot
}

// -------- Helpers --------

// generateOrderRef produces a unique human-sortable order reference.
func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// -------- Handlers --------

// CreatePOSOrderHandler creates a counter-sale order. Prices and per-unit
// discounts are snapshotted from the catalog under row locks so concurrent
// sales cannot oversell stock.
func CreatePOSOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req POSOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		method := models.PaymentMethod(req.PaymentMethod)
		if method != models.PaymentMethodPrepaid && method != models.PaymentMethodCOD {
			c.JSON(http.StatusBadRequest, gin.H{"error": "paymentMethod must be prepaid or cod"})
			return
		}

		var order models.Order
		err := db.Transaction(func(tx *gorm.DB) error {
			var items []models.OrderLineItem
			subtotal := decimal.Zero

			for _, line := range req.Items {
				var product models.Product
				if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
					First(&product, "id = ?", line.ProductID).Error; err != nil {
					if errors.Is(err, gorm.ErrRecordNotFound) {
						return errors.New("product not found")
					}
					return err
				}
				if !product.IsActive {
					return errors.New("product is not available: " + product.Name)
				}
				if product.Stock < line.Quantity {
					return errors.New("insufficient stock for product: " + product.Name)
				}

				product.Stock -= line.Quantity
				if err := tx.Save(&product).Error; err != nil {
					return err
				}

				items = append(items, models.OrderLineItem{
					ProductID:    product.ID,
					ProductName:  product.Name,
					ProductImage: product.Image,
					UnitPrice:    product.Price,
					UnitDiscount: product.Discount,
					Quantity:     line.Quantity,
				})
				effective := product.Price.Sub(product.Discount)
				if effective.IsNegative() {
					effective = decimal.Zero
				}
				subtotal = subtotal.Add(effective.Mul(decimal.NewFromInt(int64(line.Quantity))))
			}

			var coupon *models.CouponApplication
			if req.CouponCode != "" {
				application, err := couponControllers.ApplyCode(tx, req.CouponCode, subtotal)
				if err != nil {
					return err
				}
				coupon = &application
				if err := tx.Model(&models.Coupon{}).Where("id = ?", application.CouponID).
					Update("used_count", gorm.Expr("used_count + 1")).Error; err != nil {
					return err
				}
			}

			paymentStatus := models.PaymentStatusUnpaid
			if req.MarkPaid {
				paymentStatus = models.PaymentStatusPaid
			}

			now := time.Now()
			order = models.Order{
				OrderRef:        generateOrderRef(),
				CustomerName:    req.CustomerName,
				CustomerPhone:   req.CustomerPhone,
				CustomerEmail:   req.CustomerEmail,
				ShippingAddress: req.ShippingAddress,
				Items:           items,
				Coupon:          coupon,
				PaymentMethod:   method,
				PrepaidDiscount: req.PrepaidDiscount,
				CODFee:          req.CODFee,
				PaymentStatus:   paymentStatus,
				PaymentID:       req.PaymentID,
				ShippingCharge:  req.ShippingCharge,
				Status:          models.OrderStatusPlaced,
				Source:          models.OrderSourcePOS,
				StatusHistory: []models.StatusHistoryEntry{
					{
						Status:    models.OrderStatusPlaced,
						Note:      "POS order created at counter",
						Actor:     models.ActorAdmin,
						CreatedAt: now,
					},
				},
				CreatedAt: now,
			}
			return tx.Create(&order).Error
		})
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		broadcastOrderUpdate(order)

		c.JSON(http.StatusCreated, gin.H{
			"message": "Order placed successfully",
			"order":   order,
			"pricing": pricing.Compute(order),
		})
	}
}
