package orderControllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/parthvaghani/vinayaknaturals-api/lifecycle"
	"github.com/parthvaghani/vinayaknaturals-api/models"
	"github.com/parthvaghani/vinayaknaturals-api/pricing"
)

// -------- Request Structs --------

type UpdateOrderStatusRequest struct {
	Status         string `json:"status" binding:"required"`
	CancelReason   string `json:"cancelReason"`
	TrackingLink   string `json:"trackingLink"`
	TrackingNumber string `json:"trackingNumber"`
	CourierName    string `json:"courierName"`
	CustomMessage  string `json:"customMessage"`
}

type UpdatePaymentStatusRequest struct {
	PaymentStatus string `json:"paymentStatus" binding:"required"`
}

type RefundRequest struct {
	Amount decimal.Decimal `json:"amount"`
	Reason string          `json:"reason"`
}

// -------- Helpers --------

// statusCodeFor maps core error kinds to HTTP statuses. Anything that is not
// a tagged lifecycle error is treated as a server fault.
func statusCodeFor(err error) int {
	switch lifecycle.KindOf(err) {
	case lifecycle.KindValidation, lifecycle.KindInvalidTransition, lifecycle.KindRefundNotEligible:
		return http.StatusBadRequest
	case lifecycle.KindPersistence:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// loadOrder fetches one order with every association the core needs, by
// numeric id or order reference.
func loadOrder(db *gorm.DB, id string) (models.Order, error) {
	var order models.Order
	err := db.
		Preload("Items").
		Preload("Coupon").
		Preload("StatusHistory", func(tx *gorm.DB) *gorm.DB { return tx.Order("created_at ASC") }).
		Preload("Refund").
		Preload("Refund.History", func(tx *gorm.DB) *gorm.DB { return tx.Order("created_at ASC") }).
		Where("id = ? OR order_ref = ?", id, id).
		First(&order).Error
	return order, err
}

// -------- Handlers --------

// GetAllOrdersHandler lists orders newest first, optionally filtered by
// status and source (?source=pos for the POS screen).
func GetAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.
			Preload("Items").
			Preload("Coupon").
			Preload("Refund").
			Order("created_at DESC")

		if status := strings.TrimSpace(c.Query("status")); status != "" {
			query = query.Where("status = ?", status)
		}
		if source := strings.TrimSpace(c.Query("source")); source != "" {
			query = query.Where("source = ?", source)
		}

		var orders []models.Order
		if err := query.Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GetOrderHandler returns one order with its computed breakdown and the
// legal next statuses, so the dashboard renders only valid actions.
func GetOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")
		if orderID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderID is required"})
			return
		}

		order, err := loadOrder(db, orderID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"order":              order,
			"pricing":            pricing.Compute(order),
			"allowedTransitions": lifecycle.AllowedTransitions(order.Status),
		})
	}
}

// UpdateOrderStatusHandler runs a status change through the lifecycle table
// and persists the proposed change plus its history entry in one transaction.
// The in-memory order is only updated after the write succeeds.
func UpdateOrderStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")
		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		order, err := loadOrder(db, orderID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		change, err := lifecycle.Transition(order, models.OrderStatus(req.Status), lifecycle.TransitionInput{
			CancelReason:   req.CancelReason,
			TrackingLink:   req.TrackingLink,
			TrackingNumber: req.TrackingNumber,
			CourierName:    req.CourierName,
			CustomMessage:  req.CustomMessage,
			Actor:          models.ActorAdmin,
			Now:            time.Now(),
		})
		if err != nil {
			c.JSON(statusCodeFor(err), gin.H{"error": err.Error()})
			return
		}

		entry := change.HistoryEntry
		entry.OrderID = order.ID
		err = db.Transaction(func(tx *gorm.DB) error {
			updates := map[string]interface{}{"status": change.Status}
			if change.Status == models.OrderStatusCancelled {
				updates["cancel_reason"] = change.CancelReason
			}
			if err := tx.Model(&models.Order{}).Where("id = ?", order.ID).Updates(updates).Error; err != nil {
				return err
			}
			return tx.Create(&entry).Error
		})
		if err != nil {
			perr := lifecycle.PersistenceErr(err)
			c.JSON(statusCodeFor(perr), gin.H{"error": perr.Error()})
			return
		}

		order.Status = change.Status
		order.CancelReason = change.CancelReason
		order.StatusHistory = append(order.StatusHistory, entry)
		broadcastOrderUpdate(order)

		c.JSON(http.StatusOK, gin.H{"message": "Order status updated successfully", "order": order})
	}
}

// UpdatePaymentStatusHandler handles paid/unpaid corrections. Refunded is
// rejected here; it can only come out of the refund flow.
func UpdatePaymentStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")
		var req UpdatePaymentStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		order, err := loadOrder(db, orderID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		newStatus, err := lifecycle.SetPaymentStatus(order, models.PaymentStatus(req.PaymentStatus))
		if err != nil {
			c.JSON(statusCodeFor(err), gin.H{"error": err.Error()})
			return
		}

		if err := db.Model(&models.Order{}).Where("id = ?", order.ID).
			Update("payment_status", newStatus).Error; err != nil {
			perr := lifecycle.PersistenceErr(err)
			c.JSON(statusCodeFor(perr), gin.H{"error": perr.Error()})
			return
		}

		order.PaymentStatus = newStatus
		broadcastOrderUpdate(order)

		c.JSON(http.StatusOK, gin.H{"message": "Payment status updated successfully"})
	}
}

// InitiateRefundHandler validates a refund against the refundable balance and
// records it: cumulative amount, refund history entry and, on a full refund,
// the payment status flip — all in one transaction.
func InitiateRefundHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")
		var req RefundRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		order, err := loadOrder(db, orderID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		change, err := lifecycle.InitiateRefund(order, req.Amount, req.Reason, time.Now())
		if err != nil {
			c.JSON(statusCodeFor(err), gin.H{"error": err.Error()})
			return
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			refund := order.Refund
			if refund == nil {
				refund = &models.RefundRecord{OrderID: order.ID}
				if err := tx.Create(refund).Error; err != nil {
					return err
				}
			}
			if err := tx.Model(&models.RefundRecord{}).Where("id = ?", refund.ID).Updates(map[string]interface{}{
				"refund_amount": change.RefundAmount,
				"refund_status": change.RefundStatus,
			}).Error; err != nil {
				return err
			}
			entry := change.HistoryEntry
			entry.RefundID = refund.ID
			if err := tx.Create(&entry).Error; err != nil {
				return err
			}
			if change.PaymentStatus != order.PaymentStatus {
				if err := tx.Model(&models.Order{}).Where("id = ?", order.ID).
					Update("payment_status", change.PaymentStatus).Error; err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			perr := lifecycle.PersistenceErr(err)
			c.JSON(statusCodeFor(perr), gin.H{"error": perr.Error()})
			return
		}

		if order.Refund == nil {
			order.Refund = &models.RefundRecord{OrderID: order.ID}
		}
		order.Refund.RefundAmount = change.RefundAmount
		order.Refund.RefundStatus = change.RefundStatus
		order.Refund.History = append(order.Refund.History, change.HistoryEntry)
		order.PaymentStatus = change.PaymentStatus
		broadcastOrderUpdate(order)

		c.JSON(http.StatusOK, gin.H{
			"message":       "Refund initiated successfully",
			"refundAmount":  change.RefundAmount,
			"refundStatus":  change.RefundStatus,
			"paymentStatus": change.PaymentStatus,
		})
	}
}
