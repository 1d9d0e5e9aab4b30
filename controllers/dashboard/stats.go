package dashboardControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/parthvaghani/vinayaknaturals-api/models"
	"github.com/parthvaghani/vinayaknaturals-api/pricing"
)

type recentSale struct {
	OrderID      uint               `json:"orderId"`
	OrderRef     string             `json:"orderRef"`
	CustomerName string             `json:"customerName"`
	Status       models.OrderStatus `json:"status"`
	Source       models.OrderSource `json:"source"`
	Pricing      pricing.Breakdown  `json:"pricing"`
}

// GetDashboardStatsHandler aggregates order counts and revenue for the
// landing screen. Every monetary figure comes out of pricing.Compute so the
// dashboard can never drift from the order detail views.
func GetDashboardStatsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.
			Preload("Items").
			Preload("Coupon").
			Preload("Refund").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		statusCounts := map[models.OrderStatus]int{}
		revenue := decimal.Zero
		savings := decimal.Zero
		refunded := decimal.Zero
		codOutstanding := decimal.Zero

		for _, order := range orders {
			statusCounts[order.Status]++
			if order.Status == models.OrderStatusCancelled {
				continue
			}
			b := pricing.Compute(order)
			revenue = revenue.Add(b.GrandTotal)
			savings = savings.Add(b.TotalSavings)
			refunded = refunded.Add(b.AlreadyRefunded)
			if order.PaymentMethod == models.PaymentMethodCOD && order.PaymentStatus == models.PaymentStatusUnpaid {
				codOutstanding = codOutstanding.Add(b.GrandTotal)
			}
		}

		recent := make([]recentSale, 0, 10)
		for _, order := range orders {
			if len(recent) == 10 {
				break
			}
			recent = append(recent, recentSale{
				OrderID:      order.ID,
				OrderRef:     order.OrderRef,
				CustomerName: order.CustomerName,
				Status:       order.Status,
				Source:       order.Source,
				Pricing:      pricing.Compute(order),
			})
		}

		var pendingLeads int64
		db.Model(&models.WhatsAppLead{}).Where("status = ?", models.LeadStatusNew).Count(&pendingLeads)
		var openBulkOrders int64
		db.Model(&models.BulkOrder{}).Where("status IN ?", []models.BulkOrderStatus{
			models.BulkOrderStatusNew, models.BulkOrderStatusQuoted,
		}).Count(&openBulkOrders)

		c.JSON(http.StatusOK, gin.H{
			"totalOrders":    len(orders),
			"ordersByStatus": statusCounts,
			"totalRevenue":   revenue,
			"totalSavings":   savings,
			"totalRefunded":  refunded,
			"codOutstanding": codOutstanding,
			"pendingLeads":   pendingLeads,
			"openBulkOrders": openBulkOrders,
			"recentSales":    recent,
		})
	}
}
