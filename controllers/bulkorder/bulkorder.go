package bulkOrderControllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/parthvaghani/vinayaknaturals-api/models"
)

type BulkOrderRequest struct {
	Name         string     `json:"name" binding:"required"`
	Phone        string     `json:"phone" binding:"required"`
	Email        string     `json:"email"`
	Requirements string     `json:"requirements"`
	EventDate    *time.Time `json:"eventDate"`
}

type UpdateBulkOrderRequest struct {
	Status    string `json:"status" binding:"required"`
	AdminNote string `json:"adminNote"`
}

// CreateBulkOrderHandler records a bulk/event enquiry from the storefront.
func CreateBulkOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req BulkOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		bulkOrder := models.BulkOrder{
			Name:         req.Name,
			Phone:        req.Phone,
			Email:        req.Email,
			Requirements: req.Requirements,
			EventDate:    req.EventDate,
			Status:       models.BulkOrderStatusNew,
		}
		if err := db.Create(&bulkOrder).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save bulk order enquiry"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "Enquiry received, we will get back to you shortly"})
	}
}

func GetAllBulkOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Order("created_at DESC")
		if status := c.Query("status"); status != "" {
			query = query.Where("status = ?", status)
		}
		var bulkOrders []models.BulkOrder
		if err := query.Find(&bulkOrders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bulk orders"})
			return
		}
		c.JSON(http.StatusOK, bulkOrders)
	}
}

func UpdateBulkOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		var req UpdateBulkOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		status := models.BulkOrderStatus(req.Status)
		switch status {
		case models.BulkOrderStatusNew, models.BulkOrderStatusQuoted,
			models.BulkOrderStatusConfirmed, models.BulkOrderStatusClosed:
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid bulk order status"})
			return
		}

		if err := db.Model(&models.BulkOrder{}).Where("id = ?", id).Updates(map[string]interface{}{
			"status":     status,
			"admin_note": req.AdminNote,
		}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update bulk order"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Bulk order updated successfully"})
	}
}

func DeleteBulkOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if err := db.Delete(&models.BulkOrder{}, id).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete bulk order"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Bulk order deleted successfully"})
	}
}
