package leadControllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/parthvaghani/vinayaknaturals-api/models"
)

type LeadRequest struct {
	Name      string `json:"name"`
	Phone     string `json:"phone" binding:"required"`
	Message   string `json:"message"`
	ProductID *uint  `json:"productId"`
}

type UpdateLeadStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// CreateLeadHandler records a WhatsApp enquiry fired from the storefront
// before the visitor is redirected to the chat.
func CreateLeadHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LeadRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		lead := models.WhatsAppLead{
			Name:      req.Name,
			Phone:     strings.TrimSpace(req.Phone),
			Message:   req.Message,
			ProductID: req.ProductID,
			Status:    models.LeadStatusNew,
		}
		if err := db.Create(&lead).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save lead"})
			return
		}
		c.JSON(http.StatusCreated, lead)
	}
}

func GetAllLeadsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Order("created_at DESC")
		if status := c.Query("status"); status != "" {
			query = query.Where("status = ?", status)
		}
		var leads []models.WhatsAppLead
		if err := query.Find(&leads).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch leads"})
			return
		}
		c.JSON(http.StatusOK, leads)
	}
}

func UpdateLeadStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		var req UpdateLeadStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		status := models.LeadStatus(req.Status)
		switch status {
		case models.LeadStatusNew, models.LeadStatusContacted, models.LeadStatusConverted, models.LeadStatusClosed:
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid lead status"})
			return
		}

		if err := db.Model(&models.WhatsAppLead{}).Where("id = ?", id).
			Update("status", status).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update lead"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Lead updated successfully"})
	}
}

func DeleteLeadHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if err := db.Delete(&models.WhatsAppLead{}, id).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete lead"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Lead deleted successfully"})
	}
}
