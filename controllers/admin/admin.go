package adminController

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/parthvaghani/vinayaknaturals-api/models"
)

// GetAllAdmins lists every admin account. ?approved=true/false filters by
// approval state so the management screen can show both tabs.
func GetAllAdmins(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var admins []models.Admin

		query := db.Order("created_at DESC")
		if approved := c.Query("approved"); approved != "" {
			query = query.Where("approved = ?", approved == "true")
		}

		if err := query.Find(&admins).Error; err != nil {
			log.Println("❌ Failed to fetch admins:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch admins"})
			return
		}

		c.JSON(http.StatusOK, admins)
	}
}
