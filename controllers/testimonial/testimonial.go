package testimonialControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/parthvaghani/vinayaknaturals-api/models"
)

type TestimonialRequest struct {
	CustomerName string `json:"customerName" binding:"required"`
	Message      string `json:"message" binding:"required"`
	Rating       int    `json:"rating" binding:"required,min=1,max=5"`
}

// CreateTestimonialHandler accepts a testimonial from the storefront. It goes
// live only after an admin approves it.
func CreateTestimonialHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req TestimonialRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		testimonial := models.Testimonial{
			CustomerName: req.CustomerName,
			Message:      req.Message,
			Rating:       req.Rating,
		}
		if err := db.Create(&testimonial).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save testimonial"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "Testimonial submitted for review"})
	}
}

// GetApprovedTestimonialsHandler is the public listing.
func GetApprovedTestimonialsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var testimonials []models.Testimonial
		if err := db.Where("approved = ?", true).
			Order("created_at DESC").Find(&testimonials).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch testimonials"})
			return
		}
		c.JSON(http.StatusOK, testimonials)
	}
}

// GetAllTestimonialsHandler lists everything, pending ones included (admin).
func GetAllTestimonialsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var testimonials []models.Testimonial
		if err := db.Order("created_at DESC").Find(&testimonials).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch testimonials"})
			return
		}
		c.JSON(http.StatusOK, testimonials)
	}
}

func SetTestimonialApprovalHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		var req struct {
			Approved *bool `json:"approved" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := db.Model(&models.Testimonial{}).Where("id = ?", id).
			Update("approved", *req.Approved).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update testimonial"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Testimonial updated successfully"})
	}
}

func DeleteTestimonialHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if err := db.Delete(&models.Testimonial{}, id).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete testimonial"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Testimonial deleted successfully"})
	}
}
