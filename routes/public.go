package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	bulkOrderControllers "github.com/parthvaghani/vinayaknaturals-api/controllers/bulkorder"
	couponControllers "github.com/parthvaghani/vinayaknaturals-api/controllers/coupon"
	leadControllers "github.com/parthvaghani/vinayaknaturals-api/controllers/lead"
	productcontroller "github.com/parthvaghani/vinayaknaturals-api/controllers/product"
	testimonialControllers "github.com/parthvaghani/vinayaknaturals-api/controllers/testimonial"
)

// SetupPublicRoutes registers the storefront-facing endpoints.
func SetupPublicRoutes(r *gin.Engine, db *gorm.DB) {
	// Catalog browsing
	r.GET("/products", productcontroller.GetProducts(db))
	r.GET("/products/:id", productcontroller.GetProductByID(db))
	r.GET("/categories", productcontroller.GetAllCategories(db))
	r.GET("/categories/:id", productcontroller.GetCategoryByID(db))

	// Coupon quote: code + subtotal -> absolute discount amount
	r.POST("/coupons/validate", couponControllers.ValidateCouponHandler(db))

	// Testimonials
	r.GET("/testimonials", testimonialControllers.GetApprovedTestimonialsHandler(db))
	r.POST("/testimonials", testimonialControllers.CreateTestimonialHandler(db))

	// WhatsApp leads and bulk order enquiries
	r.POST("/leads", leadControllers.CreateLeadHandler(db))
	r.POST("/bulk-orders", bulkOrderControllers.CreateBulkOrderHandler(db))
}
