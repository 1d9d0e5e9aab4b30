package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	adminController "github.com/parthvaghani/vinayaknaturals-api/controllers/admin"
	bulkOrderControllers "github.com/parthvaghani/vinayaknaturals-api/controllers/bulkorder"
	couponControllers "github.com/parthvaghani/vinayaknaturals-api/controllers/coupon"
	dashboardControllers "github.com/parthvaghani/vinayaknaturals-api/controllers/dashboard"
	leadControllers "github.com/parthvaghani/vinayaknaturals-api/controllers/lead"
	productcontroller "github.com/parthvaghani/vinayaknaturals-api/controllers/product"
	testimonialControllers "github.com/parthvaghani/vinayaknaturals-api/controllers/testimonial"
	"github.com/parthvaghani/vinayaknaturals-api/middleware"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires API-Key middleware.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey)
	{
		// ─────────── Dashboard ───────────
		adminGroup.GET("/dashboard/stats", dashboardControllers.GetDashboardStatsHandler(db))

		// ─────────── Admin Management ───────────
		adminGroup.GET("/admins", adminController.GetAllAdmins(db))

		// ─────────── Product Management ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("", productcontroller.CreateProduct(db))
			productAdmin.PUT("/:id", productcontroller.UpdateProduct(db))
			productAdmin.GET("", productcontroller.GetProducts(db))
			productAdmin.DELETE("/:id", productcontroller.DeleteProduct(db))
			productAdmin.POST("/import-excel", productcontroller.ImportProductsFromExcel(db))
			productAdmin.GET("/export-excel", productcontroller.ExportProductsToExcel(db))
		}

		// ─────────── Category Management ───────────
		categoryAdmin := adminGroup.Group("/categories")
		{
			categoryAdmin.POST("", productcontroller.CreateCategory(db))
			categoryAdmin.PUT("/:id", productcontroller.UpdateCategory(db))
			categoryAdmin.GET("", productcontroller.GetAllCategories(db))
			categoryAdmin.DELETE("/:id", productcontroller.DeleteCategory(db))
		}

		// ─────────── Coupon Management ───────────
		couponAdmin := adminGroup.Group("/coupons")
		{
			couponAdmin.POST("", couponControllers.CreateCouponHandler(db))
			couponAdmin.GET("", couponControllers.GetAllCouponsHandler(db))
			couponAdmin.PUT("/:id", couponControllers.UpdateCouponHandler(db))
			couponAdmin.PUT("/:id/active", couponControllers.SetCouponActiveHandler(db))
			couponAdmin.DELETE("/:id", couponControllers.DeleteCouponHandler(db))
		}

		// ─────────── Testimonial Moderation ───────────
		testimonialAdmin := adminGroup.Group("/testimonials")
		{
			testimonialAdmin.GET("", testimonialControllers.GetAllTestimonialsHandler(db))
			testimonialAdmin.PUT("/:id/approval", testimonialControllers.SetTestimonialApprovalHandler(db))
			testimonialAdmin.DELETE("/:id", testimonialControllers.DeleteTestimonialHandler(db))
		}

		// ─────────── WhatsApp Leads ───────────
		leadAdmin := adminGroup.Group("/leads")
		{
			leadAdmin.GET("", leadControllers.GetAllLeadsHandler(db))
			leadAdmin.PUT("/:id/status", leadControllers.UpdateLeadStatusHandler(db))
			leadAdmin.DELETE("/:id", leadControllers.DeleteLeadHandler(db))
		}

		// ─────────── Bulk Orders ───────────
		bulkOrderAdmin := adminGroup.Group("/bulk-orders")
		{
			bulkOrderAdmin.GET("", bulkOrderControllers.GetAllBulkOrdersHandler(db))
			bulkOrderAdmin.PUT("/:id", bulkOrderControllers.UpdateBulkOrderHandler(db))
			bulkOrderAdmin.DELETE("/:id", bulkOrderControllers.DeleteBulkOrderHandler(db))
		}

		// ─────────── Admin Approval Workflow ───────────
		adminMgmt := adminGroup.Group("/admin-management")
		adminMgmt.Use(middleware.ValidateToken, middleware.RequireSuperAdmin)
		{
			adminMgmt.GET("/pending", adminController.ListPendingAdmins(db))
			adminMgmt.POST("/approve", adminController.ApproveAdmin(db))
			adminMgmt.POST("/reject", adminController.RejectAdmin(db))
		}
	}
}
