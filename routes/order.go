package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "github.com/parthvaghani/vinayaknaturals-api/controllers/order"
	"github.com/parthvaghani/vinayaknaturals-api/middleware"
)

func SetupOrderRoutes(r *gin.Engine, db *gorm.DB) {
	orders := r.Group("/orders")
	orders.Use(middleware.ValidateAPIKey)
	{
		// Fetch all orders (?status=..., ?source=pos)
		orders.GET("/", orderControllers.GetAllOrdersHandler(db))

		// websocket endpoint for real-time order updates
		orders.GET("/ws", orderControllers.OrderWebSocketHandler)

		// Single order with pricing breakdown and allowed transitions
		orders.GET("/:orderID", orderControllers.GetOrderHandler(db))

		// Lifecycle transitions (accept, cancel, complete, deliver)
		orders.PUT("/:orderID/status", orderControllers.UpdateOrderStatusHandler(db))

		// Paid/unpaid corrections
		orders.PUT("/:orderID/payment-status", orderControllers.UpdatePaymentStatusHandler(db))

		// Refund flow (the only path to paymentStatus = refunded)
		orders.POST("/:orderID/refund", orderControllers.InitiateRefundHandler(db))

		// Counter sales
		orders.POST("/pos", orderControllers.CreatePOSOrderHandler(db))
	}
}
