package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up Auth, Public, Admin and
// Order route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// Public Auth routes (no middleware)
	SetupAuthRoutes(r, db)

	// Storefront-facing routes (no middleware)
	SetupPublicRoutes(r, db)

	// Admin routes (API-Key-protected)
	SetupAdminRoutes(r, db)

	// Order routes
	SetupOrderRoutes(r, db)
}
