package catalog

import (
	"github.com/gin-gonic/gin"
)

// SetupCatalogRoutes wires the public catalog listings. Admin routes are
// registered separately so the session middleware can guard them.
func SetupCatalogRoutes(router *gin.RouterGroup, controller Controller) {
	router.GET("/services", controller.GetServices)             // GET /api/v1/services
	router.GET("/services/:type", controller.GetServicesByType) // GET /api/v1/services/:type
	router.GET("/combo-services", controller.GetCombos)         // GET /api/v1/combo-services
}

// SetupAdminCatalogRoutes wires the admin catalog management routes onto a
// group that already carries the session middleware.
func SetupAdminCatalogRoutes(admin *gin.RouterGroup, controller Controller) {
	admin.GET("/services", controller.AdminGetAllServices)     // GET /api/v1/admin/services
	admin.POST("/services", controller.AdminCreateService)     // POST /api/v1/admin/services
	admin.POST("/combo-services", controller.AdminCreateCombo) // POST /api/v1/admin/combo-services
	admin.PUT("/services/:id/price", controller.AdminUpdatePrice)
	admin.PUT("/services/:id/active", controller.AdminSetActive)
}
