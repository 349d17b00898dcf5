package frames

import (
	"github.com/gin-gonic/gin"
)

// SetupFrameRoutes wires the public frame order endpoints.
func SetupFrameRoutes(router *gin.RouterGroup, controller Controller) {
	framesGroup := router.Group("/frames")
	{
		framesGroup.POST("/order", controller.Create)              // POST /api/v1/frames/order
		framesGroup.POST("/:id/payment", controller.SubmitPayment) // POST /api/v1/frames/:id/payment
	}
}

// SetupAdminFrameRoutes wires the admin frame order endpoints onto a group
// that already carries the session middleware.
func SetupAdminFrameRoutes(admin *gin.RouterGroup, controller Controller) {
	framesGroup := admin.Group("/frames")
	{
		framesGroup.GET("", controller.AdminGetAll)              // GET /api/v1/admin/frames
		framesGroup.PUT("/:id/approve", controller.AdminApprove) // PUT /api/v1/admin/frames/:id/approve
		framesGroup.PUT("/:id/complete", controller.AdminComplete)
		framesGroup.PUT("/:id/cancel", controller.AdminCancel)
		framesGroup.PUT("/:id/status", controller.AdminUpdateFulfillment) // PUT /api/v1/admin/frames/:id/status
	}
}
