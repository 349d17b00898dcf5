package bookings

import (
	"github.com/gin-gonic/gin"
)

// SetupBookingRoutes wires the public booking endpoints.
func SetupBookingRoutes(router *gin.RouterGroup, controller Controller) {
	bookings := router.Group("/bookings")
	{
		bookings.POST("", controller.Create)                            // POST /api/v1/bookings
		bookings.POST("/:id/payment", controller.SubmitPayment)         // POST /api/v1/bookings/:id/payment
		bookings.GET("/customer/:email", controller.GetByCustomerEmail) // GET /api/v1/bookings/customer/:email
	}
}

// SetupAdminBookingRoutes wires the admin booking endpoints onto a group
// that already carries the session middleware.
func SetupAdminBookingRoutes(admin *gin.RouterGroup, controller Controller) {
	bookings := admin.Group("/bookings")
	{
		bookings.GET("", controller.AdminGetAll)              // GET /api/v1/admin/bookings
		bookings.PUT("/:id/approve", controller.AdminApprove) // PUT /api/v1/admin/bookings/:id/approve
		bookings.PUT("/:id/complete", controller.AdminComplete)
		bookings.PUT("/:id/cancel", controller.AdminCancel)
	}
}
