package availability

import (
	"github.com/gin-gonic/gin"
)

// SetupAvailabilityRoutes wires the public slot availability lookup.
func SetupAvailabilityRoutes(router *gin.RouterGroup, controller Controller) {
	router.GET("/availability/:date", controller.GetAvailableSlots) // GET /api/v1/availability/:date
}
