package earnings

import (
	"github.com/gin-gonic/gin"
)

// SetupEarningsRoutes wires the earnings summary onto the admin group.
func SetupEarningsRoutes(admin *gin.RouterGroup, controller Controller) {
	admin.GET("/earnings", controller.GetSummary) // GET /api/v1/admin/earnings
}
