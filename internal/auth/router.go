package auth

import (
	"github.com/gin-gonic/gin"
)

// SetupAuthRoutes wires the public login endpoint.
func SetupAuthRoutes(router *gin.RouterGroup, controller Controller) {
	router.POST("/admin/login", controller.Login) // POST /api/v1/admin/login
}

// SetupAdminAuthRoutes wires the session endpoints onto the guarded group.
func SetupAdminAuthRoutes(admin *gin.RouterGroup, controller Controller) {
	admin.GET("/verify-session", controller.VerifySession) // GET /api/v1/admin/verify-session
	admin.POST("/logout", controller.Logout)               // POST /api/v1/admin/logout
}
