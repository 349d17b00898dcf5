package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"alostudio/internal/auth"
	"alostudio/internal/shared/utils/response"
)

// SessionAuth guards admin routes with the server-side session check.
// The verify result is stored on the context so handlers can reuse it
// without a second round trip.
func SessionAuth(authService auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := auth.BearerToken(c)
		if token == "" {
			response.RespondJSON(c, "error", http.StatusUnauthorized, "Authorization header must be Bearer {token}", nil, nil)
			c.Abort()
			return
		}

		verified, err := authService.Verify(c.Request.Context(), token)
		if err != nil {
			response.RespondJSON(c, "error", http.StatusUnauthorized, "Invalid or expired session", nil, nil)
			c.Abort()
			return
		}

		c.Set("session", verified)
		c.Set("admin_username", verified.Username)
		c.Next()
	}
}
