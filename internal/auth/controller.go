package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"alostudio/internal/shared/utils/response"
)

// Controller interface defines the contract for auth HTTP handlers
type Controller interface {
	Login(c *gin.Context)
	VerifySession(c *gin.Context)
	Logout(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

func (ctrl *controller) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	result, err := ctrl.service.Login(c.Request.Context(), req)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondJSON(c, "success", http.StatusOK, "Login successful", result, nil)
}

// VerifySession reports the session state already checked by the
// middleware, which stores the result on the context.
func (ctrl *controller) VerifySession(c *gin.Context) {
	verified, exists := c.Get("session")
	if !exists {
		response.RespondJSON(c, "error", http.StatusUnauthorized, "Session not verified", nil, nil)
		return
	}
	response.RespondJSON(c, "success", http.StatusOK, "Session is valid", verified, nil)
}

func (ctrl *controller) Logout(c *gin.Context) {
	token := BearerToken(c)
	if token == "" {
		response.RespondJSON(c, "error", http.StatusUnauthorized, "Missing session token", nil, nil)
		return
	}

	if err := ctrl.service.Logout(c.Request.Context(), token); err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondJSON(c, "success", http.StatusOK, "Logged out successfully", nil, nil)
}

// BearerToken extracts the token from the Authorization header.
func BearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}
