package earnings

import (
	"net/http"

	"alostudio/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
)

// Controller interface defines the contract for earnings HTTP handlers
type Controller interface {
	GetSummary(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

// GetSummary returns the aggregate earnings view for the admin dashboard
func (ctrl *controller) GetSummary(c *gin.Context) {
	summary, err := ctrl.service.GetSummary(c.Request.Context())
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondJSON(c, "success", http.StatusOK, "Earnings summary retrieved successfully", summary, nil)
}
