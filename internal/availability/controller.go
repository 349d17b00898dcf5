package availability

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"alostudio/internal/shared/utils/response"
)

type Controller interface {
	GetAvailableSlots(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

func (ctrl *controller) GetAvailableSlots(c *gin.Context) {
	date := c.Param("date")
	slots, err := ctrl.service.AvailableSlots(c.Request.Context(), date)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondJSON(c, "success", http.StatusOK, "Available slots retrieved successfully", gin.H{
		"date":            date,
		"available_slots": slots,
	}, nil)
}
