package catalog

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"alostudio/internal/shared/utils/response"
)

type Controller interface {
	GetServices(c *gin.Context)
	GetServicesByType(c *gin.Context)
	GetCombos(c *gin.Context)

	AdminGetAllServices(c *gin.Context)
	AdminCreateService(c *gin.Context)
	AdminCreateCombo(c *gin.Context)
	AdminUpdatePrice(c *gin.Context)
	AdminSetActive(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

func (ctrl *controller) GetServices(c *gin.Context) {
	services, err := ctrl.service.GetActiveServices(c.Request.Context())
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondJSON(c, "success", http.StatusOK, "Services retrieved successfully", services, nil)
}

func (ctrl *controller) GetServicesByType(c *gin.Context) {
	serviceType := c.Param("type")
	services, err := ctrl.service.GetActiveServicesByType(c.Request.Context(), serviceType)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondJSON(c, "success", http.StatusOK, "Services retrieved successfully", services, nil)
}

func (ctrl *controller) GetCombos(c *gin.Context) {
	combos, err := ctrl.service.GetActiveCombos(c.Request.Context())
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondJSON(c, "success", http.StatusOK, "Combo services retrieved successfully", combos, nil)
}

func (ctrl *controller) AdminGetAllServices(c *gin.Context) {
	services, err := ctrl.service.GetAllServices(c.Request.Context())
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondJSON(c, "success", http.StatusOK, "Services retrieved successfully", services, nil)
}

func (ctrl *controller) AdminCreateService(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	svc, err := ctrl.service.CreateService(c.Request.Context(), req)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondJSON(c, "success", http.StatusCreated, "Service created successfully", svc, nil)
}

func (ctrl *controller) AdminCreateCombo(c *gin.Context) {
	var req CreateComboRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	combo, err := ctrl.service.CreateCombo(c.Request.Context(), req)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondJSON(c, "success", http.StatusCreated, "Combo service created successfully", combo, nil)
}

func (ctrl *controller) AdminUpdatePrice(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid service ID", nil, err.Error())
		return
	}

	var req UpdatePriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	if err := ctrl.service.UpdateServicePrice(c.Request.Context(), id, req.Price); err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondJSON(c, "success", http.StatusOK, "Service price updated", nil, nil)
}

func (ctrl *controller) AdminSetActive(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid service ID", nil, err.Error())
		return
	}

	var req SetActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	if err := ctrl.service.SetServiceActive(c.Request.Context(), id, *req.IsActive); err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondJSON(c, "success", http.StatusOK, "Service updated", nil, nil)
}
