package frames

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"alostudio/internal/shared/utils/response"
)

// Controller interface defines the contract for frame order HTTP handlers
type Controller interface {
	Create(c *gin.Context)
	SubmitPayment(c *gin.Context)

	AdminGetAll(c *gin.Context)
	AdminApprove(c *gin.Context)
	AdminComplete(c *gin.Context)
	AdminCancel(c *gin.Context)
	AdminUpdateFulfillment(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

func (ctrl *controller) Create(c *gin.Context) {
	var req CreateFrameOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	order, err := ctrl.service.Create(c.Request.Context(), req)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondJSON(c, "success", http.StatusCreated, "Frame order created successfully", order, nil)
}

func (ctrl *controller) SubmitPayment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid frame order ID", nil, err.Error())
		return
	}

	var req SubmitPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	order, err := ctrl.service.SubmitPayment(c.Request.Context(), id, req)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondJSON(c, "success", http.StatusOK, "Payment submitted successfully", order, nil)
}

func (ctrl *controller) AdminGetAll(c *gin.Context) {
	orders, err := ctrl.service.GetAll(c.Request.Context())
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondJSON(c, "success", http.StatusOK, "Frame orders retrieved successfully", orders, nil)
}

func (ctrl *controller) AdminApprove(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid frame order ID", nil, err.Error())
		return
	}

	// Notes are optional; an empty body is fine.
	var req ApproveRequest
	_ = c.ShouldBindJSON(&req)

	order, err := ctrl.service.Approve(c.Request.Context(), id, req)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondJSON(c, "success", http.StatusOK, "Frame order approved successfully", order, nil)
}

func (ctrl *controller) AdminComplete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid frame order ID", nil, err.Error())
		return
	}

	// Full payment details are optional; an empty body completes without
	// a balance record.
	var req CompleteRequest
	_ = c.ShouldBindJSON(&req)

	order, err := ctrl.service.Complete(c.Request.Context(), id, req)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondJSON(c, "success", http.StatusOK, "Frame order completed successfully", order, nil)
}

func (ctrl *controller) AdminCancel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid frame order ID", nil, err.Error())
		return
	}

	// Notes are optional; an empty body is fine.
	var req CancelRequest
	_ = c.ShouldBindJSON(&req)

	order, err := ctrl.service.Cancel(c.Request.Context(), id, req)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondJSON(c, "success", http.StatusOK, "Frame order cancelled successfully", order, nil)
}

func (ctrl *controller) AdminUpdateFulfillment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid frame order ID", nil, err.Error())
		return
	}

	var req UpdateFulfillmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	order, err := ctrl.service.UpdateFulfillment(c.Request.Context(), id, req)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondJSON(c, "success", http.StatusOK, "Fulfillment status updated successfully", order, nil)
}
