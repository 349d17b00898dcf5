package bookings

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"alostudio/internal/shared/utils/response"
)

// Controller interface defines the contract for booking HTTP handlers
type Controller interface {
	Create(c *gin.Context)
	SubmitPayment(c *gin.Context)
	GetByCustomerEmail(c *gin.Context)

	AdminGetAll(c *gin.Context)
	AdminApprove(c *gin.Context)
	AdminComplete(c *gin.Context)
	AdminCancel(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

func (ctrl *controller) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	booking, err := ctrl.service.Create(c.Request.Context(), req)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondJSON(c, "success", http.StatusCreated, "Booking created successfully", booking, nil)
}

func (ctrl *controller) SubmitPayment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid booking ID", nil, err.Error())
		return
	}

	var req SubmitPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	booking, err := ctrl.service.SubmitPayment(c.Request.Context(), id, req)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondJSON(c, "success", http.StatusOK, "Payment submitted successfully", booking, nil)
}

func (ctrl *controller) GetByCustomerEmail(c *gin.Context) {
	email := c.Param("email")
	bookings, err := ctrl.service.GetByCustomerEmail(c.Request.Context(), email)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondJSON(c, "success", http.StatusOK, "Bookings retrieved successfully", bookings, nil)
}

func (ctrl *controller) AdminGetAll(c *gin.Context) {
	bookings, err := ctrl.service.GetAll(c.Request.Context())
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondJSON(c, "success", http.StatusOK, "Bookings retrieved successfully", bookings, nil)
}

func (ctrl *controller) AdminApprove(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid booking ID", nil, err.Error())
		return
	}

	// Notes are optional; an empty body is fine.
	var req ApproveRequest
	_ = c.ShouldBindJSON(&req)

	booking, err := ctrl.service.Approve(c.Request.Context(), id, req)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondJSON(c, "success", http.StatusOK, "Booking approved successfully", booking, nil)
}

func (ctrl *controller) AdminComplete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid booking ID", nil, err.Error())
		return
	}

	// Full payment details are optional; an empty body completes without
	// a balance record.
	var req CompleteRequest
	_ = c.ShouldBindJSON(&req)

	booking, err := ctrl.service.Complete(c.Request.Context(), id, req)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondJSON(c, "success", http.StatusOK, "Booking completed successfully", booking, nil)
}

func (ctrl *controller) AdminCancel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid booking ID", nil, err.Error())
		return
	}

	// Notes are optional; an empty body is fine.
	var req CancelRequest
	_ = c.ShouldBindJSON(&req)

	booking, err := ctrl.service.Cancel(c.Request.Context(), id, req)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondJSON(c, "success", http.StatusOK, "Booking cancelled successfully", booking, nil)
}
