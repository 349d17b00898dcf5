package frames

import (
	"time"

	"github.com/google/uuid"

	"alostudio/internal/reservations"
)

// EarningsLabel is the ledger attribution for frame orders.
const EarningsLabel = "frames"

// FulfillmentStatus tracks the physical production of an order. It is
// independent of the payment state machine; admins may move it freely.
type FulfillmentStatus string

const (
	FulfillmentPending        FulfillmentStatus = "pending"
	FulfillmentInProgress     FulfillmentStatus = "in_progress"
	FulfillmentReadyForPickup FulfillmentStatus = "ready_for_pickup"
)

// IsValidFulfillmentStatus reports whether a value is a known status
func IsValidFulfillmentStatus(s FulfillmentStatus) bool {
	switch s {
	case FulfillmentPending, FulfillmentInProgress, FulfillmentReadyForPickup:
		return true
	}
	return false
}

// FrameOrder is a custom frame purchase. The total is computed from the
// fixed size price table at creation and never recomputed.
type FrameOrder struct {
	ID uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`

	FrameSize           string  `gorm:"type:varchar(10);not null" json:"frame_size"`
	FrameStyle          string  `gorm:"type:varchar(60)" json:"frame_style"`
	Quantity            int     `gorm:"not null" json:"quantity"`
	DeliveryFee         float64 `json:"delivery_fee"`
	SpecialInstructions string  `gorm:"type:text" json:"special_instructions"`
	TotalPrice          float64 `gorm:"not null" json:"total_price"`

	CustomerName  string `gorm:"type:varchar(120);not null" json:"customer_name"`
	CustomerEmail string `gorm:"type:varchar(255);index;not null" json:"customer_email"`
	CustomerPhone string `gorm:"type:varchar(30);not null" json:"customer_phone"`

	Status            reservations.Status `gorm:"type:varchar(20);not null;default:'pending_payment'" json:"status"`
	FulfillmentStatus FulfillmentStatus   `gorm:"type:varchar(20);not null;default:'pending'" json:"fulfillment_status"`

	PaymentAmount    float64 `json:"payment_amount"`
	PaymentReference string  `gorm:"type:varchar(255)" json:"payment_reference"`

	FullPaymentReceived  bool    `gorm:"not null;default:false" json:"full_payment_received"`
	FullPaymentAmount    float64 `json:"full_payment_amount"`
	FullPaymentReference string  `gorm:"type:varchar(255)" json:"full_payment_reference"`

	AdminNotes string `gorm:"type:text" json:"admin_notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName sets the table name for FrameOrder
func (FrameOrder) TableName() string {
	return "frame_orders"
}

// CreateFrameOrderRequest represents a customer frame order
type CreateFrameOrderRequest struct {
	FrameSize           string  `json:"frame_size" binding:"required"`
	FrameStyle          string  `json:"frame_style"`
	Quantity            int     `json:"quantity" binding:"required,gt=0"`
	DeliveryFee         float64 `json:"delivery_fee" binding:"gte=0"`
	SpecialInstructions string  `json:"special_instructions"`
	CustomerName        string  `json:"customer_name" binding:"required"`
	CustomerEmail       string  `json:"customer_email" binding:"required,email"`
	CustomerPhone       string  `json:"customer_phone" binding:"required"`
}

// SubmitPaymentRequest represents a deposit payment submission
type SubmitPaymentRequest struct {
	Amount    float64 `json:"amount" binding:"required,gt=0"`
	Reference string  `json:"reference" binding:"required"`
}

// ApproveRequest carries optional admin notes on approval
type ApproveRequest struct {
	AdminNotes string `json:"admin_notes"`
}

// CompleteRequest closes out an order, optionally with the final balance
// payment
type CompleteRequest struct {
	FullPaymentReceived  bool    `json:"full_payment_received"`
	FullPaymentAmount    float64 `json:"full_payment_amount"`
	FullPaymentReference string  `json:"full_payment_reference"`
	AdminNotes           string  `json:"admin_notes"`
}

// CancelRequest carries optional admin notes on cancellation
type CancelRequest struct {
	AdminNotes string `json:"admin_notes"`
}

// UpdateFulfillmentRequest moves the production status
type UpdateFulfillmentRequest struct {
	FulfillmentStatus FulfillmentStatus `json:"fulfillment_status" binding:"required"`
}
