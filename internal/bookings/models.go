package bookings

import (
	"time"

	"github.com/google/uuid"

	"alostudio/internal/reservations"
)

// Booking is a studio session reservation. Rows are never deleted;
// cancellation is a terminal status, not removal. Price, deposit and the
// service label are copied at creation so later catalog edits cannot
// change what the customer agreed to.
type Booking struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ServiceID uuid.UUID `gorm:"type:uuid;index;not null" json:"service_id"`
	IsCombo   bool      `gorm:"not null;default:false" json:"is_combo"`
	// ServiceType is the attribution label for the earnings ledger,
	// captured from the catalog entry at creation.
	ServiceType string `gorm:"type:varchar(120);not null" json:"service_type"`

	CustomerName  string `gorm:"type:varchar(120);not null" json:"customer_name"`
	CustomerEmail string `gorm:"type:varchar(255);index;not null" json:"customer_email"`
	CustomerPhone string `gorm:"type:varchar(30);not null" json:"customer_phone"`

	BookingDate string `gorm:"type:varchar(10);index:idx_bookings_slot;not null" json:"booking_date"`
	BookingTime string `gorm:"type:varchar(5);index:idx_bookings_slot;not null" json:"booking_time"`

	Status reservations.Status `gorm:"type:varchar(20);not null;default:'pending_payment'" json:"status"`

	TotalPrice      float64 `gorm:"not null" json:"total_price"`
	DepositRequired float64 `gorm:"not null" json:"deposit_required"`

	PaymentAmount    float64 `json:"payment_amount"`
	PaymentReference string  `gorm:"type:varchar(255)" json:"payment_reference"`

	FullPaymentReceived  bool    `gorm:"not null;default:false" json:"full_payment_received"`
	FullPaymentAmount    float64 `json:"full_payment_amount"`
	FullPaymentReference string  `gorm:"type:varchar(255)" json:"full_payment_reference"`

	AdminNotes string `gorm:"type:text" json:"admin_notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName sets the table name for Booking
func (Booking) TableName() string {
	return "bookings"
}

// CreateBookingRequest represents a customer booking request
type CreateBookingRequest struct {
	ServiceID     string `json:"service_id" binding:"required,uuid"`
	IsCombo       bool   `json:"is_combo"`
	CustomerName  string `json:"customer_name" binding:"required"`
	CustomerEmail string `json:"customer_email" binding:"required,email"`
	CustomerPhone string `json:"customer_phone" binding:"required"`
	BookingDate   string `json:"booking_date" binding:"required"`
	BookingTime   string `json:"booking_time" binding:"required"`
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

// CompleteRequest confirms a session finished, optionally with the final
// balance payment
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
