package notifications

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// EventType identifies a reservation lifecycle event
type EventType string

const (
	EventReservationCreated   EventType = "reservation.created"
	EventPaymentSubmitted     EventType = "reservation.payment_submitted"
	EventReservationConfirmed EventType = "reservation.confirmed"
	EventReservationCompleted EventType = "reservation.completed"
	EventReservationCancelled EventType = "reservation.cancelled"
)

// ReservationKind distinguishes the two reservation record types
type ReservationKind string

const (
	KindBooking    ReservationKind = "booking"
	KindFrameOrder ReservationKind = "frame_order"
)

// ReservationEvent is the message published for downstream consumers
// (email, dashboards). Publishing is fire-and-forget; producers must not
// fail the originating request.
type ReservationEvent struct {
	ID            uuid.UUID       `json:"id"`
	Type          EventType       `json:"type"`
	Kind          ReservationKind `json:"kind"`
	ReservationID uuid.UUID       `json:"reservation_id"`
	CustomerEmail string          `json:"customer_email"`
	ServiceType   string          `json:"service_type"`
	Amount        float64         `json:"amount,omitempty"`
	OccurredAt    time.Time       `json:"occurred_at"`
}

// NewReservationEvent creates an event with a fresh ID and timestamp
func NewReservationEvent(eventType EventType, kind ReservationKind, reservationID uuid.UUID, customerEmail, serviceType string) *ReservationEvent {
	return &ReservationEvent{
		ID:            uuid.New(),
		Type:          eventType,
		Kind:          kind,
		ReservationID: reservationID,
		CustomerEmail: customerEmail,
		ServiceType:   serviceType,
		OccurredAt:    time.Now(),
	}
}

// ToJSON serializes the event for the wire
func (e *ReservationEvent) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// GetPartitionKey returns the key used for consistent partition routing.
// Events for the same reservation land on the same partition, preserving
// their order for consumers.
func (e *ReservationEvent) GetPartitionKey() string {
	return e.ReservationID.String()
}
