package reservations

// Status is the payment lifecycle shared by bookings and frame orders.
type Status string

const (
	StatusPendingPayment   Status = "pending_payment"
	StatusPaymentSubmitted Status = "payment_submitted"
	StatusConfirmed        Status = "confirmed"
	StatusCompleted        Status = "completed"
	StatusCancelled        Status = "cancelled"
)

// ActiveStatuses are the statuses that hold a time slot against other
// bookings. Displayed availability is computed against exactly this set.
var ActiveStatuses = []Status{StatusConfirmed, StatusPaymentSubmitted}

// IsTerminal reports whether no transition may leave the status.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// IsValid reports whether s is a known status value.
func (s Status) IsValid() bool {
	switch s {
	case StatusPendingPayment, StatusPaymentSubmitted, StatusConfirmed,
		StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// legal transitions of the payment state machine. Cancellation is reachable
// from every non-terminal state; completed and cancelled absorb.
var transitions = map[Status][]Status{
	StatusPendingPayment:   {StatusPaymentSubmitted, StatusCancelled},
	StatusPaymentSubmitted: {StatusPaymentSubmitted, StatusConfirmed, StatusCancelled},
	StatusConfirmed:        {StatusPaymentSubmitted, StatusCompleted, StatusCancelled},
	StatusCompleted:        {},
	StatusCancelled:        {},
}

// CanTransition reports whether moving from one status to another is legal.
// Payment resubmission keeps a reservation in payment_submitted, and a
// confirmed reservation accepts a corrected payment, so those self and
// backward edges are allowed.
func CanTransition(from, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
