package bookings

import (
	"context"

	"github.com/google/uuid"

	"alostudio/internal/availability"
	"alostudio/internal/catalog"
	"alostudio/internal/earnings"
	"alostudio/internal/notifications"
	"alostudio/internal/pricing"
	"alostudio/internal/reservations"
	"alostudio/internal/shared/apperrors"
	"alostudio/pkg/logger"
)

// Service interface defines the contract for booking business logic
type Service interface {
	Create(ctx context.Context, req CreateBookingRequest) (*Booking, error)
	SubmitPayment(ctx context.Context, id uuid.UUID, req SubmitPaymentRequest) (*Booking, error)
	GetByCustomerEmail(ctx context.Context, email string) ([]Booking, error)

	// Admin operations
	GetAll(ctx context.Context) ([]Booking, error)
	Approve(ctx context.Context, id uuid.UUID, req ApproveRequest) (*Booking, error)
	Complete(ctx context.Context, id uuid.UUID, req CompleteRequest) (*Booking, error)
	Cancel(ctx context.Context, id uuid.UUID, req CancelRequest) (*Booking, error)
}

// service implements the Service interface
type service struct {
	repo            Repository
	catalogService  catalog.Service
	earningsService earnings.Service
	producer        notifications.Producer
	logger          *logger.Logger
}

// NewService creates a new booking service instance. The producer may be
// nil when Kafka is disabled.
func NewService(repo Repository, catalogService catalog.Service, earningsService earnings.Service, producer notifications.Producer, log *logger.Logger) Service {
	return &service{
		repo:            repo,
		catalogService:  catalogService,
		earningsService: earningsService,
		producer:        producer,
		logger:          log,
	}
}

func (s *service) Create(ctx context.Context, req CreateBookingRequest) (*Booking, error) {
	if err := availability.ValidateDate(req.BookingDate); err != nil {
		return nil, err
	}
	if err := availability.ValidateTime(req.BookingTime); err != nil {
		return nil, err
	}

	serviceID, err := uuid.Parse(req.ServiceID)
	if err != nil {
		return nil, apperrors.NewValidation("service_id", "service_id must be a valid UUID")
	}

	entry, err := s.catalogService.Resolve(ctx, serviceID, req.IsCombo)
	if err != nil {
		return nil, err
	}
	if !entry.Active {
		return nil, apperrors.NewValidation("service_id", "service is not currently offered")
	}

	booking := &Booking{
		ServiceID:       entry.ID,
		IsCombo:         req.IsCombo,
		ServiceType:     entry.Name,
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		BookingDate:     req.BookingDate,
		BookingTime:     req.BookingTime,
		Status:          reservations.StatusPendingPayment,
		TotalPrice:      entry.Price,
		DepositRequired: pricing.Deposit(entry.Price, entry.DepositRate),
	}

	if err := s.repo.CreateWithSlotClaim(ctx, booking); err != nil {
		return nil, err
	}

	s.logger.LogReservationCreated(ctx, "booking", booking.ID.String(), booking.CustomerEmail)
	s.publish(ctx, notifications.EventReservationCreated, booking)
	return booking, nil
}

func (s *service) SubmitPayment(ctx context.Context, id uuid.UUID, req SubmitPaymentRequest) (*Booking, error) {
	booking, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !reservations.CanTransition(booking.Status, reservations.StatusPaymentSubmitted) {
		return nil, apperrors.Conflict("booking can no longer accept payment")
	}

	// Resubmission overwrites the previous payment details.
	updates := map[string]interface{}{
		"payment_amount":    req.Amount,
		"payment_reference": req.Reference,
		"status":            reservations.StatusPaymentSubmitted,
	}
	if err := s.repo.Update(ctx, id, updates); err != nil {
		return nil, err
	}

	s.logger.LogStatusChanged(ctx, "booking", id.String(), string(booking.Status), string(reservations.StatusPaymentSubmitted))
	booking.PaymentAmount = req.Amount
	booking.PaymentReference = req.Reference
	booking.Status = reservations.StatusPaymentSubmitted
	s.publish(ctx, notifications.EventPaymentSubmitted, booking)
	return booking, nil
}

func (s *service) GetByCustomerEmail(ctx context.Context, email string) ([]Booking, error) {
	return s.repo.GetByCustomerEmail(ctx, email)
}

func (s *service) GetAll(ctx context.Context) ([]Booking, error) {
	return s.repo.GetAll(ctx)
}

func (s *service) Approve(ctx context.Context, id uuid.UUID, req ApproveRequest) (*Booking, error) {
	booking, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !reservations.CanTransition(booking.Status, reservations.StatusConfirmed) {
		return nil, apperrors.Conflict("booking cannot be approved from its current status")
	}

	updates := map[string]interface{}{
		"status": reservations.StatusConfirmed,
	}
	if req.AdminNotes != "" {
		updates["admin_notes"] = req.AdminNotes
	}

	// The submitted deposit becomes recognized revenue on approval; a
	// re-approval after a corrected resubmission recognizes only the
	// part the ledger does not already hold.
	var recognized float64
	if booking.PaymentAmount > 0 {
		recognized, err = s.repo.ConfirmWithDeposit(ctx, id, updates, booking.PaymentAmount, booking.ServiceType)
		if err != nil {
			return nil, err
		}
	} else if err := s.repo.UpdateStatusWithEarnings(ctx, id, updates, nil); err != nil {
		return nil, err
	}

	if recognized > 0 {
		s.earningsService.InvalidateSummary(ctx)
		s.logger.LogEarningsRecorded(ctx, booking.ID.String(), booking.ServiceType, recognized)
	}
	s.logger.LogStatusChanged(ctx, "booking", id.String(), string(booking.Status), string(reservations.StatusConfirmed))
	booking.Status = reservations.StatusConfirmed
	s.publish(ctx, notifications.EventReservationConfirmed, booking)
	return booking, nil
}

func (s *service) Complete(ctx context.Context, id uuid.UUID, req CompleteRequest) (*Booking, error) {
	booking, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !reservations.CanTransition(booking.Status, reservations.StatusCompleted) {
		return nil, apperrors.Conflict("booking cannot be completed from its current status")
	}

	updates := map[string]interface{}{
		"status": reservations.StatusCompleted,
	}
	if req.AdminNotes != "" {
		updates["admin_notes"] = req.AdminNotes
	}

	if req.FullPaymentReceived {
		updates["full_payment_received"] = true
		updates["full_payment_amount"] = req.FullPaymentAmount
		updates["full_payment_reference"] = req.FullPaymentReference

		if err := s.repo.CompleteWithBalance(ctx, id, updates, req.FullPaymentAmount, booking.ServiceType); err != nil {
			return nil, err
		}
		s.earningsService.InvalidateSummary(ctx)
	} else {
		if err := s.repo.UpdateStatusWithEarnings(ctx, id, updates, nil); err != nil {
			return nil, err
		}
	}

	s.logger.LogStatusChanged(ctx, "booking", id.String(), string(booking.Status), string(reservations.StatusCompleted))
	booking.Status = reservations.StatusCompleted
	s.publish(ctx, notifications.EventReservationCompleted, booking)
	return booking, nil
}

func (s *service) Cancel(ctx context.Context, id uuid.UUID, req CancelRequest) (*Booking, error) {
	booking, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !reservations.CanTransition(booking.Status, reservations.StatusCancelled) {
		return nil, apperrors.Conflict("booking is already finalized")
	}

	updates := map[string]interface{}{
		"status": reservations.StatusCancelled,
	}
	if req.AdminNotes != "" {
		updates["admin_notes"] = req.AdminNotes
	}
	if err := s.repo.Update(ctx, id, updates); err != nil {
		return nil, err
	}

	s.logger.LogStatusChanged(ctx, "booking", id.String(), string(booking.Status), string(reservations.StatusCancelled))
	booking.Status = reservations.StatusCancelled
	s.publish(ctx, notifications.EventReservationCancelled, booking)
	return booking, nil
}

// publish emits a lifecycle event. Best-effort only; a broker failure
// must never fail the request that triggered it.
func (s *service) publish(ctx context.Context, eventType notifications.EventType, booking *Booking) {
	if s.producer == nil {
		return
	}
	event := notifications.NewReservationEvent(eventType, notifications.KindBooking, booking.ID, booking.CustomerEmail, booking.ServiceType)
	event.Amount = booking.PaymentAmount
	if err := s.producer.PublishReservationEvent(ctx, event); err != nil {
		s.logger.Warn("failed to publish reservation event",
			"event_type", string(eventType),
			"booking_id", booking.ID.String(),
			"error", err.Error())
	}
}
