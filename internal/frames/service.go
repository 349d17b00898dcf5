package frames

import (
	"context"

	"github.com/google/uuid"

	"alostudio/internal/earnings"
	"alostudio/internal/notifications"
	"alostudio/internal/pricing"
	"alostudio/internal/reservations"
	"alostudio/internal/shared/apperrors"
	"alostudio/pkg/logger"
)

// Service interface defines the contract for frame order business logic
type Service interface {
	Create(ctx context.Context, req CreateFrameOrderRequest) (*FrameOrder, error)
	SubmitPayment(ctx context.Context, id uuid.UUID, req SubmitPaymentRequest) (*FrameOrder, error)

	// Admin operations
	GetAll(ctx context.Context) ([]FrameOrder, error)
	Approve(ctx context.Context, id uuid.UUID, req ApproveRequest) (*FrameOrder, error)
	Complete(ctx context.Context, id uuid.UUID, req CompleteRequest) (*FrameOrder, error)
	Cancel(ctx context.Context, id uuid.UUID, req CancelRequest) (*FrameOrder, error)
	UpdateFulfillment(ctx context.Context, id uuid.UUID, req UpdateFulfillmentRequest) (*FrameOrder, error)
}

// service implements the Service interface
type service struct {
	repo            Repository
	earningsService earnings.Service
	producer        notifications.Producer
	logger          *logger.Logger
}

// NewService creates a new frame order service instance. The producer may
// be nil when Kafka is disabled.
func NewService(repo Repository, earningsService earnings.Service, producer notifications.Producer, log *logger.Logger) Service {
	return &service{
		repo:            repo,
		earningsService: earningsService,
		producer:        producer,
		logger:          log,
	}
}

func (s *service) Create(ctx context.Context, req CreateFrameOrderRequest) (*FrameOrder, error) {
	total, err := pricing.FrameOrderTotal(req.FrameSize, req.Quantity, req.DeliveryFee)
	if err != nil {
		return nil, err
	}

	order := &FrameOrder{
		FrameSize:           req.FrameSize,
		FrameStyle:          req.FrameStyle,
		Quantity:            req.Quantity,
		DeliveryFee:         req.DeliveryFee,
		SpecialInstructions: req.SpecialInstructions,
		TotalPrice:          total,
		CustomerName:        req.CustomerName,
		CustomerEmail:       req.CustomerEmail,
		CustomerPhone:       req.CustomerPhone,
		Status:              reservations.StatusPendingPayment,
		FulfillmentStatus:   FulfillmentPending,
	}

	if err := s.repo.Create(ctx, order); err != nil {
		return nil, err
	}

	s.logger.LogReservationCreated(ctx, "frame_order", order.ID.String(), order.CustomerEmail)
	s.publish(ctx, notifications.EventReservationCreated, order)
	return order, nil
}

func (s *service) SubmitPayment(ctx context.Context, id uuid.UUID, req SubmitPaymentRequest) (*FrameOrder, error) {
	order, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !reservations.CanTransition(order.Status, reservations.StatusPaymentSubmitted) {
		return nil, apperrors.Conflict("frame order can no longer accept payment")
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

	s.logger.LogStatusChanged(ctx, "frame_order", id.String(), string(order.Status), string(reservations.StatusPaymentSubmitted))
	order.PaymentAmount = req.Amount
	order.PaymentReference = req.Reference
	order.Status = reservations.StatusPaymentSubmitted
	s.publish(ctx, notifications.EventPaymentSubmitted, order)
	return order, nil
}

func (s *service) GetAll(ctx context.Context) ([]FrameOrder, error) {
	return s.repo.GetAll(ctx)
}

func (s *service) Approve(ctx context.Context, id uuid.UUID, req ApproveRequest) (*FrameOrder, error) {
	order, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !reservations.CanTransition(order.Status, reservations.StatusConfirmed) {
		return nil, apperrors.Conflict("frame order cannot be approved from its current status")
	}

	updates := map[string]interface{}{
		"status": reservations.StatusConfirmed,
	}
	if req.AdminNotes != "" {
		updates["admin_notes"] = req.AdminNotes
	}

	// A re-approval after a corrected resubmission recognizes only the
	// part the ledger does not already hold.
	var recognized float64
	if order.PaymentAmount > 0 {
		recognized, err = s.repo.ConfirmWithDeposit(ctx, id, updates, order.PaymentAmount)
		if err != nil {
			return nil, err
		}
	} else if err := s.repo.UpdateStatusWithEarnings(ctx, id, updates, nil); err != nil {
		return nil, err
	}

	if recognized > 0 {
		s.earningsService.InvalidateSummary(ctx)
		s.logger.LogEarningsRecorded(ctx, order.ID.String(), EarningsLabel, recognized)
	}
	s.logger.LogStatusChanged(ctx, "frame_order", id.String(), string(order.Status), string(reservations.StatusConfirmed))
	order.Status = reservations.StatusConfirmed
	s.publish(ctx, notifications.EventReservationConfirmed, order)
	return order, nil
}

func (s *service) Complete(ctx context.Context, id uuid.UUID, req CompleteRequest) (*FrameOrder, error) {
	order, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !reservations.CanTransition(order.Status, reservations.StatusCompleted) {
		return nil, apperrors.Conflict("frame order cannot be completed from its current status")
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

		if err := s.repo.CompleteWithBalance(ctx, id, updates, req.FullPaymentAmount); err != nil {
			return nil, err
		}
		s.earningsService.InvalidateSummary(ctx)
	} else {
		if err := s.repo.UpdateStatusWithEarnings(ctx, id, updates, nil); err != nil {
			return nil, err
		}
	}

	s.logger.LogStatusChanged(ctx, "frame_order", id.String(), string(order.Status), string(reservations.StatusCompleted))
	order.Status = reservations.StatusCompleted
	s.publish(ctx, notifications.EventReservationCompleted, order)
	return order, nil
}

func (s *service) Cancel(ctx context.Context, id uuid.UUID, req CancelRequest) (*FrameOrder, error) {
	order, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !reservations.CanTransition(order.Status, reservations.StatusCancelled) {
		return nil, apperrors.Conflict("frame order is already finalized")
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

	s.logger.LogStatusChanged(ctx, "frame_order", id.String(), string(order.Status), string(reservations.StatusCancelled))
	order.Status = reservations.StatusCancelled
	s.publish(ctx, notifications.EventReservationCancelled, order)
	return order, nil
}

// UpdateFulfillment moves the production status. Transitions are free and
// never touch payments or earnings.
func (s *service) UpdateFulfillment(ctx context.Context, id uuid.UUID, req UpdateFulfillmentRequest) (*FrameOrder, error) {
	if !IsValidFulfillmentStatus(req.FulfillmentStatus) {
		return nil, apperrors.NewValidation("fulfillment_status", "fulfillment_status must be pending, in_progress or ready_for_pickup")
	}

	order, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"fulfillment_status": req.FulfillmentStatus,
	}
	if err := s.repo.Update(ctx, id, updates); err != nil {
		return nil, err
	}

	order.FulfillmentStatus = req.FulfillmentStatus
	return order, nil
}

func (s *service) publish(ctx context.Context, eventType notifications.EventType, order *FrameOrder) {
	if s.producer == nil {
		return
	}
	event := notifications.NewReservationEvent(eventType, notifications.KindFrameOrder, order.ID, order.CustomerEmail, EarningsLabel)
	event.Amount = order.PaymentAmount
	if err := s.producer.PublishReservationEvent(ctx, event); err != nil {
		s.logger.Warn("failed to publish reservation event",
			"event_type", string(eventType),
			"frame_order_id", order.ID.String(),
			"error", err.Error())
	}
}
