package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"alostudio/internal/earnings"
	"alostudio/internal/pricing"
	"alostudio/internal/reservations"
	"alostudio/internal/shared/apperrors"
)

type Repository interface {
	// Concurrency-safe creation: claims the slot or fails with ErrConflict
	CreateWithSlotClaim(ctx context.Context, booking *Booking) error

	GetByID(ctx context.Context, id uuid.UUID) (*Booking, error)
	GetByCustomerEmail(ctx context.Context, email string) ([]Booking, error)
	GetAll(ctx context.Context) ([]Booking, error)

	// HeldSlots returns the slot times held by active bookings on a date
	HeldSlots(ctx context.Context, date string) ([]string, error)

	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error

	// UpdateStatusWithEarnings writes the status change and the earnings
	// record in one transaction
	UpdateStatusWithEarnings(ctx context.Context, id uuid.UUID, updates map[string]interface{}, record *earnings.Record) error

	// ConfirmWithDeposit writes the approval and appends an earnings
	// record for the part of the submitted payment not yet recognized,
	// in one transaction. Returns the amount recognized; zero when the
	// ledger already covers the payment.
	ConfirmWithDeposit(ctx context.Context, id uuid.UUID, updates map[string]interface{}, paymentAmount float64, label string) (float64, error)

	// CompleteWithBalance writes the completion and appends a balance
	// record for any amount not yet recognized, in one transaction
	CompleteWithBalance(ctx context.Context, id uuid.UUID, updates map[string]interface{}, fullAmount float64, label string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// CreateWithSlotClaim inserts the booking after claiming the slot under a
// transaction-scoped advisory lock. A fresh slot has no row to lock, so
// the lock is keyed on the (date, time) pair itself; the partial unique
// index on active bookings is the store-level backstop.
func (r *repository) CreateWithSlotClaim(ctx context.Context, booking *Booking) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		slotKey := booking.BookingDate + "|" + booking.BookingTime
		if err := tx.Exec("SELECT pg_advisory_xact_lock(hashtext(?))", slotKey).Error; err != nil {
			return fmt.Errorf("failed to lock slot: %w", err)
		}

		var held int64
		err := tx.Model(&Booking{}).
			Where("booking_date = ? AND booking_time = ?", booking.BookingDate, booking.BookingTime).
			Where("status NOT IN ?", []reservations.Status{reservations.StatusCompleted, reservations.StatusCancelled}).
			Count(&held).Error
		if err != nil {
			return fmt.Errorf("failed to check slot: %w", err)
		}
		if held > 0 {
			return apperrors.Conflict("time slot is already reserved")
		}

		if err := tx.Create(booking).Error; err != nil {
			return fmt.Errorf("failed to create booking: %w", err)
		}
		return nil
	})
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Booking, error) {
	var booking Booking
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("booking")
		}
		return nil, err
	}
	return &booking, nil
}

func (r *repository) GetByCustomerEmail(ctx context.Context, email string) ([]Booking, error) {
	var bookings []Booking
	err := r.db.WithContext(ctx).
		Where("customer_email = ?", email).
		Order("created_at DESC").
		Find(&bookings).Error
	return bookings, err
}

func (r *repository) GetAll(ctx context.Context) ([]Booking, error) {
	var bookings []Booking
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&bookings).Error
	return bookings, err
}

func (r *repository) HeldSlots(ctx context.Context, date string) ([]string, error) {
	var slots []string
	err := r.db.WithContext(ctx).
		Model(&Booking{}).
		Where("booking_date = ?", date).
		Where("status IN ?", reservations.ActiveStatuses).
		Pluck("booking_time", &slots).Error
	return slots, err
}

func (r *repository) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()
	result := r.db.WithContext(ctx).
		Model(&Booking{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("booking")
	}
	return nil
}

func (r *repository) UpdateStatusWithEarnings(ctx context.Context, id uuid.UUID, updates map[string]interface{}, record *earnings.Record) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		updates["updated_at"] = time.Now()
		result := tx.Model(&Booking{}).Where("id = ?", id).Updates(updates)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return apperrors.NotFound("booking")
		}

		if record != nil {
			if err := tx.Create(record).Error; err != nil {
				return fmt.Errorf("failed to append earnings record: %w", err)
			}
		}
		return nil
	})
}

func (r *repository) ConfirmWithDeposit(ctx context.Context, id uuid.UUID, updates map[string]interface{}, paymentAmount float64, label string) (float64, error) {
	var recognizedNow float64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		updates["updated_at"] = time.Now()
		result := tx.Model(&Booking{}).Where("id = ?", id).Updates(updates)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return apperrors.NotFound("booking")
		}

		recognized, err := earnings.RecognizedAmountTx(tx, id)
		if err != nil {
			return fmt.Errorf("failed to sum recognized earnings: %w", err)
		}

		// A re-approval after a corrected resubmission recognizes only
		// what the ledger does not already hold.
		delta := pricing.BalanceDue(paymentAmount, recognized)
		if delta <= 0 {
			return nil
		}

		record := &earnings.Record{
			BookingID:   id,
			ServiceType: label,
			Amount:      delta,
			PaymentDate: time.Now(),
		}
		if err := tx.Create(record).Error; err != nil {
			return fmt.Errorf("failed to append earnings record: %w", err)
		}
		recognizedNow = delta
		return nil
	})
	return recognizedNow, err
}

func (r *repository) CompleteWithBalance(ctx context.Context, id uuid.UUID, updates map[string]interface{}, fullAmount float64, label string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		updates["updated_at"] = time.Now()
		result := tx.Model(&Booking{}).Where("id = ?", id).Updates(updates)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return apperrors.NotFound("booking")
		}

		recognized, err := earnings.RecognizedAmountTx(tx, id)
		if err != nil {
			return fmt.Errorf("failed to sum recognized earnings: %w", err)
		}

		balance := pricing.BalanceDue(fullAmount, recognized)
		if balance <= 0 {
			return nil
		}

		record := &earnings.Record{
			BookingID:   id,
			ServiceType: label + earnings.BalanceSuffix,
			Amount:      balance,
			PaymentDate: time.Now(),
		}
		if err := tx.Create(record).Error; err != nil {
			return fmt.Errorf("failed to append balance record: %w", err)
		}
		return nil
	})
}
