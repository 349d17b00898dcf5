package frames

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"alostudio/internal/earnings"
	"alostudio/internal/pricing"
	"alostudio/internal/shared/apperrors"
)

type Repository interface {
	Create(ctx context.Context, order *FrameOrder) error
	GetByID(ctx context.Context, id uuid.UUID) (*FrameOrder, error)
	GetAll(ctx context.Context) ([]FrameOrder, error)

	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error

	// UpdateStatusWithEarnings writes the status change and the earnings
	// record in one transaction
	UpdateStatusWithEarnings(ctx context.Context, id uuid.UUID, updates map[string]interface{}, record *earnings.Record) error

	// ConfirmWithDeposit writes the approval and appends an earnings
	// record for the part of the submitted payment not yet recognized,
	// in one transaction. Returns the amount recognized; zero when the
	// ledger already covers the payment.
	ConfirmWithDeposit(ctx context.Context, id uuid.UUID, updates map[string]interface{}, paymentAmount float64) (float64, error)

	// CompleteWithBalance writes the completion and appends a balance
	// record for any amount not yet recognized, in one transaction
	CompleteWithBalance(ctx context.Context, id uuid.UUID, updates map[string]interface{}, fullAmount float64) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, order *FrameOrder) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*FrameOrder, error) {
	var order FrameOrder
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("frame order")
		}
		return nil, err
	}
	return &order, nil
}

func (r *repository) GetAll(ctx context.Context) ([]FrameOrder, error) {
	var orders []FrameOrder
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

func (r *repository) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()
	result := r.db.WithContext(ctx).
		Model(&FrameOrder{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("frame order")
	}
	return nil
}

func (r *repository) UpdateStatusWithEarnings(ctx context.Context, id uuid.UUID, updates map[string]interface{}, record *earnings.Record) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		updates["updated_at"] = time.Now()
		result := tx.Model(&FrameOrder{}).Where("id = ?", id).Updates(updates)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return apperrors.NotFound("frame order")
		}

		if record != nil {
			if err := tx.Create(record).Error; err != nil {
				return fmt.Errorf("failed to append earnings record: %w", err)
			}
		}
		return nil
	})
}

func (r *repository) ConfirmWithDeposit(ctx context.Context, id uuid.UUID, updates map[string]interface{}, paymentAmount float64) (float64, error) {
	var recognizedNow float64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		updates["updated_at"] = time.Now()
		result := tx.Model(&FrameOrder{}).Where("id = ?", id).Updates(updates)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return apperrors.NotFound("frame order")
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
			ServiceType: EarningsLabel,
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

func (r *repository) CompleteWithBalance(ctx context.Context, id uuid.UUID, updates map[string]interface{}, fullAmount float64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		updates["updated_at"] = time.Now()
		result := tx.Model(&FrameOrder{}).Where("id = ?", id).Updates(updates)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return apperrors.NotFound("frame order")
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
			ServiceType: EarningsLabel + earnings.BalanceSuffix,
			Amount:      balance,
			PaymentDate: time.Now(),
		}
		if err := tx.Create(record).Error; err != nil {
			return fmt.Errorf("failed to append balance record: %w", err)
		}
		return nil
	})
}
