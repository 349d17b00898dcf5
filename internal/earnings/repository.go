package earnings

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	// Append adds a record to the ledger. Records are never updated.
	Append(ctx context.Context, record *Record) error
	// GetAll returns the full ledger, newest payment first.
	GetAll(ctx context.Context) ([]Record, error)
	// RecognizedAmount sums the amounts already recorded against a
	// reservation, used to compute the balance still unrecognized.
	RecognizedAmount(ctx context.Context, bookingID uuid.UUID) (float64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Append(ctx context.Context, record *Record) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *repository) GetAll(ctx context.Context) ([]Record, error) {
	var records []Record
	err := r.db.WithContext(ctx).
		Order("payment_date DESC, created_at DESC").
		Find(&records).Error
	return records, err
}

func (r *repository) RecognizedAmount(ctx context.Context, bookingID uuid.UUID) (float64, error) {
	return RecognizedAmountTx(r.db.WithContext(ctx), bookingID)
}

// RecognizedAmountTx is the transaction-scoped variant used inside the
// reservation status transitions, so the check and the append share one
// transaction.
func RecognizedAmountTx(tx *gorm.DB, bookingID uuid.UUID) (float64, error) {
	var total float64
	err := tx.Model(&Record{}).
		Where("booking_id = ?", bookingID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}
