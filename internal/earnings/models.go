package earnings

import (
	"time"

	"github.com/google/uuid"
)

// Record is one immutable ledger entry: a payment recognized as confirmed
// revenue. Records are only ever appended, never mutated or deleted.
type Record struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	BookingID uuid.UUID `gorm:"type:uuid;index;not null" json:"booking_id"`
	// ServiceType is the attribution label copied from the reservation.
	// Balance payments carry a "_balance" suffix and are tracked as their
	// own bucket, never collapsed into the base label.
	ServiceType string    `gorm:"type:varchar(120);not null;index" json:"service_type"`
	Amount      float64   `gorm:"not null" json:"amount"`
	PaymentDate time.Time `gorm:"not null;index" json:"payment_date"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName sets the table name for Record
func (Record) TableName() string {
	return "earnings_records"
}

// BalanceSuffix marks a record for the second, balance payment of a
// reservation rather than the initial deposit.
const BalanceSuffix = "_balance"

// Summary is the aggregate view served to the admin wallet.
type Summary struct {
	TotalEarnings    float64            `json:"total_earnings"`
	RecentEarnings   float64            `json:"recent_earnings"`
	ServiceBreakdown map[string]float64 `json:"service_breakdown"`
	Count            int                `json:"count"`
	Average          float64            `json:"average"`
	EarningsHistory  []Record           `json:"earnings_history"`
}

// RecentWindow is the trailing window used for "recent" earnings.
const RecentWindow = 30 * 24 * time.Hour
