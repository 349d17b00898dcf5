package catalog

import (
	"time"

	"github.com/google/uuid"
)

// ServiceType classifies catalog entries
type ServiceType string

const (
	TypeMakeup        ServiceType = "makeup"
	TypePhotography   ServiceType = "photography"
	TypeVideo         ServiceType = "video"
	TypeEditing       ServiceType = "editing"
	TypeGraphicDesign ServiceType = "graphic_design"
	TypeFrame         ServiceType = "frame"
	TypeMemoryStorage ServiceType = "memory_storage"
)

// IsValidServiceType reports whether t is a known service type.
func IsValidServiceType(t string) bool {
	switch ServiceType(t) {
	case TypeMakeup, TypePhotography, TypeVideo, TypeEditing,
		TypeGraphicDesign, TypeFrame, TypeMemoryStorage:
		return true
	}
	return false
}

// Location distinguishes indoor and outdoor sessions, which carry
// different deposit conventions.
type Location string

const (
	LocationIndoor  Location = "indoor"
	LocationOutdoor Location = "outdoor"
)

// Service is a bookable catalog entry. Reservations copy the name and
// pricing they need at creation time, so price updates here only affect
// future reservations.
type StudioService struct {
	ID                uuid.UUID   `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name              string      `gorm:"not null" json:"name"`
	Type              ServiceType `gorm:"type:varchar(30);not null;index" json:"type"`
	Location          *Location   `gorm:"type:varchar(10)" json:"location,omitempty"`
	Description       string      `json:"description"`
	BasePrice         float64     `gorm:"not null" json:"base_price"`
	DepositPercentage float64     `gorm:"not null" json:"deposit_percentage"`
	DurationHours     float64     `gorm:"not null" json:"duration_hours"`
	IsActive          bool        `gorm:"not null;default:true" json:"is_active"`
	CreatedAt         time.Time   `json:"created_at"`
}

// ComboService bundles two or more services at a discounted total.
type ComboService struct {
	ID                 uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name               string    `gorm:"not null" json:"name"`
	Description        string    `json:"description"`
	ServiceIDs         []string  `gorm:"serializer:json;type:jsonb;not null" json:"service_ids"`
	TotalPrice         float64   `gorm:"not null" json:"total_price"`
	DiscountPercentage float64   `gorm:"not null" json:"discount_percentage"`
	FinalPrice         float64   `gorm:"not null" json:"final_price"`
	DepositPercentage  float64   `gorm:"not null" json:"deposit_percentage"`
	IsActive           bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt          time.Time `json:"created_at"`
}

// TableName sets the table name for Service
func (StudioService) TableName() string {
	return "services"
}

// TableName sets the table name for ComboService
func (ComboService) TableName() string {
	return "combo_services"
}

// EntryKind tags a resolved catalog entry
type EntryKind string

const (
	KindService EntryKind = "service"
	KindCombo   EntryKind = "combo"
)

// ResolvedEntry is the narrow view of a catalog entry the reservation
// engine consumes: what to charge and how to label earnings.
type ResolvedEntry struct {
	Kind          EntryKind
	ID            uuid.UUID
	Name          string
	Price         float64 // base price for services, final price for combos
	DepositRate   float64 // fraction, e.g. 0.25
	DurationHours float64
	Active        bool
}

// DefaultDepositPercentage returns the studio's deposit convention for a
// service: 25% indoor, 60% outdoor, 50% for editing, design and frame work.
func DefaultDepositPercentage(t ServiceType, loc *Location) float64 {
	if loc != nil && *loc == LocationOutdoor {
		return 60
	}
	switch t {
	case TypeEditing, TypeGraphicDesign, TypeFrame:
		return 50
	default:
		return 25
	}
}

// CreateServiceRequest represents the admin create-service payload
type CreateServiceRequest struct {
	Name              string   `json:"name" binding:"required"`
	Type              string   `json:"type" binding:"required"`
	Location          *string  `json:"location,omitempty"`
	Description       string   `json:"description"`
	BasePrice         float64  `json:"base_price" binding:"required,gt=0"`
	DepositPercentage *float64 `json:"deposit_percentage,omitempty"`
	DurationHours     float64  `json:"duration_hours" binding:"required,gt=0"`
}

// CreateComboRequest represents the admin create-combo payload
type CreateComboRequest struct {
	Name               string   `json:"name" binding:"required"`
	Description        string   `json:"description"`
	ServiceIDs         []string `json:"service_ids" binding:"required,min=2,dive,uuid"`
	DiscountPercentage float64  `json:"discount_percentage" binding:"required,gte=0,lt=100"`
	DepositPercentage  *float64 `json:"deposit_percentage,omitempty"`
}

// UpdatePriceRequest represents the admin price-update payload
type UpdatePriceRequest struct {
	Price float64 `json:"price" binding:"required,gt=0"`
}

// SetActiveRequest represents the admin activate/deactivate payload
type SetActiveRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}
