package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"alostudio/internal/shared/apperrors"
)

type Repository interface {
	// Service operations
	CreateService(ctx context.Context, service *StudioService) error
	GetServiceByID(ctx context.Context, id uuid.UUID) (*StudioService, error)
	GetActiveServices(ctx context.Context) ([]StudioService, error)
	GetActiveServicesByType(ctx context.Context, serviceType ServiceType) ([]StudioService, error)
	GetAllServices(ctx context.Context) ([]StudioService, error)
	UpdateServicePrice(ctx context.Context, id uuid.UUID, price float64) error
	SetServiceActive(ctx context.Context, id uuid.UUID, active bool) error

	// Combo operations
	CreateCombo(ctx context.Context, combo *ComboService) error
	GetComboByID(ctx context.Context, id uuid.UUID) (*ComboService, error)
	GetActiveCombos(ctx context.Context) ([]ComboService, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateService(ctx context.Context, service *StudioService) error {
	return r.db.WithContext(ctx).Create(service).Error
}

func (r *repository) GetServiceByID(ctx context.Context, id uuid.UUID) (*StudioService, error) {
	var service StudioService
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&service).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("service")
		}
		return nil, err
	}
	return &service, nil
}

func (r *repository) GetActiveServices(ctx context.Context) ([]StudioService, error) {
	var services []StudioService
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("type, base_price").
		Find(&services).Error
	return services, err
}

func (r *repository) GetActiveServicesByType(ctx context.Context, serviceType ServiceType) ([]StudioService, error) {
	var services []StudioService
	err := r.db.WithContext(ctx).
		Where("type = ? AND is_active = ?", serviceType, true).
		Order("base_price").
		Find(&services).Error
	return services, err
}

func (r *repository) GetAllServices(ctx context.Context) ([]StudioService, error) {
	var services []StudioService
	err := r.db.WithContext(ctx).Order("type, base_price").Find(&services).Error
	return services, err
}

func (r *repository) UpdateServicePrice(ctx context.Context, id uuid.UUID, price float64) error {
	result := r.db.WithContext(ctx).
		Model(&StudioService{}).
		Where("id = ?", id).
		Update("base_price", price)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("service")
	}
	return nil
}

func (r *repository) SetServiceActive(ctx context.Context, id uuid.UUID, active bool) error {
	result := r.db.WithContext(ctx).
		Model(&StudioService{}).
		Where("id = ?", id).
		Update("is_active", active)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("service")
	}
	return nil
}

func (r *repository) CreateCombo(ctx context.Context, combo *ComboService) error {
	return r.db.WithContext(ctx).Create(combo).Error
}

func (r *repository) GetComboByID(ctx context.Context, id uuid.UUID) (*ComboService, error) {
	var combo ComboService
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&combo).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("combo service")
		}
		return nil, err
	}
	return &combo, nil
}

func (r *repository) GetActiveCombos(ctx context.Context) ([]ComboService, error) {
	var combos []ComboService
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at").
		Find(&combos).Error
	return combos, err
}

// CountServices reports how many services exist; the seeder uses it to
// avoid duplicating defaults.
func CountServices(ctx context.Context, db *gorm.DB) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Model(&StudioService{}).Count(&count).Error
	return count, err
}
