package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"alostudio/internal/pricing"
	"alostudio/internal/shared/apperrors"
	"alostudio/internal/shared/constants"
	"alostudio/pkg/cache"
)

// Service interface defines the contract for catalog business logic
type Service interface {
	// Resolve returns the narrow pricing view of a service or combo for
	// the reservation engine.
	Resolve(ctx context.Context, id uuid.UUID, isCombo bool) (*ResolvedEntry, error)

	// Public listings
	GetActiveServices(ctx context.Context) ([]StudioService, error)
	GetActiveServicesByType(ctx context.Context, serviceType string) ([]StudioService, error)
	GetActiveCombos(ctx context.Context) ([]ComboService, error)

	// Admin operations
	GetAllServices(ctx context.Context) ([]StudioService, error)
	CreateService(ctx context.Context, req CreateServiceRequest) (*StudioService, error)
	CreateCombo(ctx context.Context, req CreateComboRequest) (*ComboService, error)
	UpdateServicePrice(ctx context.Context, id uuid.UUID, price float64) error
	SetServiceActive(ctx context.Context, id uuid.UUID, active bool) error

	SetCacheService(cacheService cache.Service, ttl time.Duration)
}

// service implements the Service interface
type service struct {
	repo         Repository
	cacheService cache.Service
	cacheTTL     time.Duration
}

// NewService creates a new catalog service instance
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// SetCacheService injects the cache service dependency
func (s *service) SetCacheService(cacheService cache.Service, ttl time.Duration) {
	s.cacheService = cacheService
	s.cacheTTL = ttl
}

func (s *service) Resolve(ctx context.Context, id uuid.UUID, isCombo bool) (*ResolvedEntry, error) {
	if isCombo {
		combo, err := s.repo.GetComboByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return &ResolvedEntry{
			Kind:        KindCombo,
			ID:          combo.ID,
			Name:        combo.Name,
			Price:       combo.FinalPrice,
			DepositRate: combo.DepositPercentage / 100,
			Active:      combo.IsActive,
		}, nil
	}

	svc, err := s.repo.GetServiceByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &ResolvedEntry{
		Kind:          KindService,
		ID:            svc.ID,
		Name:          svc.Name,
		Price:         svc.BasePrice,
		DepositRate:   svc.DepositPercentage / 100,
		DurationHours: svc.DurationHours,
		Active:        svc.IsActive,
	}, nil
}

func (s *service) GetActiveServices(ctx context.Context) ([]StudioService, error) {
	if s.cacheService != nil {
		var cached []StudioService
		if err := s.cacheService.Get(ctx, constants.CACHE_KEY_SERVICES_ACTIVE, &cached); err == nil {
			return cached, nil
		}
	}

	services, err := s.repo.GetActiveServices(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get active services: %w", err)
	}

	if s.cacheService != nil {
		_ = s.cacheService.Set(ctx, constants.CACHE_KEY_SERVICES_ACTIVE, services, s.cacheTTL)
	}
	return services, nil
}

func (s *service) GetActiveServicesByType(ctx context.Context, serviceType string) ([]StudioService, error) {
	if !IsValidServiceType(serviceType) {
		return nil, apperrors.NewValidation("type", fmt.Sprintf("unknown service type %q", serviceType))
	}

	key := constants.BuildServicesByTypeKey(serviceType)
	if s.cacheService != nil {
		var cached []StudioService
		if err := s.cacheService.Get(ctx, key, &cached); err == nil {
			return cached, nil
		}
	}

	services, err := s.repo.GetActiveServicesByType(ctx, ServiceType(serviceType))
	if err != nil {
		return nil, fmt.Errorf("failed to get services by type: %w", err)
	}

	if s.cacheService != nil {
		_ = s.cacheService.Set(ctx, key, services, s.cacheTTL)
	}
	return services, nil
}

func (s *service) GetActiveCombos(ctx context.Context) ([]ComboService, error) {
	if s.cacheService != nil {
		var cached []ComboService
		if err := s.cacheService.Get(ctx, constants.CACHE_KEY_COMBOS_ACTIVE, &cached); err == nil {
			return cached, nil
		}
	}

	combos, err := s.repo.GetActiveCombos(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get combo services: %w", err)
	}

	if s.cacheService != nil {
		_ = s.cacheService.Set(ctx, constants.CACHE_KEY_COMBOS_ACTIVE, combos, s.cacheTTL)
	}
	return combos, nil
}

func (s *service) GetAllServices(ctx context.Context) ([]StudioService, error) {
	return s.repo.GetAllServices(ctx)
}

func (s *service) CreateService(ctx context.Context, req CreateServiceRequest) (*StudioService, error) {
	if !IsValidServiceType(req.Type) {
		return nil, apperrors.NewValidation("type", fmt.Sprintf("unknown service type %q", req.Type))
	}

	var loc *Location
	if req.Location != nil {
		l := Location(*req.Location)
		if l != LocationIndoor && l != LocationOutdoor {
			return nil, apperrors.NewValidation("location", "must be indoor or outdoor")
		}
		loc = &l
	}

	depositPct := DefaultDepositPercentage(ServiceType(req.Type), loc)
	if req.DepositPercentage != nil {
		if *req.DepositPercentage <= 0 || *req.DepositPercentage > 100 {
			return nil, apperrors.NewValidation("deposit_percentage", "must be between 0 and 100")
		}
		depositPct = *req.DepositPercentage
	}

	svc := &StudioService{
		Name:              req.Name,
		Type:              ServiceType(req.Type),
		Location:          loc,
		Description:       req.Description,
		BasePrice:         req.BasePrice,
		DepositPercentage: depositPct,
		DurationHours:     req.DurationHours,
		IsActive:          true,
	}

	if err := s.repo.CreateService(ctx, svc); err != nil {
		return nil, fmt.Errorf("failed to create service: %w", err)
	}

	s.invalidateListings(ctx)
	return svc, nil
}

func (s *service) CreateCombo(ctx context.Context, req CreateComboRequest) (*ComboService, error) {
	// A combo's total is the sum of its component base prices. Components
	// must exist and be active at creation time.
	var total float64
	for _, idStr := range req.ServiceIDs {
		id, err := uuid.Parse(idStr)
		if err != nil {
			return nil, apperrors.NewValidation("service_ids", fmt.Sprintf("invalid service id %q", idStr))
		}
		component, err := s.repo.GetServiceByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if !component.IsActive {
			return nil, apperrors.NewValidation("service_ids", fmt.Sprintf("service %s is not active", idStr))
		}
		total += component.BasePrice
	}

	depositPct := 50.0
	if req.DepositPercentage != nil {
		if *req.DepositPercentage <= 0 || *req.DepositPercentage > 100 {
			return nil, apperrors.NewValidation("deposit_percentage", "must be between 0 and 100")
		}
		depositPct = *req.DepositPercentage
	}

	combo := &ComboService{
		Name:               req.Name,
		Description:        req.Description,
		ServiceIDs:         req.ServiceIDs,
		TotalPrice:         total,
		DiscountPercentage: req.DiscountPercentage,
		FinalPrice:         pricing.ComboFinalPrice(total, req.DiscountPercentage/100),
		DepositPercentage:  depositPct,
		IsActive:           true,
	}

	if err := s.repo.CreateCombo(ctx, combo); err != nil {
		return nil, fmt.Errorf("failed to create combo service: %w", err)
	}

	s.invalidateListings(ctx)
	return combo, nil
}

func (s *service) UpdateServicePrice(ctx context.Context, id uuid.UUID, price float64) error {
	if price <= 0 {
		return apperrors.NewValidation("price", "must be greater than zero")
	}
	if err := s.repo.UpdateServicePrice(ctx, id, price); err != nil {
		return err
	}
	s.invalidateListings(ctx)
	return nil
}

func (s *service) SetServiceActive(ctx context.Context, id uuid.UUID, active bool) error {
	if err := s.repo.SetServiceActive(ctx, id, active); err != nil {
		return err
	}
	s.invalidateListings(ctx)
	return nil
}

// invalidateListings drops all cached catalog listings after a write.
func (s *service) invalidateListings(ctx context.Context) {
	if s.cacheService == nil {
		return
	}
	_ = s.cacheService.DeletePattern(ctx, constants.CACHE_PATTERN_CATALOG)
}
