package earnings

import (
	"context"
	"fmt"
	"time"

	"alostudio/internal/shared/constants"
	"alostudio/pkg/cache"
)

// Service interface defines the contract for earnings queries
type Service interface {
	GetSummary(ctx context.Context) (*Summary, error)
	// InvalidateSummary drops the cached summary after a ledger append.
	InvalidateSummary(ctx context.Context)

	SetCacheService(cacheService cache.Service, ttl time.Duration)
}

// service implements the Service interface
type service struct {
	repo         Repository
	cacheService cache.Service
	cacheTTL     time.Duration
	now          func() time.Time
}

// NewService creates a new earnings service instance
func NewService(repo Repository) Service {
	return &service{repo: repo, now: time.Now}
}

// SetCacheService injects the cache service dependency
func (s *service) SetCacheService(cacheService cache.Service, ttl time.Duration) {
	s.cacheService = cacheService
	s.cacheTTL = ttl
}

func (s *service) GetSummary(ctx context.Context) (*Summary, error) {
	if s.cacheService != nil {
		var cached Summary
		if err := s.cacheService.Get(ctx, constants.CACHE_KEY_EARNINGS_SUMMARY, &cached); err == nil {
			return &cached, nil
		}
	}

	records, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load earnings ledger: %w", err)
	}

	summary := Summarize(records, s.now())

	if s.cacheService != nil {
		_ = s.cacheService.Set(ctx, constants.CACHE_KEY_EARNINGS_SUMMARY, summary, s.cacheTTL)
	}
	return summary, nil
}

func (s *service) InvalidateSummary(ctx context.Context) {
	if s.cacheService == nil {
		return
	}
	_ = s.cacheService.Delete(ctx, constants.CACHE_KEY_EARNINGS_SUMMARY)
}

// Summarize folds the ledger into the aggregate view. Balance-suffixed
// labels stay distinct buckets; the average is zero for an empty ledger.
func Summarize(records []Record, now time.Time) *Summary {
	summary := &Summary{
		ServiceBreakdown: make(map[string]float64),
		EarningsHistory:  records,
	}

	recentCutoff := now.Add(-RecentWindow)
	for _, record := range records {
		summary.TotalEarnings += record.Amount
		summary.ServiceBreakdown[record.ServiceType] += record.Amount
		if !record.PaymentDate.Before(recentCutoff) {
			summary.RecentEarnings += record.Amount
		}
	}

	summary.Count = len(records)
	if summary.Count > 0 {
		summary.Average = summary.TotalEarnings / float64(summary.Count)
	}
	return summary
}
