package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/laporku/monthly-report-api/internal/dto"
	"github.com/laporku/monthly-report-api/internal/query"
	"github.com/laporku/monthly-report-api/internal/repository"
)

// DashboardService produces aggregated counts and finance totals per month window.
type DashboardService interface {
	GetDashboard(ctx context.Context, month, year int) (dto.DashboardResponse, error)
}

type dashboardService struct {
	repo     repository.ActivityRepository
	cache    *redis.Client
	cacheTTL time.Duration
	logger   zerolog.Logger
	now      func() time.Time
}

// NewDashboardService builds the dashboard aggregator. The cache client may
// be nil, in which case every call hits the store.
func NewDashboardService(repo repository.ActivityRepository, cache *redis.Client, ttl time.Duration, logger zerolog.Logger) DashboardService {
	return &dashboardService{
		repo:     repo,
		cache:    cache,
		cacheTTL: ttl,
		logger:   logger.With().Str("component", "dashboard_service").Logger(),
		now:      time.Now,
	}
}

func (s *dashboardService) GetDashboard(ctx context.Context, month, year int) (dto.DashboardResponse, error) {
	window, err := query.ResolveWindow(month, year, s.now())
	if err != nil {
		return dto.DashboardResponse{}, err
	}

	cacheKey := fmt.Sprintf("dashboard:%04d-%02d", window.Start.Year(), int(window.Start.Month()))

	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, cacheKey).Result(); err == nil {
			var response dto.DashboardResponse
			if unmarshalErr := json.Unmarshal([]byte(cached), &response); unmarshalErr == nil {
				s.logger.Debug().Str("key", cacheKey).Msg("dashboard cache hit")
				return response, nil
			}
		} else if err != redis.Nil {
			s.logger.Warn().Err(err).Msg("failed to read dashboard cache")
		}
	}

	response, err := s.aggregate(ctx, window)
	if err != nil {
		return dto.DashboardResponse{}, err
	}

	if s.cache != nil {
		payload, err := json.Marshal(response)
		if err == nil {
			if err := s.cache.Set(ctx, cacheKey, payload, s.cacheTTL).Err(); err != nil {
				s.logger.Warn().Err(err).Msg("failed to store dashboard cache")
			}
		}
	}

	return response, nil
}

func (s *dashboardService) aggregate(ctx context.Context, window query.Window) (dto.DashboardResponse, error) {
	filter := window.Filter()

	counts, err := s.repo.CategoryCounts(ctx, filter)
	if err != nil {
		return dto.DashboardResponse{}, err
	}

	totals, err := s.repo.FinanceTotals(ctx, filter)
	if err != nil {
		return dto.DashboardResponse{}, err
	}

	// Total is counted independently of the grouping; for well-formed data
	// it equals the sum of the per-category buckets.
	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return dto.DashboardResponse{}, err
	}

	perCategory := make(map[string]int64, len(counts))
	for _, count := range counts {
		perCategory[count.Category] = count.Count
	}

	return dto.DashboardResponse{
		TotalActivities: total,
		TotalIncome:     totals.Income,
		TotalExpense:    totals.Expense,
		PerCategory:     perCategory,
	}, nil
}
