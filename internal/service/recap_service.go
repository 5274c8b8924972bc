package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/laporku/monthly-report-api/internal/dto"
	"github.com/laporku/monthly-report-api/internal/query"
	"github.com/laporku/monthly-report-api/internal/repository"
)

// RecapService produces the monthly narrative recap.
type RecapService interface {
	MonthlyRecap(ctx context.Context, month, year int) (dto.RecapResponse, error)
}

type recapService struct {
	repo   repository.ActivityRepository
	logger zerolog.Logger
	now    func() time.Time
}

// NewRecapService constructs the recap composer.
func NewRecapService(repo repository.ActivityRepository, logger zerolog.Logger) RecapService {
	return &recapService{
		repo:   repo,
		logger: logger.With().Str("component", "recap_service").Logger(),
		now:    time.Now,
	}
}

func (s *recapService) MonthlyRecap(ctx context.Context, month, year int) (dto.RecapResponse, error) {
	window, err := query.ResolveWindow(month, year, s.now())
	if err != nil {
		return dto.RecapResponse{}, err
	}
	filter := window.Filter()

	counts, err := s.repo.CategoryCounts(ctx, filter)
	if err != nil {
		return dto.RecapResponse{}, err
	}

	totals, err := s.repo.FinanceTotals(ctx, filter)
	if err != nil {
		return dto.RecapResponse{}, err
	}

	categories := make(map[string]int64, len(counts))
	for _, count := range counts {
		categories[count.Category] = count.Count
	}

	resolvedMonth := int(window.Start.Month())
	resolvedYear := window.Start.Year()

	return dto.RecapResponse{
		Month:      resolvedMonth,
		Year:       resolvedYear,
		Categories: categories,
		Income:     totals.Income,
		Expense:    totals.Expense,
		Summary:    composeSummary(resolvedMonth, resolvedYear, categories, totals.Income, totals.Expense),
	}, nil
}

// composeSummary renders the fixed recap sentence. Ties for the top
// category break alphabetically so the output is deterministic regardless
// of grouping order returned by the store.
func composeSummary(month, year int, categories map[string]int64, income, expense float64) string {
	var total int64
	for _, count := range categories {
		total += count
	}

	top := "N/A"
	if len(categories) > 0 {
		names := make([]string, 0, len(categories))
		for name := range categories {
			names = append(names, name)
		}
		sort.Strings(names)

		var best int64 = -1
		for _, name := range names {
			if categories[name] > best {
				best = categories[name]
				top = name
			}
		}
	}

	return fmt.Sprintf(
		"Bulan %d/%d: Total kegiatan %d. Kategori terbanyak: %s. Pemasukan %.2f, Pengeluaran %.2f.",
		month, year, total, top, income, expense,
	)
}
