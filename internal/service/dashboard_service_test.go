package service

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/laporku/monthly-report-api/internal/models"
	"github.com/laporku/monthly-report-api/internal/query"
)

func marchActivities() []models.Activity {
	return []models.Activity{
		{
			Date:     time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC),
			Name:     "Rapat",
			Category: "administrasi",
			Duration: 2,
			Expense:  50000,
		},
		{
			Date:     time.Date(2024, time.March, 12, 0, 0, 0, 0, time.UTC),
			Name:     "Kelas",
			Category: "akademik",
			Duration: 3,
			Income:   100,
		},
		{
			Date:     time.Date(2024, time.April, 2, 0, 0, 0, 0, time.UTC),
			Name:     "Bakti sosial",
			Category: "sosial",
			Duration: 4,
			Income:   999,
		},
	}
}

func TestDashboardAggregates(t *testing.T) {
	store := &fakeStore{activities: marchActivities()}
	svc := NewDashboardService(store, nil, time.Minute, testLogger())

	resp, err := svc.GetDashboard(context.Background(), 3, 2024)
	require.NoError(t, err)

	require.Equal(t, int64(2), resp.TotalActivities)
	require.Equal(t, float64(100), resp.TotalIncome)
	require.Equal(t, float64(50000), resp.TotalExpense)
	require.Equal(t, map[string]int64{"administrasi": 1, "akademik": 1}, resp.PerCategory)

	var sum int64
	for _, count := range resp.PerCategory {
		sum += count
	}
	require.Equal(t, resp.TotalActivities, sum)
}

func TestDashboardMissingIncomeContributesZero(t *testing.T) {
	store := &fakeStore{activities: []models.Activity{
		{Date: time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), Category: "a", Income: 100},
		{Date: time.Date(2024, time.March, 2, 0, 0, 0, 0, time.UTC), Category: "a"},
	}}
	svc := NewDashboardService(store, nil, time.Minute, testLogger())

	resp, err := svc.GetDashboard(context.Background(), 3, 2024)
	require.NoError(t, err)
	require.Equal(t, float64(100), resp.TotalIncome)
	require.Equal(t, float64(0), resp.TotalExpense)
}

func TestDashboardBadMonth(t *testing.T) {
	svc := NewDashboardService(&fakeStore{}, nil, time.Minute, testLogger())

	_, err := svc.GetDashboard(context.Background(), 13, 2024)
	require.ErrorIs(t, err, query.ErrBadWindow)
}

func TestDashboardCaches(t *testing.T) {
	server := miniredis.RunT(t)
	cache := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { cache.Close() })

	store := &fakeStore{activities: marchActivities()}
	svc := NewDashboardService(store, cache, time.Minute, testLogger())

	first, err := svc.GetDashboard(context.Background(), 3, 2024)
	require.NoError(t, err)

	// New writes are invisible until the cache entry expires.
	store.activities = append(store.activities, models.Activity{
		Date:     time.Date(2024, time.March, 20, 0, 0, 0, 0, time.UTC),
		Category: "sosial",
	})

	second, err := svc.GetDashboard(context.Background(), 3, 2024)
	require.NoError(t, err)
	require.Equal(t, first, second)

	server.FastForward(2 * time.Minute)

	third, err := svc.GetDashboard(context.Background(), 3, 2024)
	require.NoError(t, err)
	require.Equal(t, int64(3), third.TotalActivities)
}
