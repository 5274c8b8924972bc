package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/laporku/monthly-report-api/internal/models"
)

func TestMonthlyRecap(t *testing.T) {
	store := &fakeStore{activities: marchActivities()}
	svc := NewRecapService(store, testLogger())

	resp, err := svc.MonthlyRecap(context.Background(), 3, 2024)
	require.NoError(t, err)

	require.Equal(t, 3, resp.Month)
	require.Equal(t, 2024, resp.Year)
	require.Equal(t, map[string]int64{"administrasi": 1, "akademik": 1}, resp.Categories)
	require.Equal(t, float64(100), resp.Income)
	require.Equal(t, float64(50000), resp.Expense)
	require.Equal(t,
		"Bulan 3/2024: Total kegiatan 2. Kategori terbanyak: administrasi. Pemasukan 100.00, Pengeluaran 50000.00.",
		resp.Summary)
}

func TestMonthlyRecapEmptyWindow(t *testing.T) {
	svc := NewRecapService(&fakeStore{}, testLogger())

	resp, err := svc.MonthlyRecap(context.Background(), 1, 2024)
	require.NoError(t, err)
	require.Equal(t,
		"Bulan 1/2024: Total kegiatan 0. Kategori terbanyak: N/A. Pemasukan 0.00, Pengeluaran 0.00.",
		resp.Summary)
}

func TestMonthlyRecapUncategorizedBucketsUnknown(t *testing.T) {
	store := &fakeStore{activities: []models.Activity{
		{Date: time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)},
		{Date: time.Date(2024, time.May, 2, 0, 0, 0, 0, time.UTC)},
	}}
	svc := NewRecapService(store, testLogger())

	resp, err := svc.MonthlyRecap(context.Background(), 5, 2024)
	require.NoError(t, err)
	require.Equal(t, map[string]int64{"unknown": 2}, resp.Categories)
}

func TestComposeSummaryTieBreaksAlphabetically(t *testing.T) {
	summary := composeSummary(6, 2024, map[string]int64{
		"sosial":   2,
		"akademik": 2,
		"finance":  1,
	}, 0, 0)

	require.Equal(t,
		"Bulan 6/2024: Total kegiatan 5. Kategori terbanyak: akademik. Pemasukan 0.00, Pengeluaran 0.00.",
		summary)
}

func TestComposeSummaryTwoDecimals(t *testing.T) {
	summary := composeSummary(2, 2024, map[string]int64{"keuangan": 1}, 1234.5, 0.125)
	require.Contains(t, summary, "Pemasukan 1234.50")
	require.Contains(t, summary, "Pengeluaran 0.12")
}
