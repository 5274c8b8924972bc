package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/laporku/monthly-report-api/internal/dto"
	"github.com/laporku/monthly-report-api/internal/query"
)

var csvHeader = []string{
	"Tanggal", "Nama", "Kategori", "Durasi", "Hasil",
	"Catatan", "Pemasukan", "Pengeluaran", "Kategori Keuangan",
}

// ExportService renders monthly listings into flat download formats.
type ExportService interface {
	ExportCSV(ctx context.Context, month, year int) (dto.ExportFile, error)
	ExportReport(ctx context.Context, month, year int) (dto.ExportFile, error)
}

type exportService struct {
	activities ActivityService
	recaps     RecapService
	logger     zerolog.Logger
	now        func() time.Time
}

// NewExportService constructs the export renderer on top of the listing and
// recap services.
func NewExportService(activities ActivityService, recaps RecapService, logger zerolog.Logger) ExportService {
	return &exportService{
		activities: activities,
		recaps:     recaps,
		logger:     logger.With().Str("component", "export_service").Logger(),
		now:        time.Now,
	}
}

func (s *exportService) ExportCSV(ctx context.Context, month, year int) (dto.ExportFile, error) {
	records, err := s.activities.List(ctx, query.ActivityFilterParams{Month: month, Year: year})
	if err != nil {
		return dto.ExportFile{}, err
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	if err := writer.Write(csvHeader); err != nil {
		return dto.ExportFile{}, fmt.Errorf("write csv header: %w", err)
	}

	for _, record := range records {
		row := []string{
			fieldText(record, "date"),
			fieldText(record, "name"),
			fieldText(record, "category"),
			fieldText(record, "duration"),
			fieldText(record, "result"),
			fieldText(record, "notes"),
			fieldText(record, "income"),
			fieldText(record, "expense"),
			fieldText(record, "finance_category"),
		}
		if err := writer.Write(row); err != nil {
			return dto.ExportFile{}, fmt.Errorf("write csv row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return dto.ExportFile{}, fmt.Errorf("flush csv: %w", err)
	}

	return dto.ExportFile{
		Filename:    s.exportFilename(month, year, "csv"),
		ContentType: "text/csv",
		Content:     buf.Bytes(),
	}, nil
}

func (s *exportService) ExportReport(ctx context.Context, month, year int) (dto.ExportFile, error) {
	recap, err := s.recaps.MonthlyRecap(ctx, month, year)
	if err != nil {
		return dto.ExportFile{}, err
	}

	records, err := s.activities.List(ctx, query.ActivityFilterParams{Month: month, Year: year})
	if err != nil {
		return dto.ExportFile{}, err
	}

	lines := []string{
		"Laporan Bulanan",
		fmt.Sprintf("Bulan: %d/%d", recap.Month, recap.Year),
		recap.Summary,
		"",
		"Rincian Kegiatan:",
	}
	for _, record := range records {
		lines = append(lines, fmt.Sprintf("- %s | %s | %s | %s jam",
			fieldText(record, "date"),
			fieldText(record, "name"),
			fieldText(record, "category"),
			fieldText(record, "duration"),
		))
	}

	return dto.ExportFile{
		Filename:    s.exportFilename(month, year, "txt"),
		ContentType: "text/plain",
		Content:     []byte(strings.Join(lines, "\n")),
	}, nil
}

func (s *exportService) exportFilename(month, year int, extension string) string {
	now := s.now().UTC()
	if year == 0 {
		year = now.Year()
	}
	if month == 0 {
		month = int(now.Month())
	}
	return fmt.Sprintf("laporan_%d_%d.%s", year, month, extension)
}

// fieldText renders a serialized wire value for a flat export; missing
// fields render empty.
func fieldText(record map[string]any, key string) string {
	value, ok := record[key]
	if !ok || value == nil {
		return ""
	}

	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case int64:
		return strconv.FormatInt(v, 10)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int:
		return strconv.Itoa(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
