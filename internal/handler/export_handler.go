package handler

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/laporku/monthly-report-api/internal/dto"
	"github.com/laporku/monthly-report-api/internal/query"
	"github.com/laporku/monthly-report-api/internal/service"
	"github.com/laporku/monthly-report-api/internal/utils"
)

// ExportHandler serves monthly listings as flat-file attachments.
type ExportHandler struct {
	service service.ExportService
	logger  zerolog.Logger
}

// NewExportHandler constructs an export handler.
func NewExportHandler(service service.ExportService, logger zerolog.Logger) *ExportHandler {
	return &ExportHandler{
		service: service,
		logger:  logger.With().Str("component", "export_handler").Logger(),
	}
}

// Register wires export routes. The pdf route serves a plain-text report.
func (h *ExportHandler) Register(router fiber.Router) {
	router.Get("/csv", h.exportWith(func(ctx context.Context, s service.ExportService, month, year int) (dto.ExportFile, error) {
		return s.ExportCSV(ctx, month, year)
	}))
	router.Get("/pdf", h.exportWith(func(ctx context.Context, s service.ExportService, month, year int) (dto.ExportFile, error) {
		return s.ExportReport(ctx, month, year)
	}))
}

func (h *ExportHandler) exportWith(render func(context.Context, service.ExportService, int, int) (dto.ExportFile, error)) fiber.Handler {
	return func(c *fiber.Ctx) error {
		month, err := parseQueryInt(c, "month")
		if err != nil {
			return utils.SendError(c, fiber.StatusBadRequest, "invalid month")
		}
		year, err := parseQueryInt(c, "year")
		if err != nil {
			return utils.SendError(c, fiber.StatusBadRequest, "invalid year")
		}

		file, err := render(c.Context(), h.service, month, year)
		if err != nil {
			if errors.Is(err, query.ErrBadWindow) {
				return utils.SendError(c, fiber.StatusBadRequest, "invalid month")
			}
			h.logger.Error().Err(err).Msg("failed to render export")
			return utils.SendError(c, fiber.StatusInternalServerError, storeErrorMessage(err))
		}

		c.Set(fiber.HeaderContentType, file.ContentType)
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s", file.Filename))
		return c.Send(file.Content)
	}
}
