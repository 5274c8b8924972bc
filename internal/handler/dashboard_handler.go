package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/laporku/monthly-report-api/internal/query"
	"github.com/laporku/monthly-report-api/internal/service"
	"github.com/laporku/monthly-report-api/internal/utils"
)

// DashboardHandler exposes the aggregate dashboard endpoint.
type DashboardHandler struct {
	service service.DashboardService
	logger  zerolog.Logger
}

// NewDashboardHandler constructs a dashboard handler.
func NewDashboardHandler(service service.DashboardService, logger zerolog.Logger) *DashboardHandler {
	return &DashboardHandler{
		service: service,
		logger:  logger.With().Str("component", "dashboard_handler").Logger(),
	}
}

// Register wires the dashboard route.
func (h *DashboardHandler) Register(router fiber.Router) {
	router.Get("/dashboard", h.dashboard)
}

func (h *DashboardHandler) dashboard(c *fiber.Ctx) error {
	month, err := parseQueryInt(c, "month")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid month")
	}
	year, err := parseQueryInt(c, "year")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid year")
	}

	resp, err := h.service.GetDashboard(c.Context(), month, year)
	if err != nil {
		if errors.Is(err, query.ErrBadWindow) {
			return utils.SendError(c, fiber.StatusBadRequest, "invalid month")
		}
		h.logger.Error().Err(err).Msg("failed to build dashboard")
		return utils.SendError(c, fiber.StatusInternalServerError, storeErrorMessage(err))
	}

	return utils.SendSuccess(c, "dashboard retrieved", resp)
}
