package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/laporku/monthly-report-api/internal/dto"
	"github.com/laporku/monthly-report-api/internal/query"
	"github.com/laporku/monthly-report-api/internal/service"
	"github.com/laporku/monthly-report-api/internal/utils"
)

// RecapHandler exposes the monthly narrative recap endpoint.
type RecapHandler struct {
	service service.RecapService
	logger  zerolog.Logger
}

// NewRecapHandler constructs a recap handler.
func NewRecapHandler(service service.RecapService, logger zerolog.Logger) *RecapHandler {
	return &RecapHandler{
		service: service,
		logger:  logger.With().Str("component", "recap_handler").Logger(),
	}
}

// Register wires the recap route.
func (h *RecapHandler) Register(router fiber.Router) {
	router.Post("/recap", h.recap)
}

func (h *RecapHandler) recap(c *fiber.Ctx) error {
	var req dto.RecapRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	resp, err := h.service.MonthlyRecap(c.Context(), req.Month, req.Year)
	if err != nil {
		if errors.Is(err, query.ErrBadWindow) {
			return utils.SendError(c, fiber.StatusBadRequest, "invalid month")
		}
		h.logger.Error().Err(err).Msg("failed to compose recap")
		return utils.SendError(c, fiber.StatusInternalServerError, storeErrorMessage(err))
	}

	return utils.SendSuccess(c, "recap composed", resp)
}
