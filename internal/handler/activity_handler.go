package handler

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/laporku/monthly-report-api/internal/docstore"
	"github.com/laporku/monthly-report-api/internal/dto"
	"github.com/laporku/monthly-report-api/internal/query"
	"github.com/laporku/monthly-report-api/internal/repository"
	"github.com/laporku/monthly-report-api/internal/service"
	"github.com/laporku/monthly-report-api/internal/utils"
)

// ActivityHandler exposes activity CRUD and listing endpoints.
type ActivityHandler struct {
	service service.ActivityService
	logger  zerolog.Logger
}

// NewActivityHandler constructs an activity handler.
func NewActivityHandler(service service.ActivityService, logger zerolog.Logger) *ActivityHandler {
	return &ActivityHandler{
		service: service,
		logger:  logger.With().Str("component", "activity_handler").Logger(),
	}
}

// Register wires activity routes.
func (h *ActivityHandler) Register(router fiber.Router) {
	router.Post("", h.create)
	router.Get("", h.list)
	router.Get("/:id", h.get)
	router.Put("/:id", h.update)
	router.Delete("/:id", h.delete)
}

func (h *ActivityHandler) create(c *fiber.Ctx) error {
	var req dto.CreateActivityRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	resp, err := h.service.Create(c.Context(), req)
	if err != nil {
		if isValidationError(err) {
			return utils.SendError(c, fiber.StatusBadRequest, validationMessage(err))
		}
		if errors.Is(err, service.ErrInvalidDate) {
			return utils.SendError(c, fiber.StatusBadRequest, "invalid date")
		}
		h.logger.Error().Err(err).Msg("failed to create activity")
		return utils.SendError(c, fiber.StatusInternalServerError, storeErrorMessage(err))
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "activity created", resp)
}

func (h *ActivityHandler) list(c *fiber.Ctx) error {
	month, err := parseQueryInt(c, "month")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid month")
	}
	year, err := parseQueryInt(c, "year")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid year")
	}

	params := query.ActivityFilterParams{
		Month:    month,
		Year:     year,
		Category: strings.TrimSpace(c.Query("category")),
		Search:   c.Query("search"),
	}

	activities, err := h.service.List(c.Context(), params)
	if err != nil {
		if errors.Is(err, query.ErrBadWindow) {
			return utils.SendError(c, fiber.StatusBadRequest, "invalid month")
		}
		h.logger.Error().Err(err).Msg("failed to list activities")
		return utils.SendError(c, fiber.StatusInternalServerError, storeErrorMessage(err))
	}

	return utils.SendSuccess(c, "activities retrieved", activities)
}

func (h *ActivityHandler) get(c *fiber.Ctx) error {
	activity, err := h.service.Get(c.Context(), c.Params("id"))
	if err != nil {
		switch {
		case errors.Is(err, docstore.ErrInvalidID):
			return utils.SendError(c, fiber.StatusBadRequest, "invalid id format")
		case errors.Is(err, repository.ErrNotFound):
			return utils.SendError(c, fiber.StatusNotFound, "activity not found")
		default:
			h.logger.Error().Err(err).Msg("failed to get activity")
			return utils.SendError(c, fiber.StatusInternalServerError, storeErrorMessage(err))
		}
	}

	return utils.SendSuccess(c, "activity retrieved", activity)
}

func (h *ActivityHandler) update(c *fiber.Ctx) error {
	var req dto.UpdateActivityRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	resp, err := h.service.Update(c.Context(), c.Params("id"), req)
	if err != nil {
		switch {
		case errors.Is(err, docstore.ErrInvalidID):
			return utils.SendError(c, fiber.StatusBadRequest, "invalid id format")
		case isValidationError(err):
			return utils.SendError(c, fiber.StatusBadRequest, validationMessage(err))
		case errors.Is(err, service.ErrInvalidDate):
			return utils.SendError(c, fiber.StatusBadRequest, "invalid date")
		default:
			h.logger.Error().Err(err).Msg("failed to update activity")
			return utils.SendError(c, fiber.StatusInternalServerError, storeErrorMessage(err))
		}
	}

	return utils.SendSuccess(c, "activity update processed", resp)
}

func (h *ActivityHandler) delete(c *fiber.Ctx) error {
	resp, err := h.service.Delete(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, docstore.ErrInvalidID) {
			return utils.SendError(c, fiber.StatusBadRequest, "invalid id format")
		}
		h.logger.Error().Err(err).Msg("failed to delete activity")
		return utils.SendError(c, fiber.StatusInternalServerError, storeErrorMessage(err))
	}

	return utils.SendSuccess(c, "activity delete processed", resp)
}
