package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/laporku/monthly-report-api/internal/storage"
	"github.com/laporku/monthly-report-api/internal/utils"
)

// FileHandler streams stored attachment blobs back by name.
type FileHandler struct {
	storage storage.BlobStorage
	logger  zerolog.Logger
}

// NewFileHandler constructs a file handler.
func NewFileHandler(blobs storage.BlobStorage, logger zerolog.Logger) *FileHandler {
	return &FileHandler{
		storage: blobs,
		logger:  logger.With().Str("component", "file_handler").Logger(),
	}
}

// Register wires the file serving route.
func (h *FileHandler) Register(router fiber.Router) {
	router.Get("/:name", h.serve)
}

func (h *FileHandler) serve(c *fiber.Ctx) error {
	name := c.Params("name")
	if !h.storage.Exists(name) {
		return utils.SendError(c, fiber.StatusNotFound, "file not found")
	}
	return c.SendFile(h.storage.Path(name))
}
