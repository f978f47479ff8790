package preload

import (
	"audiomass-server/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles the root request redirect.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes installs the redirect in front of every later route.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Use(h.HandleRoot)
}

// HandleRoot redirects GET requests whose raw target is exactly "/" to the editor page
// with the preload URL attached. Anything else, including "/?x=1", passes through.
func (h *Handler) HandleRoot(c *fiber.Ctx) error {
	if c.Method() != fiber.MethodGet || c.OriginalURL() != "/" {
		return c.Next()
	}

	location, err := h.service.Location(c.Context())
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Failed to resolve preload URL", zap.Error(err))
		return fiber.NewError(fiber.StatusBadGateway, "failed to resolve preload url")
	}

	return c.Redirect(location, fiber.StatusFound)
}
