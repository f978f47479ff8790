package static

import (
	"fmt"
	"os"

	"audiomass-server/core/server"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	cfg     server.Config
	handler *Handler
}

// NewFeature creates a new static file feature serving cfg.Root.
func NewFeature(cfg server.Config, logger *zap.Logger) *Feature {
	return &Feature{cfg: cfg, handler: NewHandler(cfg, logger)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "static"
}

// IsEnabled always returns true; static serving is the server's default behavior.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load checks the served directory and registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	info, err := os.Stat(f.cfg.Root)
	if err != nil {
		return fmt.Errorf("failed to access root directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("root %s is not a directory", f.cfg.Root)
	}
	f.handler.RegisterRoutes(app)
	return nil
}
