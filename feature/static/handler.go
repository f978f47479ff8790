package static

import (
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"audiomass-server/core/logger"
	"audiomass-server/core/server"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"go.uber.org/zap"
)

// Handler serves the editor's files from a directory.
type Handler struct {
	cfg    server.Config
	logger *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(cfg server.Config, logger *zap.Logger) *Handler {
	return &Handler{cfg: cfg, logger: logger}
}

// RegisterRoutes installs the path guard and the file server.
// Files are opened on every request so edits under the root are visible immediately.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Use(h.HandlePath)
	app.Use(filesystem.New(filesystem.Config{
		Root:   http.Dir(h.cfg.Root),
		Index:  "/" + strings.TrimPrefix(h.cfg.Index, "/"),
		Browse: h.cfg.Browse,
	}))
}

// HandlePath rejects requests whose decoded path has a ".." segment, and answers 404 for
// undecodable paths and for a trailing slash after a regular file.
// The raw request target is inspected because Fiber hands routes an already normalized path.
func (h *Handler) HandlePath(c *fiber.Ctx) error {
	raw := c.OriginalURL()
	if i := strings.IndexByte(raw, '?'); i >= 0 {
		raw = raw[:i]
	}

	p, err := url.PathUnescape(raw)
	if err != nil {
		return fiber.ErrNotFound
	}

	if escapesRoot(p) {
		logger.WithRayID(h.logger, c).Warn("Rejected path outside served directory", zap.String("target", c.OriginalURL()))
		return fiber.ErrForbidden
	}

	if len(p) > 1 && strings.HasSuffix(p, "/") {
		info, err := os.Stat(filepath.Join(h.cfg.Root, filepath.FromSlash(p)))
		if err == nil && !info.IsDir() {
			return fiber.ErrNotFound
		}
	}
	return c.Next()
}

func escapesRoot(p string) bool {
	segments := strings.FieldsFunc(p, func(r rune) bool {
		return r == '/' || r == '\\'
	})
	for _, seg := range segments {
		if seg == ".." {
			return true
		}
	}
	return false
}
