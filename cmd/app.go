package cmd

import (
	"context"
	"time"

	"audiomass-server/core/config"
	"audiomass-server/core/loader"
	"audiomass-server/core/middleware/rayid"
	"audiomass-server/core/middleware/reqlog"
	"audiomass-server/core/server"
	"audiomass-server/core/storage"
	"audiomass-server/feature/preload"
	"audiomass-server/feature/static"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// newApp assembles the Fiber application for cfg. client overrides the storage client
// built from cfg.Storage and may be nil.
func newApp(ctx context.Context, cfg *config.Config, logg *zap.Logger, client storage.Client) (*fiber.App, error) {
	if client == nil && cfg.Storage.Enabled {
		c, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, err
		}
		client = c
	}

	svc := preload.NewService(cfg.Preload.URL, client, cfg.Storage.PresignExpiry(), logg)
	if svc.Presigned() {
		// Optional: a missing object is reported but the editor can still be served.
		timeout := time.Duration(cfg.Storage.TimeoutSeconds) * time.Second
		if timeout <= 0 {
			timeout = 30 * time.Second
		}
		verifyCtx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		if err := svc.Verify(verifyCtx); err != nil {
			logg.Warn("Preload object is not reachable", zap.Error(err))
		} else {
			logg.Info("Preload object verified", zap.String("url", cfg.Preload.URL))
		}
	}

	app := server.NewApp()

	// RayID must be first to trace everything
	app.Use(rayid.New())
	app.Use(reqlog.New(logg))

	mgr := loader.NewManager()
	mgr.Register(preload.NewFeature(svc))
	mgr.Register(static.NewFeature(cfg.Server, logg))

	if err := mgr.LoadAll(app); err != nil {
		return nil, err
	}
	logg.Debug("Features loaded", zap.Strings("features", mgr.Loaded()))

	return app, nil
}
