package cmd

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"audiomass-server/core/config"
	"audiomass-server/core/logger"
	"audiomass-server/core/server"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func runServer(cmd *cobra.Command, args []string) error {
	// 1. Load Configuration
	cfg, err := config.LoadConfig(".", cmd.Flags())
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// 2. Initialize Logger
	logg, err := logger.New(&cfg.Log)
	if err != nil {
		log.Printf("Failed to initialize logger: %v", err)
		return err
	}
	defer logg.Sync()
	zap.ReplaceGlobals(logg)

	// 3. Build the application
	app, err := newApp(cmd.Context(), cfg, logg, nil)
	if err != nil {
		return err
	}

	// 4. Bind before announcing, so an occupied port fails the command
	ln, err := server.Listen(cfg.Server.Addr())
	if err != nil {
		return err
	}

	logg.Info("Serving AudioMass",
		zap.String("address", cfg.Server.PublicURL()),
		zap.String("root", cfg.Server.Root),
	)
	if cfg.Preload.URL != "" {
		logg.Info("Will preload audio", zap.String("url", cfg.Preload.URL))
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- app.Listener(ln)
	}()

	// 5. Graceful Shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(c)

	select {
	case <-c:
		logg.Info("Shutting down server...")
		return app.Shutdown()
	case err := <-serveErr:
		return fmt.Errorf("server stopped: %w", err)
	}
}
