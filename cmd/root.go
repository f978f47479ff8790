package cmd

import (
	"fmt"
	"os"

	"audiomass-server/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command; it runs the server.
var RootCmd = &cobra.Command{
	Use:   "audiomass-server",
	Short: "Serve the AudioMass audio editor",
	Long: `Serves the AudioMass web editor from the current directory.
When --url is given, the root page redirects to the editor with that audio preloaded.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Use the application's standard logger for error reporting.
		// Console format with debug level gives readable ISO8601 timestamps on a terminal.
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			// Absolute fallback if logger creation fails (rare)
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func init() {
	RootCmd.Flags().Int("port", 5055, "Port to serve on")
	RootCmd.Flags().String("url", "", "Audio URL to preload on startup")
	RootCmd.RunE = runServer
}
