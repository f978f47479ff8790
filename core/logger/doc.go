// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance for both interactive use (console encoding with
// colored levels) and log shipping (json encoding), and integrates with the Fiber web
// framework.
//
// # Context Awareness
//
// The WithRayID helper extracts the RayID set by the rayid middleware from a Fiber context
// and attaches it to the log entry, so every line logged for a request can be correlated.
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log.Info("Serving audio editor")
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Error("Presign failed", zap.Error(err))
package logger
