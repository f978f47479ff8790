package server

import (
	"fmt"
	"net"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// BindError reports that the listening socket could not be acquired.
type BindError struct {
	Addr string
	Err  error
}

func (e *BindError) Error() string {
	return fmt.Sprintf("failed to bind %s: %v", e.Addr, e.Err)
}

func (e *BindError) Unwrap() error {
	return e.Err
}

// Listen binds a TCP listener for addr. Failures are returned as *BindError.
func Listen(addr string) (net.Listener, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, &BindError{Addr: addr, Err: err}
	}
	return ln, nil
}

// NewApp creates the Fiber application with the settings shared by every entry point.
func NewApp() *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true, // startup is logged through zap
		AppName:               "audiomass-server",
		UnescapePath:          true, // the filesystem middleware opens c.Path() as is
	})
	app.Use(recover.New())
	return app
}
