package server

import (
	"errors"
	"fmt"
	"strconv"
)

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the TCP port the server listens on, across all interfaces.
	Port int `mapstructure:"port" default:"5055" flag:"port"`
	// Root is the directory whose files are served.
	Root string `mapstructure:"root" default:"."`
	// Index is the file served for a directory request.
	Index string `mapstructure:"index" default:"index.html"`
	// Browse enables directory listings for directories without an index file.
	Browse bool `mapstructure:"browse" default:"true"`
}

// Validate checks that the configuration can be used to start a server.
func (c Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d: must be between 1 and 65535", c.Port)
	}
	if c.Root == "" {
		return errors.New("root directory must not be empty")
	}
	return nil
}

// Addr returns the listen address for all local interfaces.
func (c Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}

// PublicURL returns the address printed for humans on startup.
func (c Config) PublicURL() string {
	return "http://localhost:" + strconv.Itoa(c.Port)
}
