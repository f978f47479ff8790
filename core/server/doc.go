// Package server holds the HTTP server configuration and the pieces needed to start it.
//
// # Configuration
//
// The Config struct defines the listen port (default 5055), the directory being served,
// the index file name, and whether directory listings are enabled.
//
// # Startup
//
// Listen binds the TCP socket up front so that an occupied port or a missing permission
// surfaces synchronously as a *BindError. NewApp builds the Fiber application; the caller
// registers middleware and features on it and hands the listener to app.Listener.
package server
