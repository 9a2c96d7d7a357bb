package server

import "context"

// Server defines the lifecycle contract of the directory server.
type Server interface {
	// RunServer serves until SIGTERM, SIGINT or SIGQUIT, then shuts down.
	RunServer()

	// Run serves until ctx is done, then shuts down gracefully.
	Run(ctx context.Context) error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
