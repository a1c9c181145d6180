package server

import "context"

// Server is the lifecycle of the watermark server. RunServer blocks until
// shutdown was requested; Shutdown may also be called directly.
type Server interface {
	RunServer()
	Shutdown()
}

// Workers are background jobs started alongside the HTTP server.
type Workers interface {
	Start(ctx context.Context)
	Stop()
}
