package server

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-exam-watermark/internal/config"
	"github.com/MKhiriev/go-exam-watermark/internal/handler"
	"github.com/MKhiriev/go-exam-watermark/internal/logger"
)

type server struct {
	httpServer *httpServer
	workers    Workers
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, workers Workers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		workers:    workers,
		logger:     logger,
	}, nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	s.run(ctx)
}

func (s *server) Shutdown() {
	s.httpServer.Shutdown()

	if s.workers != nil {
		s.workers.Stop()
	}
}

// run serves until ctx is done and returns after shutdown completed.
func (s *server) run(ctx context.Context) {
	if s.workers != nil {
		s.logger.Info().Msg("starting background workers")
		s.workers.Start(ctx)
	}

	served := make(chan struct{})
	go func() {
		defer close(served)
		s.logger.Info().Str("address", s.httpServer.server.Addr).Msg("launching HTTP server")
		s.httpServer.RunServer()
	}()

	select {
	case <-ctx.Done():
	case <-served:
	}

	s.Shutdown()
	<-served
	s.logger.Info().Msg("server shut down gracefully")
}
