package workers

import (
	"context"

	"github.com/MKhiriev/go-exam-watermark/internal/config"
	"github.com/MKhiriev/go-exam-watermark/internal/logger"
	"github.com/MKhiriev/go-exam-watermark/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the server's background jobs: snapshot compaction of
// closed attempts.
func NewWorkers(services *service.Services, cfg config.Workers, log *logger.Logger) *Workers {
	compaction := service.NewCompactionJob(
		services.CompactionService,
		cfg.CompactInterval,
		&logger.Logger{Logger: log.With().Str("worker", "compaction").Logger()},
	)

	return &Workers{workers: []Worker{compaction}}
}

func (w *Workers) Start(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Start(ctx)
	}
}

// Stop stops the workers in reverse start order.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}
