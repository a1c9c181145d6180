package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-exam-watermark/internal/logger"
)

const (
	defaultCompactInterval = 10 * time.Minute
	compactBatchSize       = 100
)

type compactionJob struct {
	service  CompactionService
	interval time.Duration
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewCompactionJob creates a job that calls service.CompactClosed on a
// ticker. The job is idle until Start is called. A non-positive interval
// defaults to 10 minutes.
func NewCompactionJob(service CompactionService, interval time.Duration, logger *logger.Logger) CompactionJob {
	if interval <= 0 {
		interval = defaultCompactInterval
	}
	return &compactionJob{service: service, interval: interval, logger: logger}
}

// Start stops any previously running loop, then launches a goroutine that
// compacts on every tick until ctx is cancelled or Stop is called.
func (j *compactionJob) Start(ctx context.Context) {
	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(j.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				n, err := j.service.CompactClosed(jobCtx, compactBatchSize)
				if err != nil {
					j.logger.Err(err).Int("compacted", n).Msg("compaction run finished with errors")
					continue
				}
				if n > 0 {
					j.logger.Info().Int("compacted", n).Msg("compaction run finished")
				}
			}
		}
	}()
}

// Stop cancels the loop and waits for it to exit. Safe to call when the job
// is not running.
func (j *compactionJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
