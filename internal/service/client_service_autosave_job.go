package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-exam-watermark/internal/logger"
)

const defaultAutosaveInterval = 30 * time.Second

type clientAutosaveJob struct {
	exam    ClientExamService
	answers *AnswerBuffer
	logger  *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientAutosaveJob creates a job that saves the pending answers of
// answers through exam. The job is idle until Start is called.
func NewClientAutosaveJob(exam ClientExamService, answers *AnswerBuffer, logger *logger.Logger) ClientAutosaveJob {
	return &clientAutosaveJob{exam: exam, answers: answers, logger: logger}
}

func (j *clientAutosaveJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultAutosaveInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if err := j.Flush(jobCtx); err != nil {
					j.logger.Warn().Err(err).Msg("autosave failed")
				}
			}
		}
	}()
}

func (j *clientAutosaveJob) Flush(ctx context.Context) error {
	answers, version, ok := j.answers.Pending()
	if !ok {
		return nil
	}

	if _, err := j.exam.Save(ctx, answers); err != nil {
		return err
	}
	j.answers.MarkSaved(version)
	return nil
}

// Stop is safe to call when the job is not running.
func (j *clientAutosaveJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
