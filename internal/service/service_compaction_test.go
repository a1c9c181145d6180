package service

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-exam-watermark/internal/logger"
	"github.com/MKhiriev/go-exam-watermark/models"
)

func TestCompactClosed(t *testing.T) {
	storages, m := newStoreMocks(t)
	svc := NewCompactionService(storages, logger.Nop())
	ctx := context.Background()

	m.attempts.EXPECT().ListCompactable(ctx, uint64(10)).Return([]models.Attempt{
		testAttempt(42, 3, "a1"), testAttempt(43, 4, "b2"), testAttempt(44, 5, "c3"),
	}, nil)
	m.snapshots.EXPECT().CompactSnapshots(ctx, int64(42)).Return(nil)
	m.snapshots.EXPECT().CompactSnapshots(ctx, int64(43)).Return(errors.New("disk full"))
	m.snapshots.EXPECT().CompactSnapshots(ctx, int64(44)).Return(nil)

	n, err := svc.CompactClosed(ctx, 10)
	assert.Equal(t, 2, n)
	assert.ErrorContains(t, err, "attempt 43")
}

func TestCompactClosed_ListError(t *testing.T) {
	storages, m := newStoreMocks(t)
	svc := NewCompactionService(storages, logger.Nop())
	ctx := context.Background()

	m.attempts.EXPECT().ListCompactable(ctx, uint64(0)).Return(nil, errors.New("db down"))

	n, err := svc.CompactClosed(ctx, 0)
	assert.Zero(t, n)
	assert.Error(t, err)
}

type spyCompactionService struct {
	calls atomic.Int64
	err   error
}

func (s *spyCompactionService) CompactClosed(_ context.Context, _ uint64) (int, error) {
	s.calls.Add(1)
	return 1, s.err
}

func TestCompactionJob_RunsOnTicker(t *testing.T) {
	spy := &spyCompactionService{}
	job := NewCompactionJob(spy, 10*time.Millisecond, logger.Nop())

	job.Start(context.Background())
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	assert.GreaterOrEqual(t, spy.calls.Load(), int64(3))
}

func TestCompactionJob_StopHaltsLoop(t *testing.T) {
	spy := &spyCompactionService{err: errors.New("partial failure")}
	job := NewCompactionJob(spy, 10*time.Millisecond, logger.Nop())

	job.Start(context.Background())
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	afterStop := spy.calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, afterStop, spy.calls.Load())
}

func TestCompactionJob_StopBeforeStart(t *testing.T) {
	job := NewCompactionJob(&spyCompactionService{}, 0, logger.Nop())
	assert.NotPanics(t, job.Stop)
}

func TestCompactionJob_ContextCancel(t *testing.T) {
	spy := &spyCompactionService{}
	job := NewCompactionJob(spy, 10*time.Millisecond, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	job.Start(ctx)
	cancel()

	done := make(chan struct{})
	go func() {
		job.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		require.Fail(t, "job did not stop after context cancel")
	}
}
