// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-exam-watermark/internal/logger"
	"github.com/MKhiriev/go-exam-watermark/internal/mock"
	"github.com/MKhiriev/go-exam-watermark/models"
)

func TestAnswerBuffer(t *testing.T) {
	b := NewAnswerBuffer()

	_, _, ok := b.Pending()
	assert.False(t, ok)

	b.Put("q1", "a")
	answers, version, ok := b.Pending()
	require.True(t, ok)
	assert.Equal(t, map[string]string{"q1": "a"}, answers)

	answers["q1"] = "mutated"
	assert.Equal(t, "a", b.All()["q1"])

	b.MarkSaved(version)
	_, _, ok = b.Pending()
	assert.False(t, ok)

	b.Put("q1", "a")
	_, _, ok = b.Pending()
	assert.False(t, ok, "same value is not a change")
}

func TestAnswerBuffer_LateSaveDoesNotRollBack(t *testing.T) {
	b := NewAnswerBuffer()
	b.Put("q1", "a")
	_, v1, _ := b.Pending()
	b.Put("q1", "ab")
	_, v2, _ := b.Pending()

	b.MarkSaved(v2)
	b.MarkSaved(v1)

	_, _, ok := b.Pending()
	assert.False(t, ok)
}

func TestClientAutosaveJob_Flush(t *testing.T) {
	exam := mock.NewMockClientExamService(gomock.NewController(t))
	answers := NewAnswerBuffer()
	job := NewClientAutosaveJob(exam, answers, logger.Nop())

	assert.NoError(t, job.Flush(context.Background()), "nothing pending")

	answers.Put("q1", "answer")
	exam.EXPECT().Save(gomock.Any(), map[string]string{"q1": "answer"}).
		Return(models.SnapshotResult{Stored: true}, nil)

	require.NoError(t, job.Flush(context.Background()))
	assert.NoError(t, job.Flush(context.Background()), "already saved")
}

func TestClientAutosaveJob_FlushKeepsPendingOnError(t *testing.T) {
	exam := mock.NewMockClientExamService(gomock.NewController(t))
	answers := NewAnswerBuffer()
	job := NewClientAutosaveJob(exam, answers, logger.Nop())

	answers.Put("q1", "answer")
	exam.EXPECT().Save(gomock.Any(), gomock.Any()).Return(models.SnapshotResult{}, ErrServerUnavailable)

	assert.ErrorIs(t, job.Flush(context.Background()), ErrServerUnavailable)
	_, _, ok := answers.Pending()
	assert.True(t, ok)
}

func TestClientAutosaveJob_StartSavesOnTick(t *testing.T) {
	exam := mock.NewMockClientExamService(gomock.NewController(t))
	answers := NewAnswerBuffer()
	job := NewClientAutosaveJob(exam, answers, logger.Nop())

	var calls atomic.Int64
	exam.EXPECT().Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, a map[string]string) (models.SnapshotResult, error) {
			calls.Add(1)
			return models.SnapshotResult{Stored: true}, nil
		}).AnyTimes()

	answers.Put("q1", "answer")
	job.Start(context.Background(), 5*time.Millisecond)

	require.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, 5*time.Millisecond)
	job.Stop()

	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, int64(1), calls.Load(), "no save without changes")
}

func TestClientAutosaveJob_ErrorsDoNotStopLoop(t *testing.T) {
	exam := mock.NewMockClientExamService(gomock.NewController(t))
	answers := NewAnswerBuffer()
	job := NewClientAutosaveJob(exam, answers, logger.Nop())

	var calls atomic.Int64
	exam.EXPECT().Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, a map[string]string) (models.SnapshotResult, error) {
			calls.Add(1)
			return models.SnapshotResult{}, errors.New("offline")
		}).AnyTimes()

	answers.Put("q1", "answer")
	job.Start(context.Background(), 5*time.Millisecond)
	defer job.Stop()

	require.Eventually(t, func() bool { return calls.Load() >= 3 }, time.Second, 5*time.Millisecond)
}

func TestClientAutosaveJob_StopBeforeStart(t *testing.T) {
	job := NewClientAutosaveJob(nil, NewAnswerBuffer(), logger.Nop())

	assert.NotPanics(t, func() { job.Stop() })
}

func TestClientAutosaveJob_ContextCancelStopsLoop(t *testing.T) {
	exam := mock.NewMockClientExamService(gomock.NewController(t))
	job := NewClientAutosaveJob(exam, NewAnswerBuffer(), logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	job.Start(ctx, time.Millisecond)
	cancel()

	done := make(chan struct{})
	go func() {
		job.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop did not return after cancel")
	}
}
