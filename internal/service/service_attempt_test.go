package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-exam-watermark/internal/logger"
	"github.com/MKhiriev/go-exam-watermark/internal/store"
	"github.com/MKhiriev/go-exam-watermark/internal/validators"
	"github.com/MKhiriev/go-exam-watermark/internal/watermark"
	"github.com/MKhiriev/go-exam-watermark/models"
)

func newTestAttemptService(t *testing.T) (*attemptService, storeMocks) {
	t.Helper()
	storages, m := newStoreMocks(t)

	svc := NewAttemptService(storages, logger.Nop()).(*attemptService)
	svc.now = func() time.Time { return fixedNow }
	svc.newToken = func() (watermark.Token, error) { return "a1b2c3d4e5f60708", nil }

	return svc, m
}

func TestAttemptService_Start(t *testing.T) {
	svc, m := newTestAttemptService(t)
	ctx := context.Background()

	gomock.InOrder(
		m.exams.EXPECT().IsEnabled(ctx, int64(7)).Return(true, nil),
		m.attempts.EXPECT().CreateAttempt(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, a models.Attempt) (models.Attempt, error) {
				assert.Equal(t, "a1b2c3d4e5f60708", a.Token)
				assert.Equal(t, models.AttemptInProgress, a.State)
				assert.Equal(t, fixedNow, a.CreatedAt)
				a.ID = 1
				return a, nil
			},
		),
	)

	created, err := svc.Start(ctx, models.Attempt{ExamID: 7, AttemptID: 42, UserID: 3, UserName: "Ada"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
}

func TestAttemptService_Start_Disabled(t *testing.T) {
	svc, m := newTestAttemptService(t)
	ctx := context.Background()

	m.exams.EXPECT().IsEnabled(ctx, int64(7)).Return(false, nil)

	_, err := svc.Start(ctx, models.Attempt{ExamID: 7, AttemptID: 42, UserID: 3})
	assert.ErrorIs(t, err, ErrWatermarkDisabled)
}

func TestAttemptService_Start_InvalidData(t *testing.T) {
	svc, _ := newTestAttemptService(t)

	_, err := svc.Start(context.Background(), models.Attempt{ExamID: 7})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrInvalidAttemptID)
}

func TestAttemptService_Start_AlreadyRegistered(t *testing.T) {
	svc, m := newTestAttemptService(t)
	ctx := context.Background()

	m.exams.EXPECT().IsEnabled(ctx, int64(7)).Return(true, nil)
	m.attempts.EXPECT().CreateAttempt(ctx, gomock.Any()).Return(models.Attempt{}, store.ErrAttemptAlreadyExists)

	_, err := svc.Start(ctx, models.Attempt{ExamID: 7, AttemptID: 42, UserID: 3})
	assert.ErrorIs(t, err, store.ErrAttemptAlreadyExists)
}

func TestAttemptService_Close(t *testing.T) {
	svc, m := newTestAttemptService(t)
	ctx := context.Background()

	gomock.InOrder(
		m.attempts.EXPECT().FindAttemptByAttemptID(ctx, int64(42)).Return(testAttempt(42, 3, "a1b2"), nil),
		m.attempts.EXPECT().UpdateState(ctx, int64(42), models.AttemptFinished).Return(nil),
	)
	m.attempts.EXPECT().FindAttemptByAttemptID(ctx, int64(43)).Return(models.Attempt{}, store.ErrAttemptNotFound)

	require.NoError(t, svc.Finish(ctx, 3, 42))
	assert.ErrorIs(t, svc.Abandon(ctx, 3, 43), store.ErrAttemptNotFound)
}

func TestAttemptService_Close_OtherUser(t *testing.T) {
	svc, m := newTestAttemptService(t)
	ctx := context.Background()

	m.attempts.EXPECT().FindAttemptByAttemptID(ctx, int64(42)).Return(testAttempt(42, 3, "a1b2"), nil).Times(2)
	m.attempts.EXPECT().UpdateState(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	assert.ErrorIs(t, svc.Finish(ctx, 99, 42), ErrAttemptNotOwned)
	assert.ErrorIs(t, svc.Abandon(ctx, 99, 42), ErrAttemptNotOwned)
}

func TestAttemptService_Delete(t *testing.T) {
	svc, m := newTestAttemptService(t)
	ctx := context.Background()

	m.attempts.EXPECT().DeleteAttempt(ctx, int64(42)).Return(nil)

	require.NoError(t, svc.Delete(ctx, 42))
}

func TestAttemptService_SaveSnapshot(t *testing.T) {
	svc, m := newTestAttemptService(t)
	ctx := context.Background()

	marked := "\u2060\u2061hello \U000E0061world\U000E0062"
	snapshot := models.Snapshot{
		Data:      map[string]any{"q1": marked, "slot": float64(2)},
		SessionID: "s-1",
	}

	attempt := testAttempt(42, 3, "a1b2")
	attempt.State = models.AttemptInProgress

	m.attempts.EXPECT().FindAttemptByAttemptID(ctx, int64(42)).Return(attempt, nil)
	m.snapshots.EXPECT().SaveSnapshot(ctx, int64(42), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ int64, s models.Snapshot) error {
			assert.Equal(t, fixedNow, s.Time)
			assert.Equal(t, marked, s.Data["q1"], "stored data keeps the markers")
			return nil
		},
	)

	result, err := svc.SaveSnapshot(ctx, 3, 42, snapshot)
	require.NoError(t, err)
	assert.True(t, result.Stored)
	assert.Equal(t, "hello world", result.Data["q1"])
	assert.Equal(t, float64(2), result.Data["slot"])
	assert.Equal(t, marked, snapshot.Data["q1"], "input map is not modified")
}

func TestAttemptService_SaveSnapshot_Unregistered(t *testing.T) {
	svc, m := newTestAttemptService(t)
	ctx := context.Background()

	m.attempts.EXPECT().FindAttemptByAttemptID(ctx, int64(42)).Return(models.Attempt{}, store.ErrAttemptNotFound)

	result, err := svc.SaveSnapshot(ctx, 3, 42, models.Snapshot{Data: map[string]any{"q1": "a\u2060b"}})
	require.NoError(t, err)
	assert.False(t, result.Stored)
	assert.Equal(t, "ab", result.Data["q1"])
}

func TestAttemptService_SaveSnapshot_Closed(t *testing.T) {
	svc, m := newTestAttemptService(t)
	ctx := context.Background()

	m.attempts.EXPECT().FindAttemptByAttemptID(ctx, int64(42)).Return(testAttempt(42, 3, "a1b2"), nil)

	_, err := svc.SaveSnapshot(ctx, 3, 42, models.Snapshot{Data: map[string]any{"q1": "x"}})
	assert.ErrorIs(t, err, ErrAttemptClosed)
}

func TestAttemptService_SaveSnapshot_OtherUser(t *testing.T) {
	svc, m := newTestAttemptService(t)
	ctx := context.Background()

	attempt := testAttempt(42, 3, "a1b2")
	attempt.State = models.AttemptInProgress
	m.attempts.EXPECT().FindAttemptByAttemptID(ctx, int64(42)).Return(attempt, nil)
	m.snapshots.EXPECT().SaveSnapshot(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.SaveSnapshot(ctx, 99, 42, models.Snapshot{Data: map[string]any{"q1": "planted"}})
	assert.ErrorIs(t, err, ErrAttemptNotOwned)
}

func TestAttemptService_SaveSnapshot_MissingData(t *testing.T) {
	svc, _ := newTestAttemptService(t)

	_, err := svc.SaveSnapshot(context.Background(), 3, 42, models.Snapshot{SessionID: "s-1"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrEmptyData)
}

func TestCleanData_Nil(t *testing.T) {
	assert.Nil(t, CleanData(nil))
}
