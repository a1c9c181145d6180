package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-exam-watermark/internal/config"
	"github.com/MKhiriev/go-exam-watermark/internal/logger"
	"github.com/MKhiriev/go-exam-watermark/internal/store"
	"github.com/MKhiriev/go-exam-watermark/internal/watermark"
	"github.com/MKhiriev/go-exam-watermark/models"
)

const (
	tokenAda = "a1b2c3d4e5f60708"
	tokenBob = "0123456789abcdef"
)

// copied returns text marked with token the way a student's editor would.
func copied(t *testing.T, token, text string) string {
	t.Helper()
	session, err := watermark.NewSession(watermark.Token(token), false)
	require.NoError(t, err)
	return session.Mark(text)
}

func TestReportService_AttemptReport(t *testing.T) {
	storages, m := newStoreMocks(t)
	svc := NewReportService(storages, config.Workers{}, logger.Nop())
	ctx := context.Background()

	bob := testAttempt(43, 4, tokenBob)
	bob.UserName = "Bob"

	m.attempts.EXPECT().FindAttemptByAttemptID(ctx, int64(42)).Return(testAttempt(42, 3, tokenAda), nil)
	m.snapshots.EXPECT().ListSnapshots(ctx, int64(42)).Return([]models.Snapshot{
		{Time: fixedNow, Data: map[string]any{
			"q1": copied(t, tokenAda, "my own words"),
			"q2": copied(t, tokenBob, "borrowed answer"),
		}},
	}, nil)
	m.attempts.EXPECT().FindAttemptsByTokenPrefix(ctx, int64(7), gomock.Any()).
		Return([]models.Attempt{bob}, nil).Times(2)

	report, err := svc.AttemptReport(ctx, 7, 42)
	require.NoError(t, err)
	require.Len(t, report.Hits, 2, "one hit per channel")
	for _, hit := range report.Hits {
		assert.Equal(t, "q2", hit.Field)
		require.NotNil(t, hit.Source)
		assert.Equal(t, "Bob", hit.Source.FullName)
		assert.True(t, watermark.Token(tokenBob).HasPrefix(hit.Watermark))
	}
}

func TestReportService_AttemptReport_OtherExam(t *testing.T) {
	storages, m := newStoreMocks(t)
	svc := NewReportService(storages, config.Workers{}, logger.Nop())
	ctx := context.Background()

	m.attempts.EXPECT().FindAttemptByAttemptID(ctx, int64(42)).Return(testAttempt(42, 3, tokenAda), nil)

	_, err := svc.AttemptReport(ctx, 8, 42)
	assert.ErrorIs(t, err, store.ErrAttemptNotFound)
}

func TestReportService_ExamReport(t *testing.T) {
	storages, m := newStoreMocks(t)
	svc := NewReportService(storages, config.Workers{ReportConcurrency: 2}, logger.Nop())
	ctx := context.Background()

	ada := testAttempt(42, 3, tokenAda)
	bob := testAttempt(43, 4, tokenBob)
	bob.UserName = "Bob"
	eve := testAttempt(44, 5, "eeeeeeeeeeeeeeee")

	m.attempts.EXPECT().ListAttemptsByExam(ctx, int64(7)).Return([]models.Attempt{ada, bob, eve}, nil)

	m.snapshots.EXPECT().ListSnapshots(gomock.Any(), int64(42)).Return([]models.Snapshot{
		{Data: map[string]any{"q1": copied(t, tokenBob, "from bob")}},
		{Data: map[string]any{"q1": copied(t, "9999999999999999", "from nowhere")}},
	}, nil)
	m.snapshots.EXPECT().ListSnapshots(gomock.Any(), int64(43)).Return([]models.Snapshot{
		{Data: map[string]any{"q1": copied(t, tokenBob, "own text")}},
	}, nil)
	m.snapshots.EXPECT().ListSnapshots(gomock.Any(), int64(44)).Return(nil, nil)

	m.attempts.EXPECT().FindAttemptsByTokenPrefix(gomock.Any(), int64(7), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ int64, prefix string) ([]models.Attempt, error) {
			if watermark.Token(tokenBob).HasPrefix(prefix) {
				return []models.Attempt{bob}, nil
			}
			return nil, nil
		},
	).AnyTimes()

	rows, err := svc.ExamReport(ctx, 7)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(42), rows[0].AttemptID)
	assert.Equal(t, []models.Identity{
		{UserID: 4, AttemptID: 43, FullName: "Bob"},
		{},
	}, rows[0].Sources)
}

func TestReportService_ExamReport_SnapshotError(t *testing.T) {
	storages, m := newStoreMocks(t)
	svc := NewReportService(storages, config.Workers{}, logger.Nop())
	ctx := context.Background()

	m.attempts.EXPECT().ListAttemptsByExam(ctx, int64(7)).Return([]models.Attempt{testAttempt(42, 3, tokenAda)}, nil)
	m.snapshots.EXPECT().ListSnapshots(gomock.Any(), int64(42)).Return(nil, store.ErrCorruptSnapshot)

	_, err := svc.ExamReport(ctx, 7)
	assert.ErrorIs(t, err, store.ErrCorruptSnapshot)
}

func TestReportService_ExamReport_ListError(t *testing.T) {
	storages, m := newStoreMocks(t)
	svc := NewReportService(storages, config.Workers{}, logger.Nop())
	ctx := context.Background()

	m.attempts.EXPECT().ListAttemptsByExam(ctx, int64(7)).Return(nil, errors.New("db down"))

	_, err := svc.ExamReport(ctx, 7)
	assert.Error(t, err)
}

func TestUniqueSources(t *testing.T) {
	bob := &models.Identity{UserID: 4, FullName: "Bob"}
	hits := []models.Attribution{{Source: nil}, {Source: bob}, {Source: nil}, {Source: bob}}

	assert.Equal(t, []models.Identity{{}, *bob}, uniqueSources(hits))
}
