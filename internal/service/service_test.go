package service

import (
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-exam-watermark/internal/mock"
	"github.com/MKhiriev/go-exam-watermark/internal/store"
	"github.com/MKhiriev/go-exam-watermark/models"
)

type storeMocks struct {
	attempts  *mock.MockAttemptRepository
	snapshots *mock.MockSnapshotRepository
	exams     *mock.MockExamRepository
}

func newStoreMocks(t *testing.T) (*store.Storages, storeMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := storeMocks{
		attempts:  mock.NewMockAttemptRepository(ctrl),
		snapshots: mock.NewMockSnapshotRepository(ctrl),
		exams:     mock.NewMockExamRepository(ctrl),
	}
	storages := &store.Storages{
		AttemptRepository:  m.attempts,
		SnapshotRepository: m.snapshots,
		ExamRepository:     m.exams,
	}
	return storages, m
}

var fixedNow = time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC)

func testAttempt(attemptID, userID int64, token string) models.Attempt {
	return models.Attempt{
		ExamID:    7,
		AttemptID: attemptID,
		UserID:    userID,
		UserName:  "user",
		Token:     token,
		State:     models.AttemptFinished,
	}
}
