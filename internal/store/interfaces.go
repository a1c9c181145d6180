//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

package store

import (
	"context"

	"github.com/MKhiriev/go-exam-watermark/models"
)

// ErrorClassificator tells the repositories how to treat a driver error.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
	IsUniqueViolation(err error) bool
}

// AttemptRepository is the watermark registry: one token per exam attempt.
type AttemptRepository interface {
	CreateAttempt(ctx context.Context, attempt models.Attempt) (models.Attempt, error)
	FindAttemptByAttemptID(ctx context.Context, attemptID int64) (models.Attempt, error)
	FindLatestToken(ctx context.Context, examID, userID int64) (string, error)
	FindAttemptsByTokenPrefix(ctx context.Context, examID int64, prefix string) ([]models.Attempt, error)
	ListAttemptsByExam(ctx context.Context, examID int64) ([]models.Attempt, error)
	ListCompactable(ctx context.Context, limit uint64) ([]models.Attempt, error)
	UpdateState(ctx context.Context, attemptID int64, state models.AttemptState) error
	DeleteAttempt(ctx context.Context, attemptID int64) error
}

// SnapshotRepository stores the answer snapshots of attempts.
type SnapshotRepository interface {
	SaveSnapshot(ctx context.Context, attemptID int64, snapshot models.Snapshot) error
	ListSnapshots(ctx context.Context, attemptID int64) ([]models.Snapshot, error)
	CompactSnapshots(ctx context.Context, attemptID int64) error
}

// ExamRepository stores per-exam watermark settings.
type ExamRepository interface {
	SetEnabled(ctx context.Context, examID int64, enabled bool) error
	IsEnabled(ctx context.Context, examID int64) (bool, error)
}
