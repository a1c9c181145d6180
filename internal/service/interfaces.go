//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

package service

import (
	"context"

	"github.com/MKhiriev/go-exam-watermark/internal/watermark"
	"github.com/MKhiriev/go-exam-watermark/models"
)

// IdentityService hands out the watermark token of a user in an exam.
type IdentityService interface {
	// GetOrCreateToken returns the observer token derived from userID, or for
	// students the token of their latest attempt, or a fresh random token.
	GetOrCreateToken(ctx context.Context, observer bool, examID, userID int64) (watermark.Token, error)
}

// AttemptService manages the attempt lifecycle and answer capture. Finish,
// Abandon and SaveSnapshot only act on attempts of userID.
type AttemptService interface {
	Start(ctx context.Context, attempt models.Attempt) (models.Attempt, error)
	Finish(ctx context.Context, userID, attemptID int64) error
	Abandon(ctx context.Context, userID, attemptID int64) error
	Delete(ctx context.Context, attemptID int64) error

	// SaveSnapshot records the answers of one autosave or submit and returns
	// them with every marker removed.
	SaveSnapshot(ctx context.Context, userID, attemptID int64, snapshot models.Snapshot) (models.SnapshotResult, error)
}

// ExamService manages exam settings and exam page setup.
type ExamService interface {
	SetEnabled(ctx context.Context, examID int64, enabled bool) error
	IsEnabled(ctx context.Context, examID int64) (bool, error)
	Session(ctx context.Context, examID, userID int64, observer bool) (models.SessionInfo, error)
	Pattern(token string) (string, error)
}

// ReportService finds answers carrying watermarks of other users.
type ReportService interface {
	AttemptReport(ctx context.Context, examID, attemptID int64) (models.AttemptReport, error)
	ExamReport(ctx context.Context, examID int64) ([]models.AttemptSummary, error)
}

// CompactionService merges the snapshots of closed attempts.
type CompactionService interface {
	// CompactClosed compacts up to limit closed attempts and returns how
	// many were compacted. A zero limit means no limit.
	CompactClosed(ctx context.Context, limit uint64) (int, error)
}

// CompactionJob runs a CompactionService periodically.
type CompactionJob interface {
	Start(ctx context.Context)
	Stop()
}

// AuthService issues and verifies API tokens.
type AuthService interface {
	CreateToken(ctx context.Context, userID int64, role models.Role) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// AppInfoService exposes build metadata.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
