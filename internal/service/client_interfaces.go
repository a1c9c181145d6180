package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-exam-watermark/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientExamService drives one exam attempt from the exam client. It is
// bound to the exam, attempt and user of the client configuration.
type ClientExamService interface {
	// Begin registers the attempt and fetches its watermark session. When
	// the exam has watermarking disabled the returned session has no token
	// and answers are sent unmarked.
	Begin(ctx context.Context) (models.SessionInfo, error)

	// Save sends answers as one snapshot and returns them with markers
	// removed.
	Save(ctx context.Context, answers map[string]string) (models.SnapshotResult, error)

	// Submit saves answers one last time and finishes the attempt.
	Submit(ctx context.Context, answers map[string]string) error

	// Abandon closes the attempt without submitting it.
	Abandon(ctx context.Context) error

	// ServerVersion returns the build version reported by the server.
	ServerVersion(ctx context.Context) (string, error)
}

// ClientAutosaveJob pushes changed answers to the server in the background.
type ClientAutosaveJob interface {
	// Start stops any running loop and starts a new one that saves pending
	// answers every interval until ctx is cancelled or Stop is called.
	Start(ctx context.Context, interval time.Duration)

	// Flush saves pending answers right away. It is a no-op when nothing
	// changed since the last save.
	Flush(ctx context.Context) error

	// Stop ends the loop and waits for it to exit.
	Stop()
}
