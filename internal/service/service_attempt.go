package service

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"time"

	"github.com/MKhiriev/go-exam-watermark/internal/logger"
	"github.com/MKhiriev/go-exam-watermark/internal/store"
	"github.com/MKhiriev/go-exam-watermark/internal/validators"
	"github.com/MKhiriev/go-exam-watermark/internal/watermark"
	"github.com/MKhiriev/go-exam-watermark/models"
)

// attemptService registers attempts in the watermark registry and records
// their answer snapshots.
type attemptService struct {
	attemptRepository  store.AttemptRepository
	snapshotRepository store.SnapshotRepository
	examRepository     store.ExamRepository
	validator          validators.Validator

	// newToken issues the token of a new attempt.
	newToken func() (watermark.Token, error)

	now    func() time.Time
	logger *logger.Logger
}

// NewAttemptService constructs an [AttemptService].
func NewAttemptService(storages *store.Storages, logger *logger.Logger) AttemptService {
	return &attemptService{
		attemptRepository:  storages.AttemptRepository,
		snapshotRepository: storages.SnapshotRepository,
		examRepository:     storages.ExamRepository,
		validator:          validators.NewExamValidator(),
		newToken:           watermark.NewRandomToken,
		now:                time.Now,
		logger:             logger,
	}
}

// Start registers a new attempt with a fresh random token. Every attempt
// gets its own token, even when the user already has one for the exam.
//
// Returns ErrWatermarkDisabled when the exam is not watermarked.
func (s *attemptService) Start(ctx context.Context, attempt models.Attempt) (models.Attempt, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, attempt); err != nil {
		log.Error().Err(err).Any("attempt", attempt).Msg("invalid attempt data provided")
		return models.Attempt{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	enabled, err := s.examRepository.IsEnabled(ctx, attempt.ExamID)
	if err != nil {
		return models.Attempt{}, fmt.Errorf("error reading exam settings: %w", err)
	}
	if !enabled {
		return models.Attempt{}, ErrWatermarkDisabled
	}

	token, err := s.newToken()
	if err != nil {
		return models.Attempt{}, fmt.Errorf("error issuing token: %w", err)
	}

	attempt.Token = token.String()
	attempt.State = models.AttemptInProgress
	attempt.Compact = false
	attempt.CreatedAt = s.now().UTC()

	created, err := s.attemptRepository.CreateAttempt(ctx, attempt)
	if err != nil {
		return models.Attempt{}, fmt.Errorf("error registering attempt: %w", err)
	}

	log.Info().
		Int64("exam_id", created.ExamID).
		Int64("attempt_id", created.AttemptID).
		Int64("user_id", created.UserID).
		Msg("attempt registered")

	return created, nil
}

func (s *attemptService) Finish(ctx context.Context, userID, attemptID int64) error {
	return s.close(ctx, userID, attemptID, models.AttemptFinished)
}

func (s *attemptService) Abandon(ctx context.Context, userID, attemptID int64) error {
	return s.close(ctx, userID, attemptID, models.AttemptAbandoned)
}

func (s *attemptService) close(ctx context.Context, userID, attemptID int64, state models.AttemptState) error {
	attempt, err := s.attemptRepository.FindAttemptByAttemptID(ctx, attemptID)
	if err != nil {
		return fmt.Errorf("error finding attempt: %w", err)
	}
	if err := checkOwner(ctx, attempt, userID); err != nil {
		return err
	}

	if err := s.attemptRepository.UpdateState(ctx, attemptID, state); err != nil {
		return fmt.Errorf("error closing attempt: %w", err)
	}
	return nil
}

// checkOwner rejects callers other than the user the attempt was
// registered for.
func checkOwner(ctx context.Context, attempt models.Attempt, userID int64) error {
	if attempt.UserID == userID {
		return nil
	}
	logger.FromContext(ctx).Warn().
		Int64("attempt_id", attempt.AttemptID).
		Int64("owner_id", attempt.UserID).
		Int64("user_id", userID).
		Msg("attempt of another user")
	return ErrAttemptNotOwned
}

// Delete removes the attempt and its snapshots.
func (s *attemptService) Delete(ctx context.Context, attemptID int64) error {
	if err := s.attemptRepository.DeleteAttempt(ctx, attemptID); err != nil {
		return fmt.Errorf("error deleting attempt: %w", err)
	}
	return nil
}

// SaveSnapshot stores snapshot for a registered attempt of userID and returns
// the data cleaned of markers. Data of attempts without a registry entry is
// cleaned but not stored.
func (s *attemptService) SaveSnapshot(ctx context.Context, userID, attemptID int64, snapshot models.Snapshot) (models.SnapshotResult, error) {
	if err := s.validator.Validate(ctx, snapshot); err != nil {
		return models.SnapshotResult{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	result := models.SnapshotResult{Data: CleanData(snapshot.Data)}

	attempt, err := s.attemptRepository.FindAttemptByAttemptID(ctx, attemptID)
	if errors.Is(err, store.ErrAttemptNotFound) {
		return result, nil
	}
	if err != nil {
		return models.SnapshotResult{}, fmt.Errorf("error finding attempt: %w", err)
	}
	if err := checkOwner(ctx, attempt, userID); err != nil {
		return models.SnapshotResult{}, err
	}
	if attempt.State.Closed() {
		return models.SnapshotResult{}, ErrAttemptClosed
	}

	snapshot.Time = s.now().UTC()
	if err := s.snapshotRepository.SaveSnapshot(ctx, attemptID, snapshot); err != nil {
		return models.SnapshotResult{}, fmt.Errorf("error saving snapshot: %w", err)
	}

	result.Stored = true
	return result, nil
}

// CleanData returns a copy of data with markers stripped from every string
// value. Other values are kept as they are.
func CleanData(data map[string]any) map[string]any {
	cleaned := maps.Clone(data)
	for k, v := range cleaned {
		if text, ok := v.(string); ok {
			cleaned[k] = watermark.Clean(text)
		}
	}
	return cleaned
}
