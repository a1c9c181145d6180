package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-exam-watermark/internal/adapter"
	"github.com/MKhiriev/go-exam-watermark/internal/config"
	"github.com/MKhiriev/go-exam-watermark/internal/logger"
	"github.com/MKhiriev/go-exam-watermark/internal/store"
	"github.com/MKhiriev/go-exam-watermark/internal/utils"
	"github.com/MKhiriev/go-exam-watermark/models"
)

type clientExamService struct {
	adapter   adapter.ServerAdapter
	exam      config.Exam
	sessionID string

	logger *logger.Logger
}

// NewClientExamService returns a ClientExamService for the attempt described
// by exam. Every client process gets its own snapshot session id.
func NewClientExamService(serverAdapter adapter.ServerAdapter, exam config.Exam, logger *logger.Logger) ClientExamService {
	return &clientExamService{
		adapter:   serverAdapter,
		exam:      exam,
		sessionID: utils.NewUUIDGenerator().Generate(),
		logger:    logger.ForAttempt(exam.ExamID, exam.AttemptID),
	}
}

func (s *clientExamService) Begin(ctx context.Context) (models.SessionInfo, error) {
	unmarked := models.SessionInfo{ExamID: s.exam.ExamID, UserID: s.exam.UserID}

	_, err := s.adapter.StartAttempt(ctx, models.StartAttemptRequest{
		ExamID:    s.exam.ExamID,
		AttemptID: s.exam.AttemptID,
		UserName:  s.exam.UserName,
	})
	switch err = mapAdapterError(err); {
	case err == nil:
		s.logger.Info().Msg("attempt registered")
	case errors.Is(err, store.ErrAttemptAlreadyExists):
		s.logger.Info().Msg("resuming registered attempt")
	case errors.Is(err, ErrWatermarkDisabled):
		s.logger.Info().Msg("watermarking disabled for exam")
		return unmarked, nil
	default:
		return models.SessionInfo{}, fmt.Errorf("error starting attempt: %w", err)
	}

	info, err := s.adapter.GetSession(ctx, s.exam.ExamID)
	if err = mapAdapterError(err); err != nil {
		if errors.Is(err, ErrWatermarkDisabled) {
			return unmarked, nil
		}
		return models.SessionInfo{}, fmt.Errorf("error fetching session: %w", err)
	}

	return info, nil
}

func (s *clientExamService) Save(ctx context.Context, answers map[string]string) (models.SnapshotResult, error) {
	data := make(map[string]any, len(answers))
	for field, value := range answers {
		data[field] = value
	}

	result, err := s.adapter.SaveSnapshot(ctx, s.exam.AttemptID, models.SnapshotRequest{
		Data:      data,
		SessionID: s.sessionID,
	})
	if err = mapAdapterError(err); err != nil {
		return models.SnapshotResult{}, fmt.Errorf("error saving answers: %w", err)
	}

	return result, nil
}

func (s *clientExamService) Submit(ctx context.Context, answers map[string]string) error {
	if _, err := s.Save(ctx, answers); err != nil {
		return err
	}
	return s.finish(ctx, false)
}

func (s *clientExamService) Abandon(ctx context.Context) error {
	return s.finish(ctx, true)
}

func (s *clientExamService) ServerVersion(ctx context.Context) (string, error) {
	version, err := s.adapter.GetVersion(ctx)
	return version, mapAdapterError(err)
}

// finish closes the attempt. Attempts of exams without watermarking were
// never registered, so a missing attempt is not an error.
func (s *clientExamService) finish(ctx context.Context, abandoned bool) error {
	err := mapAdapterError(s.adapter.FinishAttempt(ctx, s.exam.AttemptID, abandoned))
	if err != nil && !errors.Is(err, store.ErrAttemptNotFound) {
		return fmt.Errorf("error closing attempt: %w", err)
	}

	s.logger.Info().Bool("abandoned", abandoned).Msg("attempt closed")
	return nil
}
