package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-exam-watermark/internal/config"
	"github.com/MKhiriev/go-exam-watermark/internal/logger"
	"github.com/MKhiriev/go-exam-watermark/internal/store"
	"github.com/MKhiriev/go-exam-watermark/internal/watermark"
	"github.com/MKhiriev/go-exam-watermark/models"
)

const defaultReportConcurrency = 8

type reportService struct {
	attemptRepository  store.AttemptRepository
	snapshotRepository store.SnapshotRepository
	matcher            *watermark.Matcher
	concurrency        int
	logger             *logger.Logger
}

// NewReportService constructs a [ReportService]. The attempt registry also
// serves as the matcher's token registry.
func NewReportService(storages *store.Storages, cfg config.Workers, logger *logger.Logger) ReportService {
	concurrency := cfg.ReportConcurrency
	if concurrency <= 0 {
		concurrency = defaultReportConcurrency
	}

	return &reportService{
		attemptRepository:  storages.AttemptRepository,
		snapshotRepository: storages.SnapshotRepository,
		matcher:            watermark.NewMatcher(storages.AttemptRepository),
		concurrency:        concurrency,
		logger:             logger,
	}
}

// AttemptReport lists every foreign watermark in the snapshots of one
// attempt, in snapshot order.
func (s *reportService) AttemptReport(ctx context.Context, examID, attemptID int64) (models.AttemptReport, error) {
	attempt, err := s.attemptRepository.FindAttemptByAttemptID(ctx, attemptID)
	if err != nil {
		return models.AttemptReport{}, fmt.Errorf("error finding attempt: %w", err)
	}
	if attempt.ExamID != examID {
		return models.AttemptReport{}, fmt.Errorf("error finding attempt: %w", store.ErrAttemptNotFound)
	}

	hits, err := s.scanAttempt(ctx, attempt)
	if err != nil {
		return models.AttemptReport{}, err
	}

	return models.AttemptReport{Attempt: attempt, Hits: hits}, nil
}

// ExamReport scans every attempt of examID concurrently and returns one row
// per attempt that contains foreign watermarks, in attempt order.
func (s *reportService) ExamReport(ctx context.Context, examID int64) ([]models.AttemptSummary, error) {
	log := logger.FromContext(ctx)

	attempts, err := s.attemptRepository.ListAttemptsByExam(ctx, examID)
	if err != nil {
		return nil, fmt.Errorf("error listing attempts: %w", err)
	}

	rows := make([]*models.AttemptSummary, len(attempts))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, attempt := range attempts {
		g.Go(func() error {
			hits, err := s.scanAttempt(gctx, attempt)
			if err != nil {
				return err
			}
			if len(hits) > 0 {
				rows[i] = &models.AttemptSummary{
					AttemptID: attempt.AttemptID,
					UserName:  attempt.UserName,
					Sources:   uniqueSources(hits),
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Err(err).Int64("exam_id", examID).Msg("exam report failed")
		return nil, err
	}

	summaries := make([]models.AttemptSummary, 0, len(rows))
	for _, row := range rows {
		if row != nil {
			summaries = append(summaries, *row)
		}
	}

	return summaries, nil
}

func (s *reportService) scanAttempt(ctx context.Context, attempt models.Attempt) ([]models.Attribution, error) {
	own, err := watermark.ParseToken(attempt.Token)
	if err != nil {
		return nil, fmt.Errorf("attempt %d: %w", attempt.AttemptID, err)
	}

	snapshots, err := s.snapshotRepository.ListSnapshots(ctx, attempt.AttemptID)
	if err != nil {
		return nil, fmt.Errorf("error reading snapshots of attempt %d: %w", attempt.AttemptID, err)
	}

	var hits []models.Attribution
	for _, snapshot := range snapshots {
		found, err := s.matcher.Attribute(ctx, attempt.ExamID, own, snapshot)
		if err != nil {
			return nil, err
		}
		hits = append(hits, found...)
	}

	return hits, nil
}

// uniqueSources lists distinct owners in order of first appearance.
// Unresolved hits collapse into one zero identity.
func uniqueSources(hits []models.Attribution) []models.Identity {
	seen := make(map[models.Identity]struct{})
	var sources []models.Identity

	for _, hit := range hits {
		var id models.Identity
		if hit.Source != nil {
			id = *hit.Source
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		sources = append(sources, id)
	}

	return sources
}
