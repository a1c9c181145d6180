package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-exam-watermark/internal/logger"
	"github.com/MKhiriev/go-exam-watermark/internal/store"
)

type compactionService struct {
	attemptRepository  store.AttemptRepository
	snapshotRepository store.SnapshotRepository
	logger             *logger.Logger
}

// NewCompactionService constructs a [CompactionService].
func NewCompactionService(storages *store.Storages, logger *logger.Logger) CompactionService {
	return &compactionService{
		attemptRepository:  storages.AttemptRepository,
		snapshotRepository: storages.SnapshotRepository,
		logger:             logger,
	}
}

// CompactClosed compacts finished and abandoned attempts one at a time.
// A failing attempt is logged and skipped so it does not block the others;
// the joined errors are returned at the end.
func (s *compactionService) CompactClosed(ctx context.Context, limit uint64) (int, error) {
	attempts, err := s.attemptRepository.ListCompactable(ctx, limit)
	if err != nil {
		return 0, fmt.Errorf("error listing compactable attempts: %w", err)
	}

	var (
		compacted int
		errs      []error
	)
	for _, attempt := range attempts {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}

		log := s.logger.ForAttempt(attempt.ExamID, attempt.AttemptID)
		if err := s.snapshotRepository.CompactSnapshots(ctx, attempt.AttemptID); err != nil {
			log.Err(err).Msg("failed to compact snapshots")
			errs = append(errs, fmt.Errorf("attempt %d: %w", attempt.AttemptID, err))
			continue
		}
		log.Debug().Msg("snapshots compacted")
		compacted++
	}

	return compacted, errors.Join(errs...)
}
