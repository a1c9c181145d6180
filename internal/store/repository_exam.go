package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-exam-watermark/internal/logger"
)

type examRepository struct {
	*DB
	logger *logger.Logger
}

// NewExamRepository constructs an [ExamRepository] backed by db.
func NewExamRepository(db *DB, logger *logger.Logger) ExamRepository {
	return &examRepository{
		DB:     db,
		logger: logger,
	}
}

// SetEnabled turns watermarking on or off for examID. Disabling removes the
// settings row.
func (r *examRepository) SetEnabled(ctx context.Context, examID int64, enabled bool) error {
	log := logger.FromContext(ctx)

	build := r.buildDisableExamQuery
	if enabled {
		build = r.buildEnableExamQuery
	}

	query, args, err := build(examID)
	if err != nil {
		return wrapBuildErr(err)
	}

	if _, err := r.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "examRepository.SetEnabled").
			Int64("exam_id", examID).
			Bool("enabled", enabled).
			Msg("failed to store exam settings")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// IsEnabled reports whether watermarking is on for examID. Exams without a
// settings row are disabled.
func (r *examRepository) IsEnabled(ctx context.Context, examID int64) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.buildIsEnabledQuery(examID)
	if err != nil {
		return false, wrapBuildErr(err)
	}

	var enabled bool
	err = r.withRetry(ctx, func() error {
		return r.QueryRowContext(ctx, query, args...).Scan(&enabled)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		log.Err(err).
			Str("func", "examRepository.IsEnabled").
			Int64("exam_id", examID).
			Msg("failed to read exam settings")
		return false, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return enabled, nil
}
