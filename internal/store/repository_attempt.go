package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-exam-watermark/internal/logger"
	"github.com/MKhiriev/go-exam-watermark/models"
)

// attemptRepository is the SQL implementation of [AttemptRepository] over
// the watermark_attempts table.
type attemptRepository struct {
	*DB
	logger *logger.Logger
}

// NewAttemptRepository constructs an [AttemptRepository] backed by db.
func NewAttemptRepository(db *DB, logger *logger.Logger) AttemptRepository {
	return &attemptRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateAttempt registers a new attempt and returns it with the generated
// id and creation time filled in. Registering the same
// attempt id twice fails with [ErrAttemptAlreadyExists].
func (r *attemptRepository) CreateAttempt(ctx context.Context, attempt models.Attempt) (models.Attempt, error) {
	log := logger.FromContext(ctx)

	if attempt.State == "" {
		attempt.State = models.AttemptInProgress
	}
	if attempt.CreatedAt.IsZero() {
		attempt.CreatedAt = time.Now().UTC()
	}

	query, args, err := r.buildCreateAttemptQuery(attempt)
	if err != nil {
		return models.Attempt{}, wrapBuildErr(err)
	}

	err = r.QueryRowContext(ctx, query, args...).Scan(&attempt.ID)
	if err != nil {
		if r.errorClassificator != nil && r.errorClassificator.IsUniqueViolation(err) {
			log.Warn().
				Str("func", "attemptRepository.CreateAttempt").
				Int64("attempt_id", attempt.AttemptID).
				Msg("attempt is already registered")
			return models.Attempt{}, ErrAttemptAlreadyExists
		}
		log.Err(err).
			Str("func", "attemptRepository.CreateAttempt").
			Int64("attempt_id", attempt.AttemptID).
			Msg("failed to insert attempt")
		return models.Attempt{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return attempt, nil
}

// FindAttemptByAttemptID returns the registry entry of one attempt.
func (r *attemptRepository) FindAttemptByAttemptID(ctx context.Context, attemptID int64) (models.Attempt, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.buildFindAttemptQuery(attemptID)
	if err != nil {
		return models.Attempt{}, wrapBuildErr(err)
	}

	var attempt models.Attempt
	err = r.withRetry(ctx, func() error {
		return scanAttempt(r.QueryRowContext(ctx, query, args...), &attempt)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.Attempt{}, ErrAttemptNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "attemptRepository.FindAttemptByAttemptID").
			Int64("attempt_id", attemptID).
			Msg("failed to find attempt")
		return models.Attempt{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return attempt, nil
}

// FindLatestToken returns the token of the most recent attempt of userID in
// examID, or [ErrAttemptNotFound].
func (r *attemptRepository) FindLatestToken(ctx context.Context, examID, userID int64) (string, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.buildFindLatestTokenQuery(examID, userID)
	if err != nil {
		return "", wrapBuildErr(err)
	}

	var token string
	err = r.withRetry(ctx, func() error {
		return r.QueryRowContext(ctx, query, args...).Scan(&token)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrAttemptNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "attemptRepository.FindLatestToken").
			Int64("exam_id", examID).
			Int64("user_id", userID).
			Msg("failed to find latest token")
		return "", fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return token, nil
}

// FindAttemptsByTokenPrefix returns every attempt of examID whose token
// starts with prefix.
func (r *attemptRepository) FindAttemptsByTokenPrefix(ctx context.Context, examID int64, prefix string) ([]models.Attempt, error) {
	query, args, err := r.buildTokenPrefixQuery(examID, prefix)
	if err != nil {
		return nil, wrapBuildErr(err)
	}
	return r.queryAttempts(ctx, "attemptRepository.FindAttemptsByTokenPrefix", query, args)
}

// ListAttemptsByExam returns every attempt registered for examID.
func (r *attemptRepository) ListAttemptsByExam(ctx context.Context, examID int64) ([]models.Attempt, error) {
	query, args, err := r.buildListAttemptsByExamQuery(examID)
	if err != nil {
		return nil, wrapBuildErr(err)
	}
	return r.queryAttempts(ctx, "attemptRepository.ListAttemptsByExam", query, args)
}

// ListCompactable returns up to limit closed attempts whose snapshots are
// not compacted yet. A zero limit means no limit.
func (r *attemptRepository) ListCompactable(ctx context.Context, limit uint64) ([]models.Attempt, error) {
	query, args, err := r.buildListCompactableQuery(limit)
	if err != nil {
		return nil, wrapBuildErr(err)
	}
	return r.queryAttempts(ctx, "attemptRepository.ListCompactable", query, args)
}

// UpdateState moves an attempt to state.
func (r *attemptRepository) UpdateState(ctx context.Context, attemptID int64, state models.AttemptState) error {
	log := logger.FromContext(ctx)

	query, args, err := r.buildUpdateStateQuery(attemptID, state)
	if err != nil {
		return wrapBuildErr(err)
	}

	res, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "attemptRepository.UpdateState").
			Int64("attempt_id", attemptID).
			Str("state", string(state)).
			Msg("failed to update attempt state")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return requireAffected(res)
}

// DeleteAttempt removes an attempt and all of its snapshots.
func (r *attemptRepository) DeleteAttempt(ctx context.Context, attemptID int64) error {
	log := logger.FromContext(ctx)

	deleteSnapshots, snapshotArgs, err := r.buildDeleteQuery(snapshotsTable, attemptID)
	if err != nil {
		return wrapBuildErr(err)
	}
	deleteAttempt, attemptArgs, err := r.buildDeleteQuery(attemptsTable, attemptID)
	if err != nil {
		return wrapBuildErr(err)
	}

	err = r.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, deleteSnapshots, snapshotArgs...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		res, err := tx.ExecContext(ctx, deleteAttempt, attemptArgs...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		return requireAffected(res)
	})
	if err != nil && !errors.Is(err, ErrAttemptNotFound) {
		log.Err(err).
			Str("func", "attemptRepository.DeleteAttempt").
			Int64("attempt_id", attemptID).
			Msg("failed to delete attempt")
	}

	return err
}

func (r *attemptRepository) queryAttempts(ctx context.Context, funcName, query string, args []any) ([]models.Attempt, error) {
	log := logger.FromContext(ctx)

	var attempts []models.Attempt
	err := r.withRetry(ctx, func() error {
		attempts = attempts[:0]

		rows, err := r.QueryContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		defer rows.Close()

		for rows.Next() {
			var a models.Attempt
			if err := scanAttempt(rows, &a); err != nil {
				return fmt.Errorf("%w: %w", ErrScanningRow, err)
			}
			attempts = append(attempts, a)
		}

		if err := rows.Err(); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to query attempts")
		return nil, err
	}

	return attempts, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAttempt(row rowScanner, a *models.Attempt) error {
	var state string
	err := row.Scan(
		&a.ID,
		&a.ExamID,
		&a.AttemptID,
		&a.UserID,
		&a.UserName,
		&a.Token,
		&state,
		&a.Compact,
		&a.CreatedAt,
	)
	a.State = models.AttemptState(state)
	return err
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if n == 0 {
		return ErrAttemptNotFound
	}
	return nil
}
