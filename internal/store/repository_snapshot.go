package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/MKhiriev/go-exam-watermark/internal/logger"
	"github.com/MKhiriev/go-exam-watermark/models"
)

// snapshotRepository is the SQL implementation of [SnapshotRepository].
type snapshotRepository struct {
	*DB
	logger *logger.Logger
}

// NewSnapshotRepository constructs a [SnapshotRepository] backed by db.
func NewSnapshotRepository(db *DB, logger *logger.Logger) SnapshotRepository {
	return &snapshotRepository{
		DB:     db,
		logger: logger,
	}
}

// SaveSnapshot stores one snapshot row for attemptID.
func (r *snapshotRepository) SaveSnapshot(ctx context.Context, attemptID int64, snapshot models.Snapshot) error {
	log := logger.FromContext(ctx)

	if snapshot.Time.IsZero() {
		snapshot.Time = time.Now().UTC()
	}

	payload, err := encodeSnapshot(snapshot)
	if err != nil {
		return err
	}

	query, args, err := r.buildInsertSnapshotQuery(attemptID, payload, false, snapshot.Time)
	if err != nil {
		return wrapBuildErr(err)
	}

	if _, err := r.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "snapshotRepository.SaveSnapshot").
			Int64("attempt_id", attemptID).
			Msg("failed to insert snapshot")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// ListSnapshots returns every snapshot of attemptID ordered by time,
// whether or not the attempt was compacted.
func (r *snapshotRepository) ListSnapshots(ctx context.Context, attemptID int64) ([]models.Snapshot, error) {
	log := logger.FromContext(ctx)

	var snapshots []models.Snapshot
	err := r.withRetry(ctx, func() error {
		var err error
		snapshots, err = r.readSnapshots(ctx, r.DB.DB, attemptID)
		return err
	})
	if err != nil {
		log.Err(err).
			Str("func", "snapshotRepository.ListSnapshots").
			Int64("attempt_id", attemptID).
			Msg("failed to list snapshots")
		return nil, err
	}

	return snapshots, nil
}

// CompactSnapshots replaces all snapshot rows of attemptID with a single
// compressed row and flags the attempt as compact. It runs in one
// transaction, so readers see either layout but never a mix.
func (r *snapshotRepository) CompactSnapshots(ctx context.Context, attemptID int64) error {
	log := logger.FromContext(ctx)

	deleteRows, deleteArgs, err := r.buildDeleteQuery(snapshotsTable, attemptID)
	if err != nil {
		return wrapBuildErr(err)
	}
	markCompact, markArgs, err := r.buildMarkCompactQuery(attemptID)
	if err != nil {
		return wrapBuildErr(err)
	}

	err = r.inTx(ctx, func(tx *sql.Tx) error {
		snapshots, err := r.readSnapshots(ctx, tx, attemptID)
		if err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, deleteRows, deleteArgs...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		if len(snapshots) > 0 {
			payload, err := compressSnapshots(snapshots)
			if err != nil {
				return err
			}
			insert, insertArgs, err := r.buildInsertSnapshotQuery(attemptID, payload, true, snapshots[len(snapshots)-1].Time)
			if err != nil {
				return wrapBuildErr(err)
			}
			if _, err := tx.ExecContext(ctx, insert, insertArgs...); err != nil {
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}
		}

		res, err := tx.ExecContext(ctx, markCompact, markArgs...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		return requireAffected(res)
	})
	if err != nil {
		log.Err(err).
			Str("func", "snapshotRepository.CompactSnapshots").
			Int64("attempt_id", attemptID).
			Msg("failed to compact snapshots")
		return err
	}

	return nil
}

type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

func (r *snapshotRepository) readSnapshots(ctx context.Context, q queryer, attemptID int64) ([]models.Snapshot, error) {
	query, args, err := r.buildListSnapshotsQuery(attemptID)
	if err != nil {
		return nil, wrapBuildErr(err)
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var snapshots []models.Snapshot
	for rows.Next() {
		var (
			payload []byte
			compact bool
		)
		if err := rows.Scan(&payload, &compact); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		decoded, err := decodeSnapshotRow(payload, compact)
		if err != nil {
			return nil, err
		}
		snapshots = append(snapshots, decoded...)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	sortSnapshots(snapshots)
	return snapshots, nil
}
