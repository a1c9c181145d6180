package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-exam-watermark/internal/config"
	"github.com/MKhiriev/go-exam-watermark/internal/logger"
)

// Storages bundles the repositories sharing one database connection.
type Storages struct {
	AttemptRepository  AttemptRepository
	SnapshotRepository SnapshotRepository
	ExamRepository     ExamRepository

	db *DB
}

// NewStorages connects to the configured database, applies migrations and
// builds every repository.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("error migrating database: %w", err)
	}
	log.Info().Str("func", "NewStorages").Str("dialect", db.Dialect()).Msg("database schema is up to date")

	return newStorages(db, log), nil
}

func newStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		AttemptRepository:  NewAttemptRepository(db, log),
		SnapshotRepository: NewSnapshotRepository(db, log),
		ExamRepository:     NewExamRepository(db, log),
		db:                 db,
	}
}

// Close releases the database connection.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
