package store

import (
	"errors"

	"github.com/MKhiriev/go-exam-watermark/internal/app"
)

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrAttemptAlreadyExists is returned when an attempt id is registered
	// twice.
	ErrAttemptAlreadyExists = errors.New(app.MsgAttemptAlreadyExists)

	// ErrAttemptNotFound is returned when no registry entry matches an
	// attempt id, or when no token was ever issued for an exam and user.
	ErrAttemptNotFound = errors.New(app.MsgAttemptNotFound)

	// ErrCorruptSnapshot is returned when a stored snapshot payload cannot
	// be decompressed or decoded.
	ErrCorruptSnapshot = errors.New("stored snapshot is corrupt")

	// ErrEmptyDSN is returned when no database DSN is configured.
	ErrEmptyDSN = errors.New("database DSN is empty")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when an INSERT, UPDATE or DELETE
	// fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result fails
	// mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
