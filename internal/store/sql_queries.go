package store

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-exam-watermark/models"
)

const (
	attemptsTable  = "watermark_attempts"
	snapshotsTable = "watermark_snapshots"
	examsTable     = "watermark_exams"
)

var attemptColumns = []string{
	"id", "exam_id", "attempt_id", "user_id", "user_name", "token", "state", "compact", "created_at",
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func (db *DB) selectAttempts() sq.SelectBuilder {
	return db.builder.Select(attemptColumns...).From(attemptsTable)
}

func (db *DB) buildCreateAttemptQuery(a models.Attempt) (string, []any, error) {
	return db.builder.Insert(attemptsTable).
		Columns("exam_id", "attempt_id", "user_id", "user_name", "token", "state", "compact", "created_at").
		Values(a.ExamID, a.AttemptID, a.UserID, a.UserName, a.Token, string(a.State), a.Compact, a.CreatedAt).
		Suffix("RETURNING id").
		ToSql()
}

func (db *DB) buildFindAttemptQuery(attemptID int64) (string, []any, error) {
	return db.selectAttempts().
		Where(sq.Eq{"attempt_id": attemptID}).
		ToSql()
}

func (db *DB) buildFindLatestTokenQuery(examID, userID int64) (string, []any, error) {
	return db.builder.Select("token").
		From(attemptsTable).
		Where(sq.Eq{"exam_id": examID, "user_id": userID}).
		OrderBy("created_at DESC", "id DESC").
		Limit(1).
		ToSql()
}

// buildTokenPrefixQuery matches tokens starting with prefix within one exam.
// LIKE wildcards in prefix are escaped.
func (db *DB) buildTokenPrefixQuery(examID int64, prefix string) (string, []any, error) {
	pattern := likeEscaper.Replace(strings.ToLower(prefix)) + "%"
	return db.selectAttempts().
		Where(sq.Eq{"exam_id": examID}).
		Where(sq.Expr(`token LIKE ? ESCAPE '\'`, pattern)).
		OrderBy("attempt_id").
		ToSql()
}

func (db *DB) buildListAttemptsByExamQuery(examID int64) (string, []any, error) {
	return db.selectAttempts().
		Where(sq.Eq{"exam_id": examID}).
		OrderBy("attempt_id").
		ToSql()
}

func (db *DB) buildListCompactableQuery(limit uint64) (string, []any, error) {
	q := db.selectAttempts().
		Where(sq.Eq{
			"compact": false,
			"state":   []string{string(models.AttemptFinished), string(models.AttemptAbandoned)},
		}).
		OrderBy("id")
	if limit > 0 {
		q = q.Limit(limit)
	}
	return q.ToSql()
}

func (db *DB) buildUpdateStateQuery(attemptID int64, state models.AttemptState) (string, []any, error) {
	return db.builder.Update(attemptsTable).
		Set("state", string(state)).
		Where(sq.Eq{"attempt_id": attemptID}).
		ToSql()
}

func (db *DB) buildMarkCompactQuery(attemptID int64) (string, []any, error) {
	return db.builder.Update(attemptsTable).
		Set("compact", true).
		Where(sq.Eq{"attempt_id": attemptID}).
		ToSql()
}

func (db *DB) buildDeleteQuery(table string, attemptID int64) (string, []any, error) {
	return db.builder.Delete(table).
		Where(sq.Eq{"attempt_id": attemptID}).
		ToSql()
}

func (db *DB) buildInsertSnapshotQuery(attemptID int64, payload []byte, compact bool, createdAt any) (string, []any, error) {
	return db.builder.Insert(snapshotsTable).
		Columns("attempt_id", "payload", "compact", "created_at").
		Values(attemptID, payload, compact, createdAt).
		ToSql()
}

func (db *DB) buildListSnapshotsQuery(attemptID int64) (string, []any, error) {
	return db.builder.Select("payload", "compact").
		From(snapshotsTable).
		Where(sq.Eq{"attempt_id": attemptID}).
		OrderBy("id").
		ToSql()
}

// buildEnableExamQuery upserts an enabled row. Both PostgreSQL and SQLite
// understand ON CONFLICT ... DO UPDATE.
func (db *DB) buildEnableExamQuery(examID int64) (string, []any, error) {
	return db.builder.Insert(examsTable).
		Columns("exam_id", "enabled").
		Values(examID, true).
		Suffix("ON CONFLICT (exam_id) DO UPDATE SET enabled = EXCLUDED.enabled, updated_at = CURRENT_TIMESTAMP").
		ToSql()
}

func (db *DB) buildDisableExamQuery(examID int64) (string, []any, error) {
	return db.builder.Delete(examsTable).
		Where(sq.Eq{"exam_id": examID}).
		ToSql()
}

func (db *DB) buildIsEnabledQuery(examID int64) (string, []any, error) {
	return db.builder.Select("enabled").
		From(examsTable).
		Where(sq.Eq{"exam_id": examID}).
		ToSql()
}

func wrapBuildErr(err error) error {
	return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
}
