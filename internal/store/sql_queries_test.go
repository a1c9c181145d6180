// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-exam-watermark/internal/logger"
	"github.com/MKhiriev/go-exam-watermark/migrations"
	"github.com/MKhiriev/go-exam-watermark/models"
)

func builderDB(dialect string) *DB {
	return newDB(nil, dialect, nil, logger.Nop())
}

func Test_newDB_PlaceholderPerDialect(t *testing.T) {
	tests := []struct {
		dialect string
		want    string
	}{
		{dialect: migrations.DialectPostgres, want: "SELECT id FROM t WHERE a = $1 AND b = $2"},
		{dialect: migrations.DialectSQLite, want: "SELECT id FROM t WHERE a = ? AND b = ?"},
	}

	for _, tt := range tests {
		t.Run(tt.dialect, func(t *testing.T) {
			query, _, err := builderDB(tt.dialect).builder.
				Select("id").From("t").Where("a = ?", 1).Where("b = ?", 2).ToSql()
			require.NoError(t, err)
			assert.Equal(t, tt.want, query)
		})
	}
}

func Test_buildCreateAttemptQuery(t *testing.T) {
	db := builderDB(migrations.DialectPostgres)
	created := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)

	query, args, err := db.buildCreateAttemptQuery(models.Attempt{
		ExamID: 7, AttemptID: 42, UserID: 3, UserName: "Ada", Token: "a1b2",
		State: models.AttemptInProgress, CreatedAt: created,
	})
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.Contains(t, q, "insert into watermark_attempts")
	assert.Contains(t, q, "returning id")
	assert.Contains(t, query, "$8")
	assert.Equal(t, []any{int64(7), int64(42), int64(3), "Ada", "a1b2", "inprogress", false, created}, args)
}

func Test_buildTokenPrefixQuery(t *testing.T) {
	tests := []struct {
		name        string
		dialect     string
		prefix      string
		wantPattern string
		wantHolder  string
	}{
		{name: "postgres", dialect: migrations.DialectPostgres, prefix: "A1B2", wantPattern: "a1b2%", wantHolder: "$2"},
		{name: "sqlite", dialect: migrations.DialectSQLite, prefix: "a1b2", wantPattern: "a1b2%", wantHolder: "?"},
		{name: "wildcards escaped", dialect: migrations.DialectSQLite, prefix: "a%_", wantPattern: `a\%\_%`, wantHolder: "?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := builderDB(tt.dialect).buildTokenPrefixQuery(7, tt.prefix)
			require.NoError(t, err)

			assert.Contains(t, query, "token LIKE")
			assert.Contains(t, query, `ESCAPE '\'`)
			assert.Contains(t, query, tt.wantHolder)
			require.Len(t, args, 2)
			assert.Equal(t, int64(7), args[0])
			assert.Equal(t, tt.wantPattern, args[1])
		})
	}
}

func Test_buildFindLatestTokenQuery(t *testing.T) {
	query, args, err := builderDB(migrations.DialectPostgres).buildFindLatestTokenQuery(7, 3)
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.Contains(t, q, "order by created_at desc, id desc")
	assert.Contains(t, q, "limit 1")
	assert.ElementsMatch(t, []any{int64(7), int64(3)}, args)
}

func Test_buildListCompactableQuery(t *testing.T) {
	db := builderDB(migrations.DialectPostgres)

	t.Run("with limit", func(t *testing.T) {
		query, args, err := db.buildListCompactableQuery(10)
		require.NoError(t, err)

		q := strings.ToLower(query)
		assert.Contains(t, q, "compact = $1")
		assert.Contains(t, q, "state in ($2,$3)")
		assert.Contains(t, q, "limit 10")
		assert.Equal(t, []any{false, "finished", "abandoned"}, args)
	})

	t.Run("no limit", func(t *testing.T) {
		query, _, err := db.buildListCompactableQuery(0)
		require.NoError(t, err)
		assert.NotContains(t, strings.ToLower(query), "limit")
	})
}

func Test_buildEnableExamQuery(t *testing.T) {
	query, args, err := builderDB(migrations.DialectSQLite).buildEnableExamQuery(7)
	require.NoError(t, err)

	assert.Contains(t, query, "ON CONFLICT (exam_id) DO UPDATE")
	assert.Equal(t, []any{int64(7), true}, args)
}

func Test_buildDeleteQuery(t *testing.T) {
	for _, table := range []string{attemptsTable, snapshotsTable} {
		query, args, err := builderDB(migrations.DialectPostgres).buildDeleteQuery(table, 42)
		require.NoError(t, err)

		assert.Equal(t, "DELETE FROM "+table+" WHERE attempt_id = $1", query)
		assert.Equal(t, []any{int64(42)}, args)
	}
}
