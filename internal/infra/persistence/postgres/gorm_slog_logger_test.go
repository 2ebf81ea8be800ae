package postgres

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"bizdir/config"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBufferedGormLogger(cfg *config.Config) (logger.Interface, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	handler := slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})

	return newGormSlogLogger(slog.New(handler), cfg), buf
}

func lastEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.NotEmpty(t, lines[len(lines)-1])

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[len(lines)-1]), &entry))

	return entry
}

func TestGormSlogLogger_TraceFailureLevels(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		level string
	}{
		{name: "constraint violation", err: &pgconn.PgError{Code: sqlStateUniqueViolation}, level: "WARN"},
		{name: "connection failure", err: &pgconn.PgError{Code: "08006"}, level: "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gormLogger, buf := newBufferedGormLogger(nil)

			gormLogger.Trace(context.Background(), time.Now(), func() (string, int64) {
				return `INSERT INTO "listing_reviews"`, 0
			}, tt.err)

			entry := lastEntry(t, buf)
			assert.Equal(t, tt.level, entry["level"])
			assert.Equal(t, "GORM query failed", entry["msg"])
		})
	}
}

func TestGormSlogLogger_TraceSkipsRecordNotFound(t *testing.T) {
	gormLogger, buf := newBufferedGormLogger(nil)

	gormLogger.Trace(context.Background(), time.Now(), func() (string, int64) {
		return `SELECT * FROM "listings"`, 0
	}, gorm.ErrRecordNotFound)

	assert.Empty(t, buf.String())
}

func TestGormSlogLogger_TraceQueriesInDebug(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Debug = true
	gormLogger, buf := newBufferedGormLogger(cfg)

	gormLogger.Trace(context.Background(), time.Now(), func() (string, int64) {
		return "SAVEPOINT sp_1", 0
	}, nil)
	assert.Equal(t, "DEBUG", lastEntry(t, buf)["level"])

	gormLogger.Trace(context.Background(), time.Now(), func() (string, int64) {
		return `SELECT * FROM "listings"`, 3
	}, nil)
	entry := lastEntry(t, buf)
	assert.Equal(t, "INFO", entry["level"])
	assert.EqualValues(t, 3, entry["rows"])
}

func TestGormSlogLogger_SilentMode(t *testing.T) {
	gormLogger, buf := newBufferedGormLogger(nil)

	gormLogger.LogMode(logger.Silent).Trace(context.Background(), time.Now(), func() (string, int64) {
		return `SELECT 1`, 1
	}, errors.New("boom"))

	assert.Empty(t, buf.String())
}

func TestTruncateSQL(t *testing.T) {
	short := "SELECT 1"
	assert.Equal(t, short, truncateSQL(short))

	long := strings.Repeat("x", maxLoggedSQLLength+10)
	truncated := truncateSQL(long)
	assert.True(t, strings.HasPrefix(truncated, strings.Repeat("x", maxLoggedSQLLength)))
	assert.True(t, strings.HasSuffix(truncated, "... (2058 bytes)"))
}

func TestIsSavepointStatement(t *testing.T) {
	assert.True(t, isSavepointStatement("SAVEPOINT sp_1"))
	assert.True(t, isSavepointStatement(" release savepoint sp_1"))
	assert.True(t, isSavepointStatement("ROLLBACK TO SAVEPOINT sp_2"))
	assert.False(t, isSavepointStatement(`UPDATE "listings" SET "name"=$1`))
}
