package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"bizdir/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolMonitor_Observe(t *testing.T) {
	buf := &bytes.Buffer{}
	monitor := &poolMonitor{
		logger:        slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})),
		warnThreshold: 50 * time.Millisecond,
		prev:          sql.DBStats{WaitCount: 4, WaitDuration: 10 * time.Millisecond},
	}

	monitor.observe(context.Background(), sql.DBStats{WaitCount: 4, WaitDuration: 10 * time.Millisecond})
	assert.Empty(t, buf.String())

	monitor.observe(context.Background(), sql.DBStats{WaitCount: 6, WaitDuration: 110 * time.Millisecond, InUse: 10})

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "WARN", entry["level"])
	assert.EqualValues(t, 2, entry["waits"])
	assert.EqualValues(t, 10, entry["in_use"])
	assert.EqualValues(t, int64(6), monitor.prev.WaitCount)
}

func TestChildBatchSize(t *testing.T) {
	assert.Equal(t, defaultChildInsertBatchSize, childBatchSize(nil))
	assert.Equal(t, defaultChildInsertBatchSize, childBatchSize(&config.Config{}))
	assert.Equal(t, 25, childBatchSize(&config.Config{Import: &config.ImportConfig{ChildInsertBatchSize: 25}}))
}
