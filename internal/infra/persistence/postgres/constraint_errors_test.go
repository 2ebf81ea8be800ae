package postgres

import (
	"context"
	"database/sql/driver"
	"errors"
	"testing"

	domainerrors "bizdir/internal/domain/errors"

	"github.com/jackc/pgx/v5/pgconn"
	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestClassifyWriteError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		systemic bool
		kind     domainerrors.RecordErrorKind
	}{
		{name: "unique violation", err: &pgconn.PgError{Code: sqlStateUniqueViolation}, kind: domainerrors.RecordConflict},
		{name: "foreign key violation", err: &pgconn.PgError{Code: sqlStateForeignKeyViolation}, kind: domainerrors.RecordConflict},
		{name: "check violation", err: &pgconn.PgError{Code: sqlStateCheckViolation}, kind: domainerrors.RecordConflict},
		{name: "not null violation", err: &pgconn.PgError{Code: sqlStateNotNullViolation}, kind: domainerrors.RecordConflict},
		{name: "translated duplicate key", err: gorm.ErrDuplicatedKey, kind: domainerrors.RecordConflict},
		{name: "wrapped violation", err: pkgerrors.Wrap(&pgconn.PgError{Code: sqlStateUniqueViolation}, "insert"), kind: domainerrors.RecordConflict},
		{name: "numeric overflow", err: &pgconn.PgError{Code: "22003"}, kind: domainerrors.RecordDatabase},
		{name: "connection exception", err: &pgconn.PgError{Code: "08006"}, systemic: true},
		{name: "out of memory", err: &pgconn.PgError{Code: "53200"}, systemic: true},
		{name: "admin shutdown", err: &pgconn.PgError{Code: sqlStateAdminShutdown}, systemic: true},
		{name: "aborted transaction", err: &pgconn.PgError{Code: sqlStateInFailedTransaction}, systemic: true},
		{name: "bad connection", err: driver.ErrBadConn, systemic: true},
		{name: "context cancelled", err: context.Canceled, systemic: true},
		{name: "plain error", err: errors.New("unexpected"), kind: domainerrors.RecordDatabase},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := classifyWriteError("A", tt.err)

			require.Error(t, err)
			assert.Equal(t, tt.systemic, domainerrors.IsSystemic(err))

			if tt.systemic {
				return
			}

			recordErr, ok := domainerrors.AsRecordError(err)
			require.True(t, ok)
			assert.Equal(t, tt.kind, recordErr.Kind)
			assert.Equal(t, "A", recordErr.ExternalID)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestClassifyWriteError_Nil(t *testing.T) {
	assert.NoError(t, classifyWriteError("A", nil))
}
