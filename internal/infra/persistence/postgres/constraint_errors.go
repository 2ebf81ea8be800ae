package postgres

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"io"
	"net"
	"strings"

	domainerrors "bizdir/internal/domain/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes used for classification.
const (
	sqlStateNotNullViolation    = "23502"
	sqlStateForeignKeyViolation = "23503"
	sqlStateUniqueViolation     = "23505"
	sqlStateCheckViolation      = "23514"
	sqlStateInFailedTransaction = "25P02"

	sqlStateClassConnection = "08"
	sqlStateClassResources  = "53"
	sqlStateAdminShutdown   = "57P01"
	sqlStateCrashShutdown   = "57P02"
	sqlStateCannotConnect   = "57P03"
)

// classifyWriteError converts a failure while writing one listing into the import taxonomy.
func classifyWriteError(externalID string, err error) error {
	if err == nil {
		return nil
	}

	if isSystemicFailure(err) {
		return domainerrors.NewSystemicError(err, "storage failure while writing listing "+externalID)
	}

	if isUniqueConstraintViolation(err) ||
		isForeignKeyConstraintViolation(err) ||
		isCheckConstraintViolation(err) ||
		isNotNullConstraintViolation(err) {
		return domainerrors.NewConflictError(externalID, err)
	}

	return domainerrors.NewRecordDatabaseError(externalID, err)
}

// isSystemicFailure reports connection-level failures that make the surrounding transaction unusable.
func isSystemicFailure(err error) bool {
	if errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, sql.ErrConnDone) ||
		errors.Is(err, sql.ErrTxDone) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, io.ErrUnexpectedEOF) {
		return true
	}

	if pgconn.Timeout(err) {
		return true
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	if code := sqlState(err); code != "" {
		switch {
		case strings.HasPrefix(code, sqlStateClassConnection),
			strings.HasPrefix(code, sqlStateClassResources),
			code == sqlStateAdminShutdown,
			code == sqlStateCrashShutdown,
			code == sqlStateCannotConnect,
			code == sqlStateInFailedTransaction:
			return true
		}
	}

	return false
}

func isUniqueConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) || sqlState(err) == sqlStateUniqueViolation
}

func isForeignKeyConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated) || sqlState(err) == sqlStateForeignKeyViolation
}

func isCheckConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrCheckConstraintViolated) || sqlState(err) == sqlStateCheckViolation
}

func isNotNullConstraintViolation(err error) bool {
	return sqlState(err) == sqlStateNotNullViolation
}

func sqlState(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}
