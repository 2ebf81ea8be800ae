package errors

import (
	"net/http"

	"bizdir/internal/errors"
)

// SystemicError is a failure of the infrastructure itself (lost connection, transaction
// manager) rather than of one record's data. It is never recovered per record.
type SystemicError struct {
	err     error
	details string
}

// NewSystemicError marks err as an infrastructure failure.
func NewSystemicError(err error, details string) *SystemicError {
	return &SystemicError{
		err:     err,
		details: details,
	}
}

func (e *SystemicError) Error() string {
	return errors.Wrap(e.err, e.details).Error()
}

func (e *SystemicError) Unwrap() error {
	return e.err
}

func (e *SystemicError) HTTPCode() int {
	return http.StatusInternalServerError
}

func (e *SystemicError) ErrorCode() string {
	return "SYSTEMIC_FAILURE"
}

func (e *SystemicError) Message() string {
	return "Storage is unavailable"
}

func (e *SystemicError) Details() string {
	return e.details
}

// IsSystemic reports whether err or anything it wraps is a SystemicError.
func IsSystemic(err error) bool {
	var systemic *SystemicError

	return errors.As(err, &systemic)
}
