package errors

import (
	"fmt"

	"bizdir/internal/errors"
)

// RecordErrorKind classifies why a single import record failed.
type RecordErrorKind string

const (
	// RecordValidation is malformed input, e.g. a missing required field.
	RecordValidation RecordErrorKind = "validation"
	// RecordConflict is a constraint violation the upsert primitive did not resolve.
	RecordConflict RecordErrorKind = "conflict"
	// RecordDatabase is any other per-record storage failure.
	RecordDatabase RecordErrorKind = "database"
)

// RecordError is a failure confined to one record of an import batch.
// It is recovered by the batch and reported, never propagated to the caller.
type RecordError struct {
	Index      int
	ExternalID string
	Kind       RecordErrorKind
	Reason     string
	err        error
}

// NewValidationError reports a record that could not be normalized.
func NewValidationError(index int, externalID, reason string) *RecordError {
	return &RecordError{
		Index:      index,
		ExternalID: externalID,
		Kind:       RecordValidation,
		Reason:     reason,
	}
}

// NewConflictError reports a constraint violation while writing a record.
func NewConflictError(externalID string, err error) *RecordError {
	return &RecordError{
		ExternalID: externalID,
		Kind:       RecordConflict,
		Reason:     "constraint violation",
		err:        err,
	}
}

// NewRecordDatabaseError reports a non-systemic storage failure while writing a record.
func NewRecordDatabaseError(externalID string, err error) *RecordError {
	return &RecordError{
		ExternalID: externalID,
		Kind:       RecordDatabase,
		Reason:     "failed to write listing",
		err:        err,
	}
}

func (e *RecordError) Error() string {
	if e.err == nil {
		return e.Reason
	}

	return fmt.Sprintf("%s: %v", e.Reason, e.err)
}

func (e *RecordError) Unwrap() error {
	return e.err
}

// AsRecordError extracts a RecordError from err's chain.
func AsRecordError(err error) (*RecordError, bool) {
	var recordErr *RecordError
	if errors.As(err, &recordErr) {
		return recordErr, true
	}

	return nil, false
}
