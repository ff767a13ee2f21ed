package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound covers records that are absent or hidden by the
	// default read scope. Callers cannot tell the two apart.
	ErrNotFound = errors.New("record not found")

	// ErrRestorationForbidden is returned when restoring a record
	// that is not currently trashed.
	ErrRestorationForbidden = errors.New("record is not trashed")
)

// DeletionForbiddenError reports a failed per-type delete guard.
type DeletionForbiddenError struct {
	Record string
	Reason string
}

func (e *DeletionForbiddenError) Error() string {
	return fmt.Sprintf("%s cannot be deleted: %s", e.Record, e.Reason)
}

// ValidationError reports a field constraint violation at write time.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func IsDeletionForbidden(err error) bool {
	var de *DeletionForbiddenError
	return errors.As(err, &de)
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
