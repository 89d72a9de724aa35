package services

import (
	"errors"
	"fmt"
)

// Sentinel errors shared across services. Handlers translate these into HTTP
// statuses at the request boundary.
var (
	ErrNotFound     = errors.New("not found")
	ErrDuplicateKey = errors.New("duplicate key")
)

// ValidationError reports missing or out-of-range input.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func validationErrorf(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// HasDependentsError blocks deleting a job that applications still reference.
type HasDependentsError struct {
	Count int64
}

func (e *HasDependentsError) Error() string {
	return fmt.Sprintf("cannot delete job: there are %d application(s) associated with this job", e.Count)
}

// UploadError covers both rejected resume files and object store failures.
// Rejected distinguishes client mistakes (bad type, too large) from store
// outages so the handler can pick the right status code.
type UploadError struct {
	Msg      string
	Rejected bool
	Err      error
}

func (e *UploadError) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *UploadError) Unwrap() error { return e.Err }
