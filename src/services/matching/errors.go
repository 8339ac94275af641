package matching

import (
	"errors"
	"fmt"
)

// Error kinds surfaced by the batch orchestrator. "No eligible students" is
// not in this list on purpose: it is an expected outcome and comes back as
// an empty result, not an error.
var (
	// ErrBatchNotFound / ErrCandidateNotFound: the referenced row does not exist.
	ErrBatchNotFound     = errors.New("match batch not found")
	ErrCandidateNotFound = errors.New("candidate not found in batch")

	// ErrInvalidState: the batch is no longer pending (completed or expired).
	ErrInvalidState = errors.New("batch is not pending")

	// ErrAlreadyResolved: the candidate's mentorResponse was already set.
	// Re-resolution is rejected, not silently accepted.
	ErrAlreadyResolved = errors.New("candidate already resolved")

	// ErrPendingBatchExists: the mentor already has an open batch. Exactly one
	// non-expired pending batch may exist per mentor.
	ErrPendingBatchExists = errors.New("mentor already has a pending batch")
)

// PartialWriteError means the candidate bulk-insert failed after the batch
// insert succeeded AND the compensating delete of the batch also failed.
// A batch now exists with no candidates, which needs operator attention; the
// caller cannot recover from this on its own.
type PartialWriteError struct {
	BatchID     string
	InsertErr   error
	RollbackErr error
}

func (e *PartialWriteError) Error() string {
	return fmt.Sprintf("batch %s left without candidates: insert failed (%v) and rollback failed (%v)",
		e.BatchID, e.InsertErr, e.RollbackErr)
}

func (e *PartialWriteError) Unwrap() error { return e.InsertErr }
