package store

import "errors"

var (
	// ErrInvalidInput indicates a caller contract violation (quality out
	// of range, missing ID, non-positive limit). Rejected synchronously
	// at the operation boundary, never partially applied.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound indicates the requested card, skill node, or error
	// record does not exist. Operations surface it rather than silently
	// creating a record (the SkillNode upsert path is the one designed
	// exception).
	ErrNotFound = errors.New("record not found")

	// ErrConflict indicates a concurrent writer advanced the row after
	// it was read; the state transition was not applied. Callers that
	// retry must re-read first.
	ErrConflict = errors.New("concurrent update conflict")

	// ErrDuplicateAttempt indicates the caller-supplied idempotency key
	// was already consumed by an earlier write. The operation was not
	// applied a second time.
	ErrDuplicateAttempt = errors.New("duplicate attempt id")
)
