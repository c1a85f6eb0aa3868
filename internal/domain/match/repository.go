package match

import (
	"context"
	"errors"
)

// ErrUnavailable marks store failures that are worth retrying (connection
// loss, timeouts). Repositories mark driver errors with it so callers can
// classify without knowing the backend.
var ErrUnavailable = errors.New("match store unavailable")

// UpsertOutcome reports what the idempotent write did.
type UpsertOutcome string

const (
	OutcomeCreated   UpsertOutcome = "created"
	OutcomeUpdated   UpsertOutcome = "updated"
	OutcomeUnchanged UpsertOutcome = "unchanged"
	// OutcomeConflict means the store's uniqueness machinery rejected the row
	// for a reason the canonical key did not predict. The existing row wins;
	// reconciliation is manual.
	OutcomeConflict UpsertOutcome = "conflict"
)

// UpsertResult carries the outcome and the row as stored. On Conflict, Match
// is the pre-existing row.
type UpsertResult struct {
	Outcome UpsertOutcome
	Match   Match
}

// Repository is the upsert engine's storage contract. Upsert must be atomic
// per canonical key: two concurrent writers with the same key serialize, one
// observes Created and the other Updated or Unchanged, never two rows.
type Repository interface {
	Upsert(ctx context.Context, item Match) (UpsertResult, error)
	GetByKey(ctx context.Context, key CanonicalKey) (Match, bool, error)
	ListByDivision(ctx context.Context, divisionID int64) ([]Match, error)
}
