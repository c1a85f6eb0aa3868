package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/riskibarqy/league-ingest/internal/domain/match"
	"github.com/riskibarqy/league-ingest/internal/platform/resilience"
)

// MatchRepository implements the upsert engine in memory. The per-key mutex
// gives the same guarantee the postgres unique index does: two writers with
// the same canonical key serialize, so one creates and the other observes the
// created row.
type MatchRepository struct {
	mu     sync.RWMutex
	byKey  map[string]match.Match
	nextID int64
	keys   resilience.KeyedMutex
}

func NewMatchRepository() *MatchRepository {
	return &MatchRepository{byKey: make(map[string]match.Match)}
}

func (r *MatchRepository) Upsert(_ context.Context, item match.Match) (match.UpsertResult, error) {
	item.ExternalMatchID = match.NormalizeExternalMatchID(item.ExternalMatchID)
	item.Status = match.NormalizeStatus(item.Status)
	if err := item.Validate(); err != nil {
		return match.UpsertResult{}, fmt.Errorf("upsert match: %w", err)
	}
	key := item.CanonicalKey().String()

	unlock := r.keys.Lock(key)
	defer unlock()

	r.mu.RLock()
	existing, ok := r.byKey[key]
	r.mu.RUnlock()

	if !ok {
		r.mu.Lock()
		r.nextID++
		item.ID = r.nextID
		r.byKey[key] = item
		r.mu.Unlock()
		return match.UpsertResult{Outcome: match.OutcomeCreated, Match: item}, nil
	}

	if match.MutableFieldsEqual(existing, item) {
		return match.UpsertResult{Outcome: match.OutcomeUnchanged, Match: existing}, nil
	}

	merged := match.ApplyMutable(existing, item)
	r.mu.Lock()
	r.byKey[key] = merged
	r.mu.Unlock()
	return match.UpsertResult{Outcome: match.OutcomeUpdated, Match: merged}, nil
}

func (r *MatchRepository) GetByKey(_ context.Context, key match.CanonicalKey) (match.Match, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.byKey[key.String()]
	return item, ok, nil
}

func (r *MatchRepository) ListByDivision(_ context.Context, divisionID int64) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Match, 0)
	for _, item := range r.byKey {
		if item.DivisionID == divisionID {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Count reports stored rows; used by tests asserting no duplicates.
func (r *MatchRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byKey)
}
