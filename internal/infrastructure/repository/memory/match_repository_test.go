package memory

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/riskibarqy/league-ingest/internal/domain/match"
)

func storedMatch() match.Match {
	return match.Match{
		HomeTeamID:  TeamIDNorthsideOpen,
		AwayTeamID:  TeamIDHarborOpen,
		MatchDate:   time.Date(2026, 4, 12, 0, 0, 0, 0, time.UTC),
		SeasonID:    SeasonID2026,
		AgeGroupID:  AgeGroupIDOpen,
		MatchTypeID: MatchTypeIDLeague,
		DivisionID:  DivisionIDMetroPremier,
	}
}

func TestMatchUpsert_Lifecycle(t *testing.T) {
	t.Parallel()

	repo := NewMatchRepository()
	ctx := context.Background()

	created, err := repo.Upsert(ctx, storedMatch())
	if err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	if created.Outcome != match.OutcomeCreated || created.Match.ID == 0 {
		t.Fatalf("first upsert must create, got %+v", created)
	}

	replay, err := repo.Upsert(ctx, storedMatch())
	if err != nil {
		t.Fatalf("replay upsert: %v", err)
	}
	if replay.Outcome != match.OutcomeUnchanged || replay.Match.ID != created.Match.ID {
		t.Fatalf("replay must be unchanged on the same row, got %+v", replay)
	}

	scored := storedMatch()
	two, one := 2, 1
	scored.HomeScore = &two
	scored.AwayScore = &one
	scored.Status = "played"
	updated, err := repo.Upsert(ctx, scored)
	if err != nil {
		t.Fatalf("scored upsert: %v", err)
	}
	if updated.Outcome != match.OutcomeUpdated || updated.Match.ID != created.Match.ID {
		t.Fatalf("scored replay must update in place, got %+v", updated)
	}
	if updated.Match.Status != match.StatusPlayed {
		t.Fatalf("status must normalize on write, got %q", updated.Match.Status)
	}

	if repo.Count() != 1 {
		t.Fatalf("lifecycle must stay on one row, got %d", repo.Count())
	}
}

func TestMatchUpsert_RejectsInvalidRows(t *testing.T) {
	t.Parallel()

	repo := NewMatchRepository()
	ctx := context.Background()

	selfMatch := storedMatch()
	selfMatch.AwayTeamID = selfMatch.HomeTeamID
	if _, err := repo.Upsert(ctx, selfMatch); err == nil {
		t.Fatalf("a team playing itself must never reach the store")
	}

	missingDate := storedMatch()
	missingDate.MatchDate = time.Time{}
	if _, err := repo.Upsert(ctx, missingDate); err == nil {
		t.Fatalf("a match without a date must never reach the store")
	}

	if repo.Count() != 0 {
		t.Fatalf("rejected rows must not be stored, got %d", repo.Count())
	}
}

func TestMatchUpsert_ConcurrentSameKey(t *testing.T) {
	t.Parallel()

	repo := NewMatchRepository()
	ctx := context.Background()

	var created atomic.Int64
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			result, err := repo.Upsert(ctx, storedMatch())
			if err != nil {
				t.Errorf("upsert: %v", err)
				return
			}
			if result.Outcome == match.OutcomeCreated {
				created.Add(1)
			}
		}()
	}
	wg.Wait()

	if created.Load() != 1 {
		t.Fatalf("%d writers observed the create, want 1", created.Load())
	}
	if repo.Count() != 1 {
		t.Fatalf("concurrent same-key writers must converge on one row, got %d", repo.Count())
	}
}

func TestMatchUpsert_ExternalIDSplitsTheKey(t *testing.T) {
	t.Parallel()

	repo := NewMatchRepository()
	ctx := context.Background()

	a := storedMatch()
	a.ExternalMatchID = "ext-1"
	b := storedMatch()
	b.ExternalMatchID = "ext-2"
	blank := storedMatch()
	blank.ExternalMatchID = "   "

	for _, m := range []match.Match{a, b, blank} {
		if _, err := repo.Upsert(ctx, m); err != nil {
			t.Fatalf("upsert: %v", err)
		}
	}

	// Whitespace normalizes to the absent sentinel, its own key.
	if repo.Count() != 3 {
		t.Fatalf("got %d rows, want 3", repo.Count())
	}

	stored, ok, err := repo.GetByKey(ctx, a.CanonicalKey())
	if err != nil || !ok {
		t.Fatalf("get by key: ok=%v err=%v", ok, err)
	}
	if stored.ExternalMatchID != "ext-1" {
		t.Fatalf("got %q, want ext-1", stored.ExternalMatchID)
	}
}

func TestMatchListByDivision(t *testing.T) {
	t.Parallel()

	repo := NewMatchRepository()
	ctx := context.Background()

	first := storedMatch()
	second := storedMatch()
	second.MatchDate = second.MatchDate.AddDate(0, 0, 7)
	other := storedMatch()
	other.DivisionID = DivisionIDRegionalPremier

	for _, m := range []match.Match{first, second, other} {
		if _, err := repo.Upsert(ctx, m); err != nil {
			t.Fatalf("upsert: %v", err)
		}
	}

	items, err := repo.ListByDivision(ctx, DivisionIDMetroPremier)
	if err != nil {
		t.Fatalf("list by division: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("got %d rows, want 2", len(items))
	}
	if items[0].ID > items[1].ID {
		t.Fatalf("rows must come back in id order")
	}
}
