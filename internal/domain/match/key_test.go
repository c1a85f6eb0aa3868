package match

import (
	"testing"
	"time"
)

func sampleMatch() Match {
	return Match{
		HomeTeamID:  1,
		AwayTeamID:  2,
		MatchDate:   time.Date(2026, 4, 12, 0, 0, 0, 0, time.UTC),
		SeasonID:    1,
		AgeGroupID:  1,
		MatchTypeID: 1,
		DivisionID:  1,
	}
}

func TestCanonicalKey_IsPure(t *testing.T) {
	m := sampleMatch()
	first := m.CanonicalKey()
	second := m.CanonicalKey()
	if first != second {
		t.Fatalf("same match produced different keys: %v vs %v", first, second)
	}
}

func TestCanonicalKey_AbsentExternalIDsCollide(t *testing.T) {
	a := sampleMatch()
	b := sampleMatch()
	a.ExternalMatchID = ""
	b.ExternalMatchID = "   "

	if a.CanonicalKey() != b.CanonicalKey() {
		t.Fatalf("two records without an external match id must share a key")
	}
}

func TestCanonicalKey_ExplicitExternalIDsAreDistinct(t *testing.T) {
	a := sampleMatch()
	b := sampleMatch()
	a.ExternalMatchID = "ext-1"
	b.ExternalMatchID = "ext-2"

	if a.CanonicalKey() == b.CanonicalKey() {
		t.Fatalf("distinct external ids must produce distinct keys")
	}

	c := sampleMatch()
	if a.CanonicalKey() == c.CanonicalKey() {
		t.Fatalf("an explicit external id must not collide with the absent sentinel")
	}
}

func TestCanonicalKey_MutableFieldsDoNotParticipate(t *testing.T) {
	a := sampleMatch()
	b := sampleMatch()
	score := 3
	loc := "Memorial Park"
	b.HomeScore = &score
	b.AwayScore = &score
	b.Location = &loc
	b.Status = StatusPlayed

	if a.CanonicalKey() != b.CanonicalKey() {
		t.Fatalf("scores, location and status must not change the key")
	}
}

func TestCanonicalKey_String(t *testing.T) {
	m := sampleMatch()
	m.ExternalMatchID = "abc"
	want := "1|2|2026-04-12|1|1|1|1|abc"
	if got := m.CanonicalKey().String(); got != want {
		t.Fatalf("unexpected key string: got %q, want %q", got, want)
	}
}
