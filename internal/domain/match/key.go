package match

import (
	"strconv"
	"strings"
	"time"
)

// CanonicalKey is the full tuple that determines match identity for
// deduplication. ExternalMatchID uses the empty-string sentinel when the
// producer did not supply one, which makes absent ids compare equal to each
// other (nulls-not-distinct) while never colliding with an explicit id.
type CanonicalKey struct {
	HomeTeamID      int64
	AwayTeamID      int64
	MatchDate       string
	SeasonID        int64
	AgeGroupID      int64
	MatchTypeID     int64
	DivisionID      int64
	ExternalMatchID string
}

// NormalizeExternalMatchID maps any blank external id to the storage
// sentinel. The backing store keeps the column NOT NULL DEFAULT '' for the
// same reason: the unique index then behaves like NULLS NOT DISTINCT even on
// engines without native support.
func NormalizeExternalMatchID(raw string) string {
	return strings.TrimSpace(raw)
}

// CanonicalKey derives the match's identity tuple. It is pure: the same
// normalized record always yields the same key.
func (m Match) CanonicalKey() CanonicalKey {
	return CanonicalKey{
		HomeTeamID:      m.HomeTeamID,
		AwayTeamID:      m.AwayTeamID,
		MatchDate:       m.MatchDate.Format(time.DateOnly),
		SeasonID:        m.SeasonID,
		AgeGroupID:      m.AgeGroupID,
		MatchTypeID:     m.MatchTypeID,
		DivisionID:      m.DivisionID,
		ExternalMatchID: NormalizeExternalMatchID(m.ExternalMatchID),
	}
}

// String renders a stable lock/cache key for the tuple.
func (k CanonicalKey) String() string {
	parts := []string{
		strconv.FormatInt(k.HomeTeamID, 10),
		strconv.FormatInt(k.AwayTeamID, 10),
		k.MatchDate,
		strconv.FormatInt(k.SeasonID, 10),
		strconv.FormatInt(k.AgeGroupID, 10),
		strconv.FormatInt(k.MatchTypeID, 10),
		strconv.FormatInt(k.DivisionID, 10),
		k.ExternalMatchID,
	}
	return strings.Join(parts, "|")
}
