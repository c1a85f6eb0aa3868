package match

import (
	"fmt"
	"strings"
	"time"
)

const (
	StatusScheduled = "SCHEDULED"
	StatusPlayed    = "PLAYED"
	StatusCancelled = "CANCELLED"
	StatusPostponed = "POSTPONED"
)

// Match is the only entity written by the ingestion path. League is not a
// field on purpose: it is reachable transitively via DivisionID.
type Match struct {
	ID          int64
	HomeTeamID  int64
	AwayTeamID  int64
	HomeScore   *int
	AwayScore   *int
	MatchDate   time.Time
	MatchTime   *string
	Location    *string
	SeasonID    int64
	AgeGroupID  int64
	MatchTypeID int64
	DivisionID  int64
	Notes       *string
	Status      string
	// ExternalMatchID is the scraper's own match identifier. It participates
	// in the canonical key; the empty string is the sentinel for "absent" so
	// that two records both lacking it still collide.
	ExternalMatchID string
	ExternalRef     *string
	Source          string
}

func NormalizeStatus(value string) string {
	status := strings.ToUpper(strings.TrimSpace(value))
	if status == "" {
		return StatusScheduled
	}
	return status
}

func (m Match) Validate() error {
	if m.HomeTeamID <= 0 || m.AwayTeamID <= 0 {
		return fmt.Errorf("match team ids are required")
	}
	if m.HomeTeamID == m.AwayTeamID {
		return fmt.Errorf("match cannot pair a team against itself")
	}
	if m.MatchDate.IsZero() {
		return fmt.Errorf("match date is required")
	}
	if m.HomeScore != nil && *m.HomeScore < 0 {
		return fmt.Errorf("home score cannot be negative")
	}
	if m.AwayScore != nil && *m.AwayScore < 0 {
		return fmt.Errorf("away score cannot be negative")
	}
	if m.SeasonID <= 0 || m.AgeGroupID <= 0 || m.MatchTypeID <= 0 || m.DivisionID <= 0 {
		return fmt.Errorf("match season, age group, match type and division ids are required")
	}
	return nil
}

// MutableFieldsEqual reports whether the fields the upsert path is allowed to
// overwrite are identical between a stored row and an incoming record.
func MutableFieldsEqual(a, b Match) bool {
	return intPtrEqual(a.HomeScore, b.HomeScore) &&
		intPtrEqual(a.AwayScore, b.AwayScore) &&
		NormalizeStatus(a.Status) == NormalizeStatus(b.Status) &&
		strPtrEqual(a.Location, b.Location) &&
		strPtrEqual(a.Notes, b.Notes) &&
		strPtrEqual(a.MatchTime, b.MatchTime)
}

// ApplyMutable copies the mutable fields of incoming onto existing and
// returns the merged row. Key fields are never touched.
func ApplyMutable(existing, incoming Match) Match {
	existing.HomeScore = incoming.HomeScore
	existing.AwayScore = incoming.AwayScore
	existing.Status = NormalizeStatus(incoming.Status)
	existing.Location = incoming.Location
	existing.Notes = incoming.Notes
	existing.MatchTime = incoming.MatchTime
	return existing
}

func intPtrEqual(a, b *int) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func strPtrEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
