package team

import (
	"fmt"
	"strings"
)

// Team is unique by (Name, AgeGroupID, DivisionID): the same club fields one
// team per age group per division.
type Team struct {
	ID         int64
	Name       string
	AgeGroupID int64
	DivisionID int64
}

func (t Team) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("team name is required")
	}
	if t.AgeGroupID <= 0 {
		return fmt.Errorf("team age group id is required")
	}
	if t.DivisionID <= 0 {
		return fmt.Errorf("team division id is required")
	}
	return nil
}

// MatchTypeLink records that a team participates in a match type. Unique by
// (TeamID, MatchTypeID).
type MatchTypeLink struct {
	ID          int64
	TeamID      int64
	MatchTypeID int64
}
