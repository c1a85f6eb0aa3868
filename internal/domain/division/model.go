package division

import (
	"fmt"
	"strings"
)

// Division sits between a league and its teams. (Name, LeagueID) is unique:
// two leagues may both have a "Premier" division.
type Division struct {
	ID       int64
	Name     string
	Level    int
	LeagueID int64
}

func (d Division) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return fmt.Errorf("division name is required")
	}
	if d.Level <= 0 {
		return fmt.Errorf("division level must be positive")
	}
	if d.LeagueID <= 0 {
		return fmt.Errorf("division league id is required")
	}
	return nil
}
