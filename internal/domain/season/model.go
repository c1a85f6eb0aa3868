package season

import (
	"fmt"
	"strings"
	"time"
)

// Season bounds a playing period, e.g. "2025/26".
type Season struct {
	ID        int64
	Name      string
	StartDate time.Time
	EndDate   time.Time
}

func (s Season) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("season name is required")
	}
	if s.EndDate.Before(s.StartDate) {
		return fmt.Errorf("season end date %s precedes start date %s",
			s.EndDate.Format(time.DateOnly), s.StartDate.Format(time.DateOnly))
	}
	return nil
}
