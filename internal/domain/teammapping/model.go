package teammapping

import (
	"fmt"
	"strings"
)

// Mapping ties a scraper-supplied free-text team name from one source to an
// internal team. (ExternalName, Source) is unique.
type Mapping struct {
	ID           int64
	ExternalName string
	TeamID       int64
	Source       string
}

func (m Mapping) Validate() error {
	if strings.TrimSpace(m.ExternalName) == "" {
		return fmt.Errorf("mapping external name is required")
	}
	if m.TeamID <= 0 {
		return fmt.Errorf("mapping team id is required")
	}
	if strings.TrimSpace(m.Source) == "" {
		return fmt.Errorf("mapping source is required")
	}
	return nil
}

// Key is the lookup identity for a mapping.
func Key(externalName, source string) string {
	return strings.TrimSpace(externalName) + "|" + strings.TrimSpace(source)
}
