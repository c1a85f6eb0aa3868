package league

import (
	"fmt"
	"strings"
)

// DefaultName is the league assigned to divisions that predate the league
// level of the hierarchy.
const DefaultName = "Default League"

// League is the top level of the competition hierarchy.
type League struct {
	ID     int64
	Name   string
	Active bool
}

func (l League) Validate() error {
	if strings.TrimSpace(l.Name) == "" {
		return fmt.Errorf("league name is required")
	}
	return nil
}
