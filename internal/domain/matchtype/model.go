package matchtype

// MatchType distinguishes competition formats, e.g. "League", "Cup",
// "Friendly".
type MatchType struct {
	ID          int64
	Name        string
	Description string
}
