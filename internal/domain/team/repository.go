package team

import "context"

// Repository describes team persistence needs from use cases.
type Repository interface {
	GetByID(ctx context.Context, id int64) (Team, bool, error)
	ListByDivision(ctx context.Context, divisionID int64) ([]Team, error)
	// LinkMatchType idempotently records the (team, match type) pairing.
	LinkMatchType(ctx context.Context, teamID, matchTypeID int64) error
}
