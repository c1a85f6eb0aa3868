package division

import "context"

// Repository describes division persistence needs from use cases.
type Repository interface {
	GetByID(ctx context.Context, id int64) (Division, bool, error)
	GetByNameAndLeague(ctx context.Context, name string, leagueID int64) (Division, bool, error)
	Create(ctx context.Context, item Division) (Division, error)
	ListByLeague(ctx context.Context, leagueID int64) ([]Division, error)
}
