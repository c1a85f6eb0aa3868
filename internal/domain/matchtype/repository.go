package matchtype

import "context"

type Repository interface {
	GetByID(ctx context.Context, id int64) (MatchType, bool, error)
	List(ctx context.Context) ([]MatchType, error)
}
