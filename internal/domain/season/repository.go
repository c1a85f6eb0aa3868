package season

import "context"

type Repository interface {
	GetByID(ctx context.Context, id int64) (Season, bool, error)
	List(ctx context.Context) ([]Season, error)
}
