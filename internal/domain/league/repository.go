package league

import "context"

// Repository describes league persistence needs from use cases.
type Repository interface {
	GetByID(ctx context.Context, id int64) (League, bool, error)
	GetByName(ctx context.Context, name string) (League, bool, error)
	Create(ctx context.Context, item League) (League, error)
	List(ctx context.Context) ([]League, error)
}
