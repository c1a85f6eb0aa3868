package teammapping

import "context"

// Repository describes team-mapping persistence needs from use cases.
type Repository interface {
	GetByNameAndSource(ctx context.Context, externalName, source string) (Mapping, bool, error)
	Create(ctx context.Context, item Mapping) (Mapping, error)
	List(ctx context.Context) ([]Mapping, error)
}
