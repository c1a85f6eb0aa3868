package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/riskibarqy/league-ingest/internal/domain/teammapping"
)

type TeamMappingRepository struct {
	mu     sync.RWMutex
	byKey  map[string]teammapping.Mapping
	nextID int64
}

func NewTeamMappingRepository(items []teammapping.Mapping) *TeamMappingRepository {
	r := &TeamMappingRepository{byKey: make(map[string]teammapping.Mapping)}
	for _, item := range items {
		if item.ID > r.nextID {
			r.nextID = item.ID
		}
		r.byKey[teammapping.Key(item.ExternalName, item.Source)] = item
	}
	return r
}

func (r *TeamMappingRepository) GetByNameAndSource(_ context.Context, externalName, source string) (teammapping.Mapping, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.byKey[teammapping.Key(externalName, source)]
	return item, ok, nil
}

func (r *TeamMappingRepository) Create(_ context.Context, item teammapping.Mapping) (teammapping.Mapping, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := teammapping.Key(item.ExternalName, item.Source)
	if _, ok := r.byKey[key]; ok {
		return teammapping.Mapping{}, fmt.Errorf("mapping (%s, %s) already exists", item.ExternalName, item.Source)
	}

	r.nextID++
	item.ID = r.nextID
	r.byKey[key] = item
	return item, nil
}

func (r *TeamMappingRepository) List(_ context.Context) ([]teammapping.Mapping, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]teammapping.Mapping, 0, len(r.byKey))
	for _, item := range r.byKey {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
