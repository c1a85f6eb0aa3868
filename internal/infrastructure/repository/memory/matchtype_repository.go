package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/riskibarqy/league-ingest/internal/domain/matchtype"
)

type MatchTypeRepository struct {
	mu   sync.RWMutex
	byID map[int64]matchtype.MatchType
}

func NewMatchTypeRepository(items []matchtype.MatchType) *MatchTypeRepository {
	r := &MatchTypeRepository{byID: make(map[int64]matchtype.MatchType)}
	for _, item := range items {
		r.byID[item.ID] = item
	}
	return r
}

func (r *MatchTypeRepository) GetByID(_ context.Context, id int64) (matchtype.MatchType, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.byID[id]
	return item, ok, nil
}

func (r *MatchTypeRepository) List(_ context.Context) ([]matchtype.MatchType, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]matchtype.MatchType, 0, len(r.byID))
	for _, item := range r.byID {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
