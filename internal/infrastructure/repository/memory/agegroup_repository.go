package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/riskibarqy/league-ingest/internal/domain/agegroup"
)

type AgeGroupRepository struct {
	mu   sync.RWMutex
	byID map[int64]agegroup.AgeGroup
}

func NewAgeGroupRepository(items []agegroup.AgeGroup) *AgeGroupRepository {
	r := &AgeGroupRepository{byID: make(map[int64]agegroup.AgeGroup)}
	for _, item := range items {
		r.byID[item.ID] = item
	}
	return r
}

func (r *AgeGroupRepository) GetByID(_ context.Context, id int64) (agegroup.AgeGroup, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.byID[id]
	return item, ok, nil
}

func (r *AgeGroupRepository) List(_ context.Context) ([]agegroup.AgeGroup, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]agegroup.AgeGroup, 0, len(r.byID))
	for _, item := range r.byID {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
