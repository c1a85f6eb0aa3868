package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/riskibarqy/league-ingest/internal/domain/season"
)

type SeasonRepository struct {
	mu   sync.RWMutex
	byID map[int64]season.Season
}

func NewSeasonRepository(items []season.Season) *SeasonRepository {
	r := &SeasonRepository{byID: make(map[int64]season.Season)}
	for _, item := range items {
		r.byID[item.ID] = item
	}
	return r
}

func (r *SeasonRepository) GetByID(_ context.Context, id int64) (season.Season, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.byID[id]
	return item, ok, nil
}

func (r *SeasonRepository) List(_ context.Context) ([]season.Season, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]season.Season, 0, len(r.byID))
	for _, item := range r.byID {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
