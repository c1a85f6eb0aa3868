package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/riskibarqy/league-ingest/internal/domain/league"
)

type LeagueRepository struct {
	mu     sync.RWMutex
	byID   map[int64]league.League
	nextID int64
}

func NewLeagueRepository(items []league.League) *LeagueRepository {
	r := &LeagueRepository{byID: make(map[int64]league.League)}
	for _, item := range items {
		if item.ID > r.nextID {
			r.nextID = item.ID
		}
		r.byID[item.ID] = item
	}
	return r
}

func (r *LeagueRepository) GetByID(_ context.Context, id int64) (league.League, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.byID[id]
	return item, ok, nil
}

func (r *LeagueRepository) GetByName(_ context.Context, name string) (league.League, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.byID {
		if strings.EqualFold(item.Name, name) {
			return item, true, nil
		}
	}
	return league.League{}, false, nil
}

func (r *LeagueRepository) Create(_ context.Context, item league.League) (league.League, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	item.ID = r.nextID
	r.byID[item.ID] = item
	return item, nil
}

func (r *LeagueRepository) List(_ context.Context) ([]league.League, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]league.League, 0, len(r.byID))
	for _, item := range r.byID {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
