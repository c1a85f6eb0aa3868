package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/riskibarqy/league-ingest/internal/domain/division"
)

type DivisionRepository struct {
	mu     sync.RWMutex
	byID   map[int64]division.Division
	nextID int64
}

func NewDivisionRepository(items []division.Division) *DivisionRepository {
	r := &DivisionRepository{byID: make(map[int64]division.Division)}
	for _, item := range items {
		if item.ID > r.nextID {
			r.nextID = item.ID
		}
		r.byID[item.ID] = item
	}
	return r
}

func (r *DivisionRepository) GetByID(_ context.Context, id int64) (division.Division, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.byID[id]
	return item, ok, nil
}

func (r *DivisionRepository) GetByNameAndLeague(_ context.Context, name string, leagueID int64) (division.Division, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.byID {
		if item.LeagueID == leagueID && strings.EqualFold(item.Name, name) {
			return item, true, nil
		}
	}
	return division.Division{}, false, nil
}

func (r *DivisionRepository) Create(_ context.Context, item division.Division) (division.Division, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	item.ID = r.nextID
	r.byID[item.ID] = item
	return item, nil
}

func (r *DivisionRepository) ListByLeague(_ context.Context, leagueID int64) ([]division.Division, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]division.Division, 0)
	for _, item := range r.byID {
		if item.LeagueID == leagueID {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
