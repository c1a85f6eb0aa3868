package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/riskibarqy/league-ingest/internal/domain/team"
)

type TeamRepository struct {
	mu         sync.RWMutex
	byID       map[int64]team.Team
	links      map[[2]int64]team.MatchTypeLink
	nextLinkID int64
}

func NewTeamRepository(items []team.Team) *TeamRepository {
	r := &TeamRepository{
		byID:  make(map[int64]team.Team),
		links: make(map[[2]int64]team.MatchTypeLink),
	}
	for _, item := range items {
		r.byID[item.ID] = item
	}
	return r
}

func (r *TeamRepository) GetByID(_ context.Context, id int64) (team.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.byID[id]
	return item, ok, nil
}

func (r *TeamRepository) ListByDivision(_ context.Context, divisionID int64) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]team.Team, 0)
	for _, item := range r.byID {
		if item.DivisionID == divisionID {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *TeamRepository) LinkMatchType(_ context.Context, teamID, matchTypeID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := [2]int64{teamID, matchTypeID}
	if _, ok := r.links[key]; ok {
		return nil
	}
	r.nextLinkID++
	r.links[key] = team.MatchTypeLink{
		ID:          r.nextLinkID,
		TeamID:      teamID,
		MatchTypeID: matchTypeID,
	}
	return nil
}

// MatchTypeLinkCount reports stored links; used by tests.
func (r *TeamRepository) MatchTypeLinkCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.links)
}
