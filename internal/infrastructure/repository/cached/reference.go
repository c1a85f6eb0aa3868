// Package cached decorates the read-mostly reference repositories with a
// process-local TTL cache. Only positive lookups are cached: a missing id may
// be created at any moment, so misses always go to the store.
package cached

import (
	"context"
	"strconv"

	"github.com/riskibarqy/league-ingest/internal/domain/agegroup"
	"github.com/riskibarqy/league-ingest/internal/domain/matchtype"
	"github.com/riskibarqy/league-ingest/internal/domain/season"
	"github.com/riskibarqy/league-ingest/internal/platform/cache"
)

type foundEntry[T any] struct {
	item T
}

func getByID[T any](ctx context.Context, store *cache.Store, prefix string, id int64,
	load func(context.Context, int64) (T, bool, error),
) (T, bool, error) {
	var zero T
	key := prefix + ":" + strconv.FormatInt(id, 10)
	if value, ok := store.Get(ctx, key); ok {
		if e, ok := value.(foundEntry[T]); ok {
			return e.item, true, nil
		}
	}

	item, ok, err := load(ctx, id)
	if err != nil {
		return zero, false, err
	}
	if !ok {
		return zero, false, nil
	}

	store.Set(ctx, key, foundEntry[T]{item: item})
	return item, true, nil
}

type SeasonRepository struct {
	inner season.Repository
	store *cache.Store
}

func NewSeasonRepository(inner season.Repository, store *cache.Store) *SeasonRepository {
	return &SeasonRepository{inner: inner, store: store}
}

func (r *SeasonRepository) GetByID(ctx context.Context, id int64) (season.Season, bool, error) {
	return getByID(ctx, r.store, "season", id, r.inner.GetByID)
}

func (r *SeasonRepository) List(ctx context.Context) ([]season.Season, error) {
	return r.inner.List(ctx)
}

type AgeGroupRepository struct {
	inner agegroup.Repository
	store *cache.Store
}

func NewAgeGroupRepository(inner agegroup.Repository, store *cache.Store) *AgeGroupRepository {
	return &AgeGroupRepository{inner: inner, store: store}
}

func (r *AgeGroupRepository) GetByID(ctx context.Context, id int64) (agegroup.AgeGroup, bool, error) {
	return getByID(ctx, r.store, "agegroup", id, r.inner.GetByID)
}

func (r *AgeGroupRepository) List(ctx context.Context) ([]agegroup.AgeGroup, error) {
	return r.inner.List(ctx)
}

type MatchTypeRepository struct {
	inner matchtype.Repository
	store *cache.Store
}

func NewMatchTypeRepository(inner matchtype.Repository, store *cache.Store) *MatchTypeRepository {
	return &MatchTypeRepository{inner: inner, store: store}
}

func (r *MatchTypeRepository) GetByID(ctx context.Context, id int64) (matchtype.MatchType, bool, error) {
	return getByID(ctx, r.store, "matchtype", id, r.inner.GetByID)
}

func (r *MatchTypeRepository) List(ctx context.Context) ([]matchtype.MatchType, error) {
	return r.inner.List(ctx)
}
