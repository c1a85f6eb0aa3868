package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/league-ingest/internal/domain/league"
	qb "github.com/riskibarqy/league-ingest/internal/platform/querybuilder"
)

type LeagueRepository struct {
	db *sqlx.DB
}

func NewLeagueRepository(db *sqlx.DB) *LeagueRepository {
	return &LeagueRepository{db: db}
}

func (r *LeagueRepository) GetByID(ctx context.Context, id int64) (league.League, bool, error) {
	query, args, err := qb.Select("*").From("leagues").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return league.League{}, false, fmt.Errorf("build get league by id query: %w", err)
	}

	var row leagueTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return league.League{}, false, nil
		}
		return league.League{}, false, markUnavailable(fmt.Errorf("get league by id: %w", err))
	}

	return row.toDomain(), true, nil
}

func (r *LeagueRepository) GetByName(ctx context.Context, name string) (league.League, bool, error) {
	query, args, err := qb.Select("*").From("leagues").
		Where(qb.Eq("name", name)).
		ToSQL()
	if err != nil {
		return league.League{}, false, fmt.Errorf("build get league by name query: %w", err)
	}

	var row leagueTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return league.League{}, false, nil
		}
		return league.League{}, false, markUnavailable(fmt.Errorf("get league by name: %w", err))
	}

	return row.toDomain(), true, nil
}

func (r *LeagueRepository) Create(ctx context.Context, item league.League) (league.League, error) {
	query, args, err := qb.InsertModel("leagues", leagueInsertModel{
		Name:   item.Name,
		Active: item.Active,
	}, "RETURNING id")
	if err != nil {
		return league.League{}, fmt.Errorf("build insert league query: %w", err)
	}

	if err := r.db.GetContext(ctx, &item.ID, query, args...); err != nil {
		return league.League{}, markUnavailable(fmt.Errorf("insert league: %w", err))
	}
	return item, nil
}

func (r *LeagueRepository) List(ctx context.Context) ([]league.League, error) {
	query, args, err := qb.Select("*").From("leagues").
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select leagues query: %w", err)
	}

	var rows []leagueTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, markUnavailable(fmt.Errorf("select leagues: %w", err))
	}

	out := make([]league.League, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (m leagueTableModel) toDomain() league.League {
	return league.League{ID: m.ID, Name: m.Name, Active: m.Active}
}
