package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/league-ingest/internal/domain/division"
	qb "github.com/riskibarqy/league-ingest/internal/platform/querybuilder"
)

type DivisionRepository struct {
	db *sqlx.DB
}

func NewDivisionRepository(db *sqlx.DB) *DivisionRepository {
	return &DivisionRepository{db: db}
}

func (r *DivisionRepository) GetByID(ctx context.Context, id int64) (division.Division, bool, error) {
	query, args, err := qb.Select("*").From("divisions").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return division.Division{}, false, fmt.Errorf("build get division by id query: %w", err)
	}

	var row divisionTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return division.Division{}, false, nil
		}
		return division.Division{}, false, markUnavailable(fmt.Errorf("get division by id: %w", err))
	}

	return row.toDomain(), true, nil
}

func (r *DivisionRepository) GetByNameAndLeague(ctx context.Context, name string, leagueID int64) (division.Division, bool, error) {
	query, args, err := qb.Select("*").From("divisions").
		Where(
			qb.Eq("name", name),
			qb.Eq("league_id", leagueID),
		).
		ToSQL()
	if err != nil {
		return division.Division{}, false, fmt.Errorf("build get division by name query: %w", err)
	}

	var row divisionTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return division.Division{}, false, nil
		}
		return division.Division{}, false, markUnavailable(fmt.Errorf("get division by name: %w", err))
	}

	return row.toDomain(), true, nil
}

func (r *DivisionRepository) Create(ctx context.Context, item division.Division) (division.Division, error) {
	query, args, err := qb.InsertModel("divisions", divisionInsertModel{
		Name:     item.Name,
		Level:    item.Level,
		LeagueID: item.LeagueID,
	}, "RETURNING id")
	if err != nil {
		return division.Division{}, fmt.Errorf("build insert division query: %w", err)
	}

	if err := r.db.GetContext(ctx, &item.ID, query, args...); err != nil {
		return division.Division{}, markUnavailable(fmt.Errorf("insert division: %w", err))
	}
	return item, nil
}

func (r *DivisionRepository) ListByLeague(ctx context.Context, leagueID int64) ([]division.Division, error) {
	query, args, err := qb.Select("*").From("divisions").
		Where(qb.Eq("league_id", leagueID)).
		OrderBy("level", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select divisions query: %w", err)
	}

	var rows []divisionTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, markUnavailable(fmt.Errorf("select divisions: %w", err))
	}

	out := make([]division.Division, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (m divisionTableModel) toDomain() division.Division {
	return division.Division{ID: m.ID, Name: m.Name, Level: m.Level, LeagueID: m.LeagueID}
}
