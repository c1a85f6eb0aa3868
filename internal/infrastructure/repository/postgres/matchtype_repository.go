package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/league-ingest/internal/domain/matchtype"
	qb "github.com/riskibarqy/league-ingest/internal/platform/querybuilder"
)

type matchTypeTableModel struct {
	ID          int64          `db:"id"`
	Name        string         `db:"name"`
	Description sql.NullString `db:"description"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

type MatchTypeRepository struct {
	db *sqlx.DB
}

func NewMatchTypeRepository(db *sqlx.DB) *MatchTypeRepository {
	return &MatchTypeRepository{db: db}
}

func (r *MatchTypeRepository) GetByID(ctx context.Context, id int64) (matchtype.MatchType, bool, error) {
	query, args, err := qb.Select("*").From("match_types").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return matchtype.MatchType{}, false, fmt.Errorf("build get match type by id query: %w", err)
	}

	var row matchTypeTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return matchtype.MatchType{}, false, nil
		}
		return matchtype.MatchType{}, false, markUnavailable(fmt.Errorf("get match type by id: %w", err))
	}

	return row.toDomain(), true, nil
}

func (r *MatchTypeRepository) List(ctx context.Context) ([]matchtype.MatchType, error) {
	query, args, err := qb.Select("*").From("match_types").
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select match types query: %w", err)
	}

	var rows []matchTypeTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, markUnavailable(fmt.Errorf("select match types: %w", err))
	}

	out := make([]matchtype.MatchType, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (m matchTypeTableModel) toDomain() matchtype.MatchType {
	return matchtype.MatchType{ID: m.ID, Name: m.Name, Description: m.Description.String}
}
