package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/league-ingest/internal/domain/agegroup"
	qb "github.com/riskibarqy/league-ingest/internal/platform/querybuilder"
)

type ageGroupTableModel struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type AgeGroupRepository struct {
	db *sqlx.DB
}

func NewAgeGroupRepository(db *sqlx.DB) *AgeGroupRepository {
	return &AgeGroupRepository{db: db}
}

func (r *AgeGroupRepository) GetByID(ctx context.Context, id int64) (agegroup.AgeGroup, bool, error) {
	query, args, err := qb.Select("*").From("age_groups").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return agegroup.AgeGroup{}, false, fmt.Errorf("build get age group by id query: %w", err)
	}

	var row ageGroupTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return agegroup.AgeGroup{}, false, nil
		}
		return agegroup.AgeGroup{}, false, markUnavailable(fmt.Errorf("get age group by id: %w", err))
	}

	return agegroup.AgeGroup{ID: row.ID, Name: row.Name}, true, nil
}

func (r *AgeGroupRepository) List(ctx context.Context) ([]agegroup.AgeGroup, error) {
	query, args, err := qb.Select("*").From("age_groups").
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select age groups query: %w", err)
	}

	var rows []ageGroupTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, markUnavailable(fmt.Errorf("select age groups: %w", err))
	}

	out := make([]agegroup.AgeGroup, 0, len(rows))
	for _, row := range rows {
		out = append(out, agegroup.AgeGroup{ID: row.ID, Name: row.Name})
	}
	return out, nil
}
