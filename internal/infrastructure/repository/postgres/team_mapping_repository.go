package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/league-ingest/internal/domain/teammapping"
	qb "github.com/riskibarqy/league-ingest/internal/platform/querybuilder"
)

type teamMappingTableModel struct {
	ID           int64     `db:"id"`
	ExternalName string    `db:"external_name"`
	TeamID       int64     `db:"team_id"`
	Source       string    `db:"source"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

type teamMappingInsertModel struct {
	ExternalName string `db:"external_name"`
	TeamID       int64  `db:"team_id"`
	Source       string `db:"source"`
}

type TeamMappingRepository struct {
	db *sqlx.DB
}

func NewTeamMappingRepository(db *sqlx.DB) *TeamMappingRepository {
	return &TeamMappingRepository{db: db}
}

func (r *TeamMappingRepository) GetByNameAndSource(ctx context.Context, externalName, source string) (teammapping.Mapping, bool, error) {
	query, args, err := qb.Select("*").From("team_mappings").
		Where(
			qb.Eq("external_name", externalName),
			qb.Eq("source", source),
		).
		ToSQL()
	if err != nil {
		return teammapping.Mapping{}, false, fmt.Errorf("build get team mapping query: %w", err)
	}

	var row teamMappingTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return teammapping.Mapping{}, false, nil
		}
		return teammapping.Mapping{}, false, markUnavailable(fmt.Errorf("get team mapping: %w", err))
	}

	return row.toDomain(), true, nil
}

func (r *TeamMappingRepository) Create(ctx context.Context, item teammapping.Mapping) (teammapping.Mapping, error) {
	query, args, err := qb.InsertModel("team_mappings", teamMappingInsertModel{
		ExternalName: item.ExternalName,
		TeamID:       item.TeamID,
		Source:       item.Source,
	}, "RETURNING id")
	if err != nil {
		return teammapping.Mapping{}, fmt.Errorf("build insert team mapping query: %w", err)
	}

	if err := r.db.GetContext(ctx, &item.ID, query, args...); err != nil {
		if isUniqueViolation(err) {
			return teammapping.Mapping{}, fmt.Errorf("mapping (%s, %s) already exists: %w", item.ExternalName, item.Source, err)
		}
		return teammapping.Mapping{}, markUnavailable(fmt.Errorf("insert team mapping: %w", err))
	}
	return item, nil
}

func (r *TeamMappingRepository) List(ctx context.Context) ([]teammapping.Mapping, error) {
	query, args, err := qb.Select("*").From("team_mappings").
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select team mappings query: %w", err)
	}

	var rows []teamMappingTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, markUnavailable(fmt.Errorf("select team mappings: %w", err))
	}

	out := make([]teammapping.Mapping, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (m teamMappingTableModel) toDomain() teammapping.Mapping {
	return teammapping.Mapping{ID: m.ID, ExternalName: m.ExternalName, TeamID: m.TeamID, Source: m.Source}
}
