package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/league-ingest/internal/domain/team"
	qb "github.com/riskibarqy/league-ingest/internal/platform/querybuilder"
)

type teamTableModel struct {
	ID         int64     `db:"id"`
	Name       string    `db:"name"`
	AgeGroupID int64     `db:"age_group_id"`
	DivisionID int64     `db:"division_id"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

type teamMatchTypeInsertModel struct {
	TeamID      int64 `db:"team_id"`
	MatchTypeID int64 `db:"match_type_id"`
}

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) GetByID(ctx context.Context, id int64) (team.Team, bool, error) {
	query, args, err := qb.Select("*").From("teams").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return team.Team{}, false, fmt.Errorf("build get team by id query: %w", err)
	}

	var row teamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, markUnavailable(fmt.Errorf("get team by id: %w", err))
	}

	return row.toDomain(), true, nil
}

func (r *TeamRepository) ListByDivision(ctx context.Context, divisionID int64) ([]team.Team, error) {
	query, args, err := qb.Select("*").From("teams").
		Where(qb.Eq("division_id", divisionID)).
		OrderBy("name", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select teams query: %w", err)
	}

	var rows []teamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, markUnavailable(fmt.Errorf("select teams: %w", err))
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

// LinkMatchType is idempotent: replaying the same pairing is a no-op thanks to
// the (team_id, match_type_id) unique index.
func (r *TeamRepository) LinkMatchType(ctx context.Context, teamID, matchTypeID int64) error {
	query, args, err := qb.InsertModel("team_match_types", teamMatchTypeInsertModel{
		TeamID:      teamID,
		MatchTypeID: matchTypeID,
	}, "ON CONFLICT (team_id, match_type_id) DO NOTHING")
	if err != nil {
		return fmt.Errorf("build insert team match type query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return markUnavailable(fmt.Errorf("insert team match type: %w", err))
	}
	return nil
}

func (m teamTableModel) toDomain() team.Team {
	return team.Team{ID: m.ID, Name: m.Name, AgeGroupID: m.AgeGroupID, DivisionID: m.DivisionID}
}
