package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/league-ingest/internal/domain/match"
	qb "github.com/riskibarqy/league-ingest/internal/platform/querybuilder"
)

// matchConflictTarget mirrors the unique index on matches. match_id is NOT
// NULL DEFAULT '' so two rows both lacking an external id still collide here.
const matchConflictTarget = "(home_team_id, away_team_id, match_date, season_id, age_group_id, match_type_id, division_id, match_id)"

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

// Upsert writes the record idempotently. The INSERT ... ON CONFLICT DO
// NOTHING RETURNING id form is atomic: exactly one of two concurrent writers
// with the same canonical key gets a row back, the other falls through to the
// fetch-and-compare path. A 23505 raised by anything other than the canonical
// index is reported as a Conflict with the stored row untouched.
func (r *MatchRepository) Upsert(ctx context.Context, item match.Match) (match.UpsertResult, error) {
	item.ExternalMatchID = match.NormalizeExternalMatchID(item.ExternalMatchID)
	item.Status = match.NormalizeStatus(item.Status)
	if err := item.Validate(); err != nil {
		return match.UpsertResult{}, fmt.Errorf("upsert match: %w", err)
	}

	query, args, err := qb.InsertModel("matches", matchToInsertModel(item),
		"ON CONFLICT "+matchConflictTarget+" DO NOTHING RETURNING id")
	if err != nil {
		return match.UpsertResult{}, fmt.Errorf("build insert match query: %w", err)
	}

	var id int64
	insertErr := r.db.GetContext(ctx, &id, query, args...)
	if insertErr == nil {
		item.ID = id
		return match.UpsertResult{Outcome: match.OutcomeCreated, Match: item}, nil
	}
	if !isNotFound(insertErr) && !isUniqueViolation(insertErr) {
		return match.UpsertResult{}, markUnavailable(fmt.Errorf("insert match: %w", insertErr))
	}

	existing, ok, err := r.GetByKey(ctx, item.CanonicalKey())
	if err != nil {
		return match.UpsertResult{}, err
	}
	if !ok {
		if isUniqueViolation(insertErr) {
			// A secondary constraint fired and no row shares our key:
			// surface the conflict rather than guess at the owner.
			return match.UpsertResult{Outcome: match.OutcomeConflict}, nil
		}
		// The conflicting row vanished between insert and fetch. Treat as
		// retryable rather than looping here.
		return match.UpsertResult{}, markUnavailable(fmt.Errorf("match row disappeared after conflict: %w", insertErr))
	}

	if isUniqueViolation(insertErr) {
		return match.UpsertResult{Outcome: match.OutcomeConflict, Match: existing}, nil
	}
	if match.MutableFieldsEqual(existing, item) {
		return match.UpsertResult{Outcome: match.OutcomeUnchanged, Match: existing}, nil
	}

	merged := match.ApplyMutable(existing, item)
	updateQuery, updateArgs, err := qb.Update("matches").
		Set("home_score", nullInt(merged.HomeScore)).
		Set("away_score", nullInt(merged.AwayScore)).
		Set("status", merged.Status).
		Set("location", nullString(merged.Location)).
		Set("notes", nullString(merged.Notes)).
		Set("match_time", nullString(merged.MatchTime)).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", existing.ID)).
		ToSQL()
	if err != nil {
		return match.UpsertResult{}, fmt.Errorf("build update match query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, updateQuery, updateArgs...); err != nil {
		return match.UpsertResult{}, markUnavailable(fmt.Errorf("update match: %w", err))
	}

	return match.UpsertResult{Outcome: match.OutcomeUpdated, Match: merged}, nil
}

func (r *MatchRepository) GetByKey(ctx context.Context, key match.CanonicalKey) (match.Match, bool, error) {
	date, err := time.Parse(time.DateOnly, key.MatchDate)
	if err != nil {
		return match.Match{}, false, fmt.Errorf("parse canonical key date %q: %w", key.MatchDate, err)
	}

	query, args, err := qb.Select("*").From("matches").
		Where(
			qb.Eq("home_team_id", key.HomeTeamID),
			qb.Eq("away_team_id", key.AwayTeamID),
			qb.Eq("match_date", date),
			qb.Eq("season_id", key.SeasonID),
			qb.Eq("age_group_id", key.AgeGroupID),
			qb.Eq("match_type_id", key.MatchTypeID),
			qb.Eq("division_id", key.DivisionID),
			qb.Eq("match_id", key.ExternalMatchID),
		).
		ToSQL()
	if err != nil {
		return match.Match{}, false, fmt.Errorf("build get match by key query: %w", err)
	}

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, markUnavailable(fmt.Errorf("get match by key: %w", err))
	}

	return row.toDomain(), true, nil
}

func (r *MatchRepository) ListByDivision(ctx context.Context, divisionID int64) ([]match.Match, error) {
	query, args, err := qb.Select("*").From("matches").
		Where(qb.Eq("division_id", divisionID)).
		OrderBy("match_date", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select matches query: %w", err)
	}

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, markUnavailable(fmt.Errorf("select matches: %w", err))
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}
