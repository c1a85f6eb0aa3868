package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/league-ingest/internal/domain/agegroup"
	"github.com/riskibarqy/league-ingest/internal/domain/division"
	"github.com/riskibarqy/league-ingest/internal/domain/match"
	"github.com/riskibarqy/league-ingest/internal/domain/matchtype"
	"github.com/riskibarqy/league-ingest/internal/domain/schema"
	"github.com/riskibarqy/league-ingest/internal/domain/season"
	"github.com/riskibarqy/league-ingest/internal/domain/team"
)

// MatchRecord is one untrusted record as the scraper submits it. Teams may
// arrive as internal ids or as free-text names plus a source tag.
type MatchRecord struct {
	HomeTeamID   *int64
	HomeTeamName string
	AwayTeamID   *int64
	AwayTeamName string
	MatchDate    string
	MatchTime    string
	HomeScore    *int
	AwayScore    *int
	Location     string
	Notes        string
	Status       string
	SeasonID     *int64
	AgeGroupID   *int64
	MatchTypeID  *int64
	DivisionID   *int64
	// LeagueID is never accepted on match records; league membership derives
	// from the division. Kept in the record shape so its presence can be
	// rejected explicitly instead of being silently dropped.
	LeagueID   *int64
	MatchID    string
	ExternalID string
	Source     string
}

// MatchValidator checks candidate records against the schema registry and the
// reference data. It collects every discoverable problem instead of stopping
// at the first one.
type MatchValidator struct {
	registry   *schema.Registry
	seasons    season.Repository
	ageGroups  agegroup.Repository
	matchTypes matchtype.Repository
	divisions  division.Repository
	teams      team.Repository
}

func NewMatchValidator(
	registry *schema.Registry,
	seasons season.Repository,
	ageGroups agegroup.Repository,
	matchTypes matchtype.Repository,
	divisions division.Repository,
	teams team.Repository,
) *MatchValidator {
	return &MatchValidator{
		registry:   registry,
		seasons:    seasons,
		ageGroups:  ageGroups,
		matchTypes: matchTypes,
		divisions:  divisions,
		teams:      teams,
	}
}

// ValidateFields runs the pure presence and type checks for version. It never
// touches the store.
func (v *MatchValidator) ValidateFields(version schema.Version, rec MatchRecord) []FieldError {
	fields, err := v.registry.Fields(schema.EntityMatch, version)
	if err != nil {
		return []FieldError{{Field: "schema_version", Reason: err.Error()}}
	}

	var out []FieldError

	if rec.HomeTeamID == nil && strings.TrimSpace(rec.HomeTeamName) == "" {
		out = append(out, FieldError{Field: "home_team", Reason: "home_team_id or home_team_name is required"})
	}
	if rec.HomeTeamID != nil && *rec.HomeTeamID <= 0 {
		out = append(out, FieldError{Field: "home_team_id", Reason: "must be a positive integer"})
	}
	if rec.AwayTeamID == nil && strings.TrimSpace(rec.AwayTeamName) == "" {
		out = append(out, FieldError{Field: "away_team", Reason: "away_team_id or away_team_name is required"})
	}
	if rec.AwayTeamID != nil && *rec.AwayTeamID <= 0 {
		out = append(out, FieldError{Field: "away_team_id", Reason: "must be a positive integer"})
	}
	if strings.TrimSpace(rec.HomeTeamName) != "" || strings.TrimSpace(rec.AwayTeamName) != "" {
		if strings.TrimSpace(rec.Source) == "" {
			out = append(out, FieldError{Field: "source", Reason: "required when teams are supplied by name"})
		}
	}

	out = append(out, checkRequiredID(fields, "season_id", rec.SeasonID)...)
	out = append(out, checkRequiredID(fields, "age_group_id", rec.AgeGroupID)...)
	out = append(out, checkRequiredID(fields, "match_type_id", rec.MatchTypeID)...)
	out = append(out, checkRequiredID(fields, "division_id", rec.DivisionID)...)

	if strings.TrimSpace(rec.MatchDate) == "" {
		out = append(out, FieldError{Field: "match_date", Reason: "required"})
	} else if _, err := time.Parse(time.DateOnly, strings.TrimSpace(rec.MatchDate)); err != nil {
		out = append(out, FieldError{Field: "match_date", Reason: "must be an ISO-8601 date (YYYY-MM-DD)"})
	}
	if strings.TrimSpace(rec.MatchTime) != "" {
		if _, err := time.Parse("15:04", strings.TrimSpace(rec.MatchTime)); err != nil {
			out = append(out, FieldError{Field: "match_time", Reason: "must be a 24h time (HH:MM)"})
		}
	}

	if rec.HomeScore != nil && *rec.HomeScore < 0 {
		out = append(out, FieldError{Field: "home_score", Reason: "cannot be negative"})
	}
	if rec.AwayScore != nil && *rec.AwayScore < 0 {
		out = append(out, FieldError{Field: "away_score", Reason: "cannot be negative"})
	}

	// Derive, don't require: league membership follows from division_id and
	// producers must not supply it directly.
	if rec.LeagueID != nil {
		out = append(out, FieldError{Field: "league_id", Reason: "not accepted on match records; league is derived from division_id"})
	}

	if rec.HomeTeamID != nil && rec.AwayTeamID != nil && *rec.HomeTeamID == *rec.AwayTeamID && *rec.HomeTeamID > 0 {
		out = append(out, FieldError{Field: "away_team_id", Reason: "home and away team cannot be the same"})
	}

	return out
}

// Normalize converts a field-valid record plus resolved team ids into the
// canonical domain shape. ValidateFields must have passed first.
func (v *MatchValidator) Normalize(rec MatchRecord, homeTeamID, awayTeamID int64) match.Match {
	date, _ := time.Parse(time.DateOnly, strings.TrimSpace(rec.MatchDate))

	m := match.Match{
		HomeTeamID:      homeTeamID,
		AwayTeamID:      awayTeamID,
		HomeScore:       rec.HomeScore,
		AwayScore:       rec.AwayScore,
		MatchDate:       date,
		SeasonID:        deref(rec.SeasonID),
		AgeGroupID:      deref(rec.AgeGroupID),
		MatchTypeID:     deref(rec.MatchTypeID),
		DivisionID:      deref(rec.DivisionID),
		Status:          match.NormalizeStatus(rec.Status),
		ExternalMatchID: match.NormalizeExternalMatchID(rec.MatchID),
		Source:          strings.ToLower(strings.TrimSpace(rec.Source)),
	}
	if t := strings.TrimSpace(rec.MatchTime); t != "" {
		m.MatchTime = &t
	}
	if loc := strings.TrimSpace(rec.Location); loc != "" {
		m.Location = &loc
	}
	if notes := strings.TrimSpace(rec.Notes); notes != "" {
		m.Notes = &notes
	}
	if ref := strings.TrimSpace(rec.ExternalID); ref != "" {
		m.ExternalRef = &ref
	}
	return m
}

// CheckReferences verifies every foreign key on a normalized match, plus the
// self-match rule once both team ids are known. The returned error is only
// for store failures; referential problems come back as field errors.
func (v *MatchValidator) CheckReferences(ctx context.Context, m match.Match) ([]FieldError, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchValidator.CheckReferences")
	defer span.End()

	var out []FieldError

	if m.HomeTeamID == m.AwayTeamID {
		out = append(out, FieldError{Field: "away_team_id", Reason: "home and away team cannot be the same"})
	}

	if m.HomeTeamID > 0 {
		if _, ok, err := v.teams.GetByID(ctx, m.HomeTeamID); err != nil {
			return nil, storeError(err, "get home team %d", m.HomeTeamID)
		} else if !ok {
			out = append(out, FieldError{Field: "home_team_id", Reason: fmt.Sprintf("team %d does not exist", m.HomeTeamID)})
		}
	}
	if m.AwayTeamID > 0 {
		if _, ok, err := v.teams.GetByID(ctx, m.AwayTeamID); err != nil {
			return nil, storeError(err, "get away team %d", m.AwayTeamID)
		} else if !ok {
			out = append(out, FieldError{Field: "away_team_id", Reason: fmt.Sprintf("team %d does not exist", m.AwayTeamID)})
		}
	}

	if _, ok, err := v.seasons.GetByID(ctx, m.SeasonID); err != nil {
		return nil, storeError(err, "get season %d", m.SeasonID)
	} else if !ok {
		out = append(out, FieldError{Field: "season_id", Reason: fmt.Sprintf("season %d does not exist", m.SeasonID)})
	}

	if _, ok, err := v.ageGroups.GetByID(ctx, m.AgeGroupID); err != nil {
		return nil, storeError(err, "get age group %d", m.AgeGroupID)
	} else if !ok {
		out = append(out, FieldError{Field: "age_group_id", Reason: fmt.Sprintf("age group %d does not exist", m.AgeGroupID)})
	}

	if _, ok, err := v.matchTypes.GetByID(ctx, m.MatchTypeID); err != nil {
		return nil, storeError(err, "get match type %d", m.MatchTypeID)
	} else if !ok {
		out = append(out, FieldError{Field: "match_type_id", Reason: fmt.Sprintf("match type %d does not exist", m.MatchTypeID)})
	}

	// The division check also covers the league transitively: a division row
	// cannot exist without a league behind it.
	if _, ok, err := v.divisions.GetByID(ctx, m.DivisionID); err != nil {
		return nil, storeError(err, "get division %d", m.DivisionID)
	} else if !ok {
		out = append(out, FieldError{Field: "division_id", Reason: fmt.Sprintf("division %d does not exist", m.DivisionID)})
	}

	return out, nil
}

func checkRequiredID(fields schema.FieldSet, name string, value *int64) []FieldError {
	if value == nil {
		if fields.IsRequired(name) {
			return []FieldError{{Field: name, Reason: "required"}}
		}
		return nil
	}
	if *value <= 0 {
		return []FieldError{{Field: name, Reason: "must be a positive integer"}}
	}
	return nil
}

func deref(v *int64) int64 {
	if v == nil {
		return 0
	}
	return *v
}
