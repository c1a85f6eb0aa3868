package usecase

import (
	"context"
	"testing"

	"github.com/riskibarqy/league-ingest/internal/domain/schema"
	"github.com/riskibarqy/league-ingest/internal/infrastructure/repository/memory"
)

func newTestValidator() *MatchValidator {
	return NewMatchValidator(
		schema.NewRegistry(),
		memory.NewSeasonRepository(memory.SeedSeasons()),
		memory.NewAgeGroupRepository(memory.SeedAgeGroups()),
		memory.NewMatchTypeRepository(memory.SeedMatchTypes()),
		memory.NewDivisionRepository(memory.SeedDivisions()),
		memory.NewTeamRepository(memory.SeedTeams()),
	)
}

func i64(v int64) *int64 { return &v }
func intp(v int) *int    { return &v }

// validRecord is a complete scraper record against the seeded reference data.
func validRecord() MatchRecord {
	return MatchRecord{
		HomeTeamID:  i64(memory.TeamIDNorthsideOpen),
		AwayTeamID:  i64(memory.TeamIDHarborOpen),
		MatchDate:   "2026-04-12",
		SeasonID:    i64(memory.SeasonID2026),
		AgeGroupID:  i64(memory.AgeGroupIDOpen),
		MatchTypeID: i64(memory.MatchTypeIDLeague),
		DivisionID:  i64(memory.DivisionIDMetroPremier),
	}
}

func hasField(t *testing.T, reasons []FieldError, field string) bool {
	t.Helper()
	for _, r := range reasons {
		if r.Field == field {
			return true
		}
	}
	return false
}

func TestValidateFields_AcceptsCompleteRecord(t *testing.T) {
	t.Parallel()

	v := newTestValidator()
	if reasons := v.ValidateFields(schema.Current, validRecord()); len(reasons) > 0 {
		t.Fatalf("unexpected rejections: %v", reasons)
	}
}

func TestValidateFields_TeamsByNameNeedASource(t *testing.T) {
	t.Parallel()

	v := newTestValidator()

	rec := validRecord()
	rec.HomeTeamID = nil
	rec.HomeTeamName = "Northside F.C."
	rec.Source = ""
	reasons := v.ValidateFields(schema.Current, rec)
	if !hasField(t, reasons, "source") {
		t.Fatalf("expected source to be required with named teams, got %v", reasons)
	}

	rec.Source = "scraper"
	if reasons := v.ValidateFields(schema.Current, rec); len(reasons) > 0 {
		t.Fatalf("name plus source must be a valid team reference: %v", reasons)
	}

	rec.HomeTeamName = ""
	if reasons := v.ValidateFields(schema.Current, rec); !hasField(t, reasons, "home_team") {
		t.Fatalf("expected home team to be required, got %v", reasons)
	}
}

func TestValidateFields_RejectsLeagueID(t *testing.T) {
	t.Parallel()

	v := newTestValidator()
	rec := validRecord()
	rec.LeagueID = i64(memory.LeagueIDMetro)

	reasons := v.ValidateFields(schema.Current, rec)
	if len(reasons) != 1 || reasons[0].Field != "league_id" {
		t.Fatalf("expected exactly one league_id rejection, got %v", reasons)
	}
	if reasons[0].Reason != "not accepted on match records; league is derived from division_id" {
		t.Fatalf("unexpected reason: %q", reasons[0].Reason)
	}
}

func TestValidateFields_ScoreBounds(t *testing.T) {
	t.Parallel()

	v := newTestValidator()

	rec := validRecord()
	rec.HomeScore = intp(-1)
	if reasons := v.ValidateFields(schema.Current, rec); !hasField(t, reasons, "home_score") {
		t.Fatalf("expected negative score rejection, got %v", reasons)
	}

	rec.HomeScore = intp(0)
	rec.AwayScore = intp(0)
	if reasons := v.ValidateFields(schema.Current, rec); len(reasons) > 0 {
		t.Fatalf("0-0 is a valid result: %v", reasons)
	}
}

func TestValidateFields_DateAndTimeFormats(t *testing.T) {
	t.Parallel()

	v := newTestValidator()

	rec := validRecord()
	rec.MatchDate = "12/04/2026"
	if reasons := v.ValidateFields(schema.Current, rec); !hasField(t, reasons, "match_date") {
		t.Fatalf("expected match_date rejection, got %v", reasons)
	}

	rec = validRecord()
	rec.MatchTime = "7pm"
	if reasons := v.ValidateFields(schema.Current, rec); !hasField(t, reasons, "match_time") {
		t.Fatalf("expected match_time rejection, got %v", reasons)
	}

	rec.MatchTime = "19:30"
	if reasons := v.ValidateFields(schema.Current, rec); len(reasons) > 0 {
		t.Fatalf("HH:MM must parse: %v", reasons)
	}
}

func TestValidateFields_SelfMatch(t *testing.T) {
	t.Parallel()

	v := newTestValidator()
	rec := validRecord()
	rec.AwayTeamID = rec.HomeTeamID

	if reasons := v.ValidateFields(schema.Current, rec); !hasField(t, reasons, "away_team_id") {
		t.Fatalf("expected self-match rejection, got %v", reasons)
	}
}

func TestValidateFields_CollectsEveryProblem(t *testing.T) {
	t.Parallel()

	v := newTestValidator()
	reasons := v.ValidateFields(schema.Current, MatchRecord{})

	for _, field := range []string{"home_team", "away_team", "match_date", "season_id", "age_group_id", "match_type_id", "division_id"} {
		if !hasField(t, reasons, field) {
			t.Fatalf("expected %s rejection in %v", field, reasons)
		}
	}
}

func TestCheckReferences(t *testing.T) {
	t.Parallel()

	v := newTestValidator()
	ctx := context.Background()

	t.Run("complete record passes", func(t *testing.T) {
		m := v.Normalize(validRecord(), memory.TeamIDNorthsideOpen, memory.TeamIDHarborOpen)
		reasons, err := v.CheckReferences(ctx, m)
		if err != nil {
			t.Fatalf("unexpected store error: %v", err)
		}
		if len(reasons) > 0 {
			t.Fatalf("unexpected rejections: %v", reasons)
		}
	})

	t.Run("unknown references are collected per field", func(t *testing.T) {
		rec := validRecord()
		rec.DivisionID = i64(99)
		rec.SeasonID = i64(99)
		m := v.Normalize(rec, memory.TeamIDNorthsideOpen, 999)

		reasons, err := v.CheckReferences(ctx, m)
		if err != nil {
			t.Fatalf("unexpected store error: %v", err)
		}
		for _, field := range []string{"away_team_id", "season_id", "division_id"} {
			if !hasField(t, reasons, field) {
				t.Fatalf("expected %s rejection in %v", field, reasons)
			}
		}
	})
}
