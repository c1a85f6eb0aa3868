package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/league-ingest/internal/domain/league"
	"github.com/riskibarqy/league-ingest/internal/domain/schema"
	"github.com/riskibarqy/league-ingest/internal/infrastructure/repository/memory"
)

func newTestDivisionService() (*DivisionService, *memory.LeagueRepository) {
	return newTestDivisionServiceWithConfig(DivisionConfig{})
}

func newTestDivisionServiceWithConfig(cfg DivisionConfig) (*DivisionService, *memory.LeagueRepository) {
	leagues := memory.NewLeagueRepository(memory.SeedLeagues())
	divisions := memory.NewDivisionRepository(memory.SeedDivisions())
	teams := memory.NewTeamRepository(memory.SeedTeams())
	matches := memory.NewMatchRepository()
	return NewDivisionService(schema.NewRegistry(), divisions, leagues, teams, matches, cfg), leagues
}

func TestDivisionCreate_CurrentVersionRequiresLeague(t *testing.T) {
	t.Parallel()

	service, _ := newTestDivisionService()
	_, err := service.Create(context.Background(), "v2", CreateDivisionInput{Name: "Second", Level: 3})

	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected a validation rejection, got %v", err)
	}
	fields := RejectionFields(err)
	if len(fields) != 1 || fields[0].Field != "league_id" {
		t.Fatalf("expected a single league_id rejection, got %v", fields)
	}
}

func TestDivisionCreate_LegacyVersionFallsBackToDefaultLeague(t *testing.T) {
	t.Parallel()

	service, leagues := newTestDivisionService()
	ctx := context.Background()

	created, err := service.Create(ctx, "v1", CreateDivisionInput{Name: "Second", Level: 3})
	if err != nil {
		t.Fatalf("legacy create: %v", err)
	}

	fallback, ok, err := leagues.GetByName(ctx, league.DefaultName)
	if err != nil || !ok {
		t.Fatalf("default league must exist after a legacy create: ok=%v err=%v", ok, err)
	}
	if created.LeagueID != fallback.ID {
		t.Fatalf("division landed in league %d, want default league %d", created.LeagueID, fallback.ID)
	}

	// A second legacy create reuses the same default league.
	again, err := service.Create(ctx, "v1", CreateDivisionInput{Name: "Third", Level: 4})
	if err != nil {
		t.Fatalf("second legacy create: %v", err)
	}
	if again.LeagueID != fallback.ID {
		t.Fatalf("default league must not be duplicated")
	}
}

func TestDivisionCreate_ConfiguredDefaultLeagueName(t *testing.T) {
	t.Parallel()

	service, leagues := newTestDivisionServiceWithConfig(DivisionConfig{DefaultLeagueName: "National League"})
	ctx := context.Background()

	created, err := service.Create(ctx, "v1", CreateDivisionInput{Name: "Second", Level: 3})
	if err != nil {
		t.Fatalf("legacy create: %v", err)
	}

	configured, ok, err := leagues.GetByName(ctx, "National League")
	if err != nil || !ok {
		t.Fatalf("configured fallback league must exist: ok=%v err=%v", ok, err)
	}
	if created.LeagueID != configured.ID {
		t.Fatalf("division landed in league %d, want configured league %d", created.LeagueID, configured.ID)
	}

	// The built-in name is only the fallback for an empty setting.
	if _, ok, _ := leagues.GetByName(ctx, league.DefaultName); ok {
		t.Fatalf("the built-in default league must not appear when a name is configured")
	}
}

func TestDivisionCreate_DuplicatePerLeague(t *testing.T) {
	t.Parallel()

	service, _ := newTestDivisionService()
	ctx := context.Background()
	metro := memory.LeagueIDMetro

	existing, err := service.Create(ctx, "v2", CreateDivisionInput{Name: "Premier", Level: 1, LeagueID: &metro})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict for duplicate (name, league), got %v", err)
	}
	if existing.ID != memory.DivisionIDMetroPremier {
		t.Fatalf("conflict must return the existing division, got %d", existing.ID)
	}

	// The same name in another league is a different division.
	regional := memory.LeagueIDRegional
	created, err := service.Create(ctx, "v2", CreateDivisionInput{Name: "First", Level: 2, LeagueID: &regional})
	if err != nil {
		t.Fatalf("same name in a different league: %v", err)
	}
	if created.LeagueID != regional {
		t.Fatalf("division landed in league %d, want %d", created.LeagueID, regional)
	}
}

func TestDivisionCreate_UnknownLeague(t *testing.T) {
	t.Parallel()

	service, _ := newTestDivisionService()
	ghost := int64(999)
	_, err := service.Create(context.Background(), "v2", CreateDivisionInput{Name: "Second", Level: 3, LeagueID: &ghost})
	if !errors.Is(err, ErrReferential) {
		t.Fatalf("expected ErrReferential for unknown league, got %v", err)
	}
}

func TestDivisionListByLeague(t *testing.T) {
	t.Parallel()

	service, _ := newTestDivisionService()
	ctx := context.Background()

	items, err := service.ListByLeague(ctx, memory.LeagueIDMetro)
	if err != nil {
		t.Fatalf("list divisions: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("got %d metro divisions, want 2", len(items))
	}

	if _, err := service.ListByLeague(ctx, 999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown league, got %v", err)
	}
}

func TestDivisionListTeamsAndMatches(t *testing.T) {
	t.Parallel()

	service, _ := newTestDivisionService()
	ctx := context.Background()

	teams, err := service.ListTeams(ctx, memory.DivisionIDMetroPremier)
	if err != nil {
		t.Fatalf("list teams: %v", err)
	}
	if len(teams) != 2 {
		t.Fatalf("got %d teams in the premier division, want 2", len(teams))
	}

	matches, err := service.ListMatches(ctx, memory.DivisionIDMetroPremier)
	if err != nil {
		t.Fatalf("list matches: %v", err)
	}
	if len(matches) != 0 {
		t.Fatalf("no matches ingested yet, got %d", len(matches))
	}

	if _, err := service.ListTeams(ctx, 999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown division, got %v", err)
	}
	if _, err := service.ListMatches(ctx, 999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown division, got %v", err)
	}
}

func TestLeagueForDivision(t *testing.T) {
	t.Parallel()

	service, _ := newTestDivisionService()
	ctx := context.Background()

	lg, err := service.LeagueForDivision(ctx, memory.DivisionIDRegionalPremier)
	if err != nil {
		t.Fatalf("derive league: %v", err)
	}
	if lg.ID != memory.LeagueIDRegional {
		t.Fatalf("division %d derived league %d, want %d", memory.DivisionIDRegionalPremier, lg.ID, memory.LeagueIDRegional)
	}

	if _, err := service.LeagueForDivision(ctx, 999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown division, got %v", err)
	}
}
