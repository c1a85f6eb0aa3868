package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/league-ingest/internal/domain/division"
	"github.com/riskibarqy/league-ingest/internal/domain/league"
	"github.com/riskibarqy/league-ingest/internal/domain/match"
	"github.com/riskibarqy/league-ingest/internal/domain/schema"
	"github.com/riskibarqy/league-ingest/internal/domain/team"
)

// CreateDivisionInput is an administrative division-create request.
type CreateDivisionInput struct {
	Name     string
	Level    int
	LeagueID *int64
}

// DivisionConfig carries the default-league assignment policy. The name is a
// deployment choice, not a code constant.
type DivisionConfig struct {
	DefaultLeagueName string
}

// DivisionService handles division administration and the transitive
// division → league derivation the ingestion path relies on.
type DivisionService struct {
	registry  *schema.Registry
	divisions division.Repository
	leagues   league.Repository
	teams     team.Repository
	matches   match.Repository
	cfg       DivisionConfig
}

func NewDivisionService(
	registry *schema.Registry,
	divisions division.Repository,
	leagues league.Repository,
	teams team.Repository,
	matches match.Repository,
	cfg DivisionConfig,
) *DivisionService {
	return &DivisionService{
		registry:  registry,
		divisions: divisions,
		leagues:   leagues,
		teams:     teams,
		matches:   matches,
		cfg:       cfg,
	}
}

func (s *DivisionService) defaultLeagueName() string {
	if name := strings.TrimSpace(s.cfg.DefaultLeagueName); name != "" {
		return name
	}
	return league.DefaultName
}

// Create validates a division-create request against the tagged schema
// version and persists it. From the version that introduced leagues,
// league_id is a hard requirement: requests without it are rejected, never
// defaulted.
func (s *DivisionService) Create(ctx context.Context, versionTag string, input CreateDivisionInput) (division.Division, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DivisionService.Create")
	defer span.End()

	version, err := s.registry.ParseVersion(versionTag)
	if err != nil {
		return division.Division{}, fmt.Errorf("%w: %s", ErrSchemaVersion, err)
	}

	fields, err := s.registry.Fields(schema.EntityDivision, version)
	if err != nil {
		return division.Division{}, fmt.Errorf("%w: %s", ErrSchemaVersion, err)
	}

	var reasons []FieldError
	name := strings.TrimSpace(input.Name)
	if name == "" {
		reasons = append(reasons, FieldError{Field: "name", Reason: "required"})
	}
	if input.Level <= 0 {
		reasons = append(reasons, FieldError{Field: "level", Reason: "must be a positive integer"})
	}
	if fields.IsRequired("league_id") {
		if input.LeagueID == nil {
			reasons = append(reasons, FieldError{Field: "league_id", Reason: "required"})
		} else if *input.LeagueID <= 0 {
			reasons = append(reasons, FieldError{Field: "league_id", Reason: "must be a positive integer"})
		}
	}
	if len(reasons) > 0 {
		return division.Division{}, &RejectionError{Fields: reasons}
	}

	var leagueID int64
	if input.LeagueID != nil {
		leagueID = *input.LeagueID
		if _, ok, err := s.leagues.GetByID(ctx, leagueID); err != nil {
			return division.Division{}, storeError(err, "get league %d", leagueID)
		} else if !ok {
			return division.Division{}, fmt.Errorf("%w: league %d", ErrReferential, leagueID)
		}
	} else {
		// Pre-league requests cannot name a parent, so the division lands in
		// the configured default league, same as the backfill migration did.
		fallbackName := s.defaultLeagueName()
		fallback, ok, err := s.leagues.GetByName(ctx, fallbackName)
		if err != nil {
			return division.Division{}, storeError(err, "get league %q", fallbackName)
		}
		if !ok {
			fallback, err = s.leagues.Create(ctx, league.League{Name: fallbackName, Active: true})
			if err != nil {
				return division.Division{}, storeError(err, "create league %q", fallbackName)
			}
		}
		leagueID = fallback.ID
	}

	if existing, ok, err := s.divisions.GetByNameAndLeague(ctx, name, leagueID); err != nil {
		return division.Division{}, storeError(err, "get division (%s, %d)", name, leagueID)
	} else if ok {
		// Same (name, league) pair already exists; the same name under a
		// different league is a distinct division and falls through.
		return existing, fmt.Errorf("%w: division %q already exists in league %d", ErrConflict, name, leagueID)
	}

	created, err := s.divisions.Create(ctx, division.Division{
		Name:     name,
		Level:    input.Level,
		LeagueID: leagueID,
	})
	if err != nil {
		return division.Division{}, storeError(err, "create division %q", name)
	}
	return created, nil
}

func (s *DivisionService) ListByLeague(ctx context.Context, leagueID int64) ([]division.Division, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DivisionService.ListByLeague")
	defer span.End()

	if _, ok, err := s.leagues.GetByID(ctx, leagueID); err != nil {
		return nil, storeError(err, "get league %d", leagueID)
	} else if !ok {
		return nil, fmt.Errorf("%w: league %d", ErrNotFound, leagueID)
	}

	out, err := s.divisions.ListByLeague(ctx, leagueID)
	if err != nil {
		return nil, storeError(err, "list divisions for league %d", leagueID)
	}
	return out, nil
}

// LeagueForDivision follows division_id → league_id. This is the only way a
// match is associated with a league; producers never supply it.
func (s *DivisionService) LeagueForDivision(ctx context.Context, divisionID int64) (league.League, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DivisionService.LeagueForDivision")
	defer span.End()

	div, ok, err := s.divisions.GetByID(ctx, divisionID)
	if err != nil {
		return league.League{}, storeError(err, "get division %d", divisionID)
	}
	if !ok {
		return league.League{}, fmt.Errorf("%w: division %d", ErrNotFound, divisionID)
	}

	lg, ok, err := s.leagues.GetByID(ctx, div.LeagueID)
	if err != nil {
		return league.League{}, storeError(err, "get league %d", div.LeagueID)
	}
	if !ok {
		return league.League{}, fmt.Errorf("%w: league %d referenced by division %d", ErrNotFound, div.LeagueID, divisionID)
	}
	return lg, nil
}

// ListTeams returns the teams registered in a division.
func (s *DivisionService) ListTeams(ctx context.Context, divisionID int64) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DivisionService.ListTeams")
	defer span.End()

	if err := s.requireDivision(ctx, divisionID); err != nil {
		return nil, err
	}

	out, err := s.teams.ListByDivision(ctx, divisionID)
	if err != nil {
		return nil, storeError(err, "list teams for division %d", divisionID)
	}
	return out, nil
}

// ListMatches returns the ingested matches of a division in date order.
func (s *DivisionService) ListMatches(ctx context.Context, divisionID int64) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DivisionService.ListMatches")
	defer span.End()

	if err := s.requireDivision(ctx, divisionID); err != nil {
		return nil, err
	}

	out, err := s.matches.ListByDivision(ctx, divisionID)
	if err != nil {
		return nil, storeError(err, "list matches for division %d", divisionID)
	}
	return out, nil
}

func (s *DivisionService) requireDivision(ctx context.Context, divisionID int64) error {
	if _, ok, err := s.divisions.GetByID(ctx, divisionID); err != nil {
		return storeError(err, "get division %d", divisionID)
	} else if !ok {
		return fmt.Errorf("%w: division %d", ErrNotFound, divisionID)
	}
	return nil
}
