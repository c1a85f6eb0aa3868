package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/league-ingest/internal/domain/team"
	"github.com/riskibarqy/league-ingest/internal/domain/teammapping"
	"github.com/riskibarqy/league-ingest/internal/platform/logging"
	"github.com/riskibarqy/league-ingest/internal/platform/resilience"
)

// ResolverConfig controls the rare auto-register side path. Normal
// resolution is read-only and fails closed.
type ResolverConfig struct {
	AutoRegister bool
}

// ResolverService maps scraper-supplied team names to internal team ids via
// the persisted mapping table. Lookup is exact on (external_name, source);
// there is no fuzzy matching, so an unmapped name is an operator problem, not
// a best-guess match.
type ResolverService struct {
	mappings teammapping.Repository
	teams    team.Repository
	cfg      ResolverConfig
	logger   *logging.Logger
	flight   resilience.SingleFlight
}

func NewResolverService(
	mappings teammapping.Repository,
	teams team.Repository,
	cfg ResolverConfig,
	logger *logging.Logger,
) *ResolverService {
	if logger == nil {
		logger = logging.Default()
	}
	return &ResolverService{
		mappings: mappings,
		teams:    teams,
		cfg:      cfg,
		logger:   logger,
	}
}

// Resolve returns the internal team id for (externalName, source) or
// ErrResolution when no mapping exists.
func (s *ResolverService) Resolve(ctx context.Context, externalName, source string) (int64, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ResolverService.Resolve")
	defer span.End()

	externalName = strings.TrimSpace(externalName)
	source = strings.ToLower(strings.TrimSpace(source))
	if externalName == "" {
		return 0, fmt.Errorf("%w: external name is empty", ErrResolution)
	}
	if source == "" {
		return 0, fmt.Errorf("%w: source is empty", ErrResolution)
	}

	mapping, ok, err := s.mappings.GetByNameAndSource(ctx, externalName, source)
	if err != nil {
		return 0, storeError(err, "lookup mapping (%s, %s)", externalName, source)
	}
	if !ok {
		return 0, fmt.Errorf("%w: no mapping for %q from source %q", ErrResolution, externalName, source)
	}
	return mapping.TeamID, nil
}

// ResolveOrRegister resolves like Resolve, but when auto-registration is
// enabled and the record carried an internal team id alongside the unmapped
// name, it creates the mapping on the fly. Registration is serialized per
// (external_name, source) so concurrent workers never race a duplicate
// insert.
func (s *ResolverService) ResolveOrRegister(ctx context.Context, externalName, source string, hintTeamID int64) (int64, error) {
	teamID, err := s.Resolve(ctx, externalName, source)
	if err == nil {
		return teamID, nil
	}
	if !s.cfg.AutoRegister || hintTeamID <= 0 {
		return 0, err
	}

	externalName = strings.TrimSpace(externalName)
	source = strings.ToLower(strings.TrimSpace(source))

	value, regErr, shared := s.flight.Do(teammapping.Key(externalName, source), func() (any, error) {
		// Re-check inside the flight: a concurrent caller may have just
		// registered the same name.
		if mapping, ok, lookupErr := s.mappings.GetByNameAndSource(ctx, externalName, source); lookupErr != nil {
			return int64(0), storeError(lookupErr, "lookup mapping (%s, %s)", externalName, source)
		} else if ok {
			return mapping.TeamID, nil
		}

		if _, ok, teamErr := s.teams.GetByID(ctx, hintTeamID); teamErr != nil {
			return int64(0), storeError(teamErr, "get team %d", hintTeamID)
		} else if !ok {
			return int64(0), fmt.Errorf("%w: auto-register hint team %d does not exist", ErrReferential, hintTeamID)
		}

		created, createErr := s.mappings.Create(ctx, teammapping.Mapping{
			ExternalName: externalName,
			TeamID:       hintTeamID,
			Source:       source,
		})
		if createErr != nil {
			return int64(0), storeError(createErr, "create mapping (%s, %s)", externalName, source)
		}

		s.logger.WarnContext(ctx, "auto-registered team mapping",
			"external_name", externalName,
			"source", source,
			"team_id", created.TeamID,
			"mapping_id", created.ID,
		)
		return created.TeamID, nil
	})
	if regErr != nil {
		return 0, regErr
	}
	if shared {
		s.logger.DebugContext(ctx, "team mapping auto-registration coalesced",
			"external_name", externalName, "source", source)
	}
	return value.(int64), nil
}
