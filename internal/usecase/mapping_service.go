package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/league-ingest/internal/domain/team"
	"github.com/riskibarqy/league-ingest/internal/domain/teammapping"
)

// MappingService is the operator-facing administration surface for the
// mapping table the resolver reads.
type MappingService struct {
	mappings teammapping.Repository
	teams    team.Repository
}

func NewMappingService(mappings teammapping.Repository, teams team.Repository) *MappingService {
	return &MappingService{
		mappings: mappings,
		teams:    teams,
	}
}

type CreateMappingInput struct {
	ExternalName string
	TeamID       int64
	Source       string
}

func (s *MappingService) Create(ctx context.Context, input CreateMappingInput) (teammapping.Mapping, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MappingService.Create")
	defer span.End()

	item := teammapping.Mapping{
		ExternalName: strings.TrimSpace(input.ExternalName),
		TeamID:       input.TeamID,
		Source:       strings.ToLower(strings.TrimSpace(input.Source)),
	}
	if err := item.Validate(); err != nil {
		return teammapping.Mapping{}, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	if _, ok, err := s.teams.GetByID(ctx, item.TeamID); err != nil {
		return teammapping.Mapping{}, storeError(err, "get team %d", item.TeamID)
	} else if !ok {
		return teammapping.Mapping{}, fmt.Errorf("%w: team %d", ErrReferential, item.TeamID)
	}

	if existing, ok, err := s.mappings.GetByNameAndSource(ctx, item.ExternalName, item.Source); err != nil {
		return teammapping.Mapping{}, storeError(err, "lookup mapping (%s, %s)", item.ExternalName, item.Source)
	} else if ok {
		return existing, fmt.Errorf("%w: mapping for %q from source %q already exists", ErrConflict, item.ExternalName, item.Source)
	}

	created, err := s.mappings.Create(ctx, item)
	if err != nil {
		return teammapping.Mapping{}, storeError(err, "create mapping (%s, %s)", item.ExternalName, item.Source)
	}
	return created, nil
}

func (s *MappingService) List(ctx context.Context) ([]teammapping.Mapping, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MappingService.List")
	defer span.End()

	items, err := s.mappings.List(ctx)
	if err != nil {
		return nil, storeError(err, "list mappings")
	}
	return items, nil
}
