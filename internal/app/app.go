package app

import (
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/league-ingest/internal/config"
	"github.com/riskibarqy/league-ingest/internal/domain/agegroup"
	"github.com/riskibarqy/league-ingest/internal/domain/division"
	"github.com/riskibarqy/league-ingest/internal/domain/league"
	"github.com/riskibarqy/league-ingest/internal/domain/match"
	"github.com/riskibarqy/league-ingest/internal/domain/matchtype"
	"github.com/riskibarqy/league-ingest/internal/domain/schema"
	"github.com/riskibarqy/league-ingest/internal/domain/season"
	"github.com/riskibarqy/league-ingest/internal/domain/team"
	"github.com/riskibarqy/league-ingest/internal/domain/teammapping"
	"github.com/riskibarqy/league-ingest/internal/infrastructure/repository/cached"
	"github.com/riskibarqy/league-ingest/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/league-ingest/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/league-ingest/internal/interfaces/httpapi"
	"github.com/riskibarqy/league-ingest/internal/platform/cache"
	"github.com/riskibarqy/league-ingest/internal/platform/logging"
	"github.com/riskibarqy/league-ingest/internal/usecase"
)

type repositories struct {
	leagues    league.Repository
	divisions  division.Repository
	ageGroups  agegroup.Repository
	seasons    season.Repository
	matchTypes matchtype.Repository
	teams      team.Repository
	mappings   teammapping.Repository
	matches    match.Repository
}

func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}

	repos, closeStore, err := buildRepositories(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	if cfg.CacheEnabled {
		store := cache.NewStore(cfg.CacheTTL)
		repos.seasons = cached.NewSeasonRepository(repos.seasons, store)
		repos.ageGroups = cached.NewAgeGroupRepository(repos.ageGroups, store)
		repos.matchTypes = cached.NewMatchTypeRepository(repos.matchTypes, store)
	}

	registry := schema.NewRegistry()
	validator := usecase.NewMatchValidator(registry, repos.seasons, repos.ageGroups, repos.matchTypes, repos.divisions, repos.teams)
	resolver := usecase.NewResolverService(repos.mappings, repos.teams, usecase.ResolverConfig{
		AutoRegister: cfg.ResolverAutoRegister,
	}, logger)
	ingestion := usecase.NewIngestionService(registry, validator, resolver, repos.matches, repos.teams, usecase.IngestionConfig{
		MaxWorkers:    cfg.IngestMaxWorkers,
		RecordTimeout: cfg.IngestRecordTimeout,
	}, logger)
	mappings := usecase.NewMappingService(repos.mappings, repos.teams)
	divisions := usecase.NewDivisionService(registry, repos.divisions, repos.leagues, repos.teams, repos.matches, usecase.DivisionConfig{
		DefaultLeagueName: cfg.DefaultLeagueName,
	})

	handler := httpapi.NewHandler(ingestion, mappings, divisions, logger)
	router := httpapi.NewRouter(handler, logger)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, closeStore, nil
}

func buildRepositories(cfg config.Config, logger *logging.Logger) (repositories, func() error, error) {
	switch cfg.StorageDriver {
	case config.StorageMemory:
		logger.Info("storage driver: memory", "seeded", true)
		return repositories{
			leagues:    memory.NewLeagueRepository(memory.SeedLeagues()),
			divisions:  memory.NewDivisionRepository(memory.SeedDivisions()),
			ageGroups:  memory.NewAgeGroupRepository(memory.SeedAgeGroups()),
			seasons:    memory.NewSeasonRepository(memory.SeedSeasons()),
			matchTypes: memory.NewMatchTypeRepository(memory.SeedMatchTypes()),
			teams:      memory.NewTeamRepository(memory.SeedTeams()),
			mappings:   memory.NewTeamMappingRepository(memory.SeedTeamMappings()),
			matches:    memory.NewMatchRepository(),
		}, func() error { return nil }, nil

	case config.StoragePostgres:
		db, err := openDB(cfg)
		if err != nil {
			return repositories{}, nil, fmt.Errorf("open postgres: %w", err)
		}
		logger.Info("storage driver: postgres", "database", dbNameFromURL(cfg.DBURL))
		return postgresRepositories(db), db.Close, nil

	default:
		return repositories{}, nil, fmt.Errorf("unsupported storage driver %q", cfg.StorageDriver)
	}
}

func postgresRepositories(db *sqlx.DB) repositories {
	return repositories{
		leagues:    postgres.NewLeagueRepository(db),
		divisions:  postgres.NewDivisionRepository(db),
		ageGroups:  postgres.NewAgeGroupRepository(db),
		seasons:    postgres.NewSeasonRepository(db),
		matchTypes: postgres.NewMatchTypeRepository(db),
		teams:      postgres.NewTeamRepository(db),
		mappings:   postgres.NewTeamMappingRepository(db),
		matches:    postgres.NewMatchRepository(db),
	}
}
