package memory

import (
	"time"

	"github.com/riskibarqy/league-ingest/internal/domain/agegroup"
	"github.com/riskibarqy/league-ingest/internal/domain/division"
	"github.com/riskibarqy/league-ingest/internal/domain/league"
	"github.com/riskibarqy/league-ingest/internal/domain/matchtype"
	"github.com/riskibarqy/league-ingest/internal/domain/season"
	"github.com/riskibarqy/league-ingest/internal/domain/team"
	"github.com/riskibarqy/league-ingest/internal/domain/teammapping"
)

// Seed identifiers shared by tests and local runs.
const (
	LeagueIDMetro    int64 = 1
	LeagueIDRegional int64 = 2

	DivisionIDMetroPremier    int64 = 1
	DivisionIDMetroFirst      int64 = 2
	DivisionIDRegionalPremier int64 = 3

	AgeGroupIDOpen int64 = 1
	AgeGroupIDU16  int64 = 2

	SeasonID2026 int64 = 1

	MatchTypeIDLeague int64 = 1
	MatchTypeIDCup    int64 = 2

	TeamIDNorthsideOpen int64 = 1
	TeamIDHarborOpen    int64 = 2
	TeamIDNorthsideU16  int64 = 3
	TeamIDValleyOpen    int64 = 4
)

func SeedLeagues() []league.League {
	return []league.League{
		{ID: LeagueIDMetro, Name: "Metro League", Active: true},
		{ID: LeagueIDRegional, Name: "Regional League", Active: true},
	}
}

func SeedDivisions() []division.Division {
	return []division.Division{
		{ID: DivisionIDMetroPremier, Name: "Premier", Level: 1, LeagueID: LeagueIDMetro},
		{ID: DivisionIDMetroFirst, Name: "First", Level: 2, LeagueID: LeagueIDMetro},
		{ID: DivisionIDRegionalPremier, Name: "Premier", Level: 1, LeagueID: LeagueIDRegional},
	}
}

func SeedAgeGroups() []agegroup.AgeGroup {
	return []agegroup.AgeGroup{
		{ID: AgeGroupIDOpen, Name: "Open"},
		{ID: AgeGroupIDU16, Name: "U16"},
	}
}

func SeedSeasons() []season.Season {
	return []season.Season{
		{
			ID:        SeasonID2026,
			Name:      "2026",
			StartDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2026, 10, 31, 0, 0, 0, 0, time.UTC),
		},
	}
}

func SeedMatchTypes() []matchtype.MatchType {
	return []matchtype.MatchType{
		{ID: MatchTypeIDLeague, Name: "League", Description: "Regular season fixture"},
		{ID: MatchTypeIDCup, Name: "Cup", Description: "Knockout fixture"},
	}
}

func SeedTeams() []team.Team {
	return []team.Team{
		{ID: TeamIDNorthsideOpen, Name: "Northside FC", AgeGroupID: AgeGroupIDOpen, DivisionID: DivisionIDMetroPremier},
		{ID: TeamIDHarborOpen, Name: "Harbor United", AgeGroupID: AgeGroupIDOpen, DivisionID: DivisionIDMetroPremier},
		{ID: TeamIDNorthsideU16, Name: "Northside FC", AgeGroupID: AgeGroupIDU16, DivisionID: DivisionIDMetroFirst},
		{ID: TeamIDValleyOpen, Name: "Valley Rovers", AgeGroupID: AgeGroupIDOpen, DivisionID: DivisionIDRegionalPremier},
	}
}

func SeedTeamMappings() []teammapping.Mapping {
	return []teammapping.Mapping{
		{ID: 1, ExternalName: "Northside F.C.", TeamID: TeamIDNorthsideOpen, Source: "scraper"},
		{ID: 2, ExternalName: "Harbor Utd", TeamID: TeamIDHarborOpen, Source: "scraper"},
	}
}
