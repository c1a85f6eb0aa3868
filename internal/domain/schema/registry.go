package schema

import (
	"fmt"
	"strings"
)

// Version tags the field/constraint rules an ingestion call was written
// against. V1 predates leagues; V2 introduced the league level above
// divisions.
type Version string

const (
	V1 Version = "v1"
	V2 Version = "v2"

	Current = V2
)

// Entity names the logical record kinds the registry describes.
type Entity string

const (
	EntityLeague      Entity = "league"
	EntityDivision    Entity = "division"
	EntityAgeGroup    Entity = "age_group"
	EntitySeason      Entity = "season"
	EntityMatchType   Entity = "match_type"
	EntityTeam        Entity = "team"
	EntityTeamMapping Entity = "team_mapping"
	EntityMatch       Entity = "match"
)

// FieldSet splits an entity's fields into required and optional for one
// version.
type FieldSet struct {
	Required []string
	Optional []string
}

func (fs FieldSet) IsRequired(name string) bool {
	for _, f := range fs.Required {
		if f == name {
			return true
		}
	}
	return false
}

func (fs FieldSet) IsKnown(name string) bool {
	if fs.IsRequired(name) {
		return true
	}
	for _, f := range fs.Optional {
		if f == name {
			return true
		}
	}
	return false
}

type ConstraintKind string

const (
	ConstraintUnique ConstraintKind = "unique"
	ConstraintCheck  ConstraintKind = "check"
	ConstraintFK     ConstraintKind = "foreign_key"
)

// Constraint is a declarative predicate over an entity's fields.
type Constraint struct {
	Name   string
	Kind   ConstraintKind
	Fields []string
	// NullsNotDistinct marks unique constraints where absent optional
	// components compare equal instead of being treated as distinct rows.
	NullsNotDistinct bool
}

// Registry answers "what does version V require of entity E" so validation
// rules stay in one place instead of being branched through the engine.
type Registry struct {
	fields      map[Version]map[Entity]FieldSet
	constraints map[Version]map[Entity][]Constraint
}

func NewRegistry() *Registry {
	v1Fields := map[Entity]FieldSet{
		EntityDivision: {
			Required: []string{"name", "level"},
		},
		EntityMatch: {
			Required: []string{
				"home_team", "away_team", "match_date",
				"season_id", "age_group_id", "match_type_id", "division_id",
			},
			Optional: []string{
				"home_score", "away_score", "match_time", "location",
				"notes", "status", "match_id", "external_id", "source",
			},
		},
		EntityTeam: {
			Required: []string{"name", "age_group_id", "division_id"},
		},
		EntityTeamMapping: {
			Required: []string{"external_name", "team_id", "source"},
		},
		EntityAgeGroup:  {Required: []string{"name"}},
		EntitySeason:    {Required: []string{"name", "start_date", "end_date"}},
		EntityMatchType: {Required: []string{"name"}, Optional: []string{"description"}},
	}

	v2Fields := cloneFieldTable(v1Fields)
	v2Fields[EntityLeague] = FieldSet{
		Required: []string{"name"},
		Optional: []string{"active"},
	}
	// Division creation gained a hard parent requirement when leagues were
	// introduced. Match records deliberately did NOT: league stays derivable
	// through division_id.
	v2Fields[EntityDivision] = FieldSet{
		Required: []string{"name", "level", "league_id"},
	}

	matchConstraints := []Constraint{
		{
			Name: "matches_canonical_key",
			Kind: ConstraintUnique,
			Fields: []string{
				"home_team_id", "away_team_id", "match_date",
				"season_id", "age_group_id", "match_type_id", "division_id", "match_id",
			},
			NullsNotDistinct: true,
		},
		{Name: "matches_distinct_teams", Kind: ConstraintCheck, Fields: []string{"home_team_id", "away_team_id"}},
		{Name: "matches_scores_non_negative", Kind: ConstraintCheck, Fields: []string{"home_score", "away_score"}},
	}

	v1Constraints := map[Entity][]Constraint{
		EntityMatch: matchConstraints,
		EntityTeam: {
			{Name: "teams_name_age_division", Kind: ConstraintUnique, Fields: []string{"name", "age_group_id", "division_id"}},
		},
		EntityTeamMapping: {
			{Name: "team_mappings_name_source", Kind: ConstraintUnique, Fields: []string{"external_name", "source"}},
		},
		EntityDivision: {
			{Name: "divisions_name", Kind: ConstraintUnique, Fields: []string{"name"}},
		},
		EntitySeason: {
			{Name: "seasons_date_order", Kind: ConstraintCheck, Fields: []string{"start_date", "end_date"}},
		},
	}

	v2Constraints := cloneConstraintTable(v1Constraints)
	v2Constraints[EntityLeague] = []Constraint{
		{Name: "leagues_name", Kind: ConstraintUnique, Fields: []string{"name"}},
	}
	v2Constraints[EntityDivision] = []Constraint{
		{Name: "divisions_name_league", Kind: ConstraintUnique, Fields: []string{"name", "league_id"}},
		{Name: "divisions_league_fk", Kind: ConstraintFK, Fields: []string{"league_id"}},
	}

	return &Registry{
		fields: map[Version]map[Entity]FieldSet{
			V1: v1Fields,
			V2: v2Fields,
		},
		constraints: map[Version]map[Entity][]Constraint{
			V1: v1Constraints,
			V2: v2Constraints,
		},
	}
}

func (r *Registry) Supported(v Version) bool {
	_, ok := r.fields[v]
	return ok
}

// ParseVersion normalizes a producer-supplied version tag. Unknown or future
// tags are an error: the engine never guesses compatibility.
func (r *Registry) ParseVersion(raw string) (Version, error) {
	v := Version(strings.ToLower(strings.TrimSpace(raw)))
	if v == "" {
		return Current, nil
	}
	if !r.Supported(v) {
		return "", fmt.Errorf("unsupported schema version %q", raw)
	}
	return v, nil
}

func (r *Registry) Fields(entity Entity, v Version) (FieldSet, error) {
	table, ok := r.fields[v]
	if !ok {
		return FieldSet{}, fmt.Errorf("unsupported schema version %q", v)
	}
	fs, ok := table[entity]
	if !ok {
		return FieldSet{}, fmt.Errorf("entity %q is not defined in schema version %q", entity, v)
	}
	return fs, nil
}

func (r *Registry) Constraints(entity Entity, v Version) ([]Constraint, error) {
	table, ok := r.constraints[v]
	if !ok {
		return nil, fmt.Errorf("unsupported schema version %q", v)
	}
	return append([]Constraint(nil), table[entity]...), nil
}

func cloneFieldTable(src map[Entity]FieldSet) map[Entity]FieldSet {
	out := make(map[Entity]FieldSet, len(src))
	for entity, fs := range src {
		out[entity] = FieldSet{
			Required: append([]string(nil), fs.Required...),
			Optional: append([]string(nil), fs.Optional...),
		}
	}
	return out
}

func cloneConstraintTable(src map[Entity][]Constraint) map[Entity][]Constraint {
	out := make(map[Entity][]Constraint, len(src))
	for entity, list := range src {
		out[entity] = append([]Constraint(nil), list...)
	}
	return out
}
