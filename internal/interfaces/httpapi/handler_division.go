package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/league-ingest/internal/domain/division"
	"github.com/riskibarqy/league-ingest/internal/domain/match"
	"github.com/riskibarqy/league-ingest/internal/domain/team"
	"github.com/riskibarqy/league-ingest/internal/usecase"
)

type createDivisionDTO struct {
	SchemaVersion string `json:"schema_version"`
	Name          string `json:"name" validate:"required"`
	Level         int    `json:"level" validate:"required,gt=0"`
	LeagueID      *int64 `json:"league_id,omitempty"`
}

type divisionDTO struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Level    int    `json:"level"`
	LeagueID int64  `json:"league_id"`
}

func (h *Handler) CreateDivision(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateDivision")
	defer span.End()

	var payload createDivisionDTO
	if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: decode request body: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validator.Struct(payload); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err))
		return
	}

	created, err := h.divisionService.Create(ctx, payload.SchemaVersion, usecase.CreateDivisionInput{
		Name:     payload.Name,
		Level:    payload.Level,
		LeagueID: payload.LeagueID,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create division failed",
			"name", payload.Name,
			"schema_version", payload.SchemaVersion,
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, divisionToDTO(created))
}

func (h *Handler) ListDivisionsByLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListDivisionsByLeague")
	defer span.End()

	leagueID, err := parseIDPathValue(r, "leagueID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	divisions, err := h.divisionService.ListByLeague(ctx, leagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "list divisions failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]divisionDTO, 0, len(divisions))
	for _, d := range divisions {
		items = append(items, divisionToDTO(d))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

type leagueDTO struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

type teamDTO struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	AgeGroupID int64  `json:"age_group_id"`
	DivisionID int64  `json:"division_id"`
}

type matchDTO struct {
	ID          int64   `json:"id"`
	HomeTeamID  int64   `json:"home_team_id"`
	AwayTeamID  int64   `json:"away_team_id"`
	HomeScore   *int    `json:"home_score,omitempty"`
	AwayScore   *int    `json:"away_score,omitempty"`
	MatchDate   string  `json:"match_date"`
	MatchTime   *string `json:"match_time,omitempty"`
	Location    *string `json:"location,omitempty"`
	SeasonID    int64   `json:"season_id"`
	AgeGroupID  int64   `json:"age_group_id"`
	MatchTypeID int64   `json:"match_type_id"`
	DivisionID  int64   `json:"division_id"`
	Status      string  `json:"status"`
	MatchID     string  `json:"match_id,omitempty"`
}

// GetDivisionLeague answers "which league is this match in" for consumers
// holding only a division id; matches never carry the league directly.
func (h *Handler) GetDivisionLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetDivisionLeague")
	defer span.End()

	divisionID, err := parseIDPathValue(r, "divisionID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	lg, err := h.divisionService.LeagueForDivision(ctx, divisionID)
	if err != nil {
		h.logger.WarnContext(ctx, "derive league failed", "division_id", divisionID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, leagueDTO{ID: lg.ID, Name: lg.Name, Active: lg.Active})
}

func (h *Handler) ListDivisionTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListDivisionTeams")
	defer span.End()

	divisionID, err := parseIDPathValue(r, "divisionID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	teams, err := h.divisionService.ListTeams(ctx, divisionID)
	if err != nil {
		h.logger.WarnContext(ctx, "list division teams failed", "division_id", divisionID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]teamDTO, 0, len(teams))
	for _, t := range teams {
		items = append(items, teamToDTO(t))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListDivisionMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListDivisionMatches")
	defer span.End()

	divisionID, err := parseIDPathValue(r, "divisionID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	matches, err := h.divisionService.ListMatches(ctx, divisionID)
	if err != nil {
		h.logger.WarnContext(ctx, "list division matches failed", "division_id", divisionID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]matchDTO, 0, len(matches))
	for _, m := range matches {
		items = append(items, matchToDTO(m))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func parseIDPathValue(r *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(r.PathValue(name))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", usecase.ErrInvalidInput, name)
	}
	return id, nil
}

func divisionToDTO(d division.Division) divisionDTO {
	return divisionDTO{ID: d.ID, Name: d.Name, Level: d.Level, LeagueID: d.LeagueID}
}

func teamToDTO(t team.Team) teamDTO {
	return teamDTO{ID: t.ID, Name: t.Name, AgeGroupID: t.AgeGroupID, DivisionID: t.DivisionID}
}

func matchToDTO(m match.Match) matchDTO {
	return matchDTO{
		ID:          m.ID,
		HomeTeamID:  m.HomeTeamID,
		AwayTeamID:  m.AwayTeamID,
		HomeScore:   m.HomeScore,
		AwayScore:   m.AwayScore,
		MatchDate:   m.MatchDate.Format(time.DateOnly),
		MatchTime:   m.MatchTime,
		Location:    m.Location,
		SeasonID:    m.SeasonID,
		AgeGroupID:  m.AgeGroupID,
		MatchTypeID: m.MatchTypeID,
		DivisionID:  m.DivisionID,
		Status:      m.Status,
		MatchID:     m.ExternalMatchID,
	}
}
