package httpapi

import (
	"fmt"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/league-ingest/internal/usecase"
)

type ingestBatchDTO struct {
	SchemaVersion string           `json:"schema_version"`
	Records       []matchRecordDTO `json:"records" validate:"required,min=1,dive"`
}

// matchRecordDTO carries every field the scrapers emit, including league_id:
// decoding must not silently drop it, the validator rejects it with a reason.
type matchRecordDTO struct {
	HomeTeamID   *int64 `json:"home_team_id,omitempty"`
	HomeTeamName string `json:"home_team_name,omitempty"`
	AwayTeamID   *int64 `json:"away_team_id,omitempty"`
	AwayTeamName string `json:"away_team_name,omitempty"`
	MatchDate    string `json:"match_date" validate:"required"`
	MatchTime    string `json:"match_time,omitempty"`
	HomeScore    *int   `json:"home_score,omitempty"`
	AwayScore    *int   `json:"away_score,omitempty"`
	Location     string `json:"location,omitempty"`
	Notes        string `json:"notes,omitempty"`
	Status       string `json:"status,omitempty"`
	SeasonID     *int64 `json:"season_id,omitempty"`
	AgeGroupID   *int64 `json:"age_group_id,omitempty"`
	MatchTypeID  *int64 `json:"match_type_id,omitempty"`
	DivisionID   *int64 `json:"division_id,omitempty"`
	LeagueID     *int64 `json:"league_id,omitempty"`
	MatchID      string `json:"match_id,omitempty"`
	ExternalID   string `json:"external_id,omitempty"`
	Source       string `json:"source,omitempty"`
}

func (h *Handler) IngestMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.IngestMatches")
	defer span.End()

	var payload ingestBatchDTO
	if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: decode request body: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validator.Struct(payload); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err))
		return
	}

	records := make([]usecase.MatchRecord, 0, len(payload.Records))
	for _, rec := range payload.Records {
		records = append(records, usecase.MatchRecord{
			HomeTeamID:   rec.HomeTeamID,
			HomeTeamName: rec.HomeTeamName,
			AwayTeamID:   rec.AwayTeamID,
			AwayTeamName: rec.AwayTeamName,
			MatchDate:    rec.MatchDate,
			MatchTime:    rec.MatchTime,
			HomeScore:    rec.HomeScore,
			AwayScore:    rec.AwayScore,
			Location:     rec.Location,
			Notes:        rec.Notes,
			Status:       rec.Status,
			SeasonID:     rec.SeasonID,
			AgeGroupID:   rec.AgeGroupID,
			MatchTypeID:  rec.MatchTypeID,
			DivisionID:   rec.DivisionID,
			LeagueID:     rec.LeagueID,
			MatchID:      rec.MatchID,
			ExternalID:   rec.ExternalID,
			Source:       rec.Source,
		})
	}

	result, err := h.ingestionService.IngestBatch(ctx, payload.SchemaVersion, records)
	if err != nil {
		h.logger.WarnContext(ctx, "ingest batch failed",
			"schema_version", payload.SchemaVersion,
			"records", len(records),
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, result)
}
