package httpapi

import (
	"fmt"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/league-ingest/internal/domain/teammapping"
	"github.com/riskibarqy/league-ingest/internal/usecase"
)

type teamMappingDTO struct {
	ID           int64  `json:"id,omitempty"`
	ExternalName string `json:"external_name" validate:"required"`
	TeamID       int64  `json:"team_id" validate:"required,gt=0"`
	Source       string `json:"source" validate:"required"`
}

func (h *Handler) CreateTeamMapping(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateTeamMapping")
	defer span.End()

	var payload teamMappingDTO
	if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: decode request body: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validator.Struct(payload); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err))
		return
	}

	created, err := h.mappingService.Create(ctx, usecase.CreateMappingInput{
		ExternalName: payload.ExternalName,
		TeamID:       payload.TeamID,
		Source:       payload.Source,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create team mapping failed",
			"external_name", payload.ExternalName,
			"source", payload.Source,
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, mappingToDTO(created))
}

func (h *Handler) ListTeamMappings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeamMappings")
	defer span.End()

	mappings, err := h.mappingService.List(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list team mappings failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]teamMappingDTO, 0, len(mappings))
	for _, m := range mappings {
		items = append(items, mappingToDTO(m))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func mappingToDTO(m teammapping.Mapping) teamMappingDTO {
	return teamMappingDTO{
		ID:           m.ID,
		ExternalName: m.ExternalName,
		TeamID:       m.TeamID,
		Source:       m.Source,
	}
}
