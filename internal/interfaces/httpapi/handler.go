package httpapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/league-ingest/internal/platform/logging"
	"github.com/riskibarqy/league-ingest/internal/usecase"
)

type Handler struct {
	ingestionService *usecase.IngestionService
	mappingService   *usecase.MappingService
	divisionService  *usecase.DivisionService
	logger           *logging.Logger
	validator        *validator.Validate
}

func NewHandler(
	ingestionService *usecase.IngestionService,
	mappingService *usecase.MappingService,
	divisionService *usecase.DivisionService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		ingestionService: ingestionService,
		mappingService:   mappingService,
		divisionService:  divisionService,
		logger:           logger,
		validator:        validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}
