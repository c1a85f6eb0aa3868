package httpapi

import (
	"net/http"

	"github.com/riskibarqy/league-ingest/internal/platform/logging"
)

func NewRouter(handler *Handler, logger *logging.Logger) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}

	mux := http.NewServeMux()
	registerRoutes(mux, handler)

	return RequestTracing(RequestLogging(logger, recoverPanic(logger, mux)))
}

func registerRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)

	mux.HandleFunc("POST /v1/ingest/matches", handler.IngestMatches)

	mux.HandleFunc("POST /v1/team-mappings", handler.CreateTeamMapping)
	mux.HandleFunc("GET /v1/team-mappings", handler.ListTeamMappings)

	mux.HandleFunc("POST /v1/divisions", handler.CreateDivision)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/divisions", handler.ListDivisionsByLeague)
	mux.HandleFunc("GET /v1/divisions/{divisionID}/league", handler.GetDivisionLeague)
	mux.HandleFunc("GET /v1/divisions/{divisionID}/teams", handler.ListDivisionTeams)
	mux.HandleFunc("GET /v1/divisions/{divisionID}/matches", handler.ListDivisionMatches)
}

func recoverPanic(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := startSpan(r.Context(), "httpapi.recoverPanic")
		defer span.End()

		defer func() {
			if rec := recover(); rec != nil {
				logger.ErrorContext(ctx, "panic recovered", "panic", rec)
				writeInternalError(ctx, w)
			}
		}()
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
