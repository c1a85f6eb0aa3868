package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/league-ingest/internal/domain/match"
	"github.com/riskibarqy/league-ingest/internal/domain/schema"
	"github.com/riskibarqy/league-ingest/internal/domain/team"
	"github.com/riskibarqy/league-ingest/internal/platform/logging"
)

const (
	defaultIngestWorkers  = 8
	maxIngestWorkers      = 64
	defaultRecordTimeout  = 10 * time.Second
	maxIngestBatchRecords = 5000
)

// RecordOutcome is the per-record ingestion verdict returned to the producer.
type RecordOutcome string

const (
	RecordCreated   RecordOutcome = "created"
	RecordUpdated   RecordOutcome = "updated"
	RecordUnchanged RecordOutcome = "unchanged"
	RecordRejected  RecordOutcome = "rejected"
	RecordConflict  RecordOutcome = "conflict"
	RecordFailed    RecordOutcome = "failed"
)

// RecordResult is one record's outcome. Reasons is populated for rejections,
// ExistingID for conflicts, Retryable for failures.
type RecordResult struct {
	Index      int           `json:"index"`
	Outcome    RecordOutcome `json:"outcome"`
	MatchID    int64         `json:"match_id,omitempty"`
	ExistingID int64         `json:"existing_id,omitempty"`
	Reasons    []FieldError  `json:"reasons,omitempty"`
	Retryable  bool          `json:"retryable,omitempty"`
	Message    string        `json:"message,omitempty"`
}

// BatchResult summarizes one batch. Every submitted record appears exactly
// once in Records, in input order; there is no silent drop.
type BatchResult struct {
	BatchID       string         `json:"batch_id"`
	SchemaVersion schema.Version `json:"schema_version"`
	WorkerCount   int            `json:"worker_count"`
	Total         int            `json:"total"`
	Created       int            `json:"created"`
	Updated       int            `json:"updated"`
	Unchanged     int            `json:"unchanged"`
	Rejected      int            `json:"rejected"`
	Conflicts     int            `json:"conflicts"`
	Failed        int            `json:"failed"`
	Records       []RecordResult `json:"records"`
}

// IngestionConfig bounds batch parallelism and per-record latency.
type IngestionConfig struct {
	MaxWorkers    int
	RecordTimeout time.Duration
}

// IngestionService runs the validate → resolve → dedupe → upsert pipeline for
// batches of scraper records. Records are independent: they process in
// parallel and one record's failure never aborts its siblings. Same-key
// records serialize inside the match repository's upsert.
type IngestionService struct {
	registry  *schema.Registry
	validator *MatchValidator
	resolver  *ResolverService
	matches   match.Repository
	teams     team.Repository
	cfg       IngestionConfig
	logger    *logging.Logger
}

func NewIngestionService(
	registry *schema.Registry,
	validator *MatchValidator,
	resolver *ResolverService,
	matches match.Repository,
	teams team.Repository,
	cfg IngestionConfig,
	logger *logging.Logger,
) *IngestionService {
	if logger == nil {
		logger = logging.Default()
	}
	return &IngestionService{
		registry:  registry,
		validator: validator,
		resolver:  resolver,
		matches:   matches,
		teams:     teams,
		cfg:       cfg,
		logger:    logger,
	}
}

// IngestBatch processes records under the rules of versionTag. An unknown or
// future version fails the whole batch up front; everything after that is
// per-record.
func (s *IngestionService) IngestBatch(ctx context.Context, versionTag string, records []MatchRecord) (BatchResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.IngestionService.IngestBatch")
	defer span.End()

	version, err := s.registry.ParseVersion(versionTag)
	if err != nil {
		return BatchResult{}, fmt.Errorf("%w: %s", ErrSchemaVersion, err)
	}
	if len(records) == 0 {
		return BatchResult{}, fmt.Errorf("%w: records are required", ErrInvalidInput)
	}
	if len(records) > maxIngestBatchRecords {
		return BatchResult{}, fmt.Errorf("%w: batch exceeds %d records", ErrInvalidInput, maxIngestBatchRecords)
	}

	workerCount := normalizeWorkerCount(s.cfg.MaxWorkers, len(records))
	result := BatchResult{
		BatchID:       uuid.NewString(),
		SchemaVersion: version,
		WorkerCount:   workerCount,
		Total:         len(records),
		Records:       make([]RecordResult, len(records)),
	}

	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return BatchResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var workers sync.WaitGroup
	for idx := range records {
		// Cancellation stops dispatching; already-committed upserts stay
		// (records are independent, nothing to roll back).
		if ctxErr := ctx.Err(); ctxErr != nil {
			for rest := idx; rest < len(records); rest++ {
				result.Records[rest] = RecordResult{
					Index:     rest,
					Outcome:   RecordFailed,
					Retryable: true,
					Message:   "batch cancelled before dispatch",
				}
			}
			break
		}

		idx := idx
		rec := records[idx]
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			result.Records[idx] = s.ingestOne(ctx, version, idx, rec)
		}); err != nil {
			workers.Done()
			result.Records[idx] = RecordResult{
				Index:     idx,
				Outcome:   RecordFailed,
				Retryable: true,
				Message:   fmt.Sprintf("submit to worker pool: %v", err),
			}
		}
	}
	workers.Wait()

	for _, row := range result.Records {
		switch row.Outcome {
		case RecordCreated:
			result.Created++
		case RecordUpdated:
			result.Updated++
		case RecordUnchanged:
			result.Unchanged++
		case RecordRejected:
			result.Rejected++
		case RecordConflict:
			result.Conflicts++
		default:
			result.Failed++
		}
	}

	s.logger.InfoContext(ctx, "ingestion batch processed",
		"batch_id", result.BatchID,
		"schema_version", string(version),
		"total", result.Total,
		"created", result.Created,
		"updated", result.Updated,
		"unchanged", result.Unchanged,
		"rejected", result.Rejected,
		"conflicts", result.Conflicts,
		"failed", result.Failed,
	)
	return result, nil
}

func (s *IngestionService) ingestOne(parent context.Context, version schema.Version, idx int, rec MatchRecord) RecordResult {
	timeout := s.cfg.RecordTimeout
	if timeout <= 0 {
		timeout = defaultRecordTimeout
	}
	ctx, cancel := context.WithTimeout(parent, timeout)
	defer cancel()

	ctx, span := startUsecaseSpan(ctx, "usecase.IngestionService.ingestOne")
	defer span.End()

	if reasons := s.validator.ValidateFields(version, rec); len(reasons) > 0 {
		return RecordResult{Index: idx, Outcome: RecordRejected, Reasons: reasons}
	}

	homeID, reasons, err := s.resolveTeam(ctx, rec.HomeTeamID, rec.HomeTeamName, rec.Source, "home_team_name")
	if err != nil {
		return s.failure(ctx, idx, "resolve home team", err)
	}
	awayID, awayReasons, err := s.resolveTeam(ctx, rec.AwayTeamID, rec.AwayTeamName, rec.Source, "away_team_name")
	if err != nil {
		return s.failure(ctx, idx, "resolve away team", err)
	}
	reasons = append(reasons, awayReasons...)
	if len(reasons) > 0 {
		return RecordResult{Index: idx, Outcome: RecordRejected, Reasons: reasons}
	}

	m := s.validator.Normalize(rec, homeID, awayID)

	refReasons, err := s.validator.CheckReferences(ctx, m)
	if err != nil {
		return s.failure(ctx, idx, "check references", err)
	}
	if len(refReasons) > 0 {
		return RecordResult{Index: idx, Outcome: RecordRejected, Reasons: refReasons}
	}

	upserted, err := s.matches.Upsert(ctx, m)
	if err != nil {
		return s.failure(ctx, idx, "upsert match", err)
	}

	switch upserted.Outcome {
	case match.OutcomeConflict:
		return RecordResult{
			Index:      idx,
			Outcome:    RecordConflict,
			ExistingID: upserted.Match.ID,
			Message:    "existing row retained; reconcile manually",
		}
	case match.OutcomeCreated:
		s.linkMatchTypes(ctx, upserted.Match)
		return RecordResult{Index: idx, Outcome: RecordCreated, MatchID: upserted.Match.ID}
	case match.OutcomeUpdated:
		return RecordResult{Index: idx, Outcome: RecordUpdated, MatchID: upserted.Match.ID}
	default:
		return RecordResult{Index: idx, Outcome: RecordUnchanged, MatchID: upserted.Match.ID}
	}
}

// resolveTeam prefers an explicit internal id; a name-only record goes
// through the mapping table. A record carrying both is also used as an
// auto-registration hint when that path is enabled.
func (s *IngestionService) resolveTeam(ctx context.Context, id *int64, name, source, field string) (int64, []FieldError, error) {
	if id != nil && *id > 0 {
		if strings.TrimSpace(name) != "" && strings.TrimSpace(source) != "" {
			if _, err := s.resolver.ResolveOrRegister(ctx, name, source, *id); err != nil && !errors.Is(err, ErrResolution) {
				s.logger.WarnContext(ctx, "team mapping auto-registration failed",
					"external_name", name, "source", source, "error", err)
			}
		}
		return *id, nil, nil
	}

	teamID, err := s.resolver.Resolve(ctx, name, source)
	if err == nil {
		return teamID, nil, nil
	}
	if errors.Is(err, ErrResolution) {
		return 0, []FieldError{{Field: field, Reason: err.Error()}}, nil
	}
	return 0, nil, err
}

// linkMatchTypes records (team, match type) participation after a create.
// Best effort: a failure here never changes the record outcome.
func (s *IngestionService) linkMatchTypes(ctx context.Context, m match.Match) {
	for _, teamID := range []int64{m.HomeTeamID, m.AwayTeamID} {
		if err := s.teams.LinkMatchType(ctx, teamID, m.MatchTypeID); err != nil {
			s.logger.WarnContext(ctx, "link team match type failed",
				"team_id", teamID, "match_type_id", m.MatchTypeID, "error", err)
		}
	}
}

func (s *IngestionService) failure(ctx context.Context, idx int, op string, err error) RecordResult {
	retryable := errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, match.ErrUnavailable) ||
		errors.Is(err, ErrTransient)
	s.logger.WarnContext(ctx, "ingestion record failed",
		"index", idx, "op", op, "retryable", retryable, "error", err)
	return RecordResult{
		Index:     idx,
		Outcome:   RecordFailed,
		Retryable: retryable,
		Message:   fmt.Sprintf("%s: %v", op, err),
	}
}

func normalizeWorkerCount(configured, taskCount int) int {
	count := configured
	if count <= 0 {
		count = defaultIngestWorkers
	}
	if count > maxIngestWorkers {
		count = maxIngestWorkers
	}
	if taskCount > 0 && count > taskCount {
		count = taskCount
	}
	return count
}
