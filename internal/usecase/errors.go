package usecase

import (
	"errors"
	"fmt"
	"strings"

	"github.com/riskibarqy/league-ingest/internal/domain/match"
)

// Error taxonomy for ingestion outcomes. Validation, referential and
// resolution failures are producer-correctable and never retried; transient
// failures are the caller's to retry with backoff; conflicts are surfaced for
// manual reconciliation and never auto-resolved.
var (
	ErrValidation    = errors.New("validation failed")
	ErrReferential   = errors.New("referenced entity does not exist")
	ErrResolution    = errors.New("team name cannot be resolved")
	ErrConflict      = errors.New("canonical key conflict")
	ErrTransient     = errors.New("transient store failure")
	ErrSchemaVersion = errors.New("unsupported schema version")
	ErrNotFound      = errors.New("resource not found")
	ErrInvalidInput  = errors.New("invalid input")
)

// FieldError is one field-level rejection reason.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func (e FieldError) String() string {
	return e.Field + ": " + e.Reason
}

// RejectionError aggregates every discoverable field error for one record so
// batch producers get the full list in a single round-trip.
type RejectionError struct {
	Fields []FieldError
}

func (e *RejectionError) Error() string {
	if len(e.Fields) == 0 {
		return ErrValidation.Error()
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.String())
	}
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *RejectionError) Unwrap() error {
	return ErrValidation
}

// storeError wraps a repository failure. Failures the store marked as
// unavailable come back as ErrTransient so callers know a retry can help.
func storeError(err error, format string, args ...any) error {
	op := fmt.Sprintf(format, args...)
	if errors.Is(err, match.ErrUnavailable) {
		return fmt.Errorf("%s: %w: %w", op, ErrTransient, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// RejectionFields extracts field errors from err when it is a rejection.
func RejectionFields(err error) []FieldError {
	var rejection *RejectionError
	if errors.As(err, &rejection) {
		return rejection.Fields
	}
	return nil
}
