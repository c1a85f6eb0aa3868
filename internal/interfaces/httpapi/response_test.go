package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/league-ingest/internal/usecase"
)

func TestMapError(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantReason string
	}{
		{"schema version", fmt.Errorf("wrap: %w", usecase.ErrSchemaVersion), http.StatusBadRequest, "unsupportedSchemaVersion"},
		{"invalid input", usecase.ErrInvalidInput, http.StatusBadRequest, "invalidInput"},
		{"validation", &usecase.RejectionError{}, http.StatusBadRequest, "invalidInput"},
		{"referential", usecase.ErrReferential, http.StatusUnprocessableEntity, "unknownReference"},
		{"resolution", usecase.ErrResolution, http.StatusUnprocessableEntity, "unresolvedTeamName"},
		{"not found", usecase.ErrNotFound, http.StatusNotFound, "notFound"},
		{"conflict", usecase.ErrConflict, http.StatusConflict, "conflict"},
		{"transient", usecase.ErrTransient, http.StatusServiceUnavailable, "storeUnavailable"},
		{"unknown", fmt.Errorf("boom"), http.StatusInternalServerError, "internalError"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mapped := mapError(tc.err)
			if mapped.HTTPStatus != tc.wantStatus {
				t.Fatalf("unexpected status: got %d, want %d", mapped.HTTPStatus, tc.wantStatus)
			}
			if mapped.Reason != tc.wantReason {
				t.Fatalf("unexpected reason: got %q, want %q", mapped.Reason, tc.wantReason)
			}
		})
	}
}

func TestWriteError_IncludesFieldRejections(t *testing.T) {
	rec := httptest.NewRecorder()
	err := &usecase.RejectionError{Fields: []usecase.FieldError{
		{Field: "match_date", Reason: "required"},
		{Field: "league_id", Reason: "not accepted on match records; league is derived from division_id"},
	}}

	writeError(context.Background(), rec, err)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status: %d", rec.Code)
	}

	var envelope responseEnvelope
	if err := sonic.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if envelope.Error == nil {
		t.Fatalf("expected error body")
	}
	// One summary item plus one item per rejected field.
	if len(envelope.Error.Errors) != 3 {
		t.Fatalf("unexpected error item count: %d", len(envelope.Error.Errors))
	}
	fieldItems := 0
	for _, item := range envelope.Error.Errors {
		if item.Reason == "fieldRejected" {
			fieldItems++
		}
	}
	if fieldItems != 2 {
		t.Fatalf("expected 2 fieldRejected items, got %d", fieldItems)
	}
}

func TestWriteSuccess_Envelope(t *testing.T) {
	rec := httptest.NewRecorder()
	writeSuccess(context.Background(), rec, http.StatusOK, map[string]string{"status": "ok"})

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); got != "application/json" {
		t.Fatalf("unexpected content type: %q", got)
	}

	var envelope responseEnvelope
	if err := sonic.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if envelope.APIVersion != apiVersion {
		t.Fatalf("unexpected apiVersion: %q", envelope.APIVersion)
	}
	if envelope.Error != nil {
		t.Fatalf("unexpected error body: %+v", envelope.Error)
	}
}
