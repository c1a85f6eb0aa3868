package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/league-ingest/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/league-ingest/internal/platform/logging"
	"github.com/sourcegraph/conc/pool"
)

func newTestResolver(cfg ResolverConfig) (*ResolverService, *memory.TeamMappingRepository) {
	mappings := memory.NewTeamMappingRepository(memory.SeedTeamMappings())
	teams := memory.NewTeamRepository(memory.SeedTeams())
	return NewResolverService(mappings, teams, cfg, logging.NewNop()), mappings
}

func TestResolve_ExactMatch(t *testing.T) {
	t.Parallel()

	resolver, _ := newTestResolver(ResolverConfig{})
	ctx := context.Background()

	teamID, err := resolver.Resolve(ctx, "Northside F.C.", "scraper")
	if err != nil {
		t.Fatalf("resolve seeded mapping: %v", err)
	}
	if teamID != memory.TeamIDNorthsideOpen {
		t.Fatalf("got team %d, want %d", teamID, memory.TeamIDNorthsideOpen)
	}

	// Source tags normalize to lower case; names do not.
	if _, err := resolver.Resolve(ctx, "Northside F.C.", " SCRAPER "); err != nil {
		t.Fatalf("source must be case insensitive: %v", err)
	}
}

func TestResolve_FailsClosed(t *testing.T) {
	t.Parallel()

	resolver, _ := newTestResolver(ResolverConfig{})
	ctx := context.Background()

	cases := []struct {
		name   string
		team   string
		source string
	}{
		{"unmapped name", "Nobody United", "scraper"},
		{"wrong source", "Northside F.C.", "other-feed"},
		{"empty name", "", "scraper"},
		{"empty source", "Northside F.C.", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := resolver.Resolve(ctx, tc.team, tc.source); !errors.Is(err, ErrResolution) {
				t.Fatalf("expected ErrResolution, got %v", err)
			}
		})
	}
}

func TestResolveOrRegister_DisabledKeepsFailingClosed(t *testing.T) {
	t.Parallel()

	resolver, mappings := newTestResolver(ResolverConfig{AutoRegister: false})
	ctx := context.Background()

	if _, err := resolver.ResolveOrRegister(ctx, "Valley R.", "scraper", memory.TeamIDValleyOpen); !errors.Is(err, ErrResolution) {
		t.Fatalf("expected ErrResolution with auto-register off, got %v", err)
	}

	items, err := mappings.List(ctx)
	if err != nil {
		t.Fatalf("list mappings: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("no mapping may be written with auto-register off, got %d", len(items))
	}
}

func TestResolveOrRegister_CreatesMappingFromHint(t *testing.T) {
	t.Parallel()

	resolver, mappings := newTestResolver(ResolverConfig{AutoRegister: true})
	ctx := context.Background()

	teamID, err := resolver.ResolveOrRegister(ctx, "Valley R.", "scraper", memory.TeamIDValleyOpen)
	if err != nil {
		t.Fatalf("auto-register: %v", err)
	}
	if teamID != memory.TeamIDValleyOpen {
		t.Fatalf("got team %d, want %d", teamID, memory.TeamIDValleyOpen)
	}

	// The registered mapping serves plain resolution from now on.
	if teamID, err = resolver.Resolve(ctx, "Valley R.", "scraper"); err != nil || teamID != memory.TeamIDValleyOpen {
		t.Fatalf("resolve after register: team=%d err=%v", teamID, err)
	}

	items, _ := mappings.List(ctx)
	if len(items) != 3 {
		t.Fatalf("expected one new mapping, got %d total", len(items))
	}
}

func TestResolveOrRegister_RejectsUnknownHintTeam(t *testing.T) {
	t.Parallel()

	resolver, _ := newTestResolver(ResolverConfig{AutoRegister: true})
	_, err := resolver.ResolveOrRegister(context.Background(), "Ghost FC", "scraper", 999)
	if !errors.Is(err, ErrReferential) {
		t.Fatalf("expected ErrReferential for unknown hint team, got %v", err)
	}
}

func TestResolveOrRegister_ConcurrentCallersWriteOnce(t *testing.T) {
	t.Parallel()

	resolver, mappings := newTestResolver(ResolverConfig{AutoRegister: true})
	ctx := context.Background()

	p := pool.New().WithMaxGoroutines(8).WithErrors()
	for i := 0; i < 16; i++ {
		p.Go(func() error {
			_, err := resolver.ResolveOrRegister(ctx, "Valley R.", "scraper", memory.TeamIDValleyOpen)
			return err
		})
	}
	if err := p.Wait(); err != nil {
		t.Fatalf("concurrent auto-register: %v", err)
	}

	items, _ := mappings.List(ctx)
	if len(items) != 3 {
		t.Fatalf("concurrent callers must coalesce into one mapping, got %d total", len(items))
	}
}
