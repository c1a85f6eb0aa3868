package cache

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sourcegraph/conc/pool"
)

func TestStore_SetGet(t *testing.T) {
	t.Parallel()

	s := NewStore(time.Minute)
	ctx := context.Background()

	if _, ok := s.Get(ctx, "season:1"); ok {
		t.Fatalf("empty store must miss")
	}

	s.Set(ctx, "season:1", "2026")
	v, ok := s.Get(ctx, "season:1")
	if !ok || v.(string) != "2026" {
		t.Fatalf("got (%v, %v), want (2026, true)", v, ok)
	}

	// Empty keys are never stored.
	s.Set(ctx, "", "x")
	if _, ok := s.Get(ctx, ""); ok {
		t.Fatalf("empty key must miss")
	}
}

func TestStore_TTLExpiry(t *testing.T) {
	t.Parallel()

	s := NewStore(10 * time.Millisecond)
	ctx := context.Background()

	s.Set(ctx, "k", 1)
	if _, ok := s.Get(ctx, "k"); !ok {
		t.Fatalf("fresh entry must hit")
	}

	time.Sleep(20 * time.Millisecond)
	if _, ok := s.Get(ctx, "k"); ok {
		t.Fatalf("expired entry must miss")
	}
}

func TestStore_ZeroTTLNeverExpires(t *testing.T) {
	t.Parallel()

	s := NewStore(0)
	ctx := context.Background()

	s.Set(ctx, "k", 1)
	time.Sleep(5 * time.Millisecond)
	if _, ok := s.Get(ctx, "k"); !ok {
		t.Fatalf("zero TTL disables expiry")
	}
}

func TestStore_GetOrLoadLoadsOnce(t *testing.T) {
	t.Parallel()

	s := NewStore(time.Minute)
	ctx := context.Background()

	var loads atomic.Int64
	load := func() (any, error) {
		loads.Add(1)
		return "value", nil
	}

	p := pool.New().WithMaxGoroutines(8).WithErrors()
	for i := 0; i < 16; i++ {
		p.Go(func() error {
			v, err := s.GetOrLoad(ctx, "k", load)
			if err != nil {
				return err
			}
			if v.(string) != "value" {
				return fmt.Errorf("unexpected value %v", v)
			}
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		t.Fatalf("concurrent GetOrLoad: %v", err)
	}

	if got := loads.Load(); got != 1 {
		t.Fatalf("loader ran %d times, want 1", got)
	}
}

func TestStore_GetOrLoadDoesNotCacheErrors(t *testing.T) {
	t.Parallel()

	s := NewStore(time.Minute)
	ctx := context.Background()

	boom := fmt.Errorf("load failed")
	if _, err := s.GetOrLoad(ctx, "k", func() (any, error) { return nil, boom }); err == nil {
		t.Fatalf("expected loader error")
	}

	v, err := s.GetOrLoad(ctx, "k", func() (any, error) { return "second", nil })
	if err != nil {
		t.Fatalf("second load: %v", err)
	}
	if v.(string) != "second" {
		t.Fatalf("a failed load must not poison the key, got %v", v)
	}
}
