package resilience

import (
	"sync"
	"testing"
)

func TestKeyedMutex_SerializesPerKey(t *testing.T) {
	t.Parallel()

	var m KeyedMutex
	var inSection int
	var maxInSection int
	var track sync.Mutex

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := m.Lock("match:1|2|2026-04-12")
			defer unlock()

			track.Lock()
			inSection++
			if inSection > maxInSection {
				maxInSection = inSection
			}
			track.Unlock()

			track.Lock()
			inSection--
			track.Unlock()
		}()
	}
	wg.Wait()

	if maxInSection != 1 {
		t.Fatalf("critical section overlapped: max concurrency %d", maxInSection)
	}
}

func TestKeyedMutex_DistinctKeysDoNotBlock(t *testing.T) {
	t.Parallel()

	var m KeyedMutex

	unlockA := m.Lock("a")
	done := make(chan struct{})
	go func() {
		unlockB := m.Lock("b")
		unlockB()
		close(done)
	}()

	// Key "b" must proceed while "a" is still held.
	<-done
	unlockA()
}

func TestKeyedMutex_ReleasedKeysAreForgotten(t *testing.T) {
	t.Parallel()

	var m KeyedMutex
	for i := 0; i < 100; i++ {
		unlock := m.Lock("k")
		unlock()
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.locks) != 0 {
		t.Fatalf("lock table must drain, %d entries left", len(m.locks))
	}
}
