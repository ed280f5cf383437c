package ratelimit

import (
	"context"
	"testing"
	"time"
)

func TestStore_GetSameKeyReturnsSameLimiter(t *testing.T) {
	s := NewStore(10, 1)

	if s.Get("k") != s.Get("k") {
		t.Fatalf("expected same limiter pointer for same key")
	}
	if s.Get("k") == s.Get("other") {
		t.Fatalf("expected distinct limiters for distinct keys")
	}
}

func TestStore_AllowRespectsBurst(t *testing.T) {
	s := NewStore(0.02, 1)

	if ok, _ := s.Allow("k"); !ok {
		t.Fatalf("expected first Allow to be true")
	}
	ok, wait := s.Allow("k")
	if ok {
		t.Fatalf("expected second immediate Allow to be false (burst=1)")
	}
	if wait < time.Second {
		t.Fatalf("expected retry hint of at least 1s, got %s", wait)
	}
}

func TestStore_CleanupRemovesIdleEntries(t *testing.T) {
	s := NewStore(10, 1, WithIdleTTL(2*time.Millisecond), WithCleanupEvery(0))

	before := s.Get("k")
	time.Sleep(4 * time.Millisecond)

	s.Cleanup()

	if s.Len() != 0 {
		t.Fatalf("expected idle entry to be removed")
	}
	if before == s.Get("k") {
		t.Fatalf("expected limiter to be recreated after cleanup")
	}
}

func TestStore_JanitorStopsWithContext(t *testing.T) {
	s := NewStore(10, 1, WithIdleTTL(time.Millisecond), WithCleanupEvery(2*time.Millisecond))
	ctx, cancel := context.WithCancel(context.Background())
	s.StartJanitor(ctx)

	s.Get("k")
	deadline := time.Now().Add(time.Second)
	for s.Len() != 0 {
		if time.Now().After(deadline) {
			t.Fatalf("janitor did not remove idle entry")
		}
		time.Sleep(2 * time.Millisecond)
	}
	cancel()
}
