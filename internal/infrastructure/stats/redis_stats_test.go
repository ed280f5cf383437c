package stats

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return mr, rdb
}

func TestRedisStore_Record(t *testing.T) {
	mr, rdb := newTestRedis(t)
	s := NewRedisStore(rdb, WithPrefix("test:stats:"), WithTTL(time.Hour))

	at := time.Date(2024, 1, 10, 12, 30, 0, 0, time.UTC)
	events := []Event{
		{Method: "POST", Route: "/api/v1/conta/inserir", Status: 201, At: at},
		{Method: "POST", Route: "/api/v1/conta/inserir", Status: 500, At: at},
		{Method: "GET", Route: "/api/v1/conta/listar", Status: 200, At: at},
	}
	for _, ev := range events {
		if err := s.Record(context.Background(), ev); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if got := mr.HGet("test:stats:total", "2xx"); got != "2" {
		t.Fatalf("expected 2 successes, got %q", got)
	}
	if got := mr.HGet("test:stats:total", "5xx"); got != "1" {
		t.Fatalf("expected 1 failure, got %q", got)
	}
	if got := mr.HGet("test:stats:route", "POST /api/v1/conta/inserir:5xx"); got != "1" {
		t.Fatalf("expected route counter 1, got %q", got)
	}

	bucket := "test:stats:minute:202401101230"
	if got := mr.HGet(bucket, "2xx"); got != "2" {
		t.Fatalf("expected bucket counter 2, got %q", got)
	}
	if ttl := mr.TTL(bucket); ttl != time.Hour {
		t.Fatalf("expected bucket ttl 1h, got %s", ttl)
	}
	if ttl := mr.TTL("test:stats:total"); ttl != 0 {
		t.Fatalf("total must not expire, got %s", ttl)
	}
}

func TestRedisStore_RecordFailsWhenRedisDown(t *testing.T) {
	mr, rdb := newTestRedis(t)
	s := NewRedisStore(rdb)
	mr.Close()

	if err := s.Record(context.Background(), Event{Method: "GET", Route: "/x", Status: 200}); err == nil {
		t.Fatalf("expected error with redis down")
	}
}

func TestRedisStore_NilIsNoop(t *testing.T) {
	var s *RedisStore
	if err := s.Record(context.Background(), Event{}); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}
