package stats

import (
	"context"
	"sync"
	"testing"
)

func TestMemoryStore_Record(t *testing.T) {
	s := NewMemoryStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Record(context.Background(), Event{Method: "GET", Route: "/api/v1/conta/listar", Status: 200})
		}()
	}
	wg.Wait()
	_ = s.Record(context.Background(), Event{Method: "OPTIONS", Status: 200})
	_ = s.Record(context.Background(), Event{Method: "POST", Route: "/api/v1/conta/excluir", Status: 404})

	total := s.Total()
	if total["2xx"] != 51 || total["4xx"] != 1 {
		t.Fatalf("unexpected totals: %+v", total)
	}

	byRoute := s.ByRoute()
	if byRoute["GET /api/v1/conta/listar:2xx"] != 50 {
		t.Fatalf("unexpected route counters: %+v", byRoute)
	}
	if byRoute["OPTIONS unmatched:2xx"] != 1 {
		t.Fatalf("expected unmatched route bucket, got %+v", byRoute)
	}
}

func TestStatusClass(t *testing.T) {
	cases := map[int]string{200: "2xx", 201: "2xx", 404: "4xx", 429: "4xx", 500: "5xx", 0: "other", 600: "other"}
	for status, want := range cases {
		if got := statusClass(status); got != want {
			t.Fatalf("statusClass(%d) = %q, want %q", status, got, want)
		}
	}
}
