package stats

import (
	"context"
	"sync"
)

// MemoryStore is used when no Redis address is configured. Counters live
// for the life of the process.
type MemoryStore struct {
	mu      sync.Mutex
	total   map[string]int64
	byRoute map[string]int64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		total:   make(map[string]int64),
		byRoute: make(map[string]int64),
	}
}

func (s *MemoryStore) Record(_ context.Context, ev Event) error {
	class := statusClass(ev.Status)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.total[class]++
	s.byRoute[routeField(ev)+":"+class]++
	return nil
}

func (s *MemoryStore) Total() map[string]int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyCounters(s.total)
}

func (s *MemoryStore) ByRoute() map[string]int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyCounters(s.byRoute)
}

func copyCounters(in map[string]int64) map[string]int64 {
	out := make(map[string]int64, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
