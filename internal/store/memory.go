package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryKV is an in-process KVRepo. It backs tests and runs where no
// database file is wanted.
type MemoryKV struct {
	mu   sync.Mutex
	data map[string]string
}

// NewMemoryKV returns an empty MemoryKV.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: make(map[string]string)}
}

func (m *MemoryKV) Get(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (m *MemoryKV) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *MemoryKV) Remove(_ context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range keys {
		delete(m.data, k)
	}
	return nil
}

// Len returns the number of stored keys.
func (m *MemoryKV) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.data)
}

// MemoryResults is an in-process ResultRepo.
type MemoryResults struct {
	mu      sync.Mutex
	next    int64
	results []GameResult
}

// NewMemoryResults returns an empty MemoryResults.
func NewMemoryResults() *MemoryResults {
	return &MemoryResults{next: 1}
}

func (m *MemoryResults) Append(_ context.Context, r *GameResult) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	r.Sequence = m.next
	m.next++
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.PlayedAt.IsZero() {
		r.PlayedAt = time.Now()
	}
	m.results = append(m.results, *r)
	return nil
}

func (m *MemoryResults) Recent(_ context.Context, limit int) ([]GameResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]GameResult, len(m.results))
	copy(out, m.results)
	sort.Slice(out, func(i, j int) bool { return out[i].Sequence > out[j].Sequence })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *MemoryResults) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.results = nil
	m.next = 1
	return nil
}
