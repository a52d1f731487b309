package store

import (
	"context"
	"sort"
	"sync"
)

// MemoryStore keeps batches in memory. Data is lost when the process exits.
type MemoryStore struct {
	mu      sync.RWMutex
	batches map[string]storedBatch
	seq     int
	closed  bool
}

type storedBatch struct {
	batch    Batch
	sequence int
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{batches: make(map[string]storedBatch)}
}

// Save implements Store.
func (m *MemoryStore) Save(_ context.Context, b Batch) error {
	if b.ID == "" {
		return ErrEmptyID
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStoreClosed
	}

	m.seq++
	b.URLs = append([]string(nil), b.URLs...)
	m.batches[b.ID] = storedBatch{batch: b, sequence: m.seq}
	return nil
}

// Load implements Store.
func (m *MemoryStore) Load(_ context.Context, id string) (Batch, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return Batch{}, ErrStoreClosed
	}

	sb, ok := m.batches[id]
	if !ok {
		return Batch{}, ErrNotFound
	}
	b := sb.batch
	b.URLs = append([]string(nil), b.URLs...)
	return b, nil
}

// List implements Store.
func (m *MemoryStore) List(_ context.Context) ([]Info, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, ErrStoreClosed
	}

	infos := make([]Info, 0, len(m.batches))
	for _, sb := range m.batches {
		infos = append(infos, Info{
			ID:        sb.batch.ID,
			Template:  sb.batch.Template,
			Count:     len(sb.batch.URLs),
			Sequence:  sb.sequence,
			CreatedAt: sb.batch.CreatedAt,
		})
	}
	sort.Slice(infos, func(i, j int) bool {
		return infos[i].Sequence < infos[j].Sequence
	})
	return infos, nil
}

// Delete implements Store.
func (m *MemoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStoreClosed
	}
	delete(m.batches, id)
	return nil
}

// Close implements Store.
func (m *MemoryStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closed = true
	m.batches = nil
	return nil
}
