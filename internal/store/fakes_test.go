package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/salad-karo/storefront/internal/storage"
)

// memStore is an in-memory storage.Store for tests.
type memStore struct {
	mu   sync.Mutex
	data map[string][]byte
	// writes counts Write calls per key to assert persist-per-mutation.
	writes map[string]int
}

func newMemStore() *memStore {
	return &memStore{
		data:   map[string][]byte{},
		writes: map[string]int{},
	}
}

func (m *memStore) Read(key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.data[key]
	if !ok {
		return nil, storage.ErrNoSnapshot
	}
	return data, nil
}

func (m *memStore) Write(key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = data
	m.writes[key]++
	return nil
}

func (m *memStore) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *memStore) writeCount(key string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes[key]
}

// recordingMirror records mirror notifications as formatted strings.
type recordingMirror struct {
	mu    sync.Mutex
	calls []string
	fail  bool
}

func (r *recordingMirror) record(call string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, call)
	if r.fail {
		return fmt.Errorf("mirror unavailable")
	}
	return nil
}

func (r *recordingMirror) CartAdded(_ context.Context, id string, quantity int) error {
	return r.record(fmt.Sprintf("cart-add %s %d", id, quantity))
}

func (r *recordingMirror) CartRemoved(_ context.Context, id string) error {
	return r.record("cart-remove " + id)
}

func (r *recordingMirror) FavoriteAdded(_ context.Context, id string) error {
	return r.record("fav-add " + id)
}

func (r *recordingMirror) FavoriteRemoved(_ context.Context, id string) error {
	return r.record("fav-remove " + id)
}

func (r *recordingMirror) recorded() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.calls))
	copy(out, r.calls)
	return out
}
