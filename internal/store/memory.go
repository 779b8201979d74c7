// internal/store/memory.go
//
// In-memory implementation of the match Store.
// Local two-player matches are short-lived and need no durability.
//
// Characteristics:
//   - Stores *match.Match objects keyed by ID in a map.
//   - Concurrency-safe via RWMutex; mutations run inside Update under the write lock.
//   - State is lost when the process restarts.

package store

import (
	"context"
	"errors"
	"sync"

	"github.com/wordventure/word-api/internal/match"
)

// ErrNotFound is returned for unknown match IDs.
var ErrNotFound = errors.New("store: match not found")

// Store defines the persistence interface for matches.
type Store interface {
	// Save persists a new or replaced match.
	Save(ctx context.Context, m *match.Match) error

	// View returns a read-only snapshot of a match.
	View(ctx context.Context, id string) (match.View, error)

	// Update runs fn on the stored match while holding it exclusively.
	Update(ctx context.Context, id string, fn func(m *match.Match) error) error
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu      sync.RWMutex            // guards matches and every *Match in it
	matches map[string]*match.Match // keyed by Match.ID
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{matches: make(map[string]*match.Match)}
}

func (m *memory) Save(ctx context.Context, mt *match.Match) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.matches[mt.ID] = mt
	return nil
}

func (m *memory) View(ctx context.Context, id string) (match.View, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if mt, ok := m.matches[id]; ok {
		return mt.View(), nil
	}
	return match.View{}, ErrNotFound
}

func (m *memory) Update(ctx context.Context, id string, fn func(*match.Match) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	mt, ok := m.matches[id]
	if !ok {
		return ErrNotFound
	}
	return fn(mt)
}
