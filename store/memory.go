package store

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"
)

var _ ConnectionStore = (*Memory)(nil)

// Memory is a ConnectionStore that keeps saved connections for the life of the process.
type Memory struct {
	mu    sync.RWMutex
	conns map[string]StoredConnection
	now   func() time.Time
}

// NewMemory returns an empty Memory store.
func NewMemory() *Memory {
	return &Memory{
		conns: make(map[string]StoredConnection),
		now:   time.Now,
	}
}

func (m *Memory) SaveConnection(ctx context.Context, c StoredConnection) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c = c.WithDefaults(m.now())

	m.mu.Lock()
	defer m.mu.Unlock()
	m.conns[c.ID] = c
	return nil
}

func (m *Memory) ListConnections(ctx context.Context) ([]StoredConnection, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	out := make([]StoredConnection, 0, len(m.conns))
	for _, c := range m.conns {
		out = append(out, c)
	}
	m.mu.RUnlock()

	slices.SortFunc(out, func(a, b StoredConnection) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
	return out, nil
}

func (m *Memory) GetConnection(ctx context.Context, id string) (StoredConnection, error) {
	if err := ctx.Err(); err != nil {
		return StoredConnection{}, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	c, ok := m.conns[id]
	if !ok {
		return StoredConnection{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return c, nil
}

func (m *Memory) DeleteConnection(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.conns[id]; !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	delete(m.conns, id)
	return nil
}

