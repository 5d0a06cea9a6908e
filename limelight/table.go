package limelight

import (
	"context"
	"sync"
)

// Table is the key/value store a vision co-processor publishes through.
// Keys are strings, values are doubles, and reads fall back to a
// default when a key has not been published yet.
type Table interface {
	Number(ctx context.Context, key string, defaultValue float64) (float64, error)
	SetNumber(ctx context.Context, key string, value float64) error
}

// MemTable is an in-process Table for simulation and tests. It is safe
// for concurrent use.
type MemTable struct {
	mu     sync.Mutex
	values map[string]float64
}

// NewMemTable returns an empty in-memory table.
func NewMemTable() *MemTable {
	return &MemTable{values: map[string]float64{}}
}

// Number returns the value stored under key, or defaultValue when the
// key is absent.
func (t *MemTable) Number(ctx context.Context, key string, defaultValue float64) (float64, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if value, ok := t.values[key]; ok {
		return value, nil
	}
	return defaultValue, nil
}

// SetNumber stores value under key.
func (t *MemTable) SetNumber(ctx context.Context, key string, value float64) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.values[key] = value
	return nil
}
