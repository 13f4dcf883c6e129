package kv

import (
	"context"
	"slices"
	"strings"
	"sync"
)

// Memory is an in-process Store. Scans walk entries in insertion
// order, which keeps listings deterministic for a single process.
type Memory struct {
	mu      sync.RWMutex
	entries map[string][]byte
	order   []string
}

func NewMemory() *Memory {
	return &Memory{entries: map[string][]byte{}}
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.entries[key]
	if !ok {
		return nil, false, nil
	}
	return slices.Clone(v), true, nil
}

func (m *Memory) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.entries[key]; !ok {
		m.order = append(m.order, key)
	}
	m.entries[key] = slices.Clone(value)
	return nil
}

func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.entries[key]; !ok {
		return nil
	}
	delete(m.entries, key)
	m.order = slices.DeleteFunc(m.order, func(k string) bool { return k == key })
	return nil
}

func (m *Memory) ScanPrefix(_ context.Context, prefix string) ([][]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	values := [][]byte{}
	for _, k := range m.order {
		if strings.HasPrefix(k, prefix) {
			values = append(values, slices.Clone(m.entries[k]))
		}
	}
	return values, nil
}
