package storage

import "sync"

// KV is a string key/value store. Load reports whether the key exists.
type KV interface {
	Load(key string) (string, bool, error)
	Save(key, value string) error
}

// Memory is an in-process KV.
type Memory struct {
	mu     sync.Mutex
	values map[string]string
}

// NewMemory creates an empty in-memory KV.
func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

// Load implements KV.
func (m *Memory) Load(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok, nil
}

// Save implements KV.
func (m *Memory) Save(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.values == nil {
		m.values = make(map[string]string)
	}
	m.values[key] = value
	return nil
}

var (
	_ KV = (*Memory)(nil)
	_ KV = (*Store)(nil)
)
