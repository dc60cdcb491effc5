package preview

import "sync"

// KV is the minimal persistent key-value area backing the cache. Values
// are opaque JSON blobs; implementations must treat missing keys as a
// (nil, false, nil) miss rather than an error.
type KV interface {
	Get(key string) ([]byte, bool, error)
	Put(key string, value []byte) error
	Delete(key string) error
}

// Memory is an in-process KV, used for tests and cache-less runs.
type Memory struct {
	mu     sync.Mutex
	values map[string][]byte
}

// NewMemory returns an empty in-memory KV.
func NewMemory() *Memory {
	return &Memory{values: make(map[string][]byte)}
}

func (m *Memory) Get(key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	value, ok := m.values[key]
	if !ok {
		return nil, false, nil
	}
	dup := make([]byte, len(value))
	copy(dup, value)
	return dup, true, nil
}

func (m *Memory) Put(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	dup := make([]byte, len(value))
	copy(dup, value)
	m.values[key] = dup
	return nil
}

func (m *Memory) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}
