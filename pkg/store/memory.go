package store

import (
	"sort"
	"strconv"
	"sync"
)

// MemoryStore keeps values in a map. Sessions share the map, so writes are
// visible to every later session exactly like a persistent store.
type MemoryStore struct {
	mu       sync.Mutex
	values   map[Key]string
	integers map[Key]bool
	opens    int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[Key]string), integers: make(map[Key]bool)}
}

func (m *MemoryStore) Open() (Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.opens++
	return &memorySession{store: m}, nil
}

// Opens returns how many sessions have been opened.
func (m *MemoryStore) Opens() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.opens
}

// Keys returns every stored key, sorted by String().
func (m *MemoryStore) Keys() []Key {
	m.mu.Lock()
	defer m.mu.Unlock()

	keys := make([]Key, 0, len(m.values))
	for k := range m.values {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i].String() < keys[j].String()
	})
	return keys
}

// IsInteger reports whether key was last written through WriteInteger.
func (m *MemoryStore) IsInteger(key Key) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.integers[key]
}

type memorySession struct {
	store  *MemoryStore
	closed bool
}

func (s *memorySession) Read(key Key) (string, bool, error) {
	if s.closed {
		return "", false, errSessionClosed
	}
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	v, ok := s.store.values[key]
	return v, ok, nil
}

func (s *memorySession) Write(key Key, value string) error {
	if s.closed {
		return errSessionClosed
	}
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	s.store.values[key] = value
	delete(s.store.integers, key)
	return nil
}

func (s *memorySession) WriteInteger(key Key, value uint32) error {
	if s.closed {
		return errSessionClosed
	}
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	s.store.values[key] = strconv.FormatUint(uint64(value), 10)
	s.store.integers[key] = true
	return nil
}

func (s *memorySession) Delete(key Key) error {
	if s.closed {
		return errSessionClosed
	}
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	delete(s.store.values, key)
	delete(s.store.integers, key)
	return nil
}

func (s *memorySession) Close() error {
	s.closed = true
	return nil
}
