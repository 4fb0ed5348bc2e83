package storage

import (
	"sync"

	presetlyerrors "github.com/alexisbeaulieu97/presetly/pkg/errors"
)

// MemoryStore is an in-memory Store. FailWrites simulates a storage layer
// that denies persistence, e.g. a browser's privacy mode.
type MemoryStore struct {
	mu         sync.Mutex
	slots      map[string]string
	FailWrites bool
	FailReads  bool
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{slots: make(map[string]string)}
}

func (s *MemoryStore) Read(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailReads {
		return "", false
	}
	v, ok := s.slots[key]
	return v, ok
}

func (s *MemoryStore) Write(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailWrites {
		return presetlyerrors.NewStorageError(key, "write", errWriteDenied)
	}
	s.slots[key] = value
	return nil
}

func (s *MemoryStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailWrites {
		return presetlyerrors.NewStorageError(key, "delete", errWriteDenied)
	}
	delete(s.slots, key)
	return nil
}

// Len returns the number of populated slots.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.slots)
}

var _ Store = (*MemoryStore)(nil)
