package skill

import (
	"sync"
	"sync/atomic"
)

// Store holds the live dictionary. Reads are lock-free; extensions validate
// against the current dictionary and swap in a new one.
type Store struct {
	mu      sync.Mutex
	current atomic.Pointer[Dictionary]
}

func NewStore(d *Dictionary) *Store {
	s := &Store{}
	s.current.Store(d)
	return s
}

func (s *Store) Current() *Dictionary {
	return s.current.Load()
}

// Extend appends defs to the live dictionary. On a validation error (alias or
// name collision) the live dictionary is left unchanged.
func (s *Store) Extend(defs ...Definition) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := s.current.Load().Extend(defs...)
	if err != nil {
		return err
	}
	s.current.Store(next)
	return nil
}
