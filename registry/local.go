package registry

import (
	"errors"
	"sync"

	"github.com/wippyai/iosafe"
)

var (
	ErrClosed    = errors.New("handle store closed")
	ErrDuplicate = errors.New("raw value already recorded as live")
)

// LocalStore is the in-memory Store implementation.
//
// Entries are keyed by raw value. Whether two equal raw values denote the
// same OS resource is unknowable here; the store treats value equality as
// identity for bookkeeping only.
type LocalStore struct {
	entries map[iosafe.RawFd]*entry
	mu      sync.RWMutex
	closed  bool
}

type entry struct {
	prov    Provenance
	borrows int
}

// NewLocalStore creates an empty in-memory store.
func NewLocalStore() *LocalStore {
	return &LocalStore{
		entries: make(map[iosafe.RawFd]*entry, 16),
	}
}

// Acquire records a handle as live.
func (s *LocalStore) Acquire(fd iosafe.RawFd, prov Provenance) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}
	if _, ok := s.entries[fd]; ok {
		return ErrDuplicate
	}
	s.entries[fd] = &entry{prov: prov}
	return nil
}

// Borrow increments the borrow count for a live handle.
func (s *LocalStore) Borrow(fd iosafe.RawFd) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[fd]
	if !ok {
		return false
	}
	e.borrows++
	return true
}

// ReturnBorrow decrements the borrow count for a live handle.
func (s *LocalStore) ReturnBorrow(fd iosafe.RawFd) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[fd]
	if !ok || e.borrows == 0 {
		return false
	}
	e.borrows--
	return true
}

// Transfer removes a handle because ownership left by value.
func (s *LocalStore) Transfer(fd iosafe.RawFd) (Provenance, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[fd]
	if !ok {
		return Provenance{}, false
	}
	delete(s.entries, fd)
	return e.prov, true
}

// Release removes a handle because the wrapper released the resource.
func (s *LocalStore) Release(fd iosafe.RawFd) (Provenance, int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[fd]
	if !ok {
		return Provenance{}, 0, false
	}
	delete(s.entries, fd)
	return e.prov, e.borrows, true
}

// Provenance returns the recorded provenance for a live handle.
func (s *LocalStore) Provenance(fd iosafe.RawFd) (Provenance, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[fd]
	if !ok {
		return Provenance{}, false
	}
	return e.prov, true
}

// Len returns the number of live handles.
func (s *LocalStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Each iterates over all live handles.
func (s *LocalStore) Each(fn func(fd iosafe.RawFd, prov Provenance, borrows int) bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for fd, e := range s.entries {
		if !fn(fd, e.prov, e.borrows) {
			break
		}
	}
}

// Close discards all bookkeeping.
func (s *LocalStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	s.entries = nil
	return nil
}
