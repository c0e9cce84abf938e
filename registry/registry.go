package registry

import (
	"fmt"
	"sync"

	"github.com/wippyai/iosafe"
)

// Registry fans handle lifecycle events out to observers over a LocalStore.
//
// All recording methods are observe-only: a contradiction in the bookkeeping
// produces an EventViolation and the caller's operation proceeds regardless.
// A nil *Registry is valid and records nothing, so library code can call
// through unconditionally.
type Registry struct {
	store     *LocalStore
	observers []Observer
	obsMu     sync.RWMutex
	closed    bool
	closeMu   sync.RWMutex
}

// New creates a registry with an empty store.
func New() *Registry {
	return &Registry{
		store: NewLocalStore(),
	}
}

// Acquired records a gate call producing a live handle. A zero acknowledgment
// or a raw value already recorded as live is reported as a violation.
func (r *Registry) Acquired(fd iosafe.RawFd, prov Provenance) {
	if r == nil || r.isClosed() {
		return
	}

	if prov.Site == "" && prov.Reason == "" {
		r.notify(Event{
			Type:   EventViolation,
			Fd:     fd,
			Detail: "gate called with zero acknowledgment",
		})
	}

	if err := r.store.Acquire(fd, prov); err == ErrDuplicate {
		prev, _ := r.store.Provenance(fd)
		r.notify(Event{
			Type:       EventViolation,
			Fd:         fd,
			Provenance: prov,
			Detail:     fmt.Sprintf("raw value already live (first acquired at %s)", prev.Site),
		})
		return
	}

	r.notify(Event{Type: EventAcquired, Fd: fd, Provenance: prov})
}

// Borrowed records a non-owning view being taken.
func (r *Registry) Borrowed(fd iosafe.RawFd) {
	if r == nil || r.isClosed() {
		return
	}

	if !r.store.Borrow(fd) {
		r.notify(Event{
			Type:   EventViolation,
			Fd:     fd,
			Detail: "borrow of a raw value not recorded as live",
		})
		return
	}
	r.notify(Event{Type: EventBorrowed, Fd: fd})
}

// BorrowReturned records a view ending.
func (r *Registry) BorrowReturned(fd iosafe.RawFd) {
	if r == nil || r.isClosed() {
		return
	}

	if !r.store.ReturnBorrow(fd) {
		r.notify(Event{
			Type:   EventViolation,
			Fd:     fd,
			Detail: "borrow returned for a raw value with no outstanding borrows",
		})
		return
	}
	r.notify(Event{Type: EventBorrowReturned, Fd: fd})
}

// Transferred records ownership leaving a wrapper by value. The raw value
// re-enters the unchecked state; a later acknowledged gate call may record
// it live again.
func (r *Registry) Transferred(fd iosafe.RawFd) {
	if r == nil || r.isClosed() {
		return
	}

	prov, ok := r.store.Transfer(fd)
	if !ok {
		r.notify(Event{
			Type:   EventViolation,
			Fd:     fd,
			Detail: "transfer of a raw value not recorded as live",
		})
		return
	}
	r.notify(Event{Type: EventTransferred, Fd: fd, Provenance: prov})
}

// Released records a wrapper releasing its resource. Releasing an unknown
// raw value (typically a double release) or releasing with outstanding
// borrows is reported as a violation; the release itself already happened.
func (r *Registry) Released(fd iosafe.RawFd) {
	if r == nil || r.isClosed() {
		return
	}

	prov, borrows, ok := r.store.Release(fd)
	if !ok {
		r.notify(Event{
			Type:   EventViolation,
			Fd:     fd,
			Detail: "release of a raw value not recorded as live (double release?)",
		})
		return
	}
	if borrows > 0 {
		r.notify(Event{
			Type:       EventViolation,
			Fd:         fd,
			Provenance: prov,
			Detail:     fmt.Sprintf("released with %d outstanding borrow(s)", borrows),
		})
	}
	r.notify(Event{Type: EventReleased, Fd: fd, Provenance: prov})
}

// Subscribe adds an observer for lifecycle events.
func (r *Registry) Subscribe(o Observer) {
	if r == nil {
		return
	}
	r.obsMu.Lock()
	defer r.obsMu.Unlock()
	r.observers = append(r.observers, o)
}

// Unsubscribe removes an observer.
func (r *Registry) Unsubscribe(o Observer) {
	if r == nil {
		return
	}
	r.obsMu.Lock()
	defer r.obsMu.Unlock()
	for i, obs := range r.observers {
		if obs == o {
			r.observers = append(r.observers[:i], r.observers[i+1:]...)
			return
		}
	}
}

// Live returns the number of handles currently recorded as live. Useful in
// tests as a leak check.
func (r *Registry) Live() int {
	if r == nil {
		return 0
	}
	return r.store.Len()
}

// Each iterates over all handles currently recorded as live.
func (r *Registry) Each(fn func(fd iosafe.RawFd, prov Provenance, borrows int) bool) {
	if r == nil {
		return
	}
	r.store.Each(fn)
}

// Close discards all bookkeeping and stops recording.
func (r *Registry) Close() error {
	if r == nil {
		return nil
	}
	r.closeMu.Lock()
	r.closed = true
	r.closeMu.Unlock()

	return r.store.Close()
}

func (r *Registry) isClosed() bool {
	r.closeMu.RLock()
	defer r.closeMu.RUnlock()
	return r.closed
}

func (r *Registry) notify(e Event) {
	r.obsMu.RLock()
	defer r.obsMu.RUnlock()
	for _, o := range r.observers {
		o.OnHandleEvent(e)
	}
}
