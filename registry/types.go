package registry

import (
	"github.com/wippyai/iosafe"
)

// Event types for handle lifecycle notifications.
type EventType uint8

const (
	EventAcquired EventType = iota
	EventBorrowed
	EventBorrowReturned
	EventTransferred
	EventReleased
	EventViolation
)

// String returns the event type name used in logs and reports.
func (t EventType) String() string {
	switch t {
	case EventAcquired:
		return "acquired"
	case EventBorrowed:
		return "borrowed"
	case EventBorrowReturned:
		return "borrow_returned"
	case EventTransferred:
		return "transferred"
	case EventReleased:
		return "released"
	case EventViolation:
		return "violation"
	}
	return "unknown"
}

// Provenance records how a handle entered the safe world.
type Provenance struct {
	// Reason is the caller's acknowledgment text from the gate call.
	Reason string
	// Site is the file:line of the Acknowledge call, or "" when the gate
	// was called with a zero acknowledgment.
	Site string
}

// Event represents a handle lifecycle event.
type Event struct {
	Provenance Provenance
	Detail     string
	Fd         iosafe.RawFd
	Type       EventType
}

// Observer receives notifications about handle lifecycle events.
type Observer interface {
	OnHandleEvent(Event)
}

// Store provides the underlying bookkeeping for live handles.
type Store interface {
	// Acquire records a handle as live. Returns ErrDuplicate if the raw
	// value is already recorded as live.
	Acquire(fd iosafe.RawFd, prov Provenance) error

	// Borrow increments the borrow count for a live handle.
	Borrow(fd iosafe.RawFd) bool

	// ReturnBorrow decrements the borrow count for a live handle.
	ReturnBorrow(fd iosafe.RawFd) bool

	// Transfer removes a handle because ownership left by value.
	// Returns (provenance, true) if the handle was live.
	Transfer(fd iosafe.RawFd) (Provenance, bool)

	// Release removes a handle because the wrapper released the resource.
	// Returns (provenance, borrows, true) if the handle was live; borrows
	// is the outstanding borrow count at release time.
	Release(fd iosafe.RawFd) (Provenance, int, bool)

	// Provenance returns the recorded provenance for a live handle.
	Provenance(fd iosafe.RawFd) (Provenance, bool)

	// Len returns the number of live handles.
	Len() int

	// Each iterates over all live handles.
	Each(fn func(fd iosafe.RawFd, prov Provenance, borrows int) bool)

	// Close discards all bookkeeping and stops accepting operations.
	Close() error
}
