// Package registry provides opt-in diagnostics for raw handle provenance.
//
// The static discipline in the root package confines handle hazards to
// acknowledged gate calls; it cannot observe what happens at runtime. This
// package adds a purely in-process bookkeeping layer for tests, debug builds
// and audits: which raw values were acquired through a gate, with what
// acknowledgment, how many borrows are outstanding, and when ownership was
// transferred or released.
//
// The registry never enforces anything. A double release or a release with
// outstanding borrows is recorded as a violation event and the operation
// proceeds; production code runs with no registry at all. This is not an OS
// handle table: entries are keyed by raw value as bookkeeping policy only,
// and equal raw values are not claimed to denote the same OS resource.
//
// # Usage
//
//	reg := registry.New()
//	reg.Subscribe(registry.NewLogObserver(logger))
//	fd.SetRegistry(reg)
//
// Observers receive lifecycle events:
//
//	EventAcquired        gate call recorded a new live handle
//	EventBorrowed        a non-owning view was taken
//	EventBorrowReturned  a view ended
//	EventTransferred     ownership left the wrapper by value
//	EventReleased        the wrapper released the resource
//	EventViolation       bookkeeping contradiction (double release, release
//	                     with outstanding borrows, unacknowledged gate call)
package registry
