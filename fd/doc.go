// Package fd provides the owning descriptor wrapper and the single gated
// constructor that converts a bare raw descriptor into safe ownership.
//
// # Ownership
//
// An [Owned] exclusively owns one raw descriptor: it releases the resource
// through its injected release function exactly once, on Close. The package
// performs no I/O itself; the OS release call is an external collaborator
// passed in as a [ReleaseFunc].
//
// A [Borrowed] shares observation of a descriptor without lifetime control.
// It never releases anything, and it is only valid while the Owned it came
// from is live.
//
// # The gate
//
// [FromRaw] is the only path from a bare raw value into an Owned. It accepts
// any raw value; there is no runtime check that could distinguish a live
// descriptor from a forged or stale one, so the preconditions are the
// caller's to verify and every call carries an iosafe.Acknowledgment saying
// so. Misuse is an uncontained hazard: nothing downstream will detect it.
//
// # Exposure
//
// Owned exposes its descriptor two ways with distinct contracts:
//
//	AsRawFd   valid while the Owned is live; dies with it
//	IntoRawFd consumes ownership; the caller now holds the only claim
//
// There is exactly one relevant transition: raw (unchecked) to Owned
// (checked), performed only by FromRaw. IntoRawFd deliberately re-enters the
// unchecked state; there is no safe inverse.
package fd
