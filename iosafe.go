package iosafe

import (
	"fmt"
	"runtime"
)

// RawFd is a raw file descriptor on Unix-like systems. It is a plain
// copyable scalar with no behavior: two equal RawFd values are
// indistinguishable to the type system even if they denote unrelated
// resources, or the same resource at different times. A RawFd carries no
// validity information; validity is a property of how the value was obtained
// and is tracked only by the wrapper types and the capability marker.
type RawFd int

// InvalidFd is returned by accessors on wrappers that no longer hold a
// descriptor. It is never a valid descriptor value.
const InvalidFd RawFd = -1

// Ok reports whether f is a plausible descriptor value. It says nothing
// about whether the descriptor is live.
func (f RawFd) Ok() bool { return f >= 0 }

// RawHandle is a raw opaque handle on Windows-like systems.
type RawHandle uintptr

// RawSocket is a raw socket on Windows-like systems, which use a scalar
// distinct from RawHandle for sockets.
type RawSocket uint64

// Safe is the capability marker. A wrapper type carrying Safe certifies that
// every raw handle obtainable from it through its expose operations is valid
// for the scope those operations document: for the wrapper's remaining
// lifetime when exposed by reference, or at the point of return when exposed
// by transfer.
//
// Safe has no methods a caller can use. Its sole purpose is to appear in
// generic bounds next to an expose capability, statically excluding bare raw
// scalars and unmarked wrapper types. The marker is attached to types, not
// instances, and is never revoked.
//
// Outside this package Safe can only be satisfied by embedding [Assertion].
type Safe interface {
	ioSafe()
}

// Assertion declares the Safe marker for the type that embeds it.
//
// Embedding Assertion is a claim the compiler cannot verify. Before adding
// it to a type T, the author must ensure all of the following:
//
//  1. T is constructible from a raw handle only through an acknowledged
//     construction gate, never through a safe path accepting an arbitrary
//     raw value.
//  2. Any handle T exposes by reference stays valid for as long as the T
//     value it came from, and no other operation of T closes or reassigns
//     the internal handle while such an exposure may be in use, unless T
//     documents exactly which exposures are invalidated by which operations.
//  3. Any operation exposing the handle by transfer leaves T with no
//     responsibility for the resource: the returned value is valid at the
//     point of return and T will never close it.
//
// Declaring the marker without satisfying these rules silently breaks the
// guarantee for every consumer of T. There is no detection beyond review,
// which is why the declaration is a distinct, greppable embed rather than an
// ordinary method implementation.
type Assertion struct{}

func (Assertion) ioSafe() {}

// AsFd is the expose-by-reference capability for descriptors. The returned
// value is valid only while the receiver is live; using it after the
// receiver is closed or consumed is a dangling-handle hazard equivalent to a
// dangling pointer dereference, and nothing at runtime will catch it.
type AsFd interface {
	AsRawFd() RawFd
}

// IntoFd is the expose-by-value capability for descriptors. A successful
// call transfers full responsibility for the resource to the caller: the
// wrapper will never close the handle afterwards, and the returned value is
// valid immediately at the point of return. The transfer deliberately
// re-enters the unchecked state; re-wrapping the value goes back through the
// construction gate.
//
// The two expose capabilities are distinct, never overloaded, so a call site
// is always unambiguous about which lifetime contract applies.
type IntoFd interface {
	IntoRawFd() (RawFd, error)
}

// AsHandle is the expose-by-reference capability for Windows-like handles.
type AsHandle interface {
	AsRawHandle() RawHandle
}

// AsSocket is the expose-by-reference capability for Windows-like sockets.
type AsSocket interface {
	AsRawSocket() RawSocket
}

// SafeFd is the bound generic library code must require to perform I/O
// through a descriptor obtained from a type parameter. Requiring AsFd
// without Safe compiles, but reopens the forging and dangling hazards this
// package exists to close; the check analyzer flags it.
type SafeFd interface {
	AsFd
	Safe
}

// SafeHandle is the handle flavor of SafeFd.
type SafeHandle interface {
	AsHandle
	Safe
}

// SafeSocket is the socket flavor of SafeFd.
type SafeSocket interface {
	AsSocket
	Safe
}

// Raw returns the descriptor of a safety-marked wrapper. It is the sanctioned
// generic accessor: the bound guarantees both that v exposes a descriptor and
// that v's type carries the marker.
func Raw[T SafeFd](v T) RawFd {
	return v.AsRawFd()
}

// Acknowledgment is the caller-side "I have verified this" annotation
// required at every construction gate call. It records why the caller
// believes the raw value is valid, and where the claim was made.
//
// An Acknowledgment is only meaningful when built by [Acknowledge]; the zero
// value carries no claim and gates report it as a violation to the
// diagnostics registry.
type Acknowledgment struct {
	reason string
	site   string
}

// Acknowledge records a call-site assertion that the raw value about to be
// wrapped was obtained directly from an OS call allocating the resource,
// that no other owner holds it, and that it has not been released. The
// reason should state how those preconditions were verified; tooling flags
// empty reasons.
func Acknowledge(reason string) Acknowledgment {
	var site string
	if _, file, line, ok := runtime.Caller(1); ok {
		site = fmt.Sprintf("%s:%d", file, line)
	}
	return Acknowledgment{reason: reason, site: site}
}

// Reason returns the caller's stated justification.
func (a Acknowledgment) Reason() string { return a.reason }

// Site returns the file:line position where Acknowledge was called, or ""
// for a zero Acknowledgment.
func (a Acknowledgment) Site() string { return a.site }

// Empty reports whether a carries no claim.
func (a Acknowledgment) Empty() bool { return a.reason == "" && a.site == "" }
