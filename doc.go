// Package iosafe provides a compile-time capability discipline for raw OS
// resource handles.
//
// A raw descriptor is just an integer. The type system cannot tell a value
// returned by the OS from a forged constant, and it cannot tell a live
// descriptor from one whose resource was already closed. This library closes
// that gap with a static discipline instead of a runtime check: wrapper types
// own their raw handle, a single gated constructor is the only raw-to-wrapper
// path, and a capability marker lets generic code require that a handle-like
// value was safely obtained.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	iosafe/          Root package with raw handle scalars, the Safe marker
//	│                and the Acknowledgment call-site annotation
//	├── fd/          Owning and borrowed descriptor wrappers plus the gated
//	│                FromRaw constructor
//	├── registry/    Opt-in diagnostics registry tracking handle provenance
//	├── errors/      Structured error types for tooling and diagnostics
//	├── check/       go/analysis linter enforcing the discipline by lint
//	├── audit/       Module scanner reporting gate call sites and marker
//	│                declarations, with YAML policy checking
//	├── conformance/ Compile-pass/compile-fail conformance harness
//	└── cmd/audit/   CLI around the audit scanner
//
// # I/O Safety
//
// I/O safety is the guarantee that every operation performed through a raw
// handle uses a value explicitly returned by the OS, within that value's
// OS-associated lifetime. Two hazards break it:
//
//	forging   - producing a raw value the OS never returned for the resource
//	dangling  - keeping a raw value past the resource's OS lifetime
//
// Neither hazard is detectable at runtime given only an opaque integer, so
// both are confined to one explicitly marked construction path instead.
//
// # The Capability Marker
//
// A wrapper type declares the marker by embedding [Assertion]:
//
//	type Conn struct {
//	    iosafe.Assertion
//	    // ...
//	}
//
// Embedding is the auditable claim that the type upholds the validity rules
// documented on [Assertion]. The claim cannot be verified mechanically; it is
// a proof obligation on the type's author, discharged by review. Every
// declaration site is greppable as "iosafe.Assertion", and the audit tooling
// enumerates them.
//
// Generic code that performs I/O through a handle obtained from a type
// parameter must bound that parameter by both capabilities:
//
//	func SendTo[T iosafe.SafeFd](dst T, p []byte) error {
//	    raw := dst.AsRawFd()
//	    // ...
//	}
//
// Bounding by AsFd alone compiles but reopens the hazard; the check package
// flags it.
//
// # The Construction Gate
//
// The only sanctioned conversion from a bare raw value to a wrapper is
// fd.FromRaw, and every call site must carry an [Acknowledgment] stating what
// the caller verified:
//
//	f, err := os.Open(path)
//	// ...
//	owned := fd.FromRaw(iosafe.RawFd(f.Fd()), closer,
//	    iosafe.Acknowledge("descriptor returned by os.Open above, ownership not shared"))
//
// The gate performs no OS call and no validity check: there is nothing to
// check. Violating its preconditions is an uncontained hazard, which is
// exactly why the acknowledgment is mandatory and auditable.
package iosafe
