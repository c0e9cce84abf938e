// Package conformance verifies the static discipline the way a static
// discipline can be verified: by type-checking small programs and asserting
// which ones the compiler accepts.
//
// Each directory under testdata is one program:
//
//	accept_marked        generic SafeFd-bounded code accepts *fd.Owned
//	reject_rawfd         the same code rejects a bare iosafe.RawFd
//	reject_unmarked      ... and rejects an exposing type without the marker
//	reject_direct        fd.Owned cannot be built around a raw value directly
//	accept_literal_gate  the gate accepts a literal constant; this COMPILES
//	                     and is the documented misuse the check analyzer
//	                     flags, not a rejected case
//
// Two laws are not mechanically checkable and are asserted as worked
// examples instead (see the fd package examples):
//
//   - Round-trip: IntoRawFd then FromRaw under the stated preconditions is
//     behaviorally equivalent to the original ownership, with one eventual
//     release.
//   - Dangling: a value from AsRawFd dies with its wrapper; after Close the
//     retained scalar is invalid and nothing at runtime can tell.
package conformance
