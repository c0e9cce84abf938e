package fd_test

import (
	"fmt"

	"github.com/wippyai/iosafe"
	"github.com/wippyai/iosafe/fd"
)

// The round-trip law: transferring a descriptor out of an Owned and
// re-wrapping it under the gate's preconditions yields ownership
// behaviorally equivalent to the original, with the same single eventual
// release.
func Example_roundTrip() {
	releases := 0
	release := func(iosafe.RawFd) error {
		releases++
		return nil
	}

	first := fd.FromRaw(7, release, iosafe.Acknowledge("illustrative value standing in for an OS-returned fd"))

	// Transfer: first relinquishes all responsibility, the caller holds
	// the only claim.
	raw, _ := first.IntoRawFd()

	// Re-wrap: valid because raw was just transferred out and nothing else
	// refers to it.
	second := fd.FromRaw(raw, release, iosafe.Acknowledge("raw transferred out of first on the line above, sole claim"))

	_ = first.Close() // no-op: ownership already left
	_ = second.Close()

	fmt.Println("releases:", releases)
	// Output: releases: 1
}

// A raw value exposed by reference dies with its wrapper. After Close the
// retained value still compares equal to the old descriptor, but using it
// against the OS would be a dangling handle: the resource's lifetime ended
// and nothing at runtime can tell. The wrapper can only make its own
// accessor go inert.
func Example_danglingAfterClose() {
	file := fd.FromRaw(7, nil, iosafe.Acknowledge("illustrative value standing in for an OS-returned fd"))

	raw := file.AsRawFd() // valid only while file is live
	_ = file.Close()

	// raw still holds the bit pattern 7. Passing it to any OS call from
	// here on is invalid; the type system lost track the moment it was
	// copied out.
	fmt.Println("retained:", raw, "wrapper now exposes:", file.AsRawFd())
	// Output: retained: 7 wrapper now exposes: -1
}

// The gate accepts any raw value, including a bare literal: this compiles.
// It is also the textbook forging hazard unless 7 happens to be a live,
// explicitly OS-returned descriptor the caller exclusively owns. The check
// analyzer flags literal arguments at gate calls for exactly this reason.
func Example_literalMisuse() {
	forged := fd.FromRaw(7, nil, iosafe.Acknowledge("misuse example, 7 was never returned by the OS here"))
	fmt.Println("compiles, exposes:", forged.AsRawFd())
	_ = forged.Close()
	// Output: compiles, exposes: 7
}
