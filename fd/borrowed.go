package fd

import (
	"github.com/wippyai/iosafe"
)

// Borrowed is a non-owning view of a descriptor owned elsewhere. It exposes
// the descriptor by reference only and never releases it.
//
// A Borrowed is valid exactly as long as the Owned it came from stays live;
// the value itself carries no lifetime metadata, so using it after the owner
// closes is a dangling handle the caller must rule out. Borrowed declares
// the capability marker under that documented contract.
type Borrowed struct {
	iosafe.Assertion

	raw  iosafe.RawFd
	live bool
	done bool
}

// AsRawFd exposes the descriptor by reference. An inert view (taken from a
// non-live Owned, or already ended) returns iosafe.InvalidFd.
func (b Borrowed) AsRawFd() iosafe.RawFd {
	if !b.live || b.done {
		return iosafe.InvalidFd
	}
	return b.raw
}

// End returns the borrow to the diagnostics registry. The view is inert
// afterwards. End on an inert view is a no-op.
func (b *Borrowed) End() {
	if !b.live || b.done {
		return
	}
	b.done = true
	currentRegistry().BorrowReturned(b.raw)
}
