package fd

import (
	"errors"
	"sync"

	"github.com/wippyai/iosafe"
	"github.com/wippyai/iosafe/registry"
)

var (
	// ErrReleased is returned by operations on an Owned whose descriptor was
	// already closed or transferred out.
	ErrReleased = errors.New("descriptor already released")
	// ErrNotAcquired is returned by operations on a zero-value Owned, which
	// never held a descriptor.
	ErrNotAcquired = errors.New("descriptor never acquired")
)

// ReleaseFunc releases a raw descriptor through the OS. The mechanism makes
// no OS calls of its own; callers inject the close-equivalent for their
// platform, e.g. a unix close wrapper. The call is assumed to invalidate the
// OS-side lifetime immediately, and calling it twice for the same live value
// is a hazard outside this package's scope.
type ReleaseFunc func(iosafe.RawFd) error

type ownedState uint8

const (
	stateUnacquired ownedState = iota // zero value, never held a descriptor
	stateLive
	stateReleased
)

// Owned is an owning wrapper around one raw descriptor.
//
// While an Owned is live, the raw value obtainable from AsRawFd is valid.
// Close releases the resource exactly once; IntoRawFd transfers ownership
// out without releasing. The zero value is inert: it holds nothing and all
// operations fail with ErrNotAcquired.
//
// Owned declares the I/O-safety capability marker. The declaration is
// upheld by construction: the raw field is unexported, FromRaw is the only
// raw-accepting constructor and it demands an acknowledgment, and no
// operation reassigns the descriptor of a live Owned.
type Owned struct {
	iosafe.Assertion

	mu      sync.Mutex
	raw     iosafe.RawFd
	release ReleaseFunc
	state   ownedState
}

// FromRaw wraps a bare raw descriptor into exclusive ownership. It is the
// unsafe construction gate: the sole sanctioned conversion from an unchecked
// raw value into the safe world.
//
// Preconditions, caller-verified and unchecked (unverifiable from an opaque
// integer):
//
//   - raw was returned by an OS call that allocated the resource;
//   - no other owner or live wrapper refers to it;
//   - the resource has not been released.
//
// ack must state how those preconditions were verified; pass the result of
// iosafe.Acknowledge at the call site. FromRaw itself performs no OS call
// and cannot fail: a violated precondition produces a wrapper that looks
// healthy and a hazard nothing at runtime will catch.
//
// release is invoked once by Close; nil means the wrapper manages logical
// ownership only and Close releases nothing through the OS.
func FromRaw(raw iosafe.RawFd, release ReleaseFunc, ack iosafe.Acknowledgment) *Owned {
	currentRegistry().Acquired(raw, registry.Provenance{
		Reason: ack.Reason(),
		Site:   ack.Site(),
	})
	return &Owned{
		raw:     raw,
		release: release,
		state:   stateLive,
	}
}

// AsRawFd exposes the descriptor by reference: the returned value is valid
// only while o remains live. After Close or IntoRawFd it returns
// iosafe.InvalidFd. Retaining the value past o's lifetime is a dangling
// handle; no runtime check exists.
func (o *Owned) AsRawFd() iosafe.RawFd {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.state != stateLive {
		return iosafe.InvalidFd
	}
	return o.raw
}

// IntoRawFd exposes the descriptor by value, consuming o's ownership. On
// success the caller holds the only claim to the resource and o will never
// release it (no double close). The value re-enters the unchecked state;
// re-wrapping it goes back through FromRaw under the same preconditions.
func (o *Owned) IntoRawFd() (iosafe.RawFd, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	switch o.state {
	case stateUnacquired:
		return iosafe.InvalidFd, ErrNotAcquired
	case stateReleased:
		return iosafe.InvalidFd, ErrReleased
	}

	o.state = stateReleased
	raw := o.raw
	o.raw = iosafe.InvalidFd
	currentRegistry().Transferred(raw)
	return raw, nil
}

// Close releases the resource through the injected ReleaseFunc, exactly
// once. A second Close returns ErrReleased without touching the OS. Closing
// while Borrowed views are outstanding is recorded as a violation by the
// diagnostics registry but not prevented; the views are dangling from this
// point on.
func (o *Owned) Close() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	switch o.state {
	case stateUnacquired:
		return ErrNotAcquired
	case stateReleased:
		return ErrReleased
	}

	o.state = stateReleased
	raw := o.raw
	o.raw = iosafe.InvalidFd
	currentRegistry().Released(raw)

	if o.release == nil {
		return nil
	}
	return o.release(raw)
}

// Borrow returns a non-owning view of the descriptor. The view is valid only
// while o stays live; call End on the view when done so the diagnostics
// registry can balance its borrow count. Borrow on a non-live Owned returns
// an inert view.
func (o *Owned) Borrow() Borrowed {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.state != stateLive {
		return Borrowed{raw: iosafe.InvalidFd}
	}
	currentRegistry().Borrowed(o.raw)
	return Borrowed{raw: o.raw, live: true}
}
