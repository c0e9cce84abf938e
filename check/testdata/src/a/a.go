package a

import (
	"github.com/wippyai/iosafe"
)

// Wrapper is a marked wrapper type with a local gate, standing in for fd.Owned.
type Wrapper struct {
	iosafe.Assertion
	raw iosafe.RawFd
}

func (w *Wrapper) AsRawFd() iosafe.RawFd { return w.raw }

// FromRaw is an acknowledged gate: fine by itself.
func FromRaw(raw iosafe.RawFd, ack iosafe.Acknowledgment) *Wrapper {
	return &Wrapper{raw: raw}
}

// WrapLeaky bypasses the acknowledgment requirement.
func WrapLeaky(raw iosafe.RawFd) *Wrapper { // want `WrapLeaky returns a safety-marked wrapper from a raw descriptor without an acknowledgment`
	return &Wrapper{raw: raw}
}

// wrapInternal is unexported, not a public construction path.
func wrapInternal(raw iosafe.RawFd) *Wrapper {
	return &Wrapper{raw: raw}
}

func gateCalls() {
	v := osReturnedFd()
	_ = FromRaw(v, iosafe.Acknowledge("value produced by osReturnedFd above"))

	_ = FromRaw(7, iosafe.Acknowledge("misuse")) // want `raw descriptor forged from constant 7`

	const stdin iosafe.RawFd = 0
	_ = FromRaw(stdin, iosafe.Acknowledge("stdin is open at process start")) // want `raw descriptor forged from constant 0`

	_ = FromRaw(v, iosafe.Acknowledge("")) // want `acknowledgment reason is empty`
}

func osReturnedFd() iosafe.RawFd {
	return 3
}

// useMarked requires both capabilities: fine.
func useMarked[T iosafe.SafeFd](t T) iosafe.RawFd {
	return t.AsRawFd()
}

// useUnmarked requires exposure without the marker.
func useUnmarked[T iosafe.AsFd](t T) iosafe.RawFd { // want `constraint requires raw descriptor exposure without the iosafe.Safe marker`
	return t.AsRawFd()
}

// useLiteralConstraint spells the method out; still marker-less.
func useLiteralConstraint[T interface{ AsRawFd() iosafe.RawFd }](t T) iosafe.RawFd { // want `constraint requires raw descriptor exposure without the iosafe.Safe marker`
	return t.AsRawFd()
}

// container has a marker-less exposing constraint on a type declaration.
type container[T iosafe.AsFd] struct { // want `constraint requires raw descriptor exposure without the iosafe.Safe marker`
	inner T
}

// plainContainer has no exposure requirement at all: fine.
type plainContainer[T any] struct {
	inner T
}

var (
	_ = wrapInternal
	_ = gateCalls
	_ = useMarked[*Wrapper]
	_ = container[*Wrapper]{}
	_ = plainContainer[int]{}
)
