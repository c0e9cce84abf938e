// Package scanmod is a fixture exercising every shape the audit scanner
// reports: acknowledged gate calls, a literal misuse, a computed reason and
// a marker declaration of its own.
package scanmod

import (
	"github.com/wippyai/iosafe"
	"github.com/wippyai/iosafe/fd"
)

// Pipe is a marked wrapper declared outside the iosafe module.
type Pipe struct {
	iosafe.Assertion
	raw iosafe.RawFd
}

func (p *Pipe) AsRawFd() iosafe.RawFd { return p.raw }

func wrapDerived(raw iosafe.RawFd) *fd.Owned {
	return fd.FromRaw(raw, nil, iosafe.Acknowledge("caller guarantees raw came from the OS"))
}

func wrapLiteral() *fd.Owned {
	return fd.FromRaw(7, nil, iosafe.Acknowledge("documented misuse fixture"))
}

func wrapComputedReason(raw iosafe.RawFd, why string) *fd.Owned {
	return fd.FromRaw(raw, nil, iosafe.Acknowledge(why))
}

var _ = wrapDerived
var _ = wrapLiteral
var _ = wrapComputedReason
