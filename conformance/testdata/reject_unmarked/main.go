// A type exposing its raw descriptor without declaring the marker must not
// satisfy the combined bound.
package main

import (
	"fmt"

	"github.com/wippyai/iosafe"
)

type leaky struct {
	raw iosafe.RawFd
}

func (l leaky) AsRawFd() iosafe.RawFd { return l.raw }

func use[T iosafe.SafeFd](t T) iosafe.RawFd {
	return t.AsRawFd()
}

func main() {
	fmt.Println(use(leaky{raw: 3}))
}
