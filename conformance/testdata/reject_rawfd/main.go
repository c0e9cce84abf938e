// A bare raw scalar has neither capability: the call to use must not
// type-check.
package main

import (
	"fmt"

	"github.com/wippyai/iosafe"
)

func use[T iosafe.SafeFd](t T) iosafe.RawFd {
	return t.AsRawFd()
}

func main() {
	raw := iosafe.RawFd(3)
	fmt.Println(use(raw))
}
