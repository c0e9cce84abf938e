// A marked wrapper satisfies the combined bound: this program compiles.
package main

import (
	"fmt"

	"github.com/wippyai/iosafe"
	"github.com/wippyai/iosafe/fd"
)

func use[T iosafe.SafeFd](t T) iosafe.RawFd {
	return t.AsRawFd()
}

func main() {
	owned := fd.FromRaw(3, nil, iosafe.Acknowledge("conformance fixture, no real resource"))
	fmt.Println(use(owned))
	_ = owned.Close()
}
