// Building an Owned around an arbitrary raw value without the gate must not
// type-check: the descriptor field is not part of the public surface.
package main

import (
	"fmt"

	"github.com/wippyai/iosafe/fd"
)

func main() {
	owned := fd.Owned{raw: 7}
	fmt.Println(owned.AsRawFd())
}
