// The gate accepts any raw value, a literal included: this program
// compiles. It is also the canonical forging misuse unless 7 denotes a
// live, OS-returned resource the caller exclusively owns; the check
// analyzer flags it, the type checker cannot.
package main

import (
	"fmt"

	"github.com/wippyai/iosafe"
	"github.com/wippyai/iosafe/fd"
)

func main() {
	forged := fd.FromRaw(7, nil, iosafe.Acknowledge("misuse fixture: 7 was never returned by the OS here"))
	fmt.Println(forged.AsRawFd())
	_ = forged.Close()
}
