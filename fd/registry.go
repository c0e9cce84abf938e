package fd

import (
	"sync"

	"github.com/wippyai/iosafe/registry"
)

var (
	regMu sync.RWMutex
	reg   *registry.Registry
)

// SetRegistry installs a process-wide diagnostics registry recording gate
// calls, borrows, transfers and releases made through this package. Pass nil
// to stop recording. The default is no registry; production code pays
// nothing.
func SetRegistry(r *registry.Registry) {
	regMu.Lock()
	defer regMu.Unlock()
	reg = r
}

// currentRegistry returns the installed registry. A nil result is fine: all
// registry methods accept a nil receiver.
func currentRegistry() *registry.Registry {
	regMu.RLock()
	defer regMu.RUnlock()
	return reg
}

// Live reports the number of descriptors the installed registry records as
// live, 0 without a registry. A convenient leak check in tests.
func Live() int {
	return currentRegistry().Live()
}
