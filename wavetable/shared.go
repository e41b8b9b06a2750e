package wavetable

import (
	"sync"
	"sync/atomic"

	"github.com/cwbudde/algo-osc/core"
)

var (
	sharedOnce sync.Once
	sharedSet  *Set
	sharedErr  error

	// buildCount tracks Build invocations; tests use it to verify the
	// expensive generation path runs exactly once behind sharedOnce.
	buildCount atomic.Int64
)

// Shared returns the process-wide table set, building it on first call.
// Concurrent first calls serialize through the construction exactly once;
// afterwards access is lock-free and read-only.
//
// Options are honored only by the call that performs the construction. A
// build failure is sticky: every caller observes the same error.
func Shared(opts ...core.ProcessorOption) (*Set, error) {
	sharedOnce.Do(func() {
		sharedSet, sharedErr = Build(opts...)
	})

	return sharedSet, sharedErr
}
