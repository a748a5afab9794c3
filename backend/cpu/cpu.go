// Package cpu provides the public CPU backend for the Arc array library.
package cpu

import (
	internalcpu "github.com/arc-ml/arc/internal/backend/cpu"
	"github.com/arc-ml/arc/tensor"
)

// Backend represents the CPU backend implementation.
//
// The CPU backend provides pure Go kernels for all tensor operations with
// goroutine-based parallelism for large inputs.
type Backend = internalcpu.CPUBackend

// Compile-time check that Backend implements tensor.Backend.
var _ tensor.Backend = (*Backend)(nil)

// New creates a new CPU backend.
//
// Example:
//
//	import (
//	    "github.com/arc-ml/arc/backend/cpu"
//	    "github.com/arc-ml/arc/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//	    x := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
//	}
func New() *Backend {
	return internalcpu.New()
}
