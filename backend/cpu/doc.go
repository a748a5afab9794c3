// Package cpu provides the pure Go CPU backend for Arc tensors.
//
// The backend implements every kernel the ops layer dispatches: element-wise
// comparison and arithmetic, clamping, index-returning reductions, set
// membership, selection, and the 1-D sort/unique/gather primitives behind the
// sort-based isin strategy. Large element-wise loops are chunked across
// goroutines; see the parallel configuration on the backend.
//
// # Basic Usage
//
//	import (
//	    "github.com/arc-ml/arc/backend/cpu"
//	    "github.com/arc-ml/arc/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    x := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
//	    mask, err := tensor.IsFinite(x)
//	    ...
//	}
//
// # Thread Safety
//
// The backend holds no mutable state of its own; distinct tensors can be
// operated on concurrently. Operations on the same tensor require caller
// synchronization.
package cpu
