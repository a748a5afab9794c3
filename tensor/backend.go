package tensor

import "github.com/arc-ml/arc/internal/tensor"

// Backend defines the interface that all compute backends must implement.
// Backends provide the kernels; validation, promotion, and edge-case handling
// live in the operation layer above them.
//
// Implementations:
//   - backend/cpu: Pure Go with optional goroutine parallelism
//
// Backends are injected explicitly at tensor creation; there is no global
// dispatch table.
//
// Example:
//
//	import (
//	    "github.com/arc-ml/arc/backend/cpu"
//	    "github.com/arc-ml/arc/tensor"
//	)
//
//	backend := cpu.New()
//	x := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
//	mask := x.Eq(x)
type Backend = tensor.Backend
