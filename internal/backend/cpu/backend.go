// Package cpu implements the pure-Go CPU backend for the Arc array library.
package cpu

import (
	"github.com/arc-ml/arc/internal/parallel"
	"github.com/arc-ml/arc/internal/tensor"
)

// CPUBackend implements tensor kernels on CPU with worker-pool parallelism.
type CPUBackend struct {
	device tensor.Device
	par    parallel.Config
}

// New creates a new CPU backend.
func New() *CPUBackend {
	return &CPUBackend{
		device: tensor.CPU,
		par:    parallel.DefaultConfig(),
	}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// Device returns the compute device.
func (cpu *CPUBackend) Device() tensor.Device {
	return cpu.device
}

// newRaw allocates a result tensor or panics; kernel inputs are validated by
// the ops layer before dispatch, so allocation is the only failure left here.
func (cpu *CPUBackend) newRaw(shape tensor.Shape, dtype tensor.DataType) *tensor.RawTensor {
	result, err := tensor.NewRaw(shape, dtype, cpu.device)
	if err != nil {
		panic(err)
	}
	return result
}

// forEach runs f over [0, n) through the backend's worker pool.
func forEach(cfg parallel.Config, n int, f func(i int)) {
	parallel.For(n, f, cfg)
}

// isHalf reports whether dt is one of the 16-bit float formats that kernels
// compute in float32.
func isHalf(dt tensor.DataType) bool {
	return dt == tensor.Float16 || dt == tensor.BFloat16
}

// widenHalf returns x converted to float32 when it is a 16-bit float,
// otherwise x itself.
func (cpu *CPUBackend) widenHalf(x *tensor.RawTensor) *tensor.RawTensor {
	if isHalf(x.DType()) {
		return cpu.Cast(x, tensor.Float32)
	}
	return x
}
