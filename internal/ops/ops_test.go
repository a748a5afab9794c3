package ops

import (
	"testing"

	"github.com/arc-ml/arc/internal/backend/cpu"
	"github.com/arc-ml/arc/internal/tensor"
)

func testBackend() tensor.Backend {
	return cpu.New()
}

func rawFloat64(t *testing.T, shape tensor.Shape, data []float64) *tensor.RawTensor {
	t.Helper()
	raw := tensor.MustNewRaw(shape, tensor.Float64, tensor.CPU)
	copy(raw.AsFloat64(), data)
	return raw
}

func rawFloat32(t *testing.T, shape tensor.Shape, data []float32) *tensor.RawTensor {
	t.Helper()
	raw := tensor.MustNewRaw(shape, tensor.Float32, tensor.CPU)
	copy(raw.AsFloat32(), data)
	return raw
}

func rawInt32(t *testing.T, shape tensor.Shape, data []int32) *tensor.RawTensor {
	t.Helper()
	raw := tensor.MustNewRaw(shape, tensor.Int32, tensor.CPU)
	copy(raw.AsInt32(), data)
	return raw
}

func rawInt64(t *testing.T, shape tensor.Shape, data []int64) *tensor.RawTensor {
	t.Helper()
	raw := tensor.MustNewRaw(shape, tensor.Int64, tensor.CPU)
	copy(raw.AsInt64(), data)
	return raw
}

func rawBool(t *testing.T, shape tensor.Shape, data []bool) *tensor.RawTensor {
	t.Helper()
	raw := tensor.MustNewRaw(shape, tensor.Bool, tensor.CPU)
	copy(raw.AsBool(), data)
	return raw
}

func rawComplex128(t *testing.T, shape tensor.Shape, data []complex128) *tensor.RawTensor {
	t.Helper()
	raw := tensor.MustNewRaw(shape, tensor.Complex128, tensor.CPU)
	copy(raw.AsComplex128(), data)
	return raw
}
