package ops

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/x448/float16"

	"github.com/arc-ml/arc/internal/tensor"
)

func TestClampBothBounds(t *testing.T) {
	b := testBackend()
	x := rawFloat64(t, tensor.Shape{5}, []float64{-1, 0, 0.5, 2, math.NaN()})
	lo := tensor.FloatScalar(0)
	hi := tensor.FloatScalar(1)

	out, err := Clamp(b, x, &lo, &hi)
	require.NoError(t, err)
	assert.Equal(t, tensor.Float64, out.DType())

	got := out.AsFloat64()
	assert.Equal(t, []float64{0, 0, 0.5, 1}, got[:4])
	// NaN elements are not ordered and pass through unchanged.
	assert.True(t, math.IsNaN(got[4]))
}

func TestClampNilBounds(t *testing.T) {
	b := testBackend()
	x := rawFloat64(t, tensor.Shape{2}, []float64{1, 2})

	_, err := Clamp(b, x, nil, nil)
	require.ErrorIs(t, err, tensor.ErrInvalidArgument)

	_, err = ClampTensor(b, x, nil, nil)
	require.ErrorIs(t, err, tensor.ErrInvalidArgument)
}

func TestClampComplexRejected(t *testing.T) {
	b := testBackend()
	lo := tensor.FloatScalar(0)

	x := rawComplex128(t, tensor.Shape{2}, []complex128{1, 2})
	_, err := Clamp(b, x, &lo, nil)
	require.ErrorIs(t, err, tensor.ErrUnsupportedType)

	f := rawFloat64(t, tensor.Shape{2}, []float64{1, 2})
	cb := tensor.ComplexScalar(1 + 2i)
	_, err = Clamp(b, f, &cb, nil)
	require.ErrorIs(t, err, tensor.ErrUnsupportedType)
}

func TestClampPromotesWithFloatBound(t *testing.T) {
	b := testBackend()
	x := rawInt32(t, tensor.Shape{3}, []int32{-5, 1, 5})
	lo := tensor.FloatScalar(-0.5)
	hi := tensor.FloatScalar(2.5)

	out, err := Clamp(b, x, &lo, &hi)
	require.NoError(t, err)
	// An integer tensor with a float bound computes in the default float type.
	assert.Equal(t, tensor.Float32, out.DType())
	assert.Equal(t, []float32{-0.5, 1, 2.5}, out.AsFloat32())
}

func TestClampNaNBoundFillsOutput(t *testing.T) {
	b := testBackend()
	x := rawFloat64(t, tensor.Shape{3}, []float64{1, 2, 3})
	lo := tensor.FloatScalar(math.NaN())

	out, err := Clamp(b, x, &lo, nil)
	require.NoError(t, err)
	for _, v := range out.AsFloat64() {
		assert.True(t, math.IsNaN(v))
	}
}

func TestClampInPlace(t *testing.T) {
	b := testBackend()
	x := rawFloat64(t, tensor.Shape{4}, []float64{-2, 0.25, 0.75, 3})
	lo := tensor.FloatScalar(0)
	hi := tensor.FloatScalar(1)

	require.NoError(t, ClampInPlace(b, x, &lo, &hi))
	assert.Equal(t, []float64{0, 0.25, 0.75, 1}, x.AsFloat64())
}

func TestClampInPlaceIntBounds(t *testing.T) {
	b := testBackend()
	x := rawInt32(t, tensor.Shape{3}, []int32{-1, 0, 5})
	lo := tensor.IntScalar(0)
	hi := tensor.IntScalar(3)

	// Integer scalar bounds never widen an integer tensor, so the in-place
	// form must succeed.
	require.NoError(t, ClampInPlace(b, x, &lo, &hi))
	assert.Equal(t, tensor.Int32, x.DType())
	assert.Equal(t, []int32{0, 0, 3}, x.AsInt32())
}

func TestClampFloatingSelfKeepsDType(t *testing.T) {
	b := testBackend()
	x := tensor.MustNewRaw(tensor.Shape{2}, tensor.Float16, tensor.CPU)
	half := x.AsFloat16()
	half[0] = float16.Fromfloat32(1)
	half[1] = float16.Fromfloat32(3)
	hi := tensor.FloatScalar(2.5)

	out, err := ClampMax(b, x, hi)
	require.NoError(t, err)
	// A floating tensor is its own promotion ceiling; the float64 bound must
	// not widen it.
	assert.Equal(t, tensor.Float16, out.DType())
	got := out.AsFloat16()
	assert.Equal(t, float32(1), got[0].Float32())
	assert.Equal(t, float32(2.5), got[1].Float32())
}

func TestClampInPlaceUnsafeCast(t *testing.T) {
	b := testBackend()
	x := rawInt32(t, tensor.Shape{3}, []int32{1, 2, 3})
	hi := tensor.FloatScalar(2.5)

	err := ClampInPlace(b, x, nil, &hi)
	require.ErrorIs(t, err, tensor.ErrUnsafeCast)
}

func TestClampIntoWiderOutput(t *testing.T) {
	b := testBackend()
	x := rawInt32(t, tensor.Shape{3}, []int32{-5, 1, 5})
	out := tensor.MustNewRaw(tensor.Shape{3}, tensor.Float64, tensor.CPU)
	lo := tensor.IntScalar(0)
	hi := tensor.IntScalar(2)

	got, err := ClampInto(b, out, x, &lo, &hi)
	require.NoError(t, err)
	assert.Same(t, out, got)
	assert.Equal(t, []float64{0, 1, 2}, out.AsFloat64())
}

func TestClampMinMax(t *testing.T) {
	b := testBackend()
	x := rawFloat64(t, tensor.Shape{3}, []float64{-1, 0.5, 2})

	out, err := ClampMin(b, x, tensor.FloatScalar(0))
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0.5, 2}, out.AsFloat64())

	out, err = ClampMax(b, x, tensor.FloatScalar(1))
	require.NoError(t, err)
	assert.Equal(t, []float64{-1, 0.5, 1}, out.AsFloat64())
}

func TestClampSwappedBounds(t *testing.T) {
	b := testBackend()
	x := rawFloat64(t, tensor.Shape{3}, []float64{1, 4, 10})
	lo := tensor.FloatScalar(5)
	hi := tensor.FloatScalar(2)

	// min is applied first, then max caps it: everything collapses to hi.
	out, err := Clamp(b, x, &lo, &hi)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 2, 2}, out.AsFloat64())
}

func TestClampTensorBroadcast(t *testing.T) {
	b := testBackend()
	x := rawFloat64(t, tensor.Shape{2, 3}, []float64{-1, 0.5, 2, -3, 1.5, 4})
	lo := rawFloat64(t, tensor.Shape{3}, []float64{0, 0, 0})
	hi := rawFloat64(t, tensor.Shape{1}, []float64{1})

	out, err := ClampTensor(b, x, lo, hi)
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{2, 3}, out.Shape())
	assert.Equal(t, []float64{0, 0.5, 1, 0, 1, 1}, out.AsFloat64())
}

func TestClampTensorNaNBoundPropagates(t *testing.T) {
	b := testBackend()
	x := rawFloat64(t, tensor.Shape{3}, []float64{1, 2, 3})
	lo := rawFloat64(t, tensor.Shape{3}, []float64{0, math.NaN(), 0})

	out, err := ClampTensor(b, x, lo, nil)
	require.NoError(t, err)
	got := out.AsFloat64()
	assert.Equal(t, 1.0, got[0])
	assert.True(t, math.IsNaN(got[1]))
	assert.Equal(t, 3.0, got[2])
}
