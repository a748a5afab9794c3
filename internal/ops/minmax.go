package ops

import (
	"github.com/pkg/errors"

	"github.com/arc-ml/arc/internal/tensor"
)

// MaxDim reduces x along dim, returning each slice's maximum and the index it
// was found at. Ties resolve to the lowest index and NaN beats every ordered
// value. keepDim retains the reduced dimension with size 1.
func MaxDim(b tensor.Backend, x *tensor.RawTensor, dim int, keepDim bool) (values, indices *tensor.RawTensor, err error) {
	return reduceDim(b, nil, nil, x, dim, keepDim, "max", b.MaxDimInto)
}

// MinDim is MaxDim's mirror: each slice's minimum and its index.
func MinDim(b tensor.Backend, x *tensor.RawTensor, dim int, keepDim bool) (values, indices *tensor.RawTensor, err error) {
	return reduceDim(b, nil, nil, x, dim, keepDim, "min", b.MinDimInto)
}

// MaxDimInto is MaxDim with caller-supplied output buffers. values must match
// x's dtype and indices must be Int64; both are resized to the reduced shape.
func MaxDimInto(b tensor.Backend, values, indices, x *tensor.RawTensor, dim int, keepDim bool) error {
	_, _, err := reduceDim(b, values, indices, x, dim, keepDim, "max", b.MaxDimInto)
	return err
}

// MinDimInto is MinDim with caller-supplied output buffers.
func MinDimInto(b tensor.Backend, values, indices, x *tensor.RawTensor, dim int, keepDim bool) error {
	_, _, err := reduceDim(b, values, indices, x, dim, keepDim, "min", b.MinDimInto)
	return err
}

// MaxDimNamed resolves dim by its name, then reduces like MaxDim.
func MaxDimNamed(b tensor.Backend, x *tensor.RawTensor, dim string, keepDim bool) (values, indices *tensor.RawTensor, err error) {
	d, err := x.DimForName(dim)
	if err != nil {
		return nil, nil, err
	}
	return MaxDim(b, x, d, keepDim)
}

// MinDimNamed resolves dim by its name, then reduces like MinDim.
func MinDimNamed(b tensor.Backend, x *tensor.RawTensor, dim string, keepDim bool) (values, indices *tensor.RawTensor, err error) {
	d, err := x.DimForName(dim)
	if err != nil {
		return nil, nil, err
	}
	return MinDim(b, x, d, keepDim)
}

type reduceKernel func(values, indices, x *tensor.RawTensor, dim int, keepDim bool)

// reduceDim is the shared validation ladder for the index-returning
// reductions: dtype and device checks first, then dimension wrap-around, then
// the degenerate shapes, and only then the kernel.
func reduceDim(b tensor.Backend, values, indices, x *tensor.RawTensor, dim int, keepDim bool,
	op string, kernel reduceKernel) (*tensor.RawTensor, *tensor.RawTensor, error) {

	if x.DType().IsComplex() {
		return nil, nil, errors.Wrapf(tensor.ErrUnsupportedType, "%s: complex tensors are not supported", op)
	}
	if values != nil {
		if values.DType() != x.DType() {
			return nil, nil, errors.Wrapf(tensor.ErrDtypeMismatch,
				"%s: expected values dtype %s, got %s", op, x.DType(), values.DType())
		}
		if indices.DType() != tensor.Int64 {
			return nil, nil, errors.Wrapf(tensor.ErrDtypeMismatch,
				"%s: expected indices dtype %s, got %s", op, tensor.Int64, indices.DType())
		}
		if err := checkSameDevice(op, values, x); err != nil {
			return nil, nil, err
		}
		if err := checkSameDevice(op, indices, x); err != nil {
			return nil, nil, err
		}
	}

	rank := len(x.Shape())
	d, err := tensor.WrapDim(dim, rank)
	if err != nil {
		return nil, nil, err
	}
	if rank > 0 && x.Shape()[d] == 0 {
		return nil, nil, errors.Wrapf(tensor.ErrEmptyReductionDim,
			"%s: expected reduction dim %d to have non-zero size", op, d)
	}

	reduced := tensor.Shape{}
	if rank > 0 {
		reduced = x.Shape().Reduced(d, keepDim)
	}
	if values == nil {
		values = tensor.MustNewRaw(reduced, x.DType(), x.Device())
		indices = tensor.MustNewRaw(reduced, tensor.Int64, x.Device())
	} else {
		if err := values.Resize(reduced); err != nil {
			return nil, nil, err
		}
		if err := indices.Resize(reduced); err != nil {
			return nil, nil, err
		}
	}
	propagateReducedNames(values, x, d, keepDim)
	propagateReducedNames(indices, x, d, keepDim)

	switch {
	case reduced.NumElements() == 0:
		// Empty in some other dimension: nothing to reduce.
	case x.NumElements() == 1:
		b.CopyInto(values, x)
		b.Fill(indices, tensor.IntScalar(0))
	default:
		kernel(values, indices, x, d, keepDim)
	}
	return values, indices, nil
}

func propagateReducedNames(out, x *tensor.RawTensor, dim int, keepDim bool) {
	names := x.Names()
	if names == nil {
		return
	}
	if keepDim {
		_ = out.SetNames(names)
		return
	}
	reduced := make([]string, 0, len(names)-1)
	for i, n := range names {
		if i != dim {
			reduced = append(reduced, n)
		}
	}
	if len(reduced) > 0 {
		_ = out.SetNames(reduced)
	}
}

// ArgMax returns the index of each slice's maximum along dim, or of the
// flattened tensor's maximum when dim is nil (keepDim then requires a dim).
func ArgMax(b tensor.Backend, x *tensor.RawTensor, dim *int, keepDim bool) (*tensor.RawTensor, error) {
	return argReduce(b, x, dim, keepDim, "argmax", b.MaxDimInto)
}

// ArgMin is ArgMax's mirror for minima.
func ArgMin(b tensor.Backend, x *tensor.RawTensor, dim *int, keepDim bool) (*tensor.RawTensor, error) {
	return argReduce(b, x, dim, keepDim, "argmin", b.MinDimInto)
}

func argReduce(b tensor.Backend, x *tensor.RawTensor, dim *int, keepDim bool,
	op string, kernel reduceKernel) (*tensor.RawTensor, error) {

	in := x
	d := 0
	if dim == nil {
		if keepDim {
			return nil, errors.Wrapf(tensor.ErrInvalidArgument, "%s: keepDim requires an explicit dim", op)
		}
		in = b.Flatten(x)
		keepDim = false
	} else {
		d = *dim
	}
	_, indices, err := reduceDim(b, nil, nil, in, d, keepDim, op, kernel)
	if err != nil {
		return nil, err
	}
	if dim == nil {
		// Flattened reduction yields a scalar index.
		if err := indices.Resize(tensor.Shape{}); err != nil {
			return nil, err
		}
	}
	return indices, nil
}

// ArgMaxNamed is the named-dimension overload of ArgMax. Dimension names are
// not plumbed through the index reductions yet.
func ArgMaxNamed(b tensor.Backend, x *tensor.RawTensor, dim string, keepDim bool) (*tensor.RawTensor, error) {
	return nil, errors.Wrap(tensor.ErrNotYetImplemented, "argmax: named dimension overload")
}

// ArgMinNamed is the named-dimension overload of ArgMin.
func ArgMinNamed(b tensor.Backend, x *tensor.RawTensor, dim string, keepDim bool) (*tensor.RawTensor, error) {
	return nil, errors.Wrap(tensor.ErrNotYetImplemented, "argmin: named dimension overload")
}

// ArgSortNamed is the named-dimension overload of argsort.
func ArgSortNamed(b tensor.Backend, x *tensor.RawTensor, dim string, descending bool) (*tensor.RawTensor, error) {
	return nil, errors.Wrap(tensor.ErrNotYetImplemented, "argsort: named dimension overload")
}
