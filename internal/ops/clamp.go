package ops

import (
	"math"

	"github.com/pkg/errors"

	"github.com/arc-ml/arc/internal/tensor"
)

// Clamp limits every element of x to the range [lo, hi]. A nil bound is
// absent; at least one bound must be given. An integer tensor clamped with a
// float bound yields a float result; a floating tensor always keeps its own
// dtype.
func Clamp(b tensor.Backend, x *tensor.RawTensor, lo, hi *tensor.Scalar) (*tensor.RawTensor, error) {
	return clampScalar(b, nil, x, lo, hi, false)
}

// ClampInto writes the clamped values of x into out. out's dtype must be able
// to hold the promoted result type, otherwise ErrUnsafeCast.
func ClampInto(b tensor.Backend, out, x *tensor.RawTensor, lo, hi *tensor.Scalar) (*tensor.RawTensor, error) {
	return clampScalar(b, out, x, lo, hi, false)
}

// ClampInPlace clamps x in place. The promoted result type must be safely
// castable back to x's dtype: clamping an int tensor with a float bound fails
// with ErrUnsafeCast instead of silently truncating.
func ClampInPlace(b tensor.Backend, x *tensor.RawTensor, lo, hi *tensor.Scalar) error {
	_, err := clampScalar(b, x, x, lo, hi, true)
	return err
}

// ClampMin limits elements from below only.
func ClampMin(b tensor.Backend, x *tensor.RawTensor, lo tensor.Scalar) (*tensor.RawTensor, error) {
	return clampScalar(b, nil, x, &lo, nil, false)
}

// ClampMax limits elements from above only.
func ClampMax(b tensor.Backend, x *tensor.RawTensor, hi tensor.Scalar) (*tensor.RawTensor, error) {
	return clampScalar(b, nil, x, nil, &hi, false)
}

func clampScalar(b tensor.Backend, out, x *tensor.RawTensor, lo, hi *tensor.Scalar, inPlace bool) (*tensor.RawTensor, error) {
	if lo == nil && hi == nil {
		return nil, errors.Wrap(tensor.ErrInvalidArgument,
			"clamp: at least one of 'min' or 'max' must not be nil")
	}
	if x.DType().IsComplex() {
		return nil, errors.Wrap(tensor.ErrUnsupportedType, "clamp: complex tensors are not supported")
	}
	state := tensor.ResultTypeState{}.AddTensor(x)
	for _, bound := range []*tensor.Scalar{lo, hi} {
		if bound == nil {
			continue
		}
		if bound.IsComplex() {
			return nil, errors.Wrap(tensor.ErrUnsupportedType, "clamp: complex bounds are not supported")
		}
		state = state.AddScalar(*bound)
	}
	// A floating self is its own ceiling: the bounds never promote it.
	common := x.DType()
	if !common.IsFloatingPoint() {
		common = state.Resolve()
	}

	if out == nil {
		var err error
		out, err = tensor.NewRaw(x.Shape(), common, x.Device())
		if err != nil {
			return nil, err
		}
	} else {
		if err := checkSameDevice("clamp", out, x); err != nil {
			return nil, err
		}
		if common != out.DType() && tensor.PromoteTypes(common, out.DType()) != out.DType() {
			return nil, errors.Wrapf(tensor.ErrUnsafeCast,
				"result type %s can't be cast to the desired output type %s", common, out.DType())
		}
		if !inPlace {
			if err := out.Resize(x.Shape()); err != nil {
				return nil, err
			}
		}
	}

	// A NaN bound cannot order against anything: the whole result is NaN.
	if (lo != nil && lo.IsNaN()) || (hi != nil && hi.IsNaN()) {
		b.Fill(out, tensor.FloatScalar(math.NaN()))
		return out, nil
	}

	src := x
	if src.DType() != common {
		src = b.Cast(src, common)
	}
	if out.DType() == common {
		b.ClampScalarInto(out, src, lo, hi)
		return out, nil
	}
	tmp, err := tensor.NewRaw(x.Shape(), common, x.Device())
	if err != nil {
		return nil, err
	}
	b.ClampScalarInto(tmp, src, lo, hi)
	b.CopyInto(out, b.Cast(tmp, out.DType()))
	return out, nil
}

// ClampTensor limits x element-wise with tensor bounds, broadcasting across
// all operands. Each element is max'd with lo then min'd with hi, so a NaN in
// any operand propagates to the result.
func ClampTensor(b tensor.Backend, x, lo, hi *tensor.RawTensor) (*tensor.RawTensor, error) {
	return clampTensorImpl(b, nil, x, lo, hi)
}

// ClampTensorInto is ClampTensor with a caller-supplied output buffer.
func ClampTensorInto(b tensor.Backend, out, x, lo, hi *tensor.RawTensor) (*tensor.RawTensor, error) {
	if out != nil {
		if err := checkSameDevice("clamp", out, x); err != nil {
			return nil, err
		}
	}
	return clampTensorImpl(b, out, x, lo, hi)
}

func clampTensorImpl(b tensor.Backend, out, x, lo, hi *tensor.RawTensor) (*tensor.RawTensor, error) {
	if lo == nil && hi == nil {
		return nil, errors.Wrap(tensor.ErrInvalidArgument,
			"clamp: at least one of 'min' or 'max' must not be nil")
	}
	inputs := []*tensor.RawTensor{x}
	if lo != nil {
		inputs = append(inputs, lo)
	}
	if hi != nil {
		inputs = append(inputs, hi)
	}
	for _, in := range inputs {
		if in.DType().IsComplex() {
			return nil, errors.Wrap(tensor.ErrUnsupportedType, "clamp: complex tensors are not supported")
		}
	}

	it, err := tensor.Build(tensor.IterConfig{
		Output:             out,
		Inputs:             inputs,
		PromoteInputs:      true,
		CastCommonToOutput: true,
		EnforceSafeCasting: out != nil,
	}, b)
	if err != nil {
		return nil, err
	}

	r := it.Inputs[0]
	k := 1
	if lo != nil {
		r = b.Maximum(r, it.Inputs[k])
		k++
	}
	if hi != nil {
		r = b.Minimum(r, it.Inputs[k])
	}
	if r.DType() != it.Output.DType() {
		r = b.Cast(r, it.Output.DType())
	}
	b.CopyInto(it.Output, r)
	return it.Output, nil
}
