package ops

import (
	"math"

	"github.com/pkg/errors"

	"github.com/arc-ml/arc/internal/tensor"
)

// IsNaN returns a Bool mask of the NaN elements. Complex elements are NaN
// when either component is; integral tensors yield an all-false mask.
func IsNaN(b tensor.Backend, x *tensor.RawTensor) (*tensor.RawTensor, error) {
	// NaN is the one value that does not equal itself. Ne handles every
	// dtype, including complex, where component-wise inequality is exactly
	// the "either part is NaN" rule.
	return b.Ne(x, x), nil
}

// IsInf returns a Bool mask of the infinite elements. Complex elements are
// infinite when either component is; integral tensors yield all-false.
func IsInf(b tensor.Backend, x *tensor.RawTensor) (*tensor.RawTensor, error) {
	if x.DType().IsComplex() {
		re, err := IsInf(b, b.Real(x))
		if err != nil {
			return nil, err
		}
		im, err := IsInf(b, b.Imag(x))
		if err != nil {
			return nil, err
		}
		return b.Or(re, im), nil
	}
	if !x.DType().IsFloatingPoint() {
		return boolConst(b, x.Shape().Clone(), x.Device(), false)
	}
	inf, err := scalarTensor(b, tensor.FloatScalar(math.Inf(1)), x.DType(), x.Device())
	if err != nil {
		return nil, err
	}
	return b.Eq(b.Abs(x), inf), nil
}

// IsPosInf returns a Bool mask of the +Inf elements; ErrUnsupportedType for
// complex input, all-false for integral input.
func IsPosInf(b tensor.Backend, x *tensor.RawTensor) (*tensor.RawTensor, error) {
	return signedInf(b, x, math.Inf(1))
}

// IsNegInf returns a Bool mask of the -Inf elements; ErrUnsupportedType for
// complex input, all-false for integral input.
func IsNegInf(b tensor.Backend, x *tensor.RawTensor) (*tensor.RawTensor, error) {
	return signedInf(b, x, math.Inf(-1))
}

func signedInf(b tensor.Backend, x *tensor.RawTensor, inf float64) (*tensor.RawTensor, error) {
	if x.DType().IsComplex() {
		return nil, errors.Wrap(tensor.ErrUnsupportedType, "isposinf/isneginf: complex input is not supported")
	}
	if !x.DType().IsFloatingPoint() {
		return boolConst(b, x.Shape().Clone(), x.Device(), false)
	}
	limit, err := scalarTensor(b, tensor.FloatScalar(inf), x.DType(), x.Device())
	if err != nil {
		return nil, err
	}
	return b.Eq(x, limit), nil
}

// IsFinite returns a Bool mask of the finite elements: neither NaN nor
// infinite. Integral and bool tensors yield an all-true mask.
func IsFinite(b tensor.Backend, x *tensor.RawTensor) (*tensor.RawTensor, error) {
	if x.DType().IsComplex() {
		re, err := IsFinite(b, b.Real(x))
		if err != nil {
			return nil, err
		}
		im, err := IsFinite(b, b.Imag(x))
		if err != nil {
			return nil, err
		}
		return b.And(re, im), nil
	}
	if !x.DType().IsFloatingPoint() {
		return boolConst(b, x.Shape().Clone(), x.Device(), true)
	}
	nan, err := IsNaN(b, x)
	if err != nil {
		return nil, err
	}
	inf, err := IsInf(b, x)
	if err != nil {
		return nil, err
	}
	return b.Not(b.Or(nan, inf)), nil
}

// IsReal returns a Bool mask of the elements with a zero imaginary part.
// Every element of a non-complex tensor is real.
func IsReal(b tensor.Backend, x *tensor.RawTensor) (*tensor.RawTensor, error) {
	if !x.DType().IsComplex() {
		return boolConst(b, x.Shape().Clone(), x.Device(), true)
	}
	im := b.Imag(x)
	zero, err := scalarTensor(b, tensor.FloatScalar(0), im.DType(), x.Device())
	if err != nil {
		return nil, err
	}
	return b.Eq(im, zero), nil
}

// IsClose compares x and y element-wise under the tolerance rule
// |x - y| <= atol + rtol*|y|, returning a Bool mask. Equal values are always
// close (including infinities of matching sign); NaN is close only to NaN and
// only when equalNaN is set. Both tensors must share a dtype.
func IsClose(b tensor.Backend, x, y *tensor.RawTensor, rtol, atol float64, equalNaN bool) (*tensor.RawTensor, error) {
	if x.DType() != y.DType() {
		return nil, errors.Wrapf(tensor.ErrDtypeMismatch,
			"isclose: %s did not match %s", x.DType(), y.DType())
	}
	if rtol < 0 || atol < 0 {
		return nil, errors.Wrapf(tensor.ErrInvalidArgument,
			"isclose: tolerances must be non-negative, got rtol=%g atol=%g", rtol, atol)
	}

	closeMask := b.Eq(x, y)
	if equalNaN && (x.DType().IsFloatingPoint() || x.DType().IsComplex()) {
		xn, err := IsNaN(b, x)
		if err != nil {
			return nil, err
		}
		yn, err := IsNaN(b, y)
		if err != nil {
			return nil, err
		}
		closeMask = b.Or(closeMask, b.And(xn, yn))
	}

	// With zero tolerances closeness degenerates to equality; skipping the
	// tolerance arithmetic also avoids inf - inf = NaN artifacts.
	if rtol == 0 && atol == 0 {
		return closeMask, nil
	}

	// The tolerance comparison needs subtraction, so bool and integer inputs
	// compute in the default float type.
	cx, cy := x, y
	if x.DType().IsIntegral(true) {
		cx = b.Cast(x, tensor.DefaultFloat)
		cy = b.Cast(y, tensor.DefaultFloat)
	}

	actual := b.Abs(b.Sub(cx, cy))
	allowed := b.AddScalar(b.MulScalar(b.Abs(cy), tensor.FloatScalar(rtol)), tensor.FloatScalar(atol))
	finite, err := IsFinite(b, actual)
	if err != nil {
		return nil, err
	}
	return b.Or(closeMask, b.And(finite, b.LowerEqual(actual, allowed))), nil
}

// AllClose reports whether every element pair of x and y is close under
// IsClose's tolerance rule. The shapes must broadcast; an empty result is
// vacuously close.
func AllClose(b tensor.Backend, x, y *tensor.RawTensor, rtol, atol float64, equalNaN bool) (bool, error) {
	mask, err := IsClose(b, x, y, rtol, atol, equalNaN)
	if err != nil {
		return false, err
	}
	return b.All(mask), nil
}
