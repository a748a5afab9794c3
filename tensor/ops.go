package tensor

import (
	"github.com/arc-ml/arc/internal/ops"
	"github.com/arc-ml/arc/internal/tensor"
)

// scalarPtr wraps an optional typed bound as an optional Scalar.
func scalarPtr[T DType](v *T) *Scalar {
	if v == nil {
		return nil
	}
	s := ScalarOf(*v)
	return &s
}

// rawOrNil unwraps an optional tensor operand.
func rawOrNil[T DType, B Backend](t *Tensor[T, B]) *RawTensor {
	if t == nil {
		return nil
	}
	return t.Raw()
}

// Clamping

// Clamp bounds every element of x to [*lo, *hi]. Either bound may be nil to
// leave that side open; at least one must be set. When both bounds are set
// and *lo > *hi, every element becomes *hi.
//
// Since the bounds share x's element type, the result always keeps x's dtype.
func Clamp[T DType, B Backend](x *Tensor[T, B], lo, hi *T) (*Tensor[T, B], error) {
	raw, err := ops.Clamp(x.Backend(), x.Raw(), scalarPtr(lo), scalarPtr(hi))
	if err != nil {
		return nil, err
	}
	return New[T](raw, x.Backend()), nil
}

// ClampInPlace is Clamp writing back into x. It fails with ErrUnsafeCast when
// the promoted result dtype cannot be represented by x's dtype.
func ClampInPlace[T DType, B Backend](x *Tensor[T, B], lo, hi *T) error {
	return ops.ClampInPlace(x.Backend(), x.Raw(), scalarPtr(lo), scalarPtr(hi))
}

// ClampMin bounds every element of x from below.
func ClampMin[T DType, B Backend](x *Tensor[T, B], lo T) (*Tensor[T, B], error) {
	raw, err := ops.ClampMin(x.Backend(), x.Raw(), ScalarOf(lo))
	if err != nil {
		return nil, err
	}
	return New[T](raw, x.Backend()), nil
}

// ClampMax bounds every element of x from above.
func ClampMax[T DType, B Backend](x *Tensor[T, B], hi T) (*Tensor[T, B], error) {
	raw, err := ops.ClampMax(x.Backend(), x.Raw(), ScalarOf(hi))
	if err != nil {
		return nil, err
	}
	return New[T](raw, x.Backend()), nil
}

// ClampTensor bounds x element-wise against tensor bounds, broadcasting all
// operands together. Either bound may be nil; at least one must be set.
// NaN in a bound propagates to the corresponding output element.
func ClampTensor[T DType, B Backend](x, lo, hi *Tensor[T, B]) (*Tensor[T, B], error) {
	raw, err := ops.ClampTensor(x.Backend(), x.Raw(), rawOrNil(lo), rawOrNil(hi))
	if err != nil {
		return nil, err
	}
	return New[T](raw, x.Backend()), nil
}

// Clip is an alias for Clamp.
func Clip[T DType, B Backend](x *Tensor[T, B], lo, hi *T) (*Tensor[T, B], error) {
	return Clamp(x, lo, hi)
}

// ClipTensor is an alias for ClampTensor.
func ClipTensor[T DType, B Backend](x, lo, hi *Tensor[T, B]) (*Tensor[T, B], error) {
	return ClampTensor(x, lo, hi)
}

// Predicates

// IsNaN returns a bool mask marking NaN elements. For complex elements the
// mask is set when either component is NaN. Non-float dtypes yield all-false.
func IsNaN[T DType, B Backend](x *Tensor[T, B]) (*Tensor[bool, B], error) {
	return maskOp(x, ops.IsNaN)
}

// IsInf returns a bool mask marking positive or negative infinities. For
// complex elements the mask is set when either component is infinite.
func IsInf[T DType, B Backend](x *Tensor[T, B]) (*Tensor[bool, B], error) {
	return maskOp(x, ops.IsInf)
}

// IsPosInf returns a bool mask marking +Inf elements. Complex input is not
// supported.
func IsPosInf[T DType, B Backend](x *Tensor[T, B]) (*Tensor[bool, B], error) {
	return maskOp(x, ops.IsPosInf)
}

// IsNegInf returns a bool mask marking -Inf elements. Complex input is not
// supported.
func IsNegInf[T DType, B Backend](x *Tensor[T, B]) (*Tensor[bool, B], error) {
	return maskOp(x, ops.IsNegInf)
}

// IsFinite returns a bool mask marking finite elements. Integer and bool
// dtypes yield all-true.
func IsFinite[T DType, B Backend](x *Tensor[T, B]) (*Tensor[bool, B], error) {
	return maskOp(x, ops.IsFinite)
}

// IsReal returns a bool mask marking elements with zero imaginary part.
// Non-complex dtypes yield all-true.
func IsReal[T DType, B Backend](x *Tensor[T, B]) (*Tensor[bool, B], error) {
	return maskOp(x, ops.IsReal)
}

func maskOp[T DType, B Backend](x *Tensor[T, B], f func(tensor.Backend, *RawTensor) (*RawTensor, error)) (*Tensor[bool, B], error) {
	raw, err := f(x.Backend(), x.Raw())
	if err != nil {
		return nil, err
	}
	return New[bool](raw, x.Backend()), nil
}

// IsClose returns a bool mask marking elements of x within tolerance of the
// matching elements of y: |x-y| <= atol + rtol*|y|, with exact equality
// always counting as close. With equalNaN, NaN matches NaN.
func IsClose[T DType, B Backend](x, y *Tensor[T, B], rtol, atol float64, equalNaN bool) (*Tensor[bool, B], error) {
	raw, err := ops.IsClose(x.Backend(), x.Raw(), y.Raw(), rtol, atol, equalNaN)
	if err != nil {
		return nil, err
	}
	return New[bool](raw, x.Backend()), nil
}

// AllClose reports whether every element pair of x and y is close per
// IsClose.
func AllClose[T DType, B Backend](x, y *Tensor[T, B], rtol, atol float64, equalNaN bool) (bool, error) {
	return ops.AllClose(x.Backend(), x.Raw(), y.Raw(), rtol, atol, equalNaN)
}

// Set membership

// IsIn returns a bool mask, shaped like elements, marking which elements
// occur anywhere in testElements. Set assumeUnique when both inputs are known
// duplicate-free to skip deduplication; set invert to flip the mask.
func IsIn[T DType, B Backend](elements, testElements *Tensor[T, B], assumeUnique, invert bool) (*Tensor[bool, B], error) {
	raw, err := ops.IsIn(elements.Backend(), elements.Raw(), testElements.Raw(), assumeUnique, invert)
	if err != nil {
		return nil, err
	}
	return New[bool](raw, elements.Backend()), nil
}

// IsInScalar tests every element of elements against a single value.
func IsInScalar[T DType, B Backend](elements *Tensor[T, B], test T, invert bool) (*Tensor[bool, B], error) {
	raw, err := ops.IsInScalar(elements.Backend(), elements.Raw(), ScalarOf(test), invert)
	if err != nil {
		return nil, err
	}
	return New[bool](raw, elements.Backend()), nil
}

// IsInScalarElements tests a single value against testElements, returning a
// 0-D bool mask.
func IsInScalarElements[T DType, B Backend](element T, testElements *Tensor[T, B], assumeUnique, invert bool) (*Tensor[bool, B], error) {
	raw, err := ops.IsInScalarElements(testElements.Backend(), ScalarOf(element), testElements.Raw(), assumeUnique, invert)
	if err != nil {
		return nil, err
	}
	return New[bool](raw, testElements.Backend()), nil
}

// Order statistics

// MaxDim returns, for each slice along dim, the maximum value and the index
// of its first occurrence. NaN is larger than every number. With keepDim the
// reduced dimension is kept with size 1.
func MaxDim[T DType, B Backend](x *Tensor[T, B], dim int, keepDim bool) (*Tensor[T, B], *Tensor[int64, B], error) {
	return valueIndexOp(x, func() (*RawTensor, *RawTensor, error) {
		return ops.MaxDim(x.Backend(), x.Raw(), dim, keepDim)
	})
}

// MinDim returns, for each slice along dim, the minimum value and the index
// of its first occurrence. NaN is smaller than every number.
func MinDim[T DType, B Backend](x *Tensor[T, B], dim int, keepDim bool) (*Tensor[T, B], *Tensor[int64, B], error) {
	return valueIndexOp(x, func() (*RawTensor, *RawTensor, error) {
		return ops.MinDim(x.Backend(), x.Raw(), dim, keepDim)
	})
}

// MaxDimNamed is MaxDim addressing the dimension by name.
func MaxDimNamed[T DType, B Backend](x *Tensor[T, B], dim string, keepDim bool) (*Tensor[T, B], *Tensor[int64, B], error) {
	return valueIndexOp(x, func() (*RawTensor, *RawTensor, error) {
		return ops.MaxDimNamed(x.Backend(), x.Raw(), dim, keepDim)
	})
}

// MinDimNamed is MinDim addressing the dimension by name.
func MinDimNamed[T DType, B Backend](x *Tensor[T, B], dim string, keepDim bool) (*Tensor[T, B], *Tensor[int64, B], error) {
	return valueIndexOp(x, func() (*RawTensor, *RawTensor, error) {
		return ops.MinDimNamed(x.Backend(), x.Raw(), dim, keepDim)
	})
}

// Mode returns, for each slice along dim, the most frequent value and the
// index of its first occurrence in the slice. Ties break toward the smallest
// value.
func Mode[T DType, B Backend](x *Tensor[T, B], dim int, keepDim bool) (*Tensor[T, B], *Tensor[int64, B], error) {
	return valueIndexOp(x, func() (*RawTensor, *RawTensor, error) {
		return ops.Mode(x.Backend(), x.Raw(), dim, keepDim)
	})
}

// ModeNamed is Mode addressing the dimension by name.
func ModeNamed[T DType, B Backend](x *Tensor[T, B], dim string, keepDim bool) (*Tensor[T, B], *Tensor[int64, B], error) {
	return valueIndexOp(x, func() (*RawTensor, *RawTensor, error) {
		return ops.ModeNamed(x.Backend(), x.Raw(), dim, keepDim)
	})
}

func valueIndexOp[T DType, B Backend](x *Tensor[T, B], f func() (*RawTensor, *RawTensor, error)) (*Tensor[T, B], *Tensor[int64, B], error) {
	values, indices, err := f()
	if err != nil {
		return nil, nil, err
	}
	return New[T](values, x.Backend()), New[int64](indices, x.Backend()), nil
}

// ArgMax returns the indices of maximum values along dim. With a nil dim the
// tensor is flattened first; keepDim is invalid in that case.
func ArgMax[T DType, B Backend](x *Tensor[T, B], dim *int, keepDim bool) (*Tensor[int64, B], error) {
	raw, err := ops.ArgMax(x.Backend(), x.Raw(), dim, keepDim)
	if err != nil {
		return nil, err
	}
	return New[int64](raw, x.Backend()), nil
}

// ArgMin returns the indices of minimum values along dim. With a nil dim the
// tensor is flattened first; keepDim is invalid in that case.
func ArgMin[T DType, B Backend](x *Tensor[T, B], dim *int, keepDim bool) (*Tensor[int64, B], error) {
	raw, err := ops.ArgMin(x.Backend(), x.Raw(), dim, keepDim)
	if err != nil {
		return nil, err
	}
	return New[int64](raw, x.Backend()), nil
}

// Conditional selection

// Where selects x where cond is true and y elsewhere, broadcasting all three
// operands together.
func Where[T DType, B Backend](cond *Tensor[bool, B], x, y *Tensor[T, B]) (*Tensor[T, B], error) {
	raw, err := ops.Where(cond.Backend(), cond.Raw(), x.Raw(), y.Raw())
	if err != nil {
		return nil, err
	}
	return New[T](raw, cond.Backend()), nil
}

// WhereScalarOther is Where with a scalar in place of the false branch.
func WhereScalarOther[T DType, B Backend](cond *Tensor[bool, B], x *Tensor[T, B], y T) (*Tensor[T, B], error) {
	raw, err := ops.WhereScalarOther(cond.Backend(), cond.Raw(), x.Raw(), ScalarOf(y))
	if err != nil {
		return nil, err
	}
	return New[T](raw, cond.Backend()), nil
}

// WhereScalarSelf is Where with a scalar in place of the true branch.
func WhereScalarSelf[T DType, B Backend](cond *Tensor[bool, B], x T, y *Tensor[T, B]) (*Tensor[T, B], error) {
	raw, err := ops.WhereScalarSelf(cond.Backend(), cond.Raw(), ScalarOf(x), y.Raw())
	if err != nil {
		return nil, err
	}
	return New[T](raw, cond.Backend()), nil
}

// WhereScalars is Where with scalars for both branches. The result dtype is
// pinned to T rather than the scalars' natural promotion.
func WhereScalars[T DType, B Backend](cond *Tensor[bool, B], x, y T) (*Tensor[T, B], error) {
	raw, err := ops.WhereScalars(cond.Backend(), cond.Raw(), ScalarOf(x), ScalarOf(y))
	if err != nil {
		return nil, err
	}
	if want := DataTypeOf[T](); raw.DType() != want {
		raw = cond.Backend().Cast(raw, want)
	}
	return New[T](raw, cond.Backend()), nil
}

// WhereNonZero returns, per dimension, the coordinates of cond's true
// elements. cond must have at least one dimension.
func WhereNonZero[T DType, B Backend](cond *Tensor[T, B]) ([]*Tensor[int64, B], error) {
	raws, err := ops.WhereNonZero(cond.Backend(), cond.Raw())
	if err != nil {
		return nil, err
	}
	out := make([]*Tensor[int64, B], len(raws))
	for i, r := range raws {
		out[i] = New[int64](r, cond.Backend())
	}
	return out, nil
}
