package tensor

// Comparison, logical and conversion methods on the typed tensor. Each method
// dispatches to the injected backend; shape broadcasting happens inside the
// kernel.

// Equal performs element-wise equality comparison (a == b).
// Returns a bool tensor.
//
// Example:
//
//	mask := x.Equal(y)
func (t *Tensor[T, B]) Equal(other *Tensor[T, B]) *Tensor[bool, B] {
	raw := t.backend.Eq(t.raw, other.raw)
	return New[bool, B](raw, t.backend)
}

// Eq is a shorthand alias for Equal.
func (t *Tensor[T, B]) Eq(other *Tensor[T, B]) *Tensor[bool, B] {
	return t.Equal(other)
}

// NotEqual performs element-wise inequality comparison (a != b).
// Returns a bool tensor.
func (t *Tensor[T, B]) NotEqual(other *Tensor[T, B]) *Tensor[bool, B] {
	raw := t.backend.Ne(t.raw, other.raw)
	return New[bool, B](raw, t.backend)
}

// Ne is a shorthand alias for NotEqual.
func (t *Tensor[T, B]) Ne(other *Tensor[T, B]) *Tensor[bool, B] {
	return t.NotEqual(other)
}

// LowerEqual performs element-wise comparison (a <= b).
// Returns a bool tensor.
func (t *Tensor[T, B]) LowerEqual(other *Tensor[T, B]) *Tensor[bool, B] {
	raw := t.backend.LowerEqual(t.raw, other.raw)
	return New[bool, B](raw, t.backend)
}

// Le is a shorthand alias for LowerEqual.
func (t *Tensor[T, B]) Le(other *Tensor[T, B]) *Tensor[bool, B] {
	return t.LowerEqual(other)
}

// Minimum returns the element-wise minimum of t and other.
// A NaN in either operand propagates to the result.
func (t *Tensor[T, B]) Minimum(other *Tensor[T, B]) *Tensor[T, B] {
	raw := t.backend.Minimum(t.raw, other.raw)
	return New[T, B](raw, t.backend)
}

// Maximum returns the element-wise maximum of t and other.
// A NaN in either operand propagates to the result.
func (t *Tensor[T, B]) Maximum(other *Tensor[T, B]) *Tensor[T, B] {
	raw := t.backend.Maximum(t.raw, other.raw)
	return New[T, B](raw, t.backend)
}

// Sub performs element-wise subtraction with broadcasting.
func (t *Tensor[T, B]) Sub(other *Tensor[T, B]) *Tensor[T, B] {
	raw := t.backend.Sub(t.raw, other.raw)
	return New[T, B](raw, t.backend)
}

// Abs returns the element-wise absolute value.
func (t *Tensor[T, B]) Abs() *Tensor[T, B] {
	raw := t.backend.Abs(t.raw)
	return New[T, B](raw, t.backend)
}

// AddScalar adds a scalar value to each element.
//
// Example:
//
//	y := x.AddScalar(1.5)
func (t *Tensor[T, B]) AddScalar(scalar T) *Tensor[T, B] {
	raw := t.backend.AddScalar(t.raw, ScalarOf(scalar))
	return New[T, B](raw, t.backend)
}

// MulScalar multiplies each element by a scalar value.
//
// Example:
//
//	y := x.MulScalar(2.0)
func (t *Tensor[T, B]) MulScalar(scalar T) *Tensor[T, B] {
	raw := t.backend.MulScalar(t.raw, ScalarOf(scalar))
	return New[T, B](raw, t.backend)
}

// Expand broadcasts the tensor to a larger shape.
// Dimensions of size 1 are repeated; the result is contiguous.
func (t *Tensor[T, B]) Expand(shape Shape) *Tensor[T, B] {
	raw := t.backend.Expand(t.raw, shape)
	return New[T, B](raw, t.backend)
}

// Boolean operations (only for Tensor[bool, B]).

// Or performs element-wise logical OR.
//
// Example:
//
//	both := maskA.Or(maskB)
func (t *Tensor[bool, B]) Or(other *Tensor[bool, B]) *Tensor[bool, B] {
	raw := t.backend.Or(t.raw, other.raw)
	return New[bool, B](raw, t.backend)
}

// And performs element-wise logical AND.
func (t *Tensor[bool, B]) And(other *Tensor[bool, B]) *Tensor[bool, B] {
	raw := t.backend.And(t.raw, other.raw)
	return New[bool, B](raw, t.backend)
}

// Not performs element-wise logical NOT.
func (t *Tensor[bool, B]) Not() *Tensor[bool, B] {
	raw := t.backend.Not(t.raw)
	return New[bool, B](raw, t.backend)
}

// All reports whether every element of a bool tensor is true.
// Vacuously true for empty tensors; panics for non-bool dtypes.
func (t *Tensor[T, B]) All() bool {
	return t.backend.All(t.raw)
}

// Any reports whether at least one element of a bool tensor is true.
// Panics for non-bool dtypes.
func (t *Tensor[T, B]) Any() bool {
	return t.backend.Any(t.raw)
}

// Type conversions.

// Float32 converts the tensor to float32.
func (t *Tensor[T, B]) Float32() *Tensor[float32, B] {
	raw := t.backend.Cast(t.raw, Float32)
	return New[float32, B](raw, t.backend)
}

// Float64 converts the tensor to float64.
func (t *Tensor[T, B]) Float64() *Tensor[float64, B] {
	raw := t.backend.Cast(t.raw, Float64)
	return New[float64, B](raw, t.backend)
}

// Int32 converts the tensor to int32.
func (t *Tensor[T, B]) Int32() *Tensor[int32, B] {
	raw := t.backend.Cast(t.raw, Int32)
	return New[int32, B](raw, t.backend)
}

// Int64 converts the tensor to int64.
func (t *Tensor[T, B]) Int64() *Tensor[int64, B] {
	raw := t.backend.Cast(t.raw, Int64)
	return New[int64, B](raw, t.backend)
}

// Bool converts the tensor to bool (nonzero becomes true).
func (t *Tensor[T, B]) Bool() *Tensor[bool, B] {
	raw := t.backend.Cast(t.raw, Bool)
	return New[bool, B](raw, t.backend)
}
