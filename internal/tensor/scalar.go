package tensor

import (
	"fmt"
	"math"
)

// ScalarKind tags the numeric category a Scalar carries.
type ScalarKind int

// Scalar categories, in promotion order.
const (
	BoolKind ScalarKind = iota
	IntKind
	FloatKind
	ComplexKind
)

// Scalar is a tagged numeric value with no shape. It participates in type
// promotion as a wrapped number: it never widens a tensor operand beyond its
// own category.
type Scalar struct {
	kind ScalarKind
	b    bool
	i    int64
	f    float64
	c    complex128
}

// BoolScalar wraps a bool.
func BoolScalar(v bool) Scalar { return Scalar{kind: BoolKind, b: v} }

// IntScalar wraps an integer.
func IntScalar(v int64) Scalar { return Scalar{kind: IntKind, i: v} }

// FloatScalar wraps a floating-point value.
func FloatScalar(v float64) Scalar { return Scalar{kind: FloatKind, f: v} }

// ComplexScalar wraps a complex value.
func ComplexScalar(v complex128) Scalar { return Scalar{kind: ComplexKind, c: v} }

// ScalarOf wraps any supported Go numeric value.
func ScalarOf(v any) Scalar {
	switch x := v.(type) {
	case bool:
		return BoolScalar(x)
	case int:
		return IntScalar(int64(x))
	case int8:
		return IntScalar(int64(x))
	case int16:
		return IntScalar(int64(x))
	case int32:
		return IntScalar(int64(x))
	case int64:
		return IntScalar(x)
	case uint8:
		return IntScalar(int64(x))
	case float32:
		return FloatScalar(float64(x))
	case float64:
		return FloatScalar(x)
	case complex64:
		return ComplexScalar(complex128(x))
	case complex128:
		return ComplexScalar(x)
	default:
		panic(fmt.Sprintf("scalar: unsupported value type %T", v))
	}
}

// Kind returns the scalar's category tag.
func (s Scalar) Kind() ScalarKind { return s.kind }

// IsBool reports whether the scalar carries a bool.
func (s Scalar) IsBool() bool { return s.kind == BoolKind }

// IsInt reports whether the scalar carries an integer.
func (s Scalar) IsInt() bool { return s.kind == IntKind }

// IsFloat reports whether the scalar carries a floating-point value.
func (s Scalar) IsFloat() bool { return s.kind == FloatKind }

// IsComplex reports whether the scalar carries a complex value.
func (s Scalar) IsComplex() bool { return s.kind == ComplexKind }

// IsNaN reports whether the scalar is a floating-point NaN.
func (s Scalar) IsNaN() bool { return s.kind == FloatKind && math.IsNaN(s.f) }

// Float64 returns the scalar converted to float64.
func (s Scalar) Float64() float64 {
	switch s.kind {
	case BoolKind:
		if s.b {
			return 1
		}
		return 0
	case IntKind:
		return float64(s.i)
	case FloatKind:
		return s.f
	default:
		return real(s.c)
	}
}

// Int64 returns the scalar converted to int64 (floats truncate).
func (s Scalar) Int64() int64 {
	switch s.kind {
	case BoolKind:
		if s.b {
			return 1
		}
		return 0
	case IntKind:
		return s.i
	case FloatKind:
		return int64(s.f)
	default:
		return int64(real(s.c))
	}
}

// Bool returns the scalar as a bool (nonzero is true).
func (s Scalar) Bool() bool {
	switch s.kind {
	case BoolKind:
		return s.b
	case IntKind:
		return s.i != 0
	case FloatKind:
		return s.f != 0
	default:
		return s.c != 0
	}
}

// Complex128 returns the scalar converted to complex128.
func (s Scalar) Complex128() complex128 {
	if s.kind == ComplexKind {
		return s.c
	}
	return complex(s.Float64(), 0)
}

// promotionDType is the dtype a wrapped scalar contributes to promotion:
// category only, never a width above the library defaults.
func (s Scalar) promotionDType() DataType {
	switch s.kind {
	case BoolKind:
		return Bool
	case IntKind:
		return Int64
	case FloatKind:
		return DefaultFloat
	default:
		return Complex64
	}
}

// String returns a human-readable representation of the scalar.
func (s Scalar) String() string {
	switch s.kind {
	case BoolKind:
		return fmt.Sprintf("%v", s.b)
	case IntKind:
		return fmt.Sprintf("%d", s.i)
	case FloatKind:
		return fmt.Sprintf("%g", s.f)
	default:
		return fmt.Sprintf("%g", s.c)
	}
}
