package tensor

// Type promotion resolves a single common dtype across the operands of an
// elementwise operation. Categories are totally ordered
// (bool < integer < floating < complex); within a category the wider type
// wins, and mixed-signedness integers widen to the first signed type that can
// represent both.

// PromoteTypes returns the common dtype of a and b.
// It is commutative and associative; Invalid operands yield Invalid.
func PromoteTypes(a, b DataType) DataType {
	if a == Invalid || b == Invalid {
		return Invalid
	}
	if a == b {
		return a
	}
	// Bool never outranks anything.
	if a == Bool {
		return b
	}
	if b == Bool {
		return a
	}
	if a.IsComplex() || b.IsComplex() {
		return promoteComplex(a, b)
	}
	if a.IsFloatingPoint() && b.IsFloatingPoint() {
		return promoteFloats(a, b)
	}
	// Floating always outranks integral.
	if a.IsFloatingPoint() {
		return a
	}
	if b.IsFloatingPoint() {
		return b
	}
	return promoteInts(a, b)
}

func promoteComplex(a, b DataType) DataType {
	// Anything 64-bit real (or already complex128) forces complex128.
	if a == Complex128 || b == Complex128 || a == Float64 || b == Float64 {
		return Complex128
	}
	return Complex64
}

func promoteFloats(a, b DataType) DataType {
	// float16 and bfloat16 have no common representation narrower than float32.
	if (a == Float16 && b == BFloat16) || (a == BFloat16 && b == Float16) {
		return Float32
	}
	if a.Size() >= b.Size() {
		return a
	}
	return b
}

func promoteInts(a, b DataType) DataType {
	// Uint8 is the only unsigned type; pairing it with int8 needs int16,
	// any wider signed type already covers its range.
	if a == Uint8 || b == Uint8 {
		signed := a
		if a == Uint8 {
			signed = b
		}
		if signed == Int8 {
			return Int16
		}
		return signed
	}
	if a.Size() >= b.Size() {
		return a
	}
	return b
}

// ResultTypeState accumulates the dtype contribution of each operand of an
// operation. Tensors with rank > 0 dominate zero-dim tensors, which dominate
// wrapped scalars; within the same participation class types promote pairwise.
// A fresh state is built per call and consumed once by Resolve.
type ResultTypeState struct {
	dimResult     DataType
	zeroResult    DataType
	wrappedResult DataType
}

// AddTensor folds a tensor operand into the state.
func (s ResultTypeState) AddTensor(t *RawTensor) ResultTypeState {
	if len(t.Shape()) > 0 {
		s.dimResult = PromoteTypes(orFirst(s.dimResult, t.DType()), t.DType())
	} else {
		s.zeroResult = PromoteTypes(orFirst(s.zeroResult, t.DType()), t.DType())
	}
	return s
}

// AddScalar folds a wrapped scalar operand into the state.
func (s ResultTypeState) AddScalar(v Scalar) ResultTypeState {
	dt := v.promotionDType()
	s.wrappedResult = PromoteTypes(orFirst(s.wrappedResult, dt), dt)
	return s
}

// Resolve consumes the state and returns the common dtype.
func (s ResultTypeState) Resolve() DataType {
	return combineCategories(s.dimResult, combineCategories(s.zeroResult, s.wrappedResult))
}

// combineCategories merges two participation classes. The higher class keeps
// its dtype unless it is Bool or the lower class is floating: an integer
// tensor is not widened by a same-category scalar, but a float scalar lifts
// it to the floating category.
func combineCategories(higher, lower DataType) DataType {
	if higher == Invalid {
		return lower
	}
	if lower == Invalid {
		return higher
	}
	if higher.IsComplex() {
		if lower.IsComplex() {
			return PromoteTypes(higher, lower)
		}
		return higher
	}
	if lower.IsComplex() {
		// A floating higher class keeps its precision, moved to complex.
		if higher.IsFloatingPoint() {
			return toComplex(higher)
		}
		return lower
	}
	if higher.IsFloatingPoint() {
		return higher
	}
	if higher == Bool || lower.IsFloatingPoint() {
		return PromoteTypes(higher, lower)
	}
	return higher
}

func toComplex(dt DataType) DataType {
	if dt == Float64 {
		return Complex128
	}
	return Complex64
}

func orFirst(cur, dt DataType) DataType {
	if cur == Invalid {
		return dt
	}
	return cur
}

// ResultType resolves the common dtype of a tensor and a set of scalar
// operands in one step.
func ResultType(t *RawTensor, scalars ...Scalar) DataType {
	state := ResultTypeState{}.AddTensor(t)
	for _, s := range scalars {
		state = state.AddScalar(s)
	}
	return state.Resolve()
}
