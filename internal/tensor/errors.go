package tensor

import "github.com/pkg/errors"

// Error taxonomy for the compare/clamp/membership/reduction layer. Every
// public operation validates eagerly and wraps one of these sentinels, so
// callers can match with errors.Is while still seeing the operation context.
var (
	// ErrInvalidArgument flags structurally bad arguments, e.g. clamp with
	// neither bound or a negative tolerance.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnsupportedType flags dtypes an operation cannot accept, e.g.
	// complex operands to clamp or bool/bfloat16/complex operands to isin.
	ErrUnsupportedType = errors.New("unsupported dtype")

	// ErrDtypeMismatch flags operands or explicit output buffers whose dtype
	// disagrees with what the operation requires.
	ErrDtypeMismatch = errors.New("dtype mismatch")

	// ErrDeviceMismatch flags explicit output buffers on a different device
	// than the input.
	ErrDeviceMismatch = errors.New("device mismatch")

	// ErrUnsafeCast flags in-place operations whose promoted result type
	// would silently change the destination's stored dtype.
	ErrUnsafeCast = errors.New("unsafe cast")

	// ErrIndexOutOfRange flags dimension indices outside the tensor's rank.
	ErrIndexOutOfRange = errors.New("dimension out of range")

	// ErrEmptyReductionDim flags reductions along a zero-length axis.
	ErrEmptyReductionDim = errors.New("reduction over empty dimension")

	// ErrNotYetImplemented flags operations that are declared but not
	// supported, e.g. named-dimension argmax.
	ErrNotYetImplemented = errors.New("not yet implemented")
)
