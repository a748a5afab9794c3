package ops

import (
	"sync"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/arc-ml/arc/internal/tensor"
)

var byteMaskWarnOnce sync.Once

// conditionMask validates the condition tensor, accepting Bool directly and
// Uint8 as a deprecated byte mask (warned once per process).
func conditionMask(b tensor.Backend, cond *tensor.RawTensor) (*tensor.RawTensor, error) {
	switch cond.DType() {
	case tensor.Bool:
		return cond, nil
	case tensor.Uint8:
		byteMaskWarnOnce.Do(func() {
			klog.Warning("where received a uint8 condition tensor; this behavior is deprecated, use a bool condition instead")
		})
		return b.Cast(cond, tensor.Bool), nil
	default:
		return nil, errors.Wrapf(tensor.ErrUnsupportedType,
			"where: expected condition to be a bool tensor, got %s", cond.DType())
	}
}

// Where selects x where cond holds and y elsewhere, broadcasting all three
// operands. x and y promote to a common dtype.
func Where(b tensor.Backend, cond, x, y *tensor.RawTensor) (*tensor.RawTensor, error) {
	mask, err := conditionMask(b, cond)
	if err != nil {
		return nil, err
	}

	common := tensor.PromoteTypes(x.DType(), y.DType())
	shape, _, err := tensor.BroadcastShapes(x.Shape(), y.Shape())
	if err != nil {
		return nil, errors.Wrap(tensor.ErrInvalidArgument, err.Error())
	}
	shape, _, err = tensor.BroadcastShapes(shape, mask.Shape())
	if err != nil {
		return nil, errors.Wrap(tensor.ErrInvalidArgument, err.Error())
	}

	cx, cy := x, y
	if cx.DType() != common {
		cx = b.Cast(cx, common)
	}
	if cy.DType() != common {
		cy = b.Cast(cy, common)
	}
	if !mask.Shape().Equal(shape) {
		mask = b.Expand(mask, shape)
	}
	if !cx.Shape().Equal(shape) {
		cx = b.Expand(cx, shape)
	}
	if !cy.Shape().Equal(shape) {
		cy = b.Expand(cy, shape)
	}

	out, err := tensor.NewRaw(shape, common, x.Device())
	if err != nil {
		return nil, err
	}
	b.WhereInto(out, mask, cx, cy)
	return out, nil
}

// WhereScalarOther is Where with a scalar fallback value.
func WhereScalarOther(b tensor.Backend, cond, x *tensor.RawTensor, y tensor.Scalar) (*tensor.RawTensor, error) {
	common := tensor.ResultType(x, y)
	yt, err := scalarTensor(b, y, common, x.Device())
	if err != nil {
		return nil, err
	}
	return Where(b, cond, x, yt)
}

// WhereScalarSelf is Where with a scalar selected value.
func WhereScalarSelf(b tensor.Backend, cond *tensor.RawTensor, x tensor.Scalar, y *tensor.RawTensor) (*tensor.RawTensor, error) {
	common := tensor.ResultType(y, x)
	xt, err := scalarTensor(b, x, common, y.Device())
	if err != nil {
		return nil, err
	}
	return Where(b, cond, xt, y)
}

// WhereScalars is Where with both branches scalar.
func WhereScalars(b tensor.Backend, cond *tensor.RawTensor, x, y tensor.Scalar) (*tensor.RawTensor, error) {
	state := tensor.ResultTypeState{}.AddScalar(x).AddScalar(y)
	common := state.Resolve()
	xt, err := scalarTensor(b, x, common, cond.Device())
	if err != nil {
		return nil, err
	}
	yt, err := scalarTensor(b, y, common, cond.Device())
	if err != nil {
		return nil, err
	}
	return Where(b, cond, xt, yt)
}

// WhereNonZero is the single-argument form: the coordinates of cond's
// nonzero elements, one Int64 tensor per dimension.
func WhereNonZero(b tensor.Backend, cond *tensor.RawTensor) ([]*tensor.RawTensor, error) {
	if len(cond.Shape()) == 0 {
		return nil, errors.Wrap(tensor.ErrInvalidArgument, "where: condition must have at least one dimension")
	}
	return b.NonZero(cond), nil
}
