// Package ops implements the public operation semantics over raw tensors:
// argument validation, dtype promotion, output allocation and edge-case
// handling. Kernels are delegated to an injected tensor.Backend; nothing in
// this package touches element storage directly.
package ops

import (
	"github.com/pkg/errors"

	"github.com/arc-ml/arc/internal/tensor"
)

// scalarTensor materializes a scalar as a rank-0 tensor of the given dtype.
func scalarTensor(b tensor.Backend, v tensor.Scalar, dt tensor.DataType, device tensor.Device) (*tensor.RawTensor, error) {
	raw, err := tensor.NewRaw(tensor.Shape{}, dt, device)
	if err != nil {
		return nil, err
	}
	b.Fill(raw, v)
	return raw, nil
}

// checkSameDevice rejects explicit output buffers living on another device.
func checkSameDevice(op string, out, x *tensor.RawTensor) error {
	if out.Device() != x.Device() {
		return errors.Wrapf(tensor.ErrDeviceMismatch,
			"%s: output on %s but input on %s", op, out.Device(), x.Device())
	}
	return nil
}

// boolConst allocates a Bool tensor of the given shape filled with v.
func boolConst(b tensor.Backend, shape tensor.Shape, device tensor.Device, v bool) (*tensor.RawTensor, error) {
	out, err := tensor.NewRaw(shape, tensor.Bool, device)
	if err != nil {
		return nil, err
	}
	if v {
		b.Fill(out, tensor.BoolScalar(true))
	}
	return out, nil
}
