package ops

import (
	"github.com/pkg/errors"

	"github.com/arc-ml/arc/internal/tensor"
)

// Mode reduces x along dim to each slice's most frequent value and the index
// of its first occurrence. When several values are tied for frequency the
// smallest wins.
func Mode(b tensor.Backend, x *tensor.RawTensor, dim int, keepDim bool) (values, indices *tensor.RawTensor, err error) {
	return modeImpl(b, nil, nil, x, dim, keepDim)
}

// ModeInto is Mode with caller-supplied output buffers.
func ModeInto(b tensor.Backend, values, indices, x *tensor.RawTensor, dim int, keepDim bool) error {
	_, _, err := modeImpl(b, values, indices, x, dim, keepDim)
	return err
}

// ModeNamed resolves dim by its name, then reduces like Mode.
func ModeNamed(b tensor.Backend, x *tensor.RawTensor, dim string, keepDim bool) (values, indices *tensor.RawTensor, err error) {
	d, err := x.DimForName(dim)
	if err != nil {
		return nil, nil, err
	}
	return Mode(b, x, d, keepDim)
}

func modeImpl(b tensor.Backend, values, indices, x *tensor.RawTensor, dim int, keepDim bool) (*tensor.RawTensor, *tensor.RawTensor, error) {
	if x.DType().IsComplex() {
		return nil, nil, errors.Wrap(tensor.ErrUnsupportedType, "mode: complex tensors are not supported")
	}
	return reduceDim(b, values, indices, x, dim, keepDim, "mode", b.ModeDimInto)
}
