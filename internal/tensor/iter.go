package tensor

import "github.com/pkg/errors"

// IterConfig describes how to set up an elementwise iteration: which operands
// participate, how their dtypes are reconciled, and which output buffer (if
// any) receives the result. This is the "meta" half of every elementwise
// operation; kernels then run over the materialized operands.
type IterConfig struct {
	// Output is the caller-supplied destination, or nil to allocate one.
	Output *RawTensor
	// OutputDType overrides the allocated output's dtype (Invalid = common dtype).
	OutputDType DataType
	// Inputs are the operands, in order.
	Inputs []*RawTensor
	// CheckSameDType requires all inputs to share one dtype.
	CheckSameDType bool
	// PromoteInputs resolves a common dtype across inputs and casts them to it.
	PromoteInputs bool
	// CastCommonToOutput casts the computed common dtype to the output's dtype
	// instead of requiring them to match.
	CastCommonToOutput bool
	// EnforceSafeCasting fails with ErrUnsafeCast when the common dtype cannot
	// be represented by the supplied output's dtype.
	EnforceSafeCasting bool
}

// Iter is a built elementwise iteration plan: every input is contiguous,
// broadcast to the common shape, and cast to the common dtype, so kernels can
// walk flat slices in lockstep.
type Iter struct {
	Output      *RawTensor
	Inputs      []*RawTensor
	CommonDType DataType
	Shape       Shape

	backend Backend
}

// Build validates shapes and dtypes per cfg, materializes the broadcast
// inputs, and allocates or validates the output. No kernel runs here; Build
// is pure set-up and fails before any output mutation.
func Build(cfg IterConfig, b Backend) (*Iter, error) {
	if len(cfg.Inputs) == 0 {
		return nil, errors.Wrap(ErrInvalidArgument, "iter: no inputs")
	}

	shape := cfg.Inputs[0].Shape()
	for _, in := range cfg.Inputs[1:] {
		var err error
		shape, _, err = BroadcastShapes(shape, in.Shape())
		if err != nil {
			return nil, errors.Wrap(ErrInvalidArgument, err.Error())
		}
	}

	common := cfg.Inputs[0].DType()
	if cfg.CheckSameDType {
		for _, in := range cfg.Inputs[1:] {
			if in.DType() != common {
				return nil, errors.Wrapf(ErrDtypeMismatch, "iter: %s did not match %s", in.DType(), common)
			}
		}
	}
	if cfg.PromoteInputs {
		state := ResultTypeState{}
		for _, in := range cfg.Inputs {
			state = state.AddTensor(in)
		}
		common = state.Resolve()
	}

	out := cfg.Output
	if out != nil {
		if !out.Shape().Equal(shape) {
			if err := out.Resize(shape); err != nil {
				return nil, err
			}
		}
		if common != out.DType() {
			if cfg.EnforceSafeCasting && PromoteTypes(common, out.DType()) != out.DType() {
				return nil, errors.Wrapf(ErrUnsafeCast,
					"result type %s can't be cast to the desired output type %s", common, out.DType())
			}
			if !cfg.CastCommonToOutput {
				return nil, errors.Wrapf(ErrDtypeMismatch,
					"iter: output dtype %s does not match common dtype %s", out.DType(), common)
			}
		}
	} else {
		dt := common
		if cfg.OutputDType != Invalid {
			dt = cfg.OutputDType
		}
		var err error
		out, err = NewRaw(shape, dt, cfg.Inputs[0].Device())
		if err != nil {
			return nil, err
		}
	}

	it := &Iter{
		Output:      out,
		Inputs:      make([]*RawTensor, len(cfg.Inputs)),
		CommonDType: common,
		Shape:       shape.Clone(),
		backend:     b,
	}
	for i, in := range cfg.Inputs {
		mat := in
		if cfg.PromoteInputs && in.DType() != common {
			mat = b.Cast(mat, common)
		}
		if !mat.Shape().Equal(shape) {
			mat = b.Expand(mat, shape)
		}
		it.Inputs[i] = mat
	}
	return it, nil
}

// DeviceType returns the device the iteration's kernels should run on.
func (it *Iter) DeviceType() Device {
	return it.Output.Device()
}

// Backend returns the backend the plan was built for.
func (it *Iter) Backend() Backend {
	return it.backend
}
