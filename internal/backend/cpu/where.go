package cpu

import (
	"fmt"

	"github.com/arc-ml/arc/internal/tensor"
)

// WhereInto writes a[i] where cond[i] is true and b[i] elsewhere. The ops
// layer materializes all operands to out's shape and a common dtype first,
// so the kernel is a dtype-agnostic element copy.
func (cpu *CPUBackend) WhereInto(out, cond, a, b *tensor.RawTensor) {
	if cond.DType() != tensor.Bool {
		panic("where: condition must be bool dtype")
	}
	sameDType("where", a, b)
	if out.DType() != a.DType() {
		panic(fmt.Sprintf("where: output dtype %s does not match operands %s", out.DType(), a.DType()))
	}

	sz := out.DType().Size()
	condData := cond.AsBool()
	aData, bData, dst := a.Data(), b.Data(), out.Data()
	forEach(cpu.par, out.NumElements(), func(i int) {
		src := bData
		if condData[i] {
			src = aData
		}
		copy(dst[i*sz:(i+1)*sz], src[i*sz:i*sz+sz])
	})
}
