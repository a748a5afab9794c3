package cpu

import (
	"fmt"

	"github.com/arc-ml/arc/internal/parallel"
	"github.com/arc-ml/arc/internal/tensor"
)

// IsInDefault is the brute-force membership kernel: for every element, scan
// all test elements and flip the mask entry on a match. The caller pre-fills
// out with invert, so the kernel only writes matches.
func (cpu *CPUBackend) IsInDefault(elements, testElements *tensor.RawTensor, invert bool, out *tensor.RawTensor) {
	sameDType("isin", elements, testElements)
	if isHalf(elements.DType()) {
		cpu.IsInDefault(cpu.widenHalf(elements), cpu.widenHalf(testElements), invert, out)
		return
	}
	mask := out.AsBool()
	switch elements.DType() {
	case tensor.Uint8:
		isinBrute(cpu.par, mask, elements.AsUint8(), testElements.AsUint8(), invert)
	case tensor.Int8:
		isinBrute(cpu.par, mask, elements.AsInt8(), testElements.AsInt8(), invert)
	case tensor.Int16:
		isinBrute(cpu.par, mask, elements.AsInt16(), testElements.AsInt16(), invert)
	case tensor.Int32:
		isinBrute(cpu.par, mask, elements.AsInt32(), testElements.AsInt32(), invert)
	case tensor.Int64:
		isinBrute(cpu.par, mask, elements.AsInt64(), testElements.AsInt64(), invert)
	case tensor.Float32:
		isinBrute(cpu.par, mask, elements.AsFloat32(), testElements.AsFloat32(), invert)
	case tensor.Float64:
		isinBrute(cpu.par, mask, elements.AsFloat64(), testElements.AsFloat64(), invert)
	default:
		panic(fmt.Sprintf("isin: unsupported dtype %s", elements.DType()))
	}
}

func isinBrute[T comparable](par parallel.Config, mask []bool, elements, test []T, invert bool) {
	parallel.For(len(elements), func(i int) {
		for _, t := range test {
			if elements[i] == t {
				mask[i] = !invert
				return
			}
		}
	}, par)
}
