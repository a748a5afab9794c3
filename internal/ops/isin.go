package ops

import (
	"math"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/arc-ml/arc/internal/tensor"
)

// isinUseBruteForce decides between the brute-force and sort-based isin
// strategies. Brute force is O(n*m) but allocation-free; sorting pays off once
// the test set grows past a slowly rising function of the element count.
func isinUseBruteForce(numElements, numTest int) bool {
	return float64(numTest) < 10.0*math.Pow(float64(numElements), 0.145)
}

func isinCheckDType(op string, dt tensor.DataType) error {
	switch {
	case dt == tensor.Bool:
		return errors.Wrapf(tensor.ErrUnsupportedType, "%s: bool tensors are not supported", op)
	case dt == tensor.BFloat16:
		return errors.Wrapf(tensor.ErrUnsupportedType, "%s: bfloat16 tensors are not supported", op)
	case dt.IsComplex():
		return errors.Wrapf(tensor.ErrUnsupportedType, "%s: complex tensors are not supported", op)
	}
	return nil
}

// IsIn tests each element of elements for membership in testElements,
// returning a Bool mask shaped like elements (inverted when invert is set).
// assumeUnique skips the deduplication passes of the sort-based strategy and
// is only sound when both inputs are free of duplicates.
func IsIn(b tensor.Backend, elements, testElements *tensor.RawTensor, assumeUnique, invert bool) (*tensor.RawTensor, error) {
	if err := isinCheckDType("isin", elements.DType()); err != nil {
		return nil, err
	}
	if err := isinCheckDType("isin", testElements.DType()); err != nil {
		return nil, err
	}

	out, err := tensor.NewRaw(elements.Shape().Clone(), tensor.Bool, elements.Device())
	if err != nil {
		return nil, err
	}
	if elements.NumElements() == 0 {
		return out, nil
	}
	if testElements.NumElements() == 0 {
		if invert {
			b.Fill(out, tensor.BoolScalar(true))
		}
		return out, nil
	}

	// Both sides compute in one promoted dtype; half precision has no
	// ordered kernels, so it rides in float32.
	common := tensor.PromoteTypes(elements.DType(), testElements.DType())
	if common == tensor.Float16 {
		common = tensor.Float32
	}
	el, te := elements, testElements
	if el.DType() != common {
		el = b.Cast(el, common)
	}
	if te.DType() != common {
		te = b.Cast(te, common)
	}

	if isinUseBruteForce(el.NumElements(), te.NumElements()) {
		klog.V(2).Infof("isin: brute force, %d elements against %d test values", el.NumElements(), te.NumElements())
		b.Fill(out, tensor.BoolScalar(invert))
		b.IsInDefault(el, te, invert, out)
		return out, nil
	}
	klog.V(2).Infof("isin: sorting strategy, %d elements against %d test values", el.NumElements(), te.NumElements())
	isinSorting(b, el, te, assumeUnique, invert, out)
	return out, nil
}

// isinSorting is the large-test-set strategy: concatenate (deduplicated)
// elements and test values, stable-sort the whole thing, and read membership
// off adjacent duplicates. A value present in both inputs necessarily sorts
// next to its twin, and stability keeps the element copy first.
func isinSorting(b tensor.Backend, elements, testElements *tensor.RawTensor, assumeUnique, invert bool, out *tensor.RawTensor) {
	var all, inverse *tensor.RawTensor
	n := elements.NumElements()
	if assumeUnique {
		all = b.Cat1D([]*tensor.RawTensor{b.Flatten(elements), b.Flatten(testElements)})
	} else {
		uniqueElems, inv := b.Unique1D(b.Flatten(elements), true)
		uniqueTest, _ := b.Unique1D(b.Flatten(testElements), false)
		inverse = inv
		n = uniqueElems.NumElements()
		all = b.Cat1D([]*tensor.RawTensor{uniqueElems, uniqueTest})
	}

	sorted, order := b.SortStable1D(all, false)
	total := sorted.NumElements()

	duplicate := tensor.MustNewRaw(tensor.Shape{total}, tensor.Bool, elements.Device())
	if total > 1 {
		left := b.Slice1D(sorted, 0, total-1)
		right := b.Slice1D(sorted, 1, total)
		var adjacent *tensor.RawTensor
		if invert {
			adjacent = b.Ne(right, left)
		} else {
			adjacent = b.Eq(right, left)
		}
		b.CopyInto(b.Slice1D(duplicate, 0, total-1), adjacent)
	}
	// The greatest value has no right neighbor to match against.
	b.Fill(b.Slice1D(duplicate, total-1, total), tensor.BoolScalar(invert))

	// Scatter back to pre-sort positions: mask[order[k]] = duplicate[k].
	mask := tensor.MustNewRaw(tensor.Shape{total}, tensor.Bool, elements.Device())
	b.IndexCopy1D(mask, order, duplicate)

	flatOut := b.Flatten(out)
	if assumeUnique {
		b.CopyInto(flatOut, b.Slice1D(mask, 0, n))
	} else {
		b.CopyInto(flatOut, b.IndexSelect1D(b.Slice1D(mask, 0, n), inverse))
	}
}

// IsInScalar tests each element of elements against a single test value.
func IsInScalar(b tensor.Backend, elements *tensor.RawTensor, test tensor.Scalar, invert bool) (*tensor.RawTensor, error) {
	if err := isinCheckDType("isin", elements.DType()); err != nil {
		return nil, err
	}
	if test.IsBool() || test.IsComplex() {
		return nil, errors.Wrap(tensor.ErrUnsupportedType, "isin: bool and complex test values are not supported")
	}
	// A single test value is just an (in)equality comparison at the
	// promoted dtype.
	common := tensor.ResultType(elements, test)
	el := elements
	if el.DType() != common {
		el = b.Cast(el, common)
	}
	t, err := scalarTensor(b, test, common, elements.Device())
	if err != nil {
		return nil, err
	}
	if invert {
		return b.Ne(el, t), nil
	}
	return b.Eq(el, t), nil
}

// IsInScalarElements tests a single element value for membership in
// testElements, returning a rank-0 Bool tensor.
func IsInScalarElements(b tensor.Backend, element tensor.Scalar, testElements *tensor.RawTensor, assumeUnique, invert bool) (*tensor.RawTensor, error) {
	if element.IsBool() || element.IsComplex() {
		return nil, errors.Wrap(tensor.ErrUnsupportedType, "isin: bool and complex element values are not supported")
	}
	if err := isinCheckDType("isin", testElements.DType()); err != nil {
		return nil, err
	}
	common := tensor.ResultType(testElements, element)
	el, err := scalarTensor(b, element, common, testElements.Device())
	if err != nil {
		return nil, err
	}
	return IsIn(b, el, testElements, assumeUnique, invert)
}
