package benchmark

import (
	"fmt"

	"github.com/guoyaol/dlight/internal/shape"
)

// ScalarDType is the marker dtype of a resolved rank-0 input. It
// distinguishes the scalar case from a genuine 1-element tensor and is not a
// real numeric dtype.
const ScalarDType = "scalar"

// ResolvedShape is a fully concrete input shape: every dimension is an
// integer, the dtype is the spec's declared dtype or ScalarDType.
type ResolvedShape struct {
	Dims  shape.Shape
	DType string
}

// Resolve concretizes every input spec under the given assignment. Output is
// order-preserving and 1:1 with specs. Resolve is a pure function of its two
// inputs: same specs and same assignment always yield identical output.
//
// A symbolic dimension whose name is absent from the assignment fails with
// MissingSampleValueError. A scalar spec without an encoded value fails with
// UnsupportedSpecError. Extra assignment entries are ignored.
func Resolve(specs []InputSpec, sample Assignment) ([]ResolvedShape, error) {
	results := make([]ResolvedShape, 0, len(specs))
	for _, in := range specs {
		switch s := in.(type) {
		case TensorSpec:
			dims := make(shape.Shape, len(s.Dims))
			for i, d := range s.Dims {
				v, err := resolveDim(d, sample)
				if err != nil {
					return nil, err
				}
				dims[i] = v
			}
			results = append(results, ResolvedShape{Dims: dims, DType: s.DType})
		case ScalarSpec:
			if s.Value == nil {
				return nil, &UnsupportedSpecError{Reason: "scalar spec carries no encoded value"}
			}
			v, err := resolveDim(*s.Value, sample)
			if err != nil {
				return nil, err
			}
			results = append(results, ResolvedShape{Dims: shape.Shape{v}, DType: ScalarDType})
		default:
			return nil, &UnsupportedSpecError{Reason: fmt.Sprintf("unrecognized spec type %T", in)}
		}
	}
	return results, nil
}

// resolveDim passes literals through unchanged and looks symbolic names up
// in the assignment.
func resolveDim(d Dim, sample Assignment) (int, error) {
	if !d.Symbolic() {
		return d.Value(), nil
	}
	v, ok := sample[d.Name()]
	if !ok {
		return 0, &MissingSampleValueError{Variable: d.Name()}
	}
	return v, nil
}
