// Package benchmark implements the shape-resolution, variable-sampling and
// results-reporting core for benchmarking dynamic shape workloads.
//
// A model declares its inputs as a list of InputSpec values whose dimensions
// may be symbolic. For each trial a Sampler produces one Assignment of
// concrete values for the symbolic variables, Resolve concretizes every input
// shape under that assignment, and the collected per-trial Records are
// filtered, sorted and rendered by Display.
package benchmark

import (
	"fmt"
	"sort"
	"strings"
)

// Dim is one declared tensor dimension: either a literal extent or a
// symbolic variable that is resolved to a concrete value at trial time.
type Dim struct {
	name  string
	value int
}

// Lit creates a literal dimension with a fixed extent.
func Lit(value int) Dim {
	return Dim{value: value}
}

// Var creates a symbolic dimension. The name must be non-empty and is used
// as the lookup key into an Assignment.
func Var(name string) Dim {
	return Dim{name: name}
}

// Symbolic reports whether the dimension is a symbolic variable.
func (d Dim) Symbolic() bool {
	return d.name != ""
}

// Name returns the variable name of a symbolic dimension ("" for literals).
func (d Dim) Name() string {
	return d.name
}

// Value returns the extent of a literal dimension (0 for symbolic ones).
func (d Dim) Value() int {
	return d.value
}

// String renders the dimension as its extent or its variable name.
func (d Dim) String() string {
	if d.Symbolic() {
		return d.name
	}
	return fmt.Sprintf("%d", d.value)
}

// InputSpec describes one model input before shape resolution. It is a
// sealed variant: TensorSpec for ordinary tensors, ScalarSpec for rank-0
// inputs carrying a single encoded value.
type InputSpec interface {
	inputSpec()
}

// TensorSpec declares a tensor input as an ordered dimension sequence plus a
// dtype string. The dtype is carried verbatim through resolution and never
// validated here; dtype legality is a compiler concern.
type TensorSpec struct {
	Dims  []Dim
	DType string
}

func (TensorSpec) inputSpec() {}

// NewTensorSpec builds a TensorSpec from a dtype and dimensions.
//
// Example:
//
//	spec := benchmark.NewTensorSpec("float32", benchmark.Lit(1), benchmark.Var("n"), benchmark.Lit(128))
func NewTensorSpec(dtype string, dims ...Dim) TensorSpec {
	return TensorSpec{Dims: dims, DType: dtype}
}

// ScalarSpec declares a rank-0 input. Value is the encoded literal or
// symbolic value; a ScalarSpec with a nil Value cannot be resolved.
type ScalarSpec struct {
	Value *Dim
}

func (ScalarSpec) inputSpec() {}

// NewScalarSpec builds a ScalarSpec encoding the given value.
func NewScalarSpec(value Dim) ScalarSpec {
	return ScalarSpec{Value: &value}
}

// Assignment maps symbolic variable names to concrete positive extents for
// one benchmark trial. Entries for variables not referenced by the specs
// being resolved are ignored.
type Assignment map[string]int

// String renders the assignment as "m=64, n=128" with keys in sorted order,
// so the same assignment always yields the same string.
func (a Assignment) String() string {
	keys := make([]string, 0, len(a))
	for k := range a {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%d", k, a[k])
	}
	return strings.Join(parts, ", ")
}

// Vars returns the sorted set of symbolic variable names referenced by the
// given input specs.
func Vars(specs []InputSpec) []string {
	seen := make(map[string]struct{})
	for _, in := range specs {
		switch s := in.(type) {
		case TensorSpec:
			for _, d := range s.Dims {
				if d.Symbolic() {
					seen[d.Name()] = struct{}{}
				}
			}
		case ScalarSpec:
			if s.Value != nil && s.Value.Symbolic() {
				seen[s.Value.Name()] = struct{}{}
			}
		}
	}

	vars := make([]string, 0, len(seen))
	for name := range seen {
		vars = append(vars, name)
	}
	sort.Strings(vars)
	return vars
}

// FuncName strips the namespace prefix from a qualified symbol, returning
// the part after the first "@". Symbols without a prefix pass through
// unchanged, e.g. "module@main" and "main" both yield "main".
func FuncName(qualified string) string {
	if i := strings.Index(qualified, "@"); i >= 0 {
		return qualified[i+1:]
	}
	return qualified
}
