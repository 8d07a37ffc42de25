package benchmark

import "fmt"

// MissingSampleValueError reports a symbolic dimension or scalar value with
// no entry in the supplied assignment. Resolution never substitutes a
// default.
type MissingSampleValueError struct {
	Variable string
}

func (e *MissingSampleValueError) Error() string {
	return fmt.Sprintf("resolve: no sample value for dynamic shape variable %q", e.Variable)
}

// UnsupportedSpecError reports an input spec that cannot be resolved, such
// as a scalar spec carrying no encoded value.
type UnsupportedSpecError struct {
	Reason string
}

func (e *UnsupportedSpecError) Error() string {
	return fmt.Sprintf("resolve: unsupported input spec: %s", e.Reason)
}

// UnknownSortKeyError reports a sort key that names no column surviving
// display filtering.
type UnknownSortKeyError struct {
	Key string
}

func (e *UnknownSortKeyError) Error() string {
	return fmt.Sprintf("display: sort key %q not in benchmark results", e.Key)
}
