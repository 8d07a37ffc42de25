// Copyright 2025 The Dlight Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package benchmark

import (
	"github.com/guoyaol/dlight/internal/benchmark"
	"github.com/guoyaol/dlight/internal/shape"
)

// Shape represents the concrete dimensions of a tensor.
// Example: Shape{1, 64, 128} is a resolved (1, n, 128) with n=64.
type Shape = shape.Shape

// Input specs

// Dim is one declared tensor dimension, literal or symbolic.
type Dim = benchmark.Dim

// InputSpec describes one model input before shape resolution: a TensorSpec
// or a ScalarSpec.
type InputSpec = benchmark.InputSpec

// TensorSpec declares a tensor input as dimensions plus a dtype string.
type TensorSpec = benchmark.TensorSpec

// ScalarSpec declares a rank-0 input carrying a single encoded value.
type ScalarSpec = benchmark.ScalarSpec

// Lit creates a literal dimension with a fixed extent.
func Lit(value int) Dim {
	return benchmark.Lit(value)
}

// Var creates a symbolic dimension resolved at trial time.
func Var(name string) Dim {
	return benchmark.Var(name)
}

// NewTensorSpec builds a TensorSpec from a dtype and dimensions.
//
// Example:
//
//	spec := benchmark.NewTensorSpec("float32", benchmark.Lit(1), benchmark.Var("n"), benchmark.Lit(128))
func NewTensorSpec(dtype string, dims ...Dim) TensorSpec {
	return benchmark.NewTensorSpec(dtype, dims...)
}

// NewScalarSpec builds a ScalarSpec encoding the given value.
func NewScalarSpec(value Dim) ScalarSpec {
	return benchmark.NewScalarSpec(value)
}

// Shape resolution

// Assignment maps symbolic variable names to concrete extents for one trial.
type Assignment = benchmark.Assignment

// ResolvedShape is a fully concrete input shape plus its dtype.
type ResolvedShape = benchmark.ResolvedShape

// ScalarDType marks a resolved rank-0 input; it is not a real numeric dtype.
const ScalarDType = benchmark.ScalarDType

// Resolve concretizes every input spec under the given assignment, in input
// order. See the package documentation for the error contract.
func Resolve(specs []InputSpec, sample Assignment) ([]ResolvedShape, error) {
	return benchmark.Resolve(specs, sample)
}

// Vars returns the sorted set of symbolic variable names referenced by the
// given input specs.
func Vars(specs []InputSpec) []string {
	return benchmark.Vars(specs)
}

// FuncName strips the namespace prefix from a qualified symbol, returning
// the part after the first "@".
func FuncName(qualified string) string {
	return benchmark.FuncName(qualified)
}

// Sampling

// Sampler produces one concrete assignment per benchmark trial.
type Sampler = benchmark.Sampler

// SamplerFunc adapts a plain function to the Sampler interface.
type SamplerFunc = benchmark.SamplerFunc

// RandomSampler draws each variable uniformly from [2, 128].
type RandomSampler = benchmark.RandomSampler

// PowerOfTwoSampler assigns 2^(index mod count) to every variable.
type PowerOfTwoSampler = benchmark.PowerOfTwoSampler

// FixedSampler assigns the same constant to every variable.
type FixedSampler = benchmark.FixedSampler

// NewRandomSampler creates the reference random sampler. Seed -1 draws a
// random seed; any other value makes the sample sequence reproducible.
func NewRandomSampler(seed int64) *RandomSampler {
	return benchmark.NewRandomSampler(seed)
}

// Reporting

// Record is one trial's metadata and timings as an ordered column → value
// row.
type Record = benchmark.Record

// DisplayConfig configures record filtering, sorting and rendering.
type DisplayConfig = benchmark.DisplayConfig

// Renderer renders a header and data rows as text.
type Renderer = benchmark.Renderer

// TableRenderer renders an aligned table.
type TableRenderer = benchmark.TableRenderer

// PlainRenderer is the degraded tab-delimited fallback.
type PlainRenderer = benchmark.PlainRenderer

// NewRecord creates an empty record.
func NewRecord() *Record {
	return benchmark.NewRecord()
}

// DefaultDisplayConfig returns the default display configuration.
func DefaultDisplayConfig() DisplayConfig {
	return benchmark.DefaultDisplayConfig()
}

// Display filters, sorts and renders a batch of benchmark records, returning
// the rendered text.
func Display(records []*Record, cfg DisplayConfig) (string, error) {
	return benchmark.Display(records, cfg)
}

// Sweeps

// TrialRunner executes one benchmark trial against concrete input shapes.
type TrialRunner = benchmark.TrialRunner

// TrialFunc adapts a plain function to the TrialRunner interface.
type TrialFunc = benchmark.TrialFunc

// SweepConfig configures one benchmark sweep.
type SweepConfig = benchmark.SweepConfig

// SampleColumn is the record column carrying the trial's assignment string.
const SampleColumn = benchmark.SampleColumn

// DefaultSweepConfig returns a 5-trial sweep with the reference random
// sampler.
func DefaultSweepConfig() SweepConfig {
	return benchmark.DefaultSweepConfig()
}

// RunSweep benchmarks the model described by specs over sampled variable
// assignments, collecting one record per successful trial.
func RunSweep(specs []InputSpec, runner TrialRunner, cfg SweepConfig) ([]*Record, error) {
	return benchmark.RunSweep(specs, runner, cfg)
}

// Errors

// MissingSampleValueError reports a symbolic name absent from an assignment.
type MissingSampleValueError = benchmark.MissingSampleValueError

// UnsupportedSpecError reports an input spec that cannot be resolved.
type UnsupportedSpecError = benchmark.UnsupportedSpecError

// UnknownSortKeyError reports a sort key naming no surviving column.
type UnknownSortKeyError = benchmark.UnknownSortKeyError
