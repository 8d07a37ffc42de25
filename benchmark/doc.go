// Copyright 2025 The Dlight Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package benchmark provides utilities for benchmarking dynamic shape
// machine-learning workloads.
//
// # Overview
//
// Models declare their inputs with symbolic dimensions such as a variable
// sequence length. Running one benchmark trial needs three steps this
// package covers:
//   - Sampler: pick concrete values for the symbolic variables
//   - Resolve: concretize every declared input shape under that assignment
//   - Display: filter, sort and render the collected trial records
//
// # Basic Usage
//
//	specs := []benchmark.InputSpec{
//	    benchmark.NewTensorSpec("float32", benchmark.Lit(1), benchmark.Var("n"), benchmark.Lit(128)),
//	    benchmark.NewScalarSpec(benchmark.Var("n")),
//	}
//
//	sampler := benchmark.NewRandomSampler(42)
//	sample := sampler.Sample(benchmark.Vars(specs), 0, 1)
//
//	shapes, err := benchmark.Resolve(specs, sample)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// shapes[0] is a concrete (1, n, 128) float32 shape for this trial.
//
// # Sweeps
//
// RunSweep drives a whole sweep: it samples an assignment per trial,
// resolves the input shapes and hands both to a TrialRunner, which wraps the
// external compile/transfer/invoke machinery. The collected records go to
// Display:
//
//	records, err := benchmark.RunSweep(specs, runner, benchmark.DefaultSweepConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	benchmark.Display(records, benchmark.DisplayConfig{
//	    PrintOut: true,
//	    SortBy:   "latency_ms",
//	    Desc:     true,
//	})
//
// # Sampling Strategies
//
// The Sampler interface is a replaceable strategy. The package ships a
// uniform random reference strategy (seedable for reproducibility), a
// power-of-two progression and a fixed-value strategy; drivers can plug in
// their own via SamplerFunc.
//
// # Scope
//
// This package performs no compilation, holds no device sessions and
// measures no wall-clock time itself. Trial execution stays behind the
// TrialRunner interface.
package benchmark
