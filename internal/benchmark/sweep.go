package benchmark

import "fmt"

// SampleColumn is the record column under which RunSweep stores the trial's
// variable assignment string, e.g. "m=64, n=128".
const SampleColumn = "sample"

// TrialRunner executes one benchmark trial against fully concrete input
// shapes and returns the trial's record. Implementations wrap the external
// machinery this core treats as opaque: compiling the model, shipping it to
// a remote device, invoking it and timing the run.
type TrialRunner interface {
	RunTrial(sample Assignment, inputs []ResolvedShape) (*Record, error)
}

// TrialFunc adapts a plain function to the TrialRunner interface.
type TrialFunc func(sample Assignment, inputs []ResolvedShape) (*Record, error)

// RunTrial calls f.
func (f TrialFunc) RunTrial(sample Assignment, inputs []ResolvedShape) (*Record, error) {
	return f(sample, inputs)
}

// SweepConfig configures one benchmark sweep.
type SweepConfig struct {
	// Samples is the number of trials to run.
	Samples int

	// Sampler produces the per-trial variable assignments. nil = the
	// reference random sampler with a nondeterministic seed.
	Sampler Sampler

	// SkipFailures drops trials whose runner fails instead of aborting the
	// sweep.
	SkipFailures bool
}

// DefaultSweepConfig returns a 5-trial sweep with the reference random
// sampler, aborting on the first failed trial.
func DefaultSweepConfig() SweepConfig {
	return SweepConfig{Samples: 5}
}

// RunSweep benchmarks the model described by specs over cfg.Samples sampled
// variable assignments. Each trial samples an assignment, resolves the input
// shapes under it, hands both to the runner, and tags the returned record
// with the assignment string under SampleColumn (unless the runner already
// set that column). The collected records are returned in trial order.
//
// A resolution failure always aborts the sweep: it means the sampler and the
// specs disagree about the variable set, which no later trial can fix. A
// runner failure aborts unless cfg.SkipFailures is set.
func RunSweep(specs []InputSpec, runner TrialRunner, cfg SweepConfig) ([]*Record, error) {
	vars := Vars(specs)
	sampler := cfg.Sampler
	if sampler == nil {
		sampler = NewRandomSampler(-1)
	}

	records := make([]*Record, 0, cfg.Samples)
	for i := 0; i < cfg.Samples; i++ {
		sample := sampler.Sample(vars, i, cfg.Samples)
		inputs, err := Resolve(specs, sample)
		if err != nil {
			return nil, fmt.Errorf("sweep trial %d: %w", i, err)
		}

		rec, err := runner.RunTrial(sample, inputs)
		if err != nil {
			if cfg.SkipFailures {
				continue
			}
			return nil, fmt.Errorf("sweep trial %d (%s): %w", i, sample, err)
		}
		if _, ok := rec.Get(SampleColumn); !ok {
			rec.Set(SampleColumn, sample.String())
		}
		records = append(records, rec)
	}
	return records, nil
}
