package benchmark

import "testing"

func BenchmarkResolve(b *testing.B) {
	specs := []InputSpec{
		NewTensorSpec("float32", Lit(1), Var("n"), Lit(768)),
		NewTensorSpec("float32", Var("n"), Var("m")),
		NewScalarSpec(Var("m")),
	}
	sample := Assignment{"n": 64, "m": 128}

	b.Run("Resolve", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = Resolve(specs, sample)
		}
	})

	b.Run("Vars", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = Vars(specs)
		}
	})
}

func BenchmarkSamplers(b *testing.B) {
	vars := []string{"k", "m", "n"}

	b.Run("Random", func(b *testing.B) {
		sampler := NewRandomSampler(42)
		for i := 0; i < b.N; i++ {
			_ = sampler.Sample(vars, i, b.N)
		}
	})

	b.Run("PowerOfTwo", func(b *testing.B) {
		sampler := PowerOfTwoSampler{}
		for i := 0; i < b.N; i++ {
			_ = sampler.Sample(vars, i, b.N)
		}
	})
}

func BenchmarkDisplay(b *testing.B) {
	records := make([]*Record, 100)
	for i := range records {
		records[i] = NewRecord().Set("name", "trial").Set("t", float64(i)).Set("mem", i*512)
	}
	cfg := DisplayConfig{SortBy: "t", Desc: true, Renderer: PlainRenderer{}}

	for i := 0; i < b.N; i++ {
		_, _ = Display(records, cfg)
	}
}
