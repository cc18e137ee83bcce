package spdfilter_test

import (
	"testing"

	"github.com/katalvlaran/lvlspd/grid"
	"github.com/katalvlaran/lvlspd/spdfilter"
)

// benchFilter builds a dominant constant-coefficient filter over shape,
// failing the benchmark on any construction error.
func benchFilter(b *testing.B, shape grid.Shape) *spdfilter.Filter {
	b.Helper()

	c, err := spdfilter.ConstantCoeffs(shape, 19, -1)
	if err != nil {
		b.Fatalf("coeffs: %v", err)
	}
	f, err := spdfilter.New(c)
	if err != nil {
		b.Fatalf("filter: %v", err)
	}

	return f
}

// BenchmarkApply measures the forward 19-point application on a 32×32×16
// grid (the interior fast path dominates).
func BenchmarkApply(b *testing.B) {
	shape := grid.MustShape(32, 32, 16)
	f := benchFilter(b, shape)
	x := grid.Random(shape, 1)
	y := grid.NewField(shape)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := f.Apply(x, y); err != nil {
			b.Fatalf("apply: %v", err)
		}
	}
}

// BenchmarkApplyApproximateInverse measures one preconditioner
// application (both triangular sweeps) with factors prebuilt.
func BenchmarkApplyApproximateInverse(b *testing.B) {
	shape := grid.MustShape(32, 32, 16)
	f := benchFilter(b, shape)
	rhs := grid.Random(shape, 2)
	x := grid.NewField(shape)

	// Build factors outside the timed loop.
	if err := f.ApplyApproximateInverse(rhs, x); err != nil {
		b.Fatalf("warmup: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := f.ApplyApproximateInverse(rhs, x); err != nil {
			b.Fatalf("solve: %v", err)
		}
	}
}

// BenchmarkFactorization measures one full IC(0) sweep by rebuilding the
// filter each iteration (factors are cached per filter).
func BenchmarkFactorization(b *testing.B) {
	shape := grid.MustShape(32, 32, 16)
	c, err := spdfilter.ConstantCoeffs(shape, 19, -1)
	if err != nil {
		b.Fatalf("coeffs: %v", err)
	}
	rhs := grid.Random(shape, 3)
	x := grid.NewField(shape)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f, err := spdfilter.New(c)
		if err != nil {
			b.Fatalf("filter: %v", err)
		}
		if err = f.ApplyApproximateInverse(rhs, x); err != nil {
			b.Fatalf("factor+solve: %v", err)
		}
	}
}
