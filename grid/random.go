// Package grid: deterministic pseudo-random field generation.
// Seeded generation keeps tests, examples and benchmarks reproducible
// bit-for-bit across runs; no package-level randomness exists anywhere
// in lvlspd.
package grid

import "math/rand"

// Random returns a field over shape filled with uniform values in [-1, 1),
// generated from the given seed. The fill order is the linear address order,
// so identical (shape, seed) pairs always produce identical fields.
// Complexity: O(n).
func Random(shape Shape, seed int64) *Field {
	rng := rand.New(rand.NewSource(seed))
	f := NewField(shape)
	for i := range f.Data {
		f.Data[i] = 2*rng.Float64() - 1
	}

	return f
}
