// Package matrix: the dense kernels lvlspd's correctness tests rely on.
// All functions perform strict fail-fast validation and return plain
// sentinels; loop orders are fixed for determinism.
package matrix

// MulVec returns the matrix·vector product m·x as a fresh slice.
//
// Contract:
//   - m must be non-nil; len(x) must equal m.Cols().
//
// Determinism: fixed i→j accumulation order.
// Complexity: Time O(r*c), Space O(r).
func MulVec(m *Dense, x []float64) ([]float64, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	if len(x) != m.c {
		return nil, ErrDimensionMismatch
	}

	y := make([]float64, m.r)
	var i, j int
	var sum float64
	for i = 0; i < m.r; i++ {
		sum = 0
		for j = 0; j < m.c; j++ {
			sum += m.data[i*m.c+j] * x[j]
		}
		y[i] = sum
	}

	return y, nil
}

// Transpose returns a new matrix holding mᵀ.
//
// Contract: m must be non-nil.
// Complexity: Time O(r*c), Space O(r*c).
func Transpose(m *Dense) (*Dense, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}

	out := &Dense{r: m.c, c: m.r, data: make([]float64, len(m.data))}
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			out.data[j*out.c+i] = m.data[i*m.c+j]
		}
	}

	return out, nil
}

// IsSymmetric reports whether m is square and exactly (bitwise) symmetric.
// Stencil projections are built by mirrored assignment of the same stored
// value, so exact equality is the right check there; numeric workloads that
// need a tolerance should compare against Transpose themselves.
//
// Contract: m must be non-nil.
// Complexity: Time O(r*c).
func IsSymmetric(m *Dense) (bool, error) {
	if m == nil {
		return false, ErrNilMatrix
	}
	if m.r != m.c {
		return false, nil
	}

	var i, j int
	for i = 0; i < m.r; i++ {
		for j = i + 1; j < m.c; j++ {
			if m.data[i*m.c+j] != m.data[j*m.c+i] {
				return false, nil
			}
		}
	}

	return true, nil
}
