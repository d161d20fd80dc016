package linalg

const (
	opLU    = "LU"
	opSolve = "Solve"
)

// LU performs Doolittle decomposition A = L*U with unit diagonal on L
// (no pivoting — deterministic at the cost of numerical stability on
// ill-conditioned input; only an exactly zero pivot is reported, as
// ErrSingular, which score's global scorer maps to ErrIllConditioned
// and score's dynamic scorer answers by falling back to the local
// scorer).
//
// Contract: m non-nil and square.
// Determinism: fixed i -> {j>=i} for U, then {j>i} -> i for L.
// Complexity: Time O(n^3), Space O(n^2).
func LU(m Matrix) (Matrix, Matrix, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, nil, linalgErrorf(opLU, err)
	}
	n := m.Rows()
	L, err := NewDense(n, n)
	if err != nil {
		return nil, nil, linalgErrorf(opLU, err)
	}
	U, err := NewDense(n, n)
	if err != nil {
		return nil, nil, linalgErrorf(opLU, err)
	}
	for i := 0; i < n; i++ {
		L.data[i*n+i] = 1.0
	}

	mDense, useFast := m.(*Dense)
	for i := 0; i < n; i++ {
		// U[i][j] for j >= i
		for j := i; j < n; j++ {
			sum := 0.0
			for k := 0; k < i; k++ {
				sum += L.data[i*n+k] * U.data[k*n+j]
			}
			var aij float64
			if useFast {
				aij = mDense.data[i*n+j]
			} else {
				aij, _ = m.At(i, j)
			}
			U.data[i*n+j] = aij - sum
		}
		// L[j][i] for j > i
		for j := i + 1; j < n; j++ {
			sum := 0.0
			for k := 0; k < i; k++ {
				sum += L.data[j*n+k] * U.data[k*n+i]
			}
			var aji float64
			if useFast {
				aji = mDense.data[j*n+i]
			} else {
				aji, _ = m.At(j, i)
			}
			pivot := U.data[i*n+i]
			if pivot == 0 {
				return nil, nil, linalgErrorf(opLU, ErrSingular)
			}
			L.data[j*n+i] = (aji - sum) / pivot
		}
	}
	return L, U, nil
}

// Solve returns x such that A*x = b, via LU decomposition followed by
// forward and backward substitution.
//
// Contract: A non-nil and square; len(b) == A.Rows().
// Returns ErrSingular on a zero pivot (recoverable by the caller —
// score's dynamic scorer falls back to the local scorer on this).
// Complexity: Time O(n^3) dominated by LU, Space O(n^2).
func Solve(A Matrix, b []float64) ([]float64, error) {
	if err := ValidateSquare(A); err != nil {
		return nil, linalgErrorf(opSolve, err)
	}
	n := A.Rows()
	if err := ValidateVecLen(b, n); err != nil {
		return nil, linalgErrorf(opSolve, err)
	}

	Lm, Um, err := LU(A)
	if err != nil {
		return nil, linalgErrorf(opSolve, err)
	}
	L, U := Lm.(*Dense), Um.(*Dense)

	// Forward substitution: L*y = b (L has unit diagonal).
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		sum := 0.0
		for k := 0; k < i; k++ {
			sum += L.data[i*n+k] * y[k]
		}
		y[i] = b[i] - sum
	}

	// Backward substitution: U*x = y.
	x := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		sum := 0.0
		for k := i + 1; k < n; k++ {
			sum += U.data[i*n+k] * x[k]
		}
		pivot := U.data[i*n+i]
		if pivot == 0 {
			return nil, linalgErrorf(opSolve, ErrSingular)
		}
		x[i] = (y[i] - sum) / pivot
	}
	return x, nil
}
