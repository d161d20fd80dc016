package linalg

import "fmt"

const (
	opAdd    = "Add"
	opSub    = "Sub"
	opScale  = "Scale"
	opMatVec = "MatVec"
)

func linalgErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Add returns a new Matrix containing the element-wise sum a+b.
//
// Contract: a, b non-nil, identical shapes.
// Determinism: fixed flat loop on the *Dense fast path.
// Complexity: Time O(r*c), Space O(r*c).
func Add(a, b Matrix) (Matrix, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, linalgErrorf(opAdd, err)
	}
	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, linalgErrorf(opAdd, err)
	}
	if da, ok := a.(*Dense); ok {
		if db, ok := b.(*Dense); ok {
			n := rows * cols
			for idx := 0; idx < n; idx++ {
				res.data[idx] = da.data[idx] + db.data[idx]
			}
			return res, nil
		}
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			av, _ := a.At(i, j)
			bv, _ := b.At(i, j)
			_ = res.Set(i, j, av+bv)
		}
	}
	return res, nil
}

// Sub returns a new Matrix with the element-wise difference a-b.
//
// Contract: a, b non-nil, identical shapes.
// Complexity: Time O(r*c), Space O(r*c).
func Sub(a, b Matrix) (Matrix, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, linalgErrorf(opSub, err)
	}
	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, linalgErrorf(opSub, err)
	}
	if da, ok := a.(*Dense); ok {
		if db, ok := b.(*Dense); ok {
			n := rows * cols
			for idx := 0; idx < n; idx++ {
				res.data[idx] = da.data[idx] - db.data[idx]
			}
			return res, nil
		}
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			av, _ := a.At(i, j)
			bv, _ := b.At(i, j)
			_ = res.Set(i, j, av-bv)
		}
	}
	return res, nil
}

// Scale returns a new Matrix with every element of m multiplied by alpha.
//
// Complexity: Time O(r*c), Space O(r*c).
func Scale(m Matrix, alpha float64) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, linalgErrorf(opScale, err)
	}
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, linalgErrorf(opScale, err)
	}
	if dm, ok := m.(*Dense); ok {
		n := rows * cols
		for idx := 0; idx < n; idx++ {
			res.data[idx] = dm.data[idx] * alpha
		}
		return res, nil
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, _ := m.At(i, j)
			_ = res.Set(i, j, v*alpha)
		}
	}
	return res, nil
}

// MatVec computes y = m*x for a column vector x.
//
// Contract: m non-nil; len(x) == m.Cols().
// Complexity: Time O(r*c), Space O(r).
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, linalgErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, linalgErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)
	if d, ok := m.(*Dense); ok {
		for i := 0; i < rows; i++ {
			acc := 0.0
			base := i * cols
			for j := 0; j < cols; j++ {
				if xv := x[j]; xv != 0 {
					acc += d.data[base+j] * xv
				}
			}
			y[i] = acc
		}
		return y, nil
	}
	for i := 0; i < rows; i++ {
		acc := 0.0
		for j := 0; j < cols; j++ {
			mv, _ := m.At(i, j)
			acc += mv * x[j]
		}
		y[i] = acc
	}
	return y, nil
}
