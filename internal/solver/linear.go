// Package solver provides the dense linear solve backing nodal analysis.
package solver

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrSingular indicates the system matrix is singular or too
	// ill-conditioned to trust the solution.
	ErrSingular = errors.New("solver: singular matrix")

	// ErrDimension indicates a non-square matrix or mismatched vector.
	ErrDimension = errors.New("solver: dimension mismatch")
)

// Condition numbers above this are treated as singular.
const maxCondition = 1e12

// Solve computes x for a·x = b via LU decomposition with partial
// pivoting. It fails with ErrSingular instead of returning Inf/NaN
// entries.
func Solve(a *mat.Dense, b *mat.VecDense) (*mat.VecDense, error) {
	r, c := a.Dims()
	if r != c {
		return nil, fmt.Errorf("%w: matrix is %dx%d", ErrDimension, r, c)
	}
	if b.Len() != r {
		return nil, fmt.Errorf("%w: matrix is %dx%d, vector is %d", ErrDimension, r, c, b.Len())
	}

	var lu mat.LU
	lu.Factorize(a)
	if cond := lu.Cond(); math.IsInf(cond, 1) || cond > maxCondition {
		return nil, ErrSingular
	}

	x := mat.NewVecDense(r, nil)
	if err := lu.SolveVecTo(x, false, b); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSingular, err)
	}

	for i := 0; i < r; i++ {
		if v := x.AtVec(i); math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, ErrSingular
		}
	}

	return x, nil
}
