package opoly1d

import (
	"fmt"
	"math"

	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/mat"

	"github.com/notargets/gopoly/types"
)

const eps = 2.220446049250313e-16

// jacobiMatrixTerms returns the diagonal and off-diagonal of the N x N Jacobi
// matrix. e[i] couples rows i and i+1; e has length N with e[N-1] = 0 as scratch
// space for the QL sweep.
func jacobiMatrixTerms(ab types.RecurrenceTable, N int) (d, e []float64) {
	d = make([]float64, N)
	e = make([]float64, N)
	copy(d, ab.A[:N])
	for i := 0; i < N-1; i++ {
		e[i] = math.Sqrt(ab.B[i+1])
	}
	return
}

// tridiagQL diagonalizes the symmetric tridiagonal matrix (d, e) in place with
// implicitly shifted QL sweeps. Only the first row of the eigenvector matrix is
// accumulated, which is all Golub-Welsch needs and keeps the cost at O(N^2).
// On return d holds the eigenvalues (unordered) and z[i] is the first component
// of the normalized eigenvector belonging to d[i].
func tridiagQL(d, e []float64, maxIter int) (z []float64, err error) {
	var (
		n = len(d)
	)
	z = make([]float64, n)
	z[0] = 1
	if n == 1 {
		return
	}
	e[n-1] = 0
	for l := 0; l < n; l++ {
		for iter := 0; ; iter++ {
			// Look for a negligible off-diagonal to split the matrix
			m := l
			for ; m < n-1; m++ {
				dd := math.Abs(d[m]) + math.Abs(d[m+1])
				if math.Abs(e[m]) <= eps*dd {
					break
				}
			}
			if m == l {
				break
			}
			if iter == maxIter {
				err = fmt.Errorf("QL iteration did not converge for eigenvalue %d of %d after %d sweeps: %w",
					l, n, maxIter, types.ErrNumericalFailure)
				return
			}
			g := (d[l+1] - d[l]) / (2 * e[l])
			r := math.Hypot(g, 1)
			g = d[m] - d[l] + e[l]/(g+math.Copysign(r, g))
			s, c, p := 1., 1., 0.
			deflated := false
			for i := m - 1; i >= l; i-- {
				f := s * e[i]
				b := c * e[i]
				r = math.Hypot(f, g)
				e[i+1] = r
				if r == 0 {
					// Underflow, restart the sweep on the split matrix
					d[i+1] -= p
					e[m] = 0
					deflated = true
					break
				}
				s = f / r
				c = g / r
				g = d[i+1] - p
				r = (d[i]-g)*s + 2*c*b
				p = s * r
				d[i+1] = g + p
				g = c*r - b
				// Plane rotation applied to the first eigenvector row
				f = z[i+1]
				z[i+1] = s*z[i] + c*f
				z[i] = c*z[i] - s*f
			}
			if deflated {
				continue
			}
			d[l] -= p
			e[l] = g
			e[m] = 0
		}
	}
	return
}

// tridiagDense solves the same problem with gonum's dense symmetric
// eigensolver, returning ascending eigenvalues and first eigenvector components.
func tridiagDense(d, e []float64) (x, z []float64, err error) {
	var (
		n    = len(d)
		data = make([]float64, 2*n)
		eig  mat.EigenSym
	)
	if n == 1 {
		return []float64{d[0]}, []float64{1}, nil
	}
	for i := 0; i < n; i++ {
		data[2*i] = d[i]
		if i < n-1 {
			data[2*i+1] = e[i]
		}
	}
	J := mat.NewSymBandDense(n, 1, data)
	if ok := eig.Factorize(J, true); !ok {
		err = fmt.Errorf("dense eigen decomposition of %d x %d Jacobi matrix failed: %w",
			n, n, types.ErrNumericalFailure)
		return
	}
	x = eig.Values(nil)
	VV := mat.NewDense(n, n, nil)
	eig.VectorsTo(VV)
	z = make([]float64, n)
	copy(z, VV.RawRowView(0))
	return
}

// JacobiMatrix assembles the N x N Jacobi matrix of ab in CSR form.
func JacobiMatrix(ab types.RecurrenceTable, N int) (J *sparse.CSR, err error) {
	if N < 1 {
		err = fmt.Errorf("Jacobi matrix of order %d: %w", N, types.ErrInvalidParameter)
		return
	}
	if ab.Len() < N {
		err = fmt.Errorf("Jacobi matrix of order %d from %d recurrence pairs: %w",
			N, ab.Len(), types.ErrInsufficientCoefficients)
		return
	}
	d, e := jacobiMatrixTerms(ab, N)
	dok := sparse.NewDOK(N, N)
	for i := 0; i < N; i++ {
		dok.Set(i, i, d[i])
		if i < N-1 {
			dok.Set(i, i+1, e[i])
			dok.Set(i+1, i, e[i])
		}
	}
	J = dok.ToCSR()
	return
}
