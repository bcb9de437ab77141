package opoly1d

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/notargets/gopoly/families"
	"github.com/notargets/gopoly/types"
)

// Basis is an orthonormal polynomial basis holding one cached RecurrenceTable
// of a family. It is immutable after NewBasis and safe for concurrent use.
type Basis struct {
	Family   families.Family
	ab       types.RecurrenceTable
	capacity int
}

// NewBasis caches capacity recurrence pairs of f. Rules of up to capacity nodes
// and polynomials of degree up to capacity-1 can then be requested.
func NewBasis(f families.Family, capacity int) (b *Basis, err error) {
	var ab types.RecurrenceTable
	if ab, err = f.Recurrence(capacity); err != nil {
		return
	}
	b = &Basis{
		Family:   f,
		ab:       ab,
		capacity: capacity,
	}
	return
}

func (b *Basis) Capacity() int { return b.capacity }

// Recurrence returns a copy of the cached table.
func (b *Basis) Recurrence() types.RecurrenceTable { return b.ab.Copy() }

func (b *Basis) GaussRule(N int, opts ...Option) (types.QuadratureRule, error) {
	return GaussRule(b.ab, N, opts...)
}

func (b *Basis) Eval(x []float64, degrees []int, D int) (types.EvaluationTable, error) {
	return Evaluate(x, degrees, D, b.ab)
}

func (b *Basis) Vandermonde(x []float64, N int) (*mat.Dense, error) {
	return Vandermonde(x, N, b.ab)
}

// Project computes the first N expansion coefficients
// c_n = sum_i w_i f(x_i) P_n(x_i) of f with a Q point Gauss rule. The result is
// exact for polynomial f of degree <= 2Q-N.
func (b *Basis) Project(f func(x float64) float64, N, Q int) (coeffs []float64, err error) {
	if N < 1 || Q < N {
		err = fmt.Errorf("projection of %d coefficients with a %d point rule: %w",
			N, Q, types.ErrInvalidParameter)
		return
	}
	var (
		qr types.QuadratureRule
		V  *mat.Dense
	)
	if qr, err = b.GaussRule(Q); err != nil {
		return
	}
	if V, err = b.Vandermonde(qr.X, N); err != nil {
		return
	}
	fw := mat.NewVecDense(Q, nil)
	for i, x := range qr.X {
		fw.SetVec(i, qr.W[i]*f(x))
	}
	c := mat.NewVecDense(N, nil)
	c.MulVec(V.T(), fw)
	coeffs = c.RawVector().Data
	return
}

// Synthesize evaluates sum_n coeffs[n] P_n(x) at every point of x.
func (b *Basis) Synthesize(coeffs []float64, x []float64) (f []float64, err error) {
	var V *mat.Dense
	if V, err = b.Vandermonde(x, len(coeffs)); err != nil {
		return
	}
	fv := mat.NewVecDense(len(x), nil)
	fv.MulVec(V, mat.NewVecDense(len(coeffs), coeffs))
	f = fv.RawVector().Data
	return
}
