package opoly1d

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/notargets/gopoly/types"
)

// GaussRule returns the N point Gauss rule of the measure described by ab
// (Golub-Welsch): nodes are the eigenvalues of the N x N Jacobi matrix, weights
// are b_0 times the squared first components of its normalized eigenvectors.
func GaussRule(ab types.RecurrenceTable, N int, opts ...Option) (qr types.QuadratureRule, err error) {
	if err = checkRuleInput(ab, N, "Gauss"); err != nil {
		return
	}
	return solveRule(ab, N, newRuleConfig(opts))
}

// RadauRule returns the N point Gauss-Radau rule with one node fixed at r.
// r must lie outside the open support of the measure for the weights to be
// positive.
func RadauRule(ab types.RecurrenceTable, N int, r float64, opts ...Option) (qr types.QuadratureRule, err error) {
	if err = checkRuleInput(ab, N, "Radau"); err != nil {
		return
	}
	var (
		M      = N - 1
		abM, _ = ab.Truncate(N)
		p0, p1 = 0., 1.
	)
	// Monic pi_M(r) and pi_{M-1}(r), rescaled to keep them in range
	for n := 0; n < M; n++ {
		pm1 := p0
		p0 = p1
		p1 = (r-ab.A[n])*p0 - ab.B[n]*pm1
		p0, p1 = rescale(p0, p1)
	}
	if p1 == 0 {
		err = fmt.Errorf("Radau node %v is a zero of the degree %d polynomial: %w",
			r, M, types.ErrNumericalFailure)
		return
	}
	abM.A[M] = r - abM.B[M]*p0/p1
	return solveRule(abM, N, newRuleConfig(opts))
}

// LobattoRule returns the N point Gauss-Lobatto rule with nodes fixed at the
// ends l < r of the support.
func LobattoRule(ab types.RecurrenceTable, N int, l, r float64, opts ...Option) (qr types.QuadratureRule, err error) {
	if err = checkRuleInput(ab, N, "Lobatto"); err != nil {
		return
	}
	if N < 2 {
		err = fmt.Errorf("Lobatto rule needs at least 2 nodes, got %d: %w", N, types.ErrInvalidParameter)
		return
	}
	if !(l < r) {
		err = fmt.Errorf("Lobatto end points must satisfy l < r, got [%v, %v]: %w",
			l, r, types.ErrInvalidParameter)
		return
	}
	var (
		abM, _   = ab.Truncate(N)
		p0l, p1l = 0., 1.
		p0r, p1r = 0., 1.
	)
	for n := 0; n < N-1; n++ {
		pm1l, pm1r := p0l, p0r
		p0l, p0r = p1l, p1r
		p1l = (l-ab.A[n])*p0l - ab.B[n]*pm1l
		p1r = (r-ab.A[n])*p0r - ab.B[n]*pm1r
		p0l, p1l = rescale(p0l, p1l)
		p0r, p1r = rescale(p0r, p1r)
	}
	det := p1l*p0r - p1r*p0l
	if det == 0 {
		err = fmt.Errorf("singular Lobatto modification for [%v, %v]: %w",
			l, r, types.ErrNumericalFailure)
		return
	}
	abM.A[N-1] = (l*p1l*p0r - r*p1r*p0l) / det
	abM.B[N-1] = (r - l) * p1l * p1r / det
	if !(abM.B[N-1] > 0) {
		err = fmt.Errorf("Lobatto modification gives b_%d = %v for [%v, %v]: %w",
			N-1, abM.B[N-1], l, r, types.ErrNumericalFailure)
		return
	}
	return solveRule(abM, N, newRuleConfig(opts))
}

func checkRuleInput(ab types.RecurrenceTable, N int, name string) (err error) {
	if N < 1 {
		return fmt.Errorf("%s rule with %d nodes: %w", name, N, types.ErrInvalidParameter)
	}
	if ab.Len() < N {
		return fmt.Errorf("%s rule with %d nodes from %d recurrence pairs: %w",
			name, N, ab.Len(), types.ErrInsufficientCoefficients)
	}
	if err = ab.Validate(); err != nil {
		return fmt.Errorf("%s rule: %w", name, err)
	}
	return
}

// rescale keeps a pair of consecutive recurrence values away from overflow and
// underflow without changing their ratio.
func rescale(p0, p1 float64) (float64, float64) {
	const big, small = 1.e150, 1.e-150
	s := math.Abs(p1)
	if s > big || (s < small && s > 0) {
		return p0 / s, p1 / s
	}
	return p0, p1
}

func solveRule(ab types.RecurrenceTable, N int, rc *ruleConfig) (qr types.QuadratureRule, err error) {
	var (
		b0   = ab.B[0]
		x, z []float64
	)
	d, e := jacobiMatrixTerms(ab, N)
	switch rc.solver {
	case DenseEigen:
		if x, z, err = tridiagDense(d, e); err != nil {
			return
		}
	default:
		if z, err = tridiagQL(d, e, rc.maxIter); err != nil {
			return
		}
		x = d
	}
	inds := make([]int, N)
	floats.Argsort(x, inds)
	w := make([]float64, N)
	for i, ind := range inds {
		w[i] = b0 * z[ind] * z[ind]
	}
	qr = types.QuadratureRule{X: x, W: w}
	if err = checkRule(qr, b0); err != nil {
		return types.QuadratureRule{}, err
	}
	if rc.residualTol > 0 {
		if err = checkResidual(ab, N, qr, rc.residualTol); err != nil {
			return types.QuadratureRule{}, err
		}
	}
	return
}

// checkRule enforces the rule post-conditions: finite strictly increasing
// nodes, finite positive weights, weights summing to b_0.
func checkRule(qr types.QuadratureRule, b0 float64) (err error) {
	for i, x := range qr.X {
		w := qr.W[i]
		if math.IsNaN(x) || math.IsInf(x, 0) || math.IsNaN(w) || math.IsInf(w, 0) {
			return fmt.Errorf("non-finite node/weight (%v, %v) at %d: %w",
				x, w, i, types.ErrNumericalFailure)
		}
		if w == 0 {
			return fmt.Errorf("weight at node %v underflowed to zero, below the float64 range: %w",
				x, types.ErrNumericalFailure)
		}
		if !(w > 0) {
			return fmt.Errorf("non-positive weight %v at node %v: %w",
				w, x, types.ErrNumericalFailure)
		}
		if i > 0 && !(x > qr.X[i-1]) {
			return fmt.Errorf("nodes %d and %d not strictly increasing (%v, %v): %w",
				i-1, i, qr.X[i-1], x, types.ErrNumericalFailure)
		}
	}
	if sum := floats.Sum(qr.W); math.Abs(sum-b0) > SumTolerance*b0 {
		return fmt.Errorf("weights sum to %v, total mass is %v: %w",
			sum, b0, types.ErrNumericalFailure)
	}
	return
}

// checkResidual verifies each node is an eigenvalue of the Jacobi matrix. The
// eigenvector for node x is (P_0(x), ..., P_{N-1}(x)) normalized.
func checkResidual(ab types.RecurrenceTable, N int, qr types.QuadratureRule, tol float64) (err error) {
	J, err := JacobiMatrix(ab, N)
	if err != nil {
		return
	}
	et, err := Evaluate(qr.X, degreeRange(N), 0, ab)
	if err != nil {
		return
	}
	var (
		v   = mat.NewVecDense(N, nil)
		res = mat.NewVecDense(N, nil)
	)
	for i, x := range qr.X {
		mat.Row(v.RawVector().Data, i, et.Values[0])
		v.ScaleVec(1/mat.Norm(v, 2), v)
		res.MulVec(J, v)
		res.AddScaledVec(res, -x, v)
		if r := mat.Norm(res, 2); r > tol*math.Max(1, math.Abs(x)) {
			return fmt.Errorf("eigenpair residual %v at node %v exceeds %v: %w",
				r, x, tol, types.ErrNumericalFailure)
		}
	}
	return
}
