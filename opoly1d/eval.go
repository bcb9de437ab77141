package opoly1d

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/notargets/gopoly/types"
)

// evalPlan is the validated, point independent part of an evaluation.
type evalPlan struct {
	ab      types.RecurrenceTable
	D       int
	maxDeg  int
	sqb     []float64 // sqrt(b_n), n = 0..maxDeg
	columns [][]int   // output columns of each degree 0..maxDeg
}

func newEvalPlan(x []float64, degrees []int, D int, ab types.RecurrenceTable) (ep *evalPlan, err error) {
	if len(x) == 0 {
		return nil, fmt.Errorf("no evaluation points: %w", types.ErrInvalidParameter)
	}
	if len(degrees) == 0 {
		return nil, fmt.Errorf("no degrees requested: %w", types.ErrInvalidParameter)
	}
	if D < 0 {
		return nil, fmt.Errorf("derivative order %d: %w", D, types.ErrInvalidParameter)
	}
	maxDeg := 0
	for _, n := range degrees {
		if n < 0 {
			return nil, fmt.Errorf("negative degree %d requested: %w", n, types.ErrInvalidParameter)
		}
		maxDeg = max(maxDeg, n)
	}
	if ab.Len() < maxDeg+1 {
		return nil, fmt.Errorf("degree %d needs %d recurrence pairs, have %d: %w",
			maxDeg, maxDeg+1, ab.Len(), types.ErrInsufficientCoefficients)
	}
	if err = ab.Validate(); err != nil {
		return
	}
	ep = &evalPlan{
		ab:      ab,
		D:       D,
		maxDeg:  maxDeg,
		sqb:     make([]float64, maxDeg+1),
		columns: make([][]int, maxDeg+1),
	}
	for n := 0; n <= maxDeg; n++ {
		ep.sqb[n] = math.Sqrt(ab.B[n])
		if n > 0 && ep.sqb[n] == 0 {
			return nil, fmt.Errorf("b_%d = 0 leaves degree %d undefined: %w",
				n, n, types.ErrNumericalFailure)
		}
	}
	for j, n := range degrees {
		ep.columns[n] = append(ep.columns[n], j)
	}
	return
}

func (ep *evalPlan) newTable(x []float64, degrees []int) (et types.EvaluationTable) {
	et = types.EvaluationTable{
		Points:  make([]float64, len(x)),
		Degrees: make([]int, len(degrees)),
		Values:  make([]*mat.Dense, ep.D+1),
	}
	copy(et.Points, x)
	copy(et.Degrees, degrees)
	for d := range et.Values {
		et.Values[d] = mat.NewDense(len(x), len(degrees), nil)
	}
	return
}

// evalRows fills rows [iMin, iMax) of et. Rows are disjoint between callers,
// so concurrent calls on separate ranges share no mutable state.
func (ep *evalPlan) evalRows(et types.EvaluationTable, iMin, iMax int) (err error) {
	var (
		D       = ep.D
		A       = ep.ab.A
		sqb     = ep.sqb
		pm1     = make([]float64, D+1) // P_{n-1} and its derivatives
		p       = make([]float64, D+1) // P_n
		pp1     = make([]float64, D+1) // P_{n+1}
		store   func(i, n int)
		ptValue float64
	)
	store = func(i, n int) {
		for _, j := range ep.columns[n] {
			for d := 0; d <= D; d++ {
				et.Values[d].Set(i, j, p[d])
			}
		}
	}
	for i := iMin; i < iMax; i++ {
		ptValue = et.Points[i]
		for d := 0; d <= D; d++ {
			pm1[d], p[d] = 0, 0
		}
		p[0] = 1 / sqb[0]
		store(i, 0)
		for n := 0; n < ep.maxDeg; n++ {
			// sqrt(b_{n+1}) P^(d)_{n+1} = (x-a_n) P^(d)_n + d P^(d-1)_n - sqrt(b_n) P^(d)_{n-1}
			xa := ptValue - A[n]
			for d := 0; d <= D; d++ {
				v := xa*p[d] - sqb[n]*pm1[d]
				if d > 0 {
					v += float64(d) * p[d-1]
				}
				v /= sqb[n+1]
				if math.IsNaN(v) || math.IsInf(v, 0) {
					return fmt.Errorf("derivative %d of degree %d at x=%v overflows: %w",
						d, n+1, ptValue, types.ErrNumericalFailure)
				}
				pp1[d] = v
			}
			pm1, p, pp1 = p, pp1, pm1
			store(i, n+1)
		}
	}
	return
}

// Evaluate computes the orthonormal polynomials of ab and their derivatives up
// to order D at every point of x, for each degree in degrees. Degrees may be any
// non-negative set, in any order; only the requested ones are stored, column j
// of every table holding degrees[j].
func Evaluate(x []float64, degrees []int, D int, ab types.RecurrenceTable) (et types.EvaluationTable, err error) {
	var ep *evalPlan
	if ep, err = newEvalPlan(x, degrees, D, ab); err != nil {
		return
	}
	et = ep.newTable(x, degrees)
	if err = ep.evalRows(et, 0, len(x)); err != nil {
		return types.EvaluationTable{}, err
	}
	return
}

// Vandermonde returns V[i][n] = P_n(x_i), n = 0..N-1.
func Vandermonde(x []float64, N int, ab types.RecurrenceTable) (V *mat.Dense, err error) {
	et, err := Evaluate(x, degreeRange(N), 0, ab)
	if err != nil {
		return
	}
	return et.Values[0], nil
}

// GradVandermonde returns Vr[i][n] = P'_n(x_i), n = 0..N-1.
func GradVandermonde(x []float64, N int, ab types.RecurrenceTable) (Vr *mat.Dense, err error) {
	et, err := Evaluate(x, degreeRange(N), 1, ab)
	if err != nil {
		return
	}
	return et.Values[1], nil
}

func degreeRange(N int) (degrees []int) {
	if N < 1 {
		return nil
	}
	degrees = make([]int, N)
	for n := range degrees {
		degrees[n] = n
	}
	return
}
