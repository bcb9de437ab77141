package families

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mathext"

	"github.com/notargets/gopoly/types"
)

// Jacobi is the family orthogonal under (1-x)^Alpha (1+x)^Beta on [-1,1].
type Jacobi struct {
	Alpha, Beta float64
}

func (j Jacobi) Name() string {
	return fmt.Sprintf("Jacobi(alpha=%g, beta=%g)", j.Alpha, j.Beta)
}

func (j Jacobi) Recurrence(N int) (ab types.RecurrenceTable, err error) {
	if err = checkN("Jacobi", N); err != nil {
		return
	}
	// Written as !(x > -1) to also reject NaN
	if !(j.Alpha > -1) || !(j.Beta > -1) {
		err = fmt.Errorf("Jacobi parameters must exceed -1, got alpha=%v beta=%v: %w",
			j.Alpha, j.Beta, types.ErrInvalidParameter)
		return
	}
	var (
		alpha, beta = j.Alpha, j.Beta
		ab2         = alpha + beta
		a2b2        = beta*beta - alpha*alpha
	)
	ab = types.NewRecurrenceTable(N)
	ab.A[0] = (beta - alpha) / (ab2 + 2)
	ab.B[0] = JacobiMass(alpha, beta)
	for n := 1; n < N; n++ {
		fn := float64(n)
		h := 2*fn + ab2
		ab.A[n] = a2b2 / (h * (h + 2))
		if n == 1 {
			// h-1 = alpha+beta+1 may vanish, the n=1 form has the factor cancelled
			ab.B[1] = 4 * (alpha + 1) * (beta + 1) / ((ab2 + 2) * (ab2 + 2) * (ab2 + 3))
			continue
		}
		// Product of ratios that stay bounded as n grows
		ab.B[n] = (2 * fn / h) * (2 * (fn + ab2) / h) *
			((fn + alpha) / (h + 1)) * ((fn + beta) / (h - 1))
	}
	return
}

// JacobiMass is the integral of (1-x)^alpha (1+x)^beta over [-1,1],
// 2^(alpha+beta+1) B(alpha+1, beta+1), evaluated in the log domain.
func JacobiMass(alpha, beta float64) float64 {
	return math.Exp((alpha+beta+1)*math.Ln2 + mathext.Lbeta(alpha+1, beta+1))
}

// Legendre is Jacobi with alpha = beta = 0, the uniform weight on [-1,1].
type Legendre struct{}

func (Legendre) Name() string { return "Legendre" }

func (Legendre) Recurrence(N int) (ab types.RecurrenceTable, err error) {
	return Jacobi{}.Recurrence(N)
}

// Chebyshev is the first kind family, Jacobi with alpha = beta = -1/2.
type Chebyshev struct{}

func (Chebyshev) Name() string { return "Chebyshev" }

func (Chebyshev) Recurrence(N int) (ab types.RecurrenceTable, err error) {
	return Jacobi{Alpha: -0.5, Beta: -0.5}.Recurrence(N)
}
