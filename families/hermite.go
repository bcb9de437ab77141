package families

import (
	"fmt"
	"math"

	"github.com/notargets/gopoly/types"
)

// Hermite is the generalized Hermite family with weight |x|^(2 Rho) exp(-x^2)
// on the real line. Rho = 0 gives the physicists' Hermite polynomials.
type Hermite struct {
	Rho float64
}

func (h Hermite) Name() string { return fmt.Sprintf("Hermite(rho=%g)", h.Rho) }

func (h Hermite) Recurrence(N int) (ab types.RecurrenceTable, err error) {
	if err = checkN("Hermite", N); err != nil {
		return
	}
	if !(h.Rho > -0.5) {
		err = fmt.Errorf("Hermite parameter must exceed -1/2, got rho=%v: %w",
			h.Rho, types.ErrInvalidParameter)
		return
	}
	ab = types.NewRecurrenceTable(N)
	lg, _ := math.Lgamma(h.Rho + 0.5)
	ab.B[0] = math.Exp(lg)
	for n := 1; n < N; n++ {
		ab.B[n] = float64(n) / 2
		if n%2 == 1 {
			ab.B[n] += h.Rho
		}
	}
	return
}
