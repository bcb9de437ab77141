package families

import (
	"fmt"
	"math"

	"github.com/notargets/gopoly/types"
)

// Laguerre is the family with weight x^Alpha exp(-x) on [0, inf).
type Laguerre struct {
	Alpha float64
}

func (l Laguerre) Name() string { return fmt.Sprintf("Laguerre(alpha=%g)", l.Alpha) }

func (l Laguerre) Recurrence(N int) (ab types.RecurrenceTable, err error) {
	if err = checkN("Laguerre", N); err != nil {
		return
	}
	if !(l.Alpha > -1) {
		err = fmt.Errorf("Laguerre parameter must exceed -1, got alpha=%v: %w",
			l.Alpha, types.ErrInvalidParameter)
		return
	}
	ab = types.NewRecurrenceTable(N)
	lg, _ := math.Lgamma(l.Alpha + 1)
	ab.B[0] = math.Exp(lg)
	for n := 0; n < N; n++ {
		fn := float64(n)
		ab.A[n] = 2*fn + l.Alpha + 1
		if n > 0 {
			ab.B[n] = fn * (fn + l.Alpha)
		}
	}
	return
}
