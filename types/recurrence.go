package types

import (
	"fmt"
	"math"
)

// RecurrenceTable holds the three-term recurrence pairs (a_n, b_n), n = 0..N-1,
// of a monic orthogonal polynomial family:
//
//	pi_{n+1}(x) = (x - a_n) pi_n(x) - b_n pi_{n-1}(x)
//
// A[n] is the Jacobi matrix diagonal, B[n] the squared off-diagonal. B[0] is the
// total mass of the weight function.
type RecurrenceTable struct {
	A, B []float64
}

func NewRecurrenceTable(N int) (ab RecurrenceTable) {
	ab = RecurrenceTable{
		A: make([]float64, N),
		B: make([]float64, N),
	}
	return
}

func (ab RecurrenceTable) Len() int { return len(ab.A) }

// Mass is the integral of the weight function over its support.
func (ab RecurrenceTable) Mass() float64 {
	if len(ab.B) == 0 {
		return 0
	}
	return ab.B[0]
}

// Validate checks the structural invariants: at least one pair, matching
// lengths, finite entries, b_n >= 0 and b_0 > 0.
func (ab RecurrenceTable) Validate() (err error) {
	if len(ab.A) == 0 {
		return fmt.Errorf("empty recurrence table: %w", ErrInvalidParameter)
	}
	if len(ab.A) != len(ab.B) {
		return fmt.Errorf("recurrence table has %d diagonal and %d off-diagonal terms: %w",
			len(ab.A), len(ab.B), ErrInvalidParameter)
	}
	for n := range ab.A {
		a, b := ab.A[n], ab.B[n]
		if math.IsNaN(a) || math.IsInf(a, 0) || math.IsNaN(b) || math.IsInf(b, 0) {
			return fmt.Errorf("non-finite recurrence pair at n=%d (%v, %v): %w",
				n, a, b, ErrInvalidParameter)
		}
		if b < 0 {
			return fmt.Errorf("negative b_%d = %v: %w", n, b, ErrInvalidParameter)
		}
	}
	if ab.B[0] == 0 {
		return fmt.Errorf("zero total mass b_0: %w", ErrInvalidParameter)
	}
	return
}

// Truncate returns a copy holding the first N pairs.
func (ab RecurrenceTable) Truncate(N int) (abT RecurrenceTable, err error) {
	if N < 1 {
		err = fmt.Errorf("truncation to %d pairs: %w", N, ErrInvalidParameter)
		return
	}
	if N > ab.Len() {
		err = fmt.Errorf("truncation to %d pairs of a %d pair table: %w",
			N, ab.Len(), ErrInsufficientCoefficients)
		return
	}
	abT = NewRecurrenceTable(N)
	copy(abT.A, ab.A[:N])
	copy(abT.B, ab.B[:N])
	return
}

// Copy returns a deep copy, so the caller may modify entries without touching
// a table shared with other consumers.
func (ab RecurrenceTable) Copy() (abC RecurrenceTable) {
	abC = NewRecurrenceTable(ab.Len())
	copy(abC.A, ab.A)
	copy(abC.B, ab.B)
	return
}
