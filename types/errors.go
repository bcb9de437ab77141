package types

import "errors"

// Every engine failure is one of these three kinds. Callers match with errors.Is;
// the engine wraps them with context using fmt.Errorf("...: %w", ErrX).
var (
	// ErrInvalidParameter is returned for out-of-domain family parameters,
	// degree counts, degree sets or derivative orders. Checked at entry.
	ErrInvalidParameter = errors.New("gopoly: invalid parameter")

	// ErrInsufficientCoefficients is returned when a consumer needs more
	// recurrence pairs than the supplied RecurrenceTable holds.
	ErrInsufficientCoefficients = errors.New("gopoly: insufficient recurrence coefficients")

	// ErrNumericalFailure covers eigensolver non-convergence, failed
	// post-conditions on nodes/weights and overflow in a recurrence.
	ErrNumericalFailure = errors.New("gopoly: numerical failure")
)
