package opoly1d

type EigenSolver uint8

const (
	// QLImplicit is the O(N^2) implicit QL iteration tracking first eigenvector
	// components only.
	QLImplicit EigenSolver = iota
	// DenseEigen hands the Jacobi matrix to gonum's symmetric eigensolver.
	DenseEigen
)

func (es EigenSolver) String() string {
	switch es {
	case QLImplicit:
		return "QLImplicit"
	case DenseEigen:
		return "DenseEigen"
	}
	return "Unknown"
}

const (
	DefaultMaxIterations = 60
	// SumTolerance bounds |sum(w) - b_0| / b_0 before a rule is rejected.
	SumTolerance = 1.e-8
)

type ruleConfig struct {
	solver      EigenSolver
	maxIter     int
	residualTol float64 // <= 0 disables the eigenpair residual check
}

type Option func(*ruleConfig)

func WithEigenSolver(es EigenSolver) Option {
	return func(rc *ruleConfig) { rc.solver = es }
}

// WithMaxIterations sets the number of QL sweeps allowed per eigenvalue.
func WithMaxIterations(n int) Option {
	return func(rc *ruleConfig) { rc.maxIter = n }
}

// WithResidualCheck verifies |J v - x v| <= tol * max(1, |x|) for each node x,
// with v built from the orthonormal polynomials at x.
func WithResidualCheck(tol float64) Option {
	return func(rc *ruleConfig) { rc.residualTol = tol }
}

func newRuleConfig(opts []Option) (rc *ruleConfig) {
	rc = &ruleConfig{
		solver:  QLImplicit,
		maxIter: DefaultMaxIterations,
	}
	for _, opt := range opts {
		opt(rc)
	}
	if rc.maxIter < 1 {
		rc.maxIter = DefaultMaxIterations
	}
	return
}
