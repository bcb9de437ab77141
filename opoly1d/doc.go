// Package opoly1d turns three-term recurrence coefficients into Gauss-type
// quadrature rules and evaluates the associated orthonormal polynomials and
// their derivatives.
//
// Every function is a pure computation over its arguments. Nothing is cached
// between calls, so callers may run independent calls concurrently.
package opoly1d
