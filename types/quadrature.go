package types

// QuadratureRule is a set of nodes X (strictly increasing) and positive weights W
// with sum(W) equal to the total mass of the measure.
type QuadratureRule struct {
	X, W []float64
}

func (qr QuadratureRule) Len() int { return len(qr.X) }

// Integrate applies the rule to f: sum_i W_i f(X_i)
func (qr QuadratureRule) Integrate(f func(x float64) float64) (sum float64) {
	for i, x := range qr.X {
		sum += qr.W[i] * f(x)
	}
	return
}
