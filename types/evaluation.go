package types

import "gonum.org/v1/gonum/mat"

// EvaluationTable stores orthonormal polynomial values for derivative orders
// 0..Order(). Values[d] has one row per point and one column per requested degree,
// in the order the degrees were requested.
type EvaluationTable struct {
	Points  []float64
	Degrees []int
	Values  []*mat.Dense
}

// Order is the highest derivative order held by the table.
func (et EvaluationTable) Order() int { return len(et.Values) - 1 }

// At returns the d-th derivative of the polynomial of degree Degrees[j] at Points[i].
func (et EvaluationTable) At(d, i, j int) float64 {
	return et.Values[d].At(i, j)
}

// Column returns the values of one requested degree over all points.
func (et EvaluationTable) Column(d, j int) (col []float64) {
	col = make([]float64, len(et.Points))
	mat.Col(col, j, et.Values[d])
	return
}

// Raw copies the table into nested slices of shape [D+1][point][degree].
func (et EvaluationTable) Raw() (V [][][]float64) {
	V = make([][][]float64, len(et.Values))
	for d, M := range et.Values {
		V[d] = make([][]float64, len(et.Points))
		for i := range et.Points {
			V[d][i] = mat.Row(nil, i, M)
		}
	}
	return
}
