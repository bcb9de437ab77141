package types

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestRecurrenceTable(t *testing.T) {
	ab := RecurrenceTable{
		A: []float64{0, 0.1, 0.2},
		B: []float64{2, 1. / 3, 0.25},
	}
	assert.Equal(t, 3, ab.Len())
	assert.Equal(t, 2., ab.Mass())
	assert.NoError(t, ab.Validate())
	assert.Equal(t, 0., RecurrenceTable{}.Mass())

	{
		abT, err := ab.Truncate(2)
		require.NoError(t, err)
		assert.Equal(t, []float64{0, 0.1}, abT.A)
		abT.A[0] = 5
		assert.Equal(t, 0., ab.A[0])
		_, err = ab.Truncate(4)
		assert.True(t, errors.Is(err, ErrInsufficientCoefficients))
		_, err = ab.Truncate(0)
		assert.True(t, errors.Is(err, ErrInvalidParameter))
	}
	{
		abC := ab.Copy()
		abC.B[1] = 7
		assert.Equal(t, 1./3, ab.B[1])
	}
	bad := []RecurrenceTable{
		{},
		{A: []float64{0, 0}, B: []float64{1}},
		{A: []float64{0, math.NaN()}, B: []float64{1, 1}},
		{A: []float64{0, 0}, B: []float64{1, math.Inf(1)}},
		{A: []float64{0, 0}, B: []float64{1, -0.5}},
		{A: []float64{0}, B: []float64{0}},
	}
	for i, b := range bad {
		assert.True(t, errors.Is(b.Validate(), ErrInvalidParameter), "case %d", i)
	}
}

func TestQuadratureRule(t *testing.T) {
	qr := QuadratureRule{
		X: []float64{-1 / math.Sqrt(3), 1 / math.Sqrt(3)},
		W: []float64{1, 1},
	}
	assert.Equal(t, 2, qr.Len())
	assert.InDelta(t, 2./3, qr.Integrate(func(x float64) float64 { return x * x }), 1.e-15)
}

func TestEvaluationTable(t *testing.T) {
	et := EvaluationTable{
		Points:  []float64{0, 1},
		Degrees: []int{0, 2, 5},
		Values: []*mat.Dense{
			mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6}),
			mat.NewDense(2, 3, []float64{7, 8, 9, 10, 11, 12}),
		},
	}
	assert.Equal(t, 1, et.Order())
	assert.Equal(t, 11., et.At(1, 1, 1))
	assert.Equal(t, []float64{3, 6}, et.Column(0, 2))
	assert.Equal(t, [][][]float64{
		{{1, 2, 3}, {4, 5, 6}},
		{{7, 8, 9}, {10, 11, 12}},
	}, et.Raw())
}
