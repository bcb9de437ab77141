package opoly1d

import (
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/gopoly/families"
	"github.com/notargets/gopoly/types"
)

func TestBasis(t *testing.T) {
	b, err := NewBasis(families.Legendre{}, 16)
	require.NoError(t, err)
	assert.Equal(t, 16, b.Capacity())

	{ // Cached table is not exposed for mutation
		ab := b.Recurrence()
		ab.B[0] = 100
		assert.Equal(t, 2., b.Recurrence().Mass())
	}
	{ // A cubic has no components beyond degree 3
		f := func(x float64) float64 { return x*x*x - 0.5*x + 2 }
		coeffs, err := b.Project(f, 6, 8)
		require.NoError(t, err)
		require.Len(t, coeffs, 6)
		// Constant term: integral of f times P_0 = 4/sqrt(2)
		assert.InDelta(t, 4/math.Sqrt(2), coeffs[0], 1.e-13)
		assert.InDelta(t, 0., coeffs[2], 1.e-13)
		assert.InDelta(t, 0., coeffs[4], 1.e-13)
		assert.InDelta(t, 0., coeffs[5], 1.e-13)
		x := []float64{-0.8, -0.25, 0.1, 0.9}
		fx, err := b.Synthesize(coeffs, x)
		require.NoError(t, err)
		for i, xi := range x {
			assert.InDelta(t, f(xi), fx[i], 1.e-13)
		}
	}
	{ // Concurrent use shares no state
		var wg sync.WaitGroup
		for n := 1; n <= 16; n++ {
			wg.Add(1)
			go func(n int) {
				defer wg.Done()
				qr, err := b.GaussRule(n)
				assert.NoError(t, err)
				et, err := b.Eval(qr.X, degreeRange(n), 1)
				assert.NoError(t, err)
				assert.Equal(t, n, len(et.Points))
			}(n)
		}
		wg.Wait()
	}
	_, err = b.GaussRule(17)
	assert.True(t, errors.Is(err, types.ErrInsufficientCoefficients))
	_, err = b.Project(math.Sin, 5, 4)
	assert.True(t, errors.Is(err, types.ErrInvalidParameter))
	_, err = NewBasis(families.Jacobi{Alpha: -2}, 4)
	assert.True(t, errors.Is(err, types.ErrInvalidParameter))
}
