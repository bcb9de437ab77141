package families

import (
	"errors"
	"math"
	"math/big"
	"testing"

	"github.com/ALTree/bigfloat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/gopoly/types"
)

// bigJacobiMass computes 2^(a+b+1) a! b! / (a+b+1)! in 200 bit precision for
// integer exponents.
func bigJacobiMass(a, b int) float64 {
	const prec = 200
	fact := func(n int) *big.Float {
		f := new(big.Float).SetPrec(prec).SetInt64(1)
		for i := 2; i <= n; i++ {
			f.Mul(f, new(big.Float).SetPrec(prec).SetInt64(int64(i)))
		}
		return f
	}
	two := new(big.Float).SetPrec(prec).SetInt64(2)
	exp := new(big.Float).SetPrec(prec).SetInt64(int64(a + b + 1))
	m := bigfloat.Pow(two, exp)
	m.Mul(m, fact(a))
	m.Mul(m, fact(b))
	m.Quo(m, fact(a+b+1))
	f, _ := m.Float64()
	return f
}

func TestJacobiRecurrence(t *testing.T) {
	{ // Length, non-negativity and closed form mass
		for _, a := range []int{0, 1, 2, 5} {
			for _, b := range []int{0, 1, 3} {
				for _, N := range []int{1, 2, 7, 100} {
					ab, err := Jacobi{Alpha: float64(a), Beta: float64(b)}.Recurrence(N)
					require.NoError(t, err)
					require.Equal(t, N, ab.Len())
					require.Equal(t, N, len(ab.B))
					for n := 0; n < N; n++ {
						assert.GreaterOrEqual(t, ab.B[n], 0.)
					}
					assert.InDelta(t, bigJacobiMass(a, b), ab.Mass(), 1.e-13*ab.Mass())
					assert.NoError(t, ab.Validate())
				}
			}
		}
	}
	{ // Legendre: a_n = 0, b_n = n^2/(4n^2-1)
		ab, err := Legendre{}.Recurrence(10)
		require.NoError(t, err)
		assert.InDelta(t, 2., ab.B[0], 1.e-15)
		for n := 1; n < 10; n++ {
			fn := float64(n)
			assert.InDelta(t, 0., ab.A[n], 1.e-15)
			assert.InDelta(t, fn*fn/(4*fn*fn-1), ab.B[n], 1.e-15)
		}
	}
	{ // Chebyshev: b_0 = pi, b_1 = 1/2, b_n = 1/4
		ab, err := Chebyshev{}.Recurrence(6)
		require.NoError(t, err)
		assert.InDelta(t, math.Pi, ab.B[0], 1.e-14)
		assert.InDelta(t, 0.5, ab.B[1], 1.e-15)
		for n := 2; n < 6; n++ {
			assert.InDelta(t, 0.25, ab.B[n], 1.e-15)
		}
	}
	{ // alpha+beta = -1 has a removable singularity at n=1
		ab, err := Jacobi{Alpha: -0.5, Beta: -0.5}.Recurrence(3)
		require.NoError(t, err)
		for n := 0; n < 3; n++ {
			assert.False(t, math.IsNaN(ab.B[n]) || math.IsInf(ab.B[n], 0))
		}
	}
	{ // Large N stays finite and tends to 1/4
		ab, err := Jacobi{Alpha: 3.5, Beta: 0.25}.Recurrence(5000)
		require.NoError(t, err)
		assert.InDelta(t, 0.25, ab.B[4999], 1.e-6)
		assert.InDelta(t, 0., ab.A[4999], 1.e-6)
	}
}

func TestJacobiLargeParameters(t *testing.T) {
	// |b_n - 1/4| decays like (alpha^2+beta^2)/(8 h^2) and |a_n| <= |beta^2-alpha^2|/h^2,
	// h = 2n+alpha+beta
	for _, p := range [][2]float64{{200, 0.1}, {0.1, 200}, {150, 120}} {
		alpha, beta := p[0], p[1]
		for _, N := range []int{1000, 5000} {
			ab, err := Jacobi{Alpha: alpha, Beta: beta}.Recurrence(N)
			require.NoError(t, err)
			require.NoError(t, ab.Validate())
			for n := 0; n < N; n++ {
				require.False(t, math.IsNaN(ab.A[n]) || math.IsInf(ab.A[n], 0), "a_%d", n)
				require.False(t, math.IsNaN(ab.B[n]) || math.IsInf(ab.B[n], 0), "b_%d", n)
				require.Greater(t, ab.B[n], 0., "b_%d", n)
			}
			for n := N / 2; n < N; n++ {
				h := 2*float64(n) + alpha + beta
				assert.InDelta(t, 0.25, ab.B[n], (alpha*alpha+beta*beta+1)/(4*h*h), "b_%d", n)
				assert.InDelta(t, 0., ab.A[n], math.Abs(beta*beta-alpha*alpha)/(h*h), "a_%d", n)
			}
			if N == 5000 {
				assert.InDelta(t, 0.25, ab.B[N-1], 1.e-4)
				assert.InDelta(t, 0., ab.A[N-1], 1.e-3)
			}
		}
	}
}

func TestJacobiInvalid(t *testing.T) {
	cases := []struct {
		name        string
		alpha, beta float64
		N           int
	}{
		{"N=0", 0, 0, 0},
		{"N<0", 0, 0, -3},
		{"alpha=-1", -1, 0, 5},
		{"beta<-1", 0, -1.5, 5},
		{"alpha NaN", math.NaN(), 0, 5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Jacobi{Alpha: tc.alpha, Beta: tc.beta}.Recurrence(tc.N)
			require.Error(t, err)
			assert.True(t, errors.Is(err, types.ErrInvalidParameter))
		})
	}
}

func TestHermiteLaguerre(t *testing.T) {
	{
		ab, err := Hermite{}.Recurrence(5)
		require.NoError(t, err)
		assert.InDelta(t, math.Sqrt(math.Pi), ab.B[0], 1.e-14)
		assert.Equal(t, []float64{0, 0, 0, 0, 0}, ab.A)
		assert.InDeltaSlice(t, []float64{0.5, 1, 1.5, 2}, ab.B[1:], 1.e-15)
	}
	{
		ab, err := Hermite{Rho: 1}.Recurrence(4)
		require.NoError(t, err)
		// Gamma(3/2) = sqrt(pi)/2
		assert.InDelta(t, math.Sqrt(math.Pi)/2, ab.B[0], 1.e-14)
		assert.InDeltaSlice(t, []float64{1.5, 1, 2.5}, ab.B[1:], 1.e-15)
	}
	{
		ab, err := Laguerre{Alpha: 2}.Recurrence(4)
		require.NoError(t, err)
		assert.InDelta(t, 2., ab.B[0], 1.e-14)
		assert.InDeltaSlice(t, []float64{3, 5, 7, 9}, ab.A, 1.e-15)
		assert.InDeltaSlice(t, []float64{3, 8, 15}, ab.B[1:], 1.e-15)
	}
	_, err := Hermite{Rho: -0.5}.Recurrence(3)
	assert.True(t, errors.Is(err, types.ErrInvalidParameter))
	_, err = Laguerre{Alpha: -2}.Recurrence(3)
	assert.True(t, errors.Is(err, types.ErrInvalidParameter))
}

func TestFamilyLookup(t *testing.T) {
	for name, id := range familyNames {
		fid, err := NewFamilyID(" " + name + " ")
		require.NoError(t, err)
		assert.Equal(t, id, fid)
		assert.Equal(t, name, fid.String())
	}
	_, err := NewFamilyID("zernike")
	assert.True(t, errors.Is(err, types.ErrInvalidParameter))

	f, err := NewFamilyByName("Jacobi", Params{Alpha: 1, Beta: 2})
	require.NoError(t, err)
	assert.Equal(t, Jacobi{Alpha: 1, Beta: 2}, f)

	ab1, err := Recurrence(JacobiFamily, 8, 1, 2)
	require.NoError(t, err)
	ab2, err := f.Recurrence(8)
	require.NoError(t, err)
	assert.Equal(t, ab2, ab1)

	ab3, err := Recurrence(LegendreFamily, 8)
	require.NoError(t, err)
	ab4, err := Recurrence(JacobiFamily, 8)
	require.NoError(t, err)
	assert.Equal(t, ab4, ab3)
}
