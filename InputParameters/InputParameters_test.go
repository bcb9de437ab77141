package InputParameters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/gopoly/families"
)

func TestInputParameters(t *testing.T) {
	ip := NewInputParameters1D()
	require.NoError(t, ip.Validate())
	data := []byte(`
########################################
Title: "Chebyshev test"
Family: jacobi
Alpha: -0.5
Beta: -0.5
Nodes: 12
K: 4
DerivativeOrder: 1
Precision: 10
########################################
`)
	require.NoError(t, ip.Parse(data))
	assert.Equal(t, "Chebyshev test", ip.Title)
	assert.Equal(t, 12, ip.N)
	assert.Equal(t, 4, ip.K)
	assert.Equal(t, 1, ip.DerivativeOrder)
	assert.Equal(t, "gauss", ip.RuleType) // default retained
	require.NoError(t, ip.Validate())
	f, err := ip.NewFamily()
	require.NoError(t, err)
	assert.Equal(t, families.Jacobi{Alpha: -0.5, Beta: -0.5}, f)

	ip.RuleType = "kronrod"
	assert.Error(t, ip.Validate())
	ip.RuleType = "radau"
	ip.Precision = 0
	assert.Error(t, ip.Validate())
	ip.Precision = 16
	ip.K = 0
	assert.Error(t, ip.Validate())
}

func TestInputParametersNodeCount(t *testing.T) {
	ip := NewInputParameters1D()
	require.NoError(t, ip.Parse([]byte("Nodes: 7\n")))
	assert.Equal(t, 7, ip.N)
	assert.Equal(t, 15, ip.K)
	assert.NoError(t, ip.Validate())
}
