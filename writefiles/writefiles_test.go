package writefiles

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestWriteVector(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteVector(&buf, []float64{-0.9061798459386640, 0, 1.5}, 6))
	assert.Equal(t, "-0.90618\n0\n1.5\n", buf.String())
}

func TestWriteMatrix(t *testing.T) {
	var buf bytes.Buffer
	M := mat.NewDense(2, 3, []float64{1, 2.25, -3, 1. / 3, 0, 1e-20})
	require.NoError(t, WriteMatrix(&buf, M, 4))
	assert.Equal(t, "1 2.25 -3\n0.3333 0 1e-20\n", buf.String())
}

func TestWriteFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	fn, err := WriteVectorFile(dir, "x.txt", []float64{1, 2}, 16)
	require.NoError(t, err)
	data, err := os.ReadFile(fn)
	require.NoError(t, err)
	assert.Equal(t, "1\n2\n", string(data))

	fn, err = WriteMatrixFile(dir, "v.txt", mat.NewDense(1, 2, []float64{0.5, 0.25}), 16)
	require.NoError(t, err)
	data, err = os.ReadFile(fn)
	require.NoError(t, err)
	assert.Equal(t, "0.5 0.25\n", string(data))
}
