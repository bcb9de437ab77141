// Package writefiles writes engine results as plain numeric text: vectors one
// value per line, matrices one row per line with space separated columns.
package writefiles

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"gonum.org/v1/gonum/mat"
)

func formatFloat(v float64, precision int) string {
	return strconv.FormatFloat(v, 'g', precision, 64)
}

func WriteVector(w io.Writer, v []float64, precision int) (err error) {
	bw := bufio.NewWriter(w)
	for _, val := range v {
		if _, err = bw.WriteString(formatFloat(val, precision) + "\n"); err != nil {
			return
		}
	}
	return bw.Flush()
}

func WriteMatrix(w io.Writer, M mat.Matrix, precision int) (err error) {
	var (
		bw     = bufio.NewWriter(w)
		nr, nc = M.Dims()
	)
	for i := 0; i < nr; i++ {
		for j := 0; j < nc; j++ {
			if j > 0 {
				if err = bw.WriteByte(' '); err != nil {
					return
				}
			}
			if _, err = bw.WriteString(formatFloat(M.At(i, j), precision)); err != nil {
				return
			}
		}
		if err = bw.WriteByte('\n'); err != nil {
			return
		}
	}
	return bw.Flush()
}

// WriteVectorFile creates (or truncates) dir/name and writes v into it.
func WriteVectorFile(dir, name string, v []float64, precision int) (fileName string, err error) {
	return writeFile(dir, name, func(w io.Writer) error { return WriteVector(w, v, precision) })
}

func WriteMatrixFile(dir, name string, M mat.Matrix, precision int) (fileName string, err error) {
	return writeFile(dir, name, func(w io.Writer) error { return WriteMatrix(w, M, precision) })
}

func writeFile(dir, name string, write func(w io.Writer) error) (fileName string, err error) {
	var f *os.File
	if err = os.MkdirAll(dir, 0o755); err != nil {
		return
	}
	fileName = filepath.Join(dir, name)
	if f, err = os.Create(fileName); err != nil {
		return
	}
	if err = write(f); err != nil {
		f.Close()
		return fileName, fmt.Errorf("writing %s: %w", fileName, err)
	}
	err = f.Close()
	return
}
