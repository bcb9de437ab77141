package readfiles

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/notargets/gopoly/types"
)

// ReadRecurrenceFile reads a recurrence table written by "gopoly coeffs", or any
// text file in the same layout.
func ReadRecurrenceFile(filename string) (ab types.RecurrenceTable, err error) {
	var file *os.File
	if file, err = os.Open(filename); err != nil {
		return ab, fmt.Errorf("unable to open recurrence file %s: %w", filename, err)
	}
	defer file.Close()
	if ab, err = ReadRecurrence(bufio.NewReader(file)); err != nil {
		return ab, fmt.Errorf("recurrence file %s: %w", filename, err)
	}
	return
}

// ReadRecurrence parses one recurrence pair per line, either "a_n b_n" or
// "n a_n b_n" with n counting up from zero. Blank lines and lines starting with
// '#' are skipped. The table is validated before it is returned.
func ReadRecurrence(reader *bufio.Reader) (ab types.RecurrenceTable, err error) {
	var (
		line   string
		lineNo int
	)
	for {
		line, err = getLine(reader)
		if err == io.EOF {
			err = nil
			break
		}
		if err != nil {
			return
		}
		lineNo++
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		var a, b float64
		if a, b, err = parsePair(line, ab.Len()); err != nil {
			return types.RecurrenceTable{}, fmt.Errorf("line %d: %w", lineNo, err)
		}
		ab.A = append(ab.A, a)
		ab.B = append(ab.B, b)
	}
	if err = ab.Validate(); err != nil {
		return types.RecurrenceTable{}, err
	}
	return
}

func parsePair(line string, n int) (a, b float64, err error) {
	fields := strings.Fields(line)
	switch len(fields) {
	case 2:
	case 3:
		var idx int
		if idx, err = strconv.Atoi(fields[0]); err != nil || idx != n {
			return 0, 0, fmt.Errorf("expected index %d, got %q: %w", n, fields[0], types.ErrInvalidParameter)
		}
		fields = fields[1:]
	default:
		return 0, 0, fmt.Errorf("want 2 or 3 columns, got %d: %w", len(fields), types.ErrInvalidParameter)
	}
	if a, err = strconv.ParseFloat(fields[0], 64); err != nil {
		return 0, 0, fmt.Errorf("a_%d: %v: %w", n, err, types.ErrInvalidParameter)
	}
	if b, err = strconv.ParseFloat(fields[1], 64); err != nil {
		return 0, 0, fmt.Errorf("b_%d: %v: %w", n, err, types.ErrInvalidParameter)
	}
	return
}

// getLine returns the next line without its line ending. A last line without a
// newline is returned with a nil error, io.EOF follows it.
func getLine(reader *bufio.Reader) (line string, err error) {
	line, err = reader.ReadString('\n')
	if err == io.EOF && len(line) > 0 {
		err = nil
	}
	line = strings.TrimRight(line, "\r\n")
	return
}
