package table

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Table is a rectangular block of float64 values with a fixed column count.
// It is the in-memory form of the whitespace-separated history files the
// solver writes.
type Table struct {
	width int
	rows  [][]float64
}

func New(width int) *Table {
	return &Table{width: width}
}

func (t *Table) NumRows() int {
	return len(t.rows)
}

func (t *Table) NumCols() int {
	return t.width
}

func (t *Table) Append(row []float64) error {
	if len(row) != t.width {
		return fmt.Errorf("table: row has %d values, want %d", len(row), t.width)
	}
	owned := make([]float64, len(row))
	copy(owned, row)
	t.rows = append(t.rows, owned)
	return nil
}

func (t *Table) At(i, j int) float64 {
	return t.rows[i][j]
}

// Row returns the i-th row without copying. Callers must not modify it.
func (t *Table) Row(i int) []float64 {
	return t.rows[i]
}

// Col copies the j-th column into a fresh slice.
func (t *Table) Col(j int) []float64 {
	out := make([]float64, len(t.rows))
	for i, row := range t.rows {
		out[i] = row[j]
	}
	return out
}

// Read parses whitespace-separated numeric text. Blank lines and lines whose
// first non-space character is '#' are skipped. The first data line fixes the
// column count and every following line must match it. The tokens NaN, Inf
// and -Inf parse to the corresponding IEEE values.
func Read(r io.Reader) (*Table, error) {
	var tbl *Table
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineno := 0
	for sc.Scan() {
		lineno++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		row := make([]float64, len(fields))
		for j, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("table: line %d: bad value %q", lineno, f)
			}
			row[j] = v
		}
		if tbl == nil {
			tbl = New(len(row))
		}
		if err := tbl.Append(row); err != nil {
			return nil, fmt.Errorf("table: line %d: %w", lineno, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if tbl == nil {
		tbl = New(0)
	}
	return tbl, nil
}

func ReadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	tbl, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return tbl, nil
}
