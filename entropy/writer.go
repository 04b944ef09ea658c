package entropy

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/smaeyama/test-fig-stdout/table"
)

// timeHeader is the first header field: a '#' marking the line as a
// comment, then "time" right-justified into the remaining width.
const timeHeader = "#            time"

// Write serializes the balance in the fixed-width artifact layout: one
// header line of right-justified names, then one line per row with time,
// the six derivatives and the fourteen trailing history columns. Undefined
// derivative cells are written as the NaN token, never as a number.
func (b *Balance) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)

	bw.WriteString(timeHeader)
	for i := 1; i < OutputSchema.Len(); i++ {
		bw.WriteString(table.FormatName(OutputSchema.Name(i)))
	}
	bw.WriteByte('\n')

	for i := 0; i < b.source.NumRows(); i++ {
		row := b.source.Row(i)
		bw.WriteString(table.FormatValue(row[ColT]))
		for k := range b.deriv {
			bw.WriteString(table.FormatCell(b.deriv[k][i]))
		}
		for _, c := range trailingCols {
			bw.WriteString(table.FormatValue(row[c]))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

func (b *Balance) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := b.Write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// BalanceFile is a balance artifact read back from disk: the 21 serialized
// columns with the derivative cells kept tagged.
type BalanceFile struct {
	Time     []float64
	Deriv    [][]table.Cell
	Trailing *table.Table
}

// ReadBalance parses a serialized balance artifact. The NaN token in a
// derivative column comes back as an Undefined cell, distinct from every
// numeric value.
func ReadBalance(r io.Reader) (*BalanceFile, error) {
	tbl, err := table.Read(r)
	if err != nil {
		return nil, err
	}
	if tbl.NumRows() > 0 && tbl.NumCols() != OutputSchema.Len() {
		return nil, fmt.Errorf("entropy: balance artifact has %d columns, want %d", tbl.NumCols(), OutputSchema.Len())
	}

	n := tbl.NumRows()
	bf := &BalanceFile{
		Time:     make([]float64, n),
		Deriv:    make([][]table.Cell, NumDerivCols),
		Trailing: table.New(len(trailingCols)),
	}
	for k := range bf.Deriv {
		bf.Deriv[k] = make([]table.Cell, n)
	}
	for i := 0; i < n; i++ {
		row := tbl.Row(i)
		bf.Time[i] = row[0]
		for k := 0; k < NumDerivCols; k++ {
			v := row[1+k]
			if math.IsNaN(v) {
				bf.Deriv[k][i] = table.Undefined()
			} else {
				bf.Deriv[k][i] = table.Computed(v)
			}
		}
		if err := bf.Trailing.Append(row[1+NumDerivCols:]); err != nil {
			return nil, err
		}
	}
	return bf, nil
}

func ReadBalanceFile(path string) (*BalanceFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	bf, err := ReadBalance(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return bf, nil
}
