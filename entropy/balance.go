package entropy

import (
	"fmt"

	"github.com/smaeyama/test-fig-stdout/table"
)

// Balance is a derivative-augmented entropy-balance table: the 21 history
// columns plus six estimated time derivatives, 27 columns in all. Rows keep
// their input order and count.
type Balance struct {
	source *table.Table
	deriv  [][]table.Cell
}

// Augment estimates d/dt for the six balance quantities of a raw history
// table. The table must have exactly NumInputCols columns; any row count is
// accepted, with tables shorter than five rows producing only Undefined
// derivative cells.
func Augment(tbl *table.Table, est Estimator) (*Balance, error) {
	if tbl.NumCols() != NumInputCols {
		return nil, fmt.Errorf("entropy: history table has %d columns, want %d", tbl.NumCols(), NumInputCols)
	}
	t := tbl.Col(ColT)
	deriv := make([][]table.Cell, len(derivSources))
	for k, src := range derivSources {
		deriv[k] = est.Derivative(t, tbl.Col(src.col))
	}
	return &Balance{source: tbl, deriv: deriv}, nil
}

func (b *Balance) NumRows() int {
	return b.source.NumRows()
}

func (b *Balance) NumCols() int {
	return NumCols
}

// Time returns the time column.
func (b *Balance) Time() []float64 {
	return b.source.Col(ColT)
}

// Deriv returns the k-th derivative column in augmented order.
func (b *Balance) Deriv(k int) []table.Cell {
	return b.deriv[k]
}

// DerivName returns the serialized name of the k-th derivative column.
func DerivName(k int) string {
	return derivSources[k].name
}

// Source returns the unmodified input table.
func (b *Balance) Source() *table.Table {
	return b.source
}

// Process reads a raw bln history file, augments it with the six time
// derivatives and writes the balance artifact next to the other per-rank
// tables.
func Process(blnPath, entPath string, est Estimator) error {
	tbl, err := table.ReadFile(blnPath)
	if err != nil {
		return err
	}
	bal, err := Augment(tbl, est)
	if err != nil {
		return fmt.Errorf("%s: %w", blnPath, err)
	}
	if err := bal.WriteFile(entPath); err != nil {
		return err
	}
	return nil
}
