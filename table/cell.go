package table

import "math"

// Cell is a derivative-column value. It is either a computed float or
// Undefined, the sentinel for rows without a full five-point neighborhood.
// Undefined is distinct from every numeric value, including zero, and
// serializes as the literal token NaN.
type Cell struct {
	value   float64
	defined bool
}

func Computed(v float64) Cell {
	return Cell{value: v, defined: true}
}

func Undefined() Cell {
	return Cell{}
}

func (c Cell) Defined() bool {
	return c.defined
}

// Value returns the computed value, or NaN for an Undefined cell.
func (c Cell) Value() float64 {
	if !c.defined {
		return math.NaN()
	}
	return c.value
}
