package entropy

import "github.com/smaeyama/test-fig-stdout/table"

// Estimator selects the five-point finite-difference variant used for the
// time derivatives.
type Estimator int

const (
	// NonUniform differentiates the degree-4 Lagrange interpolant through
	// each five-point neighborhood. It is exact for quartics on arbitrarily
	// spaced grids and is the default.
	NonUniform Estimator = iota
	// Uniform applies the classical fourth-order central stencil using the
	// single forward gap t[i+1]-t[i] as the step. This matches the legacy
	// artifacts bit for bit, including their bias on grids that are only
	// approximately uniform.
	Uniform
)

func (e Estimator) String() string {
	switch e {
	case Uniform:
		return "uniform"
	case NonUniform:
		return "nonuniform"
	}
	return "unknown"
}

// Derivative estimates dy/dt at every sample. The first two and last two
// rows have no five-point neighborhood and come back Undefined; with fewer
// than five samples every cell is Undefined. t and y must have equal length.
func (e Estimator) Derivative(t, y []float64) []table.Cell {
	if e == Uniform {
		return uniformDerivative(t, y)
	}
	return nonUniformDerivative(t, y)
}

func undefinedCells(n int) []table.Cell {
	cells := make([]table.Cell, n)
	for i := range cells {
		cells[i] = table.Undefined()
	}
	return cells
}

func uniformDerivative(t, y []float64) []table.Cell {
	n := len(t)
	dydt := undefinedCells(n)
	for i := 2; i <= n-3; i++ {
		h := t[i+1] - t[i]
		cef := 1.0 / (12.0 * h)
		dydt[i] = table.Computed(cef * (-y[i+2] + 8.0*y[i+1] - 8.0*y[i-1] + y[i-2]))
	}
	return dydt
}

// nonUniformDerivative evaluates d/dt of the Lagrange interpolant through
// (t[i-2]..t[i+2]) at t[i]. Every weight drops the factor containing the
// evaluation point itself; the center weight picks up one numerator term
// per remaining node.
func nonUniformDerivative(t, y []float64) []table.Cell {
	n := len(t)
	dydt := undefinedCells(n)
	for i := 2; i <= n-3; i++ {
		tm2 := t[i-2]
		tm1 := t[i-1]
		t0 := t[i]
		tp1 := t[i+1]
		tp2 := t[i+2]

		cm2 := (t0 - tm1) * (t0 - tp1) * (t0 - tp2) /
			((tm2 - tm1) * (tm2 - t0) * (tm2 - tp1) * (tm2 - tp2))
		cm1 := (t0 - tm2) * (t0 - tp1) * (t0 - tp2) /
			((tm1 - tm2) * (tm1 - t0) * (tm1 - tp1) * (tm1 - tp2))
		c0 := ((t0-tm1)*(t0-tp1)*(t0-tp2) +
			(t0-tm2)*(t0-tp1)*(t0-tp2) +
			(t0-tm2)*(t0-tm1)*(t0-tp2) +
			(t0-tm2)*(t0-tm1)*(t0-tp1)) /
			((t0 - tm2) * (t0 - tm1) * (t0 - tp1) * (t0 - tp2))
		cp1 := (t0 - tm2) * (t0 - tm1) * (t0 - tp2) /
			((tp1 - tm2) * (tp1 - tm1) * (tp1 - t0) * (tp1 - tp2))
		cp2 := (t0 - tm2) * (t0 - tm1) * (t0 - tp1) /
			((tp2 - tm2) * (tp2 - tm1) * (tp2 - t0) * (tp2 - tp1))

		dydt[i] = table.Computed(cm2*y[i-2] + cm1*y[i-1] + c0*y[i] + cp1*y[i+1] + cp2*y[i+2])
	}
	return dydt
}
