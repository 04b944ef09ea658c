package report

import (
	"fmt"
	"math"

	"gonum.org/v1/plot"

	"github.com/smaeyama/test-fig-stdout/table"
)

// Y axis labels for the eleven profiles of mtr.dat and mtf.dat.
var (
	mtrYLabels = []string{
		"B [B_ref]",
		"dB/dx [B_ref/L_ref]",
		"dB/dy [B_ref/L_ref]",
		"dB/dz [B_ref]",
		"g^xx",
		"g^xy",
		"g^xz [1/L_ref]",
		"g^yy",
		"g^yz [1/L_ref]",
		"g^zz [1/L_ref^2]",
		"Jacobian [L_ref]",
	}
	mtfYLabels = []string{
		"B [B_ref]",
		"dB/dρ [B_ref/L_ref]",
		"dB/dθ [B_ref/L_ref]",
		"dB/dζ [B_ref]",
		"g^ρρ",
		"g^ρθ",
		"g^ρζ [1/L_ref]",
		"g^θθ",
		"g^θζ [1/L_ref]",
		"g^ζζ [1/L_ref^2]",
		"Jacobian_ρθζ [L_ref]",
	}
)

// MetricPage plots the field-aligned metric profiles of mtr.dat on a
// 6x2 grid, one panel per quantity with the last tile left blank.
func MetricPage(datPath, outPath string, st Style) error {
	return metricPage(datPath, outPath, "Field-aligned coordinate z", mtrYLabels, st)
}

// FluxTubeMetricPage plots mtf.dat against the poloidal angle.
func FluxTubeMetricPage(datPath, outPath string, st Style) error {
	return metricPage(datPath, outPath, "Poloidal angle θ", mtfYLabels, st)
}

func metricPage(datPath, outPath, xlabel string, ylabels []string, st Style) error {
	tbl, err := table.ReadFile(datPath)
	if err != nil {
		return err
	}
	if tbl.NumRows() == 0 {
		return fmt.Errorf("%s: no rows", datPath)
	}
	if tbl.NumCols() < len(ylabels)+2 {
		return fmt.Errorf("%s: need %d columns, have %d", datPath, len(ylabels)+2, tbl.NumCols())
	}
	z := tbl.Col(0)

	const rows, cols = 6, 2
	grid := make([][]*plot.Plot, rows)
	idx := 0
	for r := 0; r < rows; r++ {
		grid[r] = make([]*plot.Plot, cols)
		for c := 0; c < cols; c++ {
			if idx >= len(ylabels) {
				continue
			}
			p := st.newPlot(xlabel, ylabels[idx])
			if err := st.addLinePoints(p, xyPoints(z, tbl.Col(idx+2)), points(st.LineWidthPt), 0); err != nil {
				return err
			}
			p.X.Min, p.X.Max = -math.Pi, math.Pi
			p.X.Tick.Marker = unitTicks(-3, 3)
			grid[r][c] = p
			idx++
		}
	}
	return writePage(outPath, st, grid)
}
