package report

import (
	"fmt"
	"path/filepath"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"

	"github.com/smaeyama/test-fig-stdout/table"
)

// entropySeriesLabels name the nine balance curves in plot order.
var entropySeriesLabels = []string{
	"dS_s/dt",
	"R_sE",
	"R_sM",
	"T_s Γ_sE/L_ps",
	"T_s Γ_sM/L_ps",
	"Θ_sE/L_Ts",
	"Θ_sM/L_Ts",
	"D_s",
	"Error",
}

func sumCols(tbl *table.Table, a, b int) []float64 {
	out := make([]float64, tbl.NumRows())
	floats.AddTo(out, tbl.Col(a), tbl.Col(b))
	return out
}

// entropySeries assembles the nine balance curves of one rank artifact:
// entropy rates, field transfers, flux drives, dissipation and the closure
// error dS/dt - R_sE - R_sM - D_s - drives.
func entropySeries(path string) (t []float64, series [][]float64, err error) {
	tbl, err := table.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	if tbl.NumRows() == 0 {
		return nil, nil, fmt.Errorf("%s: no rows", path)
	}
	if tbl.NumCols() < 21 {
		return nil, nil, fmt.Errorf("%s: need 21 columns, have %d", path, tbl.NumCols())
	}

	dS := sumCols(tbl, 1, 2)
	rsE := sumCols(tbl, 7, 8)
	rsM := sumCols(tbl, 9, 10)
	ds := sumCols(tbl, 15, 16)

	closure := make([]float64, tbl.NumRows())
	copy(closure, dS)
	floats.Sub(closure, rsE)
	floats.Sub(closure, rsM)
	floats.Sub(closure, ds)
	for _, c := range []int{17, 18, 19, 20} {
		floats.Sub(closure, tbl.Col(c))
	}

	series = [][]float64{
		dS, rsE, rsM,
		tbl.Col(17), tbl.Col(18), tbl.Col(19), tbl.Col(20),
		ds, closure,
	}
	return tbl.Col(0), series, nil
}

// fluxSeries reads one flux history: the time column plus the Total and
// per-mode columns. The mode range clamps to what the file holds.
func fluxSeries(path string, ny int) (t []float64, cols [][]float64, err error) {
	tbl, err := table.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	if tbl.NumRows() == 0 {
		return nil, nil, fmt.Errorf("%s: no rows", path)
	}
	if tbl.NumCols() < 2 {
		return nil, nil, fmt.Errorf("%s: need 2 columns, have %d", path, tbl.NumCols())
	}
	hi := ny + 3
	if hi > tbl.NumCols() {
		hi = tbl.NumCols()
	}
	for c := 1; c < hi; c++ {
		cols = append(cols, tbl.Col(c))
	}
	return tbl.Col(0), cols, nil
}

// fluxPanel draws one Total-plus-modes flux panel.
func (st Style) fluxPanel(t []float64, cols [][]float64, title, ylabel string, legend bool) (*plot.Plot, error) {
	p := st.newPlot(timeAxisLabel, ylabel)
	p.Title.Text = title
	label := func(s string) string {
		if legend {
			return s
		}
		return ""
	}
	if err := addLine(p, xyPoints(t, cols[0]), points(st.TotalWidthPt), 0, label("Total")); err != nil {
		return nil, err
	}
	for i, col := range cols[1:] {
		pts := xyPoints(t, col)
		if err := addLine(p, pts, points(st.LineWidthPt), i+1, label(fmt.Sprintf("m_y=%d", i))); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// FluxPage draws one rank's entropy balance and its particle and energy
// fluxes on a 3x2 grid with the top-right tile left blank.
func FluxPage(dataDir, outPath string, rank, globalNy int, st Style) error {
	title := fmt.Sprintf("ranks = %d", rank)

	tEnt, entCols, err := entropySeries(filepath.Join(dataDir, fmt.Sprintf("ent.%d.dat", rank)))
	if err != nil {
		return err
	}
	entPanel := st.newPlot(timeAxisLabel, "Entropy variables [δ^2 n_ref T_ref v_ref/L_ref]")
	entPanel.Title.Text = title
	for i, col := range entCols {
		pts := xyPoints(tEnt, col)
		if err := addLine(entPanel, pts, points(st.LineWidthPt), i, entropySeriesLabels[i]); err != nil {
			return err
		}
	}

	type panelSpec struct {
		quantity string
		ylabel   string
		legend   bool
	}
	specs := []panelSpec{
		{"ges", "Particle flux by ExB flows Γ_sE [δ^2 n_ref v_ref]", false},
		{"gem", "Particle flux by magnetic flutters Γ_sM [δ^2 n_ref v_ref]", true},
		{"qes", "Energy flux by ExB flows Θ_sE [δ^2 n_ref T_ref v_ref]", false},
		{"qem", "Energy flux by magnetic flutters Θ_sM [δ^2 n_ref T_ref v_ref]", false},
	}
	panels := make([]*plot.Plot, len(specs))
	for i, spec := range specs {
		name := fmt.Sprintf("%s.%d.dat", spec.quantity, rank)
		t, cols, err := fluxSeries(filepath.Join(dataDir, name), globalNy)
		if err != nil {
			return err
		}
		panels[i], err = st.fluxPanel(t, cols, title, spec.ylabel, spec.legend)
		if err != nil {
			return err
		}
	}

	grid := [][]*plot.Plot{
		{entPanel, nil},
		{panels[0], panels[1]},
		{panels[2], panels[3]},
	}
	return writePage(outPath, st, grid)
}
