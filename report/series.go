package report

import (
	"fmt"
	"path/filepath"

	"gonum.org/v1/plot"

	"github.com/smaeyama/test-fig-stdout/table"
)

const timeAxisLabel = "Time t v_ref/L_ref"

// spectrumPanel draws a Total trace plus one line per poloidal mode on a
// log axis. Columns i+2 hold the modes m_y=0..ny.
func (st Style) spectrumPanel(tbl *table.Table, ny int, ylabel string) (*plot.Plot, error) {
	t := tbl.Col(0)
	p := st.newPlot(timeAxisLabel, ylabel)
	if err := addLine(p, positiveXYPoints(t, tbl.Col(1)), points(st.TotalWidthPt), 0, "Total"); err != nil {
		return nil, err
	}
	for i := 0; i <= ny; i++ {
		pts := positiveXYPoints(t, tbl.Col(i+2))
		if err := addLine(p, pts, points(st.LineWidthPt), i+1, fmt.Sprintf("m_y=%d", i)); err != nil {
			return nil, err
		}
	}
	logY(p)
	return p, nil
}

func requireSeries(tbl *table.Table, path string, ny int) error {
	if tbl.NumRows() == 0 {
		return fmt.Errorf("%s: no rows", path)
	}
	if tbl.NumCols() < ny+3 {
		return fmt.Errorf("%s: need %d columns, have %d", path, ny+3, tbl.NumCols())
	}
	return nil
}

// TimeSeriesPage draws the time-step history and the field-energy spectra
// on stacked log panels. men.dat must exist even for single-rank runs; its
// panel appears only when showMen is set.
func TimeSeriesPage(dataDir, outPath string, globalNy int, showMen bool, st Style) error {
	dtcPath := filepath.Join(dataDir, "dtc.dat")
	dtc, err := table.ReadFile(dtcPath)
	if err != nil {
		return err
	}
	if dtc.NumRows() == 0 {
		return fmt.Errorf("%s: no rows", dtcPath)
	}
	if dtc.NumCols() != 4 {
		return fmt.Errorf("%s: need 4 columns, have %d", dtcPath, dtc.NumCols())
	}

	engPath := filepath.Join(dataDir, "eng.dat")
	eng, err := table.ReadFile(engPath)
	if err != nil {
		return err
	}
	if err := requireSeries(eng, engPath, globalNy); err != nil {
		return err
	}

	menPath := filepath.Join(dataDir, "men.dat")
	men, err := table.ReadFile(menPath)
	if err != nil {
		return err
	}
	if showMen {
		if err := requireSeries(men, menPath, globalNy); err != nil {
			return err
		}
	}

	tDtc := dtc.Col(0)
	stepPanel := st.newPlot(timeAxisLabel, "Time step size Δt v_ref/L_ref")
	steps := []struct {
		col   int
		label string
	}{
		{1, "Δt"},
		{2, "Δt_limit"},
		{3, "Δt_N"},
	}
	for ci, s := range steps {
		pts := positiveXYPoints(tDtc, dtc.Col(s.col))
		if err := addLine(stepPanel, pts, points(st.LineWidthPt), ci, s.label); err != nil {
			return err
		}
	}
	logY(stepPanel)

	engPanel, err := st.spectrumPanel(eng, globalNy,
		"Electrostatic potential <|φ_k|^2> [δ^2 T_ref^2/e^2]")
	if err != nil {
		return err
	}

	grid := [][]*plot.Plot{{stepPanel}, {engPanel}}
	if showMen {
		menPanel, err := st.spectrumPanel(men, globalNy,
			"Vector potential δ^2<|A_//k|^2> [δ^2 ρ_ref^2 B^2]")
		if err != nil {
			return err
		}
		grid = append(grid, []*plot.Plot{menPanel})
	}
	return writePage(outPath, st, grid)
}
