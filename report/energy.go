package report

import (
	"fmt"
	"os"
	"path/filepath"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"

	"github.com/smaeyama/test-fig-stdout/table"
)

// energyTransfer holds the field-energy balance curves collected from the
// per-rank balance artifacts: the rank-0 dW/dt pair plus one negated
// transfer term per rank that produced an artifact.
type energyTransfer struct {
	t      []float64
	series [][]float64
	labels []string
}

// loadEnergyTransfers reads ent.0.dat (required) and the remaining ranks
// (skipped when absent). Every rank series must match the rank-0 time axis.
func loadEnergyTransfers(dataDir string, nprocs int) (electric, magnetic energyTransfer, err error) {
	ent0, err := table.ReadFile(filepath.Join(dataDir, "ent.0.dat"))
	if err != nil {
		return electric, magnetic, err
	}
	if ent0.NumRows() == 0 {
		return electric, magnetic, fmt.Errorf("ent.0.dat: no rows")
	}
	if ent0.NumCols() < 21 {
		return electric, magnetic, fmt.Errorf("ent.0.dat: need 21 columns, have %d", ent0.NumCols())
	}
	t := ent0.Col(0)
	electric = energyTransfer{t: t, series: [][]float64{sumCols(ent0, 3, 4)}, labels: []string{"dW_E/dt"}}
	magnetic = energyTransfer{t: t, series: [][]float64{sumCols(ent0, 5, 6)}, labels: []string{"dW_M/dt"}}

	for r := 0; r < nprocs; r++ {
		path := filepath.Join(dataDir, fmt.Sprintf("ent.%d.dat", r))
		if _, statErr := os.Stat(path); statErr != nil {
			continue
		}
		d, err := table.ReadFile(path)
		if err != nil {
			return electric, magnetic, err
		}
		if d.NumCols() < 21 {
			return electric, magnetic, fmt.Errorf("%s: need 21 columns, have %d", path, d.NumCols())
		}
		if d.NumRows() != len(t) {
			return electric, magnetic, fmt.Errorf("%s: %d rows, rank 0 has %d", path, d.NumRows(), len(t))
		}
		rsE := sumCols(d, 7, 8)
		floats.Scale(-1, rsE)
		rsM := sumCols(d, 9, 10)
		floats.Scale(-1, rsM)
		electric.series = append(electric.series, rsE)
		electric.labels = append(electric.labels, fmt.Sprintf("-R_sE(s=%d)", r))
		magnetic.series = append(magnetic.series, rsM)
		magnetic.labels = append(magnetic.labels, fmt.Sprintf("-R_sM(s=%d)", r))
	}
	return electric, magnetic, nil
}

// transferPanel draws one dW/dt-versus-transfers panel.
func (st Style) transferPanel(tr energyTransfer, legend bool) (*plot.Plot, error) {
	p := st.newPlot(timeAxisLabel, "Entropy variables [δ^2 n_ref T_ref v_ref/L_ref]")
	for i, s := range tr.series {
		label := ""
		if legend {
			label = tr.labels[i]
		}
		if err := addLine(p, xyPoints(tr.t, s), points(st.LineWidthPt), i, label); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// energyPanel draws a Total-plus-modes field energy on a log axis.
func (st Style) energyPanel(t []float64, cols [][]float64, ylabel string, legend bool) (*plot.Plot, error) {
	p := st.newPlot(timeAxisLabel, ylabel)
	label := func(s string) string {
		if legend {
			return s
		}
		return ""
	}
	if err := addLine(p, positiveXYPoints(t, cols[0]), points(st.TotalWidthPt), 0, label("Total")); err != nil {
		return nil, err
	}
	for i, col := range cols[1:] {
		pts := positiveXYPoints(t, col)
		if err := addLine(p, pts, points(st.LineWidthPt), i+1, label(fmt.Sprintf("m_y=%d", i))); err != nil {
			return nil, err
		}
	}
	logY(p)
	return p, nil
}

// EnergyPage draws the field-energy balance: dW_E/dt and dW_M/dt against
// the per-rank transfer terms on top, the W_E and W_M spectra below. The
// W_M tile stays blank for single-rank runs.
func EnergyPage(dataDir, outPath string, nprocs, globalNy int, st Style) error {
	electric, magnetic, err := loadEnergyTransfers(dataDir, nprocs)
	if err != nil {
		return err
	}
	ePanel, err := st.transferPanel(electric, false)
	if err != nil {
		return err
	}
	mPanel, err := st.transferPanel(magnetic, true)
	if err != nil {
		return err
	}

	tWes, wesCols, err := fluxSeries(filepath.Join(dataDir, "wes.dat"), globalNy)
	if err != nil {
		return err
	}
	wesPanel, err := st.energyPanel(tWes, wesCols,
		"Electrostatic energy W_E [δ^2 n_ref T_ref]", nprocs <= 1)
	if err != nil {
		return err
	}

	var wemPanel *plot.Plot
	if nprocs > 1 {
		tWem, wemCols, err := fluxSeries(filepath.Join(dataDir, "wem.dat"), globalNy)
		if err != nil {
			return err
		}
		wemPanel, err = st.energyPanel(tWem, wemCols,
			"Magnetic field energy W_M [δ^2 n_ref T_ref]", true)
		if err != nil {
			return err
		}
	}

	grid := [][]*plot.Plot{
		{ePanel, mPanel},
		{wesPanel, wemPanel},
	}
	return writePage(outPath, st, grid)
}
