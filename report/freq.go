package report

import (
	"fmt"
	"math"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"gonum.org/v1/plot"

	"github.com/smaeyama/test-fig-stdout/table"
)

// dispersionSpectra pulls the converged k_y spectra out of dsp.dat: rows
// with k_x at zero, giving (k_y, frequency, growthrate) triples.
func dispersionSpectra(path string) (ky, freq, grow []float64, err error) {
	tbl, err := table.ReadFile(path)
	if err != nil {
		return nil, nil, nil, err
	}
	if tbl.NumCols() < 4 {
		return nil, nil, nil, fmt.Errorf("%s: need 4 columns, have %d", path, tbl.NumCols())
	}
	for i := 0; i < tbl.NumRows(); i++ {
		row := tbl.Row(i)
		if math.Abs(row[0]) < 1e-10 {
			ky = append(ky, row[1])
			freq = append(freq, row[2])
			grow = append(grow, row[3])
		}
	}
	return ky, freq, grow, nil
}

// FrequencyPage draws the linear growthrate and frequency traces over the
// late half of the run, plus the k_y spectra from the dispersion solver.
// An unusable dsp.dat degrades to empty spectrum panels.
func FrequencyPage(dataDir, outPath string, globalNy int, st Style) error {
	frq, err := table.ReadFile(filepath.Join(dataDir, "frq.dat"))
	if err != nil {
		return err
	}
	if frq.NumRows() == 0 {
		return fmt.Errorf("%s: no rows", filepath.Join(dataDir, "frq.dat"))
	}
	t := frq.Col(0)
	tend := t[len(t)-1]
	var sel []int
	for i, tv := range t {
		if tv >= tend/2 {
			sel = append(sel, i)
		}
	}
	pick := func(col []float64) (xs, ys []float64) {
		xs = make([]float64, len(sel))
		ys = make([]float64, len(sel))
		for k, i := range sel {
			xs[k] = t[i]
			ys[k] = col[i]
		}
		return xs, ys
	}

	const (
		timeLabel = "Time t v_ref/L_ref"
		growLabel = "Growthrate γ_l [v_ref/L_ref]"
		freqLabel = "Frequency ω_r [v_ref/L_ref]"
		kyLabel   = "Poloidal wave number k_y ρ_ref"
	)

	growTrace := st.newPlot(timeLabel, growLabel)
	for my := 1; my <= globalNy; my++ {
		col := 2 * my
		if col >= frq.NumCols() {
			break
		}
		xs, ys := pick(frq.Col(col))
		if err := addLine(growTrace, xyPoints(xs, ys), points(st.LineWidthPt), my-1, ""); err != nil {
			return err
		}
	}

	freqTrace := st.newPlot(timeLabel, freqLabel)
	for my := 1; my <= globalNy; my++ {
		col := 2*my - 1
		if col >= frq.NumCols() {
			break
		}
		xs, ys := pick(frq.Col(col))
		label := fmt.Sprintf("m_y=%d", my)
		if err := addLine(freqTrace, xyPoints(xs, ys), points(st.LineWidthPt), my-1, label); err != nil {
			return err
		}
	}

	ky, freqs, grows, err := dispersionSpectra(filepath.Join(dataDir, "dsp.dat"))
	if err != nil {
		log.Warn("dsp.dat is not converged")
		ky, freqs, grows = nil, nil, nil
	}

	growSpec := st.newPlot(kyLabel, growLabel)
	if err := st.addLinePoints(growSpec, xyPoints(ky, grows), points(st.TotalWidthPt), 0); err != nil {
		return err
	}
	freqSpec := st.newPlot(kyLabel, freqLabel)
	if err := st.addLinePoints(freqSpec, xyPoints(ky, freqs), points(st.TotalWidthPt), 0); err != nil {
		return err
	}

	grid := [][]*plot.Plot{
		{growTrace, freqTrace},
		{growSpec, freqSpec},
	}
	return writePage(outPath, st, grid)
}
