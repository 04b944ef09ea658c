package report

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-pdf/fpdf"
	mstats "github.com/montanaflynn/stats"
	log "github.com/sirupsen/logrus"

	"github.com/smaeyama/test-fig-stdout/simlog"
	"github.com/smaeyama/test-fig-stdout/stats"
	"github.com/smaeyama/test-fig-stdout/table"
)

// TextPage renders the leading text page: the run directory and date, a
// short time-step overview, the flattened namelist with underlined section
// headings, and the parameter blocks extracted from the log.
func TextPage(runDir, namelistPath, logPath, dataDir, outPath string, now time.Time, st Style) error {
	namelist, err := simlog.ReadNamelist(namelistPath)
	if err != nil {
		return err
	}
	blocks, err := simlog.ParameterBlocks(logPath)
	if err != nil {
		return err
	}

	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetMargins(14.4, 43.2, 14.4)
	pdf.SetAutoPageBreak(true, 43.2)
	pdf.AddPage()
	lh := st.TextFontPt + 1

	body := func(s string) {
		pdf.SetFont("Courier", "", st.TextFontPt)
		pdf.MultiCell(0, lh, s, "", "L", false)
	}
	heading := func(s string) {
		pdf.Ln(4)
		pdf.SetFont("Courier", "U", st.TextFontPt)
		pdf.MultiCell(0, lh+1, s, "", "L", false)
	}

	body(runDir)
	body(now.Format("2006-01-02 15:04:05"))
	for _, line := range stepOverview(filepath.Join(dataDir, "dtc.dat")) {
		body(line)
	}
	pdf.Ln(4)

	for _, ln := range namelist {
		if ln.Section {
			heading(ln.Text)
		} else {
			body(ln.Text)
		}
	}

	heading("log")
	for bi, blk := range blocks {
		if bi > 0 {
			pdf.Ln(6)
		}
		for _, ln := range blk {
			body(ln)
		}
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return err
	}
	return pdf.OutputFileAndClose(outPath)
}

// stepOverview summarizes the time-step history when dtc.dat is usable.
// The page renders without it otherwise.
func stepOverview(dtcPath string) []string {
	tbl, err := table.ReadFile(dtcPath)
	if err != nil || tbl.NumRows() == 0 || tbl.NumCols() < 2 {
		log.Debugf("no time step overview for text page: %v", err)
		return nil
	}
	dt := tbl.Col(1)
	mean, errMean := mstats.Mean(dt)
	min, errMin := mstats.Min(dt)
	max, errMax := mstats.Max(dt)
	if errMean != nil || errMin != nil || errMax != nil {
		return nil
	}
	var w stats.Welford
	for _, v := range dt {
		w.Update(v)
	}
	return []string{fmt.Sprintf("steps = %d, dt mean = %.4g, min = %.4g, max = %.4g, sd = %.4g",
		tbl.NumRows(), mean, min, max, w.SD())}
}
