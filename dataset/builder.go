package dataset

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	log "github.com/sirupsen/logrus"

	"github.com/smaeyama/test-fig-stdout/entropy"
	"github.com/smaeyama/test-fig-stdout/simlog"
)

// The solver's hst file families: metric tables copied verbatim, global
// histories concatenated across restart segments, and per-rank histories
// concatenated per process.
var (
	copyQuantities   = []string{"mtr", "mtf"}
	concatQuantities = []string{"dtc", "eng", "men", "wes", "wem"}
	rankQuantities   = []string{"ges", "gem", "qes", "qem", "bln"}
)

// Builder materializes the data directory for one run.
type Builder struct {
	Layout    Layout
	Params    simlog.Params
	DataDir   string
	Estimator entropy.Estimator
}

// Build populates the data directory: the elapsed-time sections, the
// verbatim metric copies, the restart-segment concatenations, the per-rank
// flux and balance tables with their derivative-augmented ent artifacts,
// and the linear-response extras for lin_freq runs.
func (b *Builder) Build() error {
	log.Infof("building dataset for %s", b.Layout.Root)

	if err := simlog.WriteElapsedSections(b.Layout.LogFile, b.DataDir); err != nil {
		return err
	}

	for _, q := range copyQuantities {
		src := filepath.Join(b.Layout.HstDir, fmt.Sprintf("gkvp.%s.001", q))
		if err := CopyFile(src, filepath.Join(b.DataDir, q+".dat")); err != nil {
			return err
		}
	}

	for _, q := range concatQuantities {
		pattern := fmt.Sprintf("gkvp.%s.*", q)
		if err := ConcatGlob(b.Layout.HstDir, pattern, filepath.Join(b.DataDir, q+".dat")); err != nil {
			return err
		}
	}

	for r := 0; r < b.Params.NProcs; r++ {
		for _, q := range rankQuantities {
			pattern := fmt.Sprintf("gkvp.%s.%d.*", q, r)
			dst := filepath.Join(b.DataDir, fmt.Sprintf("%s.%d.dat", q, r))
			if err := ConcatGlob(b.Layout.HstDir, pattern, dst); err != nil {
				return err
			}
		}
		blnPath := filepath.Join(b.DataDir, fmt.Sprintf("bln.%d.dat", r))
		entPath := filepath.Join(b.DataDir, fmt.Sprintf("ent.%d.dat", r))
		if err := entropy.Process(blnPath, entPath, b.Estimator); err != nil {
			return err
		}
		log.Debugf("rank %d history tables ready", r)
	}

	if b.Params.LinFreq() {
		if err := b.buildLinFreq(); err != nil {
			return err
		}
	}
	return nil
}

// buildLinFreq concatenates the frequency trace and copies the last
// non-empty dispersion file. Converged dispersion output may be missing
// entirely; the frequency page then degrades to empty spectra.
func (b *Builder) buildLinFreq() error {
	if err := ConcatGlob(b.Layout.HstDir, "gkvp.frq.*", filepath.Join(b.DataDir, "frq.dat")); err != nil {
		return err
	}

	matches, err := filepath.Glob(filepath.Join(b.Layout.HstDir, "*.dsp.*"))
	if err != nil {
		return err
	}
	sort.Strings(matches)
	last := ""
	for _, m := range matches {
		info, err := os.Stat(m)
		if err == nil && info.Size() > 0 {
			last = m
		}
	}
	if last == "" {
		log.Debug("no non-empty dsp file in hst")
		return nil
	}
	return CopyFile(last, filepath.Join(b.DataDir, "dsp.dat"))
}
