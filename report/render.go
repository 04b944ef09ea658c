package report

import (
	"fmt"
	"path/filepath"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/smaeyama/test-fig-stdout/dataset"
	"github.com/smaeyama/test-fig-stdout/simlog"
)

// Render produces the page fragments for one run in final page order: the
// text page, elapsed-time bars, the two metric pages, the frequency page
// for linear runs, the time-series page, one flux page per rank and the
// energy page. It returns the fragment paths.
func Render(l dataset.Layout, p simlog.Params, dataDir, figDir string, now time.Time, st Style) ([]string, error) {
	var pages []string
	add := func(name string, render func(out string) error) error {
		out := filepath.Join(figDir, name)
		if err := render(out); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		log.Debugf("rendered %s", name)
		pages = append(pages, out)
		return nil
	}

	if err := add("text_section.pdf", func(out string) error {
		return TextPage(l.Root, l.Namelist, l.LogFile, dataDir, out, now, st)
	}); err != nil {
		return nil, err
	}
	if err := add("plot_elt.pdf", func(out string) error {
		return ElapsedPage(dataDir, out, st)
	}); err != nil {
		return nil, err
	}
	if err := add("plot_mtr.pdf", func(out string) error {
		return MetricPage(filepath.Join(dataDir, "mtr.dat"), out, st)
	}); err != nil {
		return nil, err
	}
	if err := add("plot_mtf.pdf", func(out string) error {
		return FluxTubeMetricPage(filepath.Join(dataDir, "mtf.dat"), out, st)
	}); err != nil {
		return nil, err
	}
	if p.LinFreq() {
		if err := add("plot_freq.pdf", func(out string) error {
			return FrequencyPage(dataDir, out, p.GlobalNy, st)
		}); err != nil {
			return nil, err
		}
	}
	if err := add("plot_time_series.pdf", func(out string) error {
		return TimeSeriesPage(dataDir, out, p.GlobalNy, p.NProcs > 1, st)
	}); err != nil {
		return nil, err
	}
	for rank := 0; rank < p.NProcs; rank++ {
		name := fmt.Sprintf("plot_flux.%d.pdf", rank)
		if err := add(name, func(out string) error {
			return FluxPage(dataDir, out, rank, p.GlobalNy, st)
		}); err != nil {
			return nil, err
		}
	}
	if err := add("plot_energy.pdf", func(out string) error {
		return EnergyPage(dataDir, out, p.NProcs, p.GlobalNy, st)
	}); err != nil {
		return nil, err
	}
	return pages, nil
}
