// Package figpdf drives the full report pipeline for one solver run:
// parameter extraction, history aggregation, page rendering and the final
// merge into fig_stdout.pdf.
package figpdf

import (
	"os"
	"path/filepath"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/smaeyama/test-fig-stdout/dataset"
	"github.com/smaeyama/test-fig-stdout/entropy"
	"github.com/smaeyama/test-fig-stdout/report"
	"github.com/smaeyama/test-fig-stdout/simlog"
)

// Options configure one report run.
type Options struct {
	// RunDir is the solver standard-output directory.
	RunDir string
	// Style sets the page appearance.
	Style report.Style
	// Estimator selects the time-derivative stencil for the balance
	// artifacts.
	Estimator entropy.Estimator
	// Now supplies timestamps. Defaults to time.Now.
	Now func() time.Time
}

const outName = "fig_stdout.pdf"

// Generate runs the full pipeline and returns the path of the merged
// document. The working tree figpdf_<timestamp>/{data,fig} is created
// under the current directory and reused runs are wiped first.
func Generate(opts Options) (string, error) {
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	layout, err := dataset.Resolve(opts.RunDir)
	if err != nil {
		return "", err
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	outRoot := filepath.Join(cwd, now().Format("figpdf_20060102_150405"))
	dataDir := filepath.Join(outRoot, "data")
	figDir := filepath.Join(outRoot, "fig")
	if err := dataset.CleanDir(dataDir); err != nil {
		return "", err
	}
	if err := dataset.CleanDir(figDir); err != nil {
		return "", err
	}

	params, err := simlog.ParseParams(layout.LogFile)
	if err != nil {
		return "", err
	}
	log.WithFields(log.Fields{
		"nprocs":    params.NProcs,
		"global_ny": params.GlobalNy,
		"calc_type": params.CalcType,
	}).Info("run parameters")

	builder := dataset.Builder{
		Layout:    layout,
		Params:    params,
		DataDir:   dataDir,
		Estimator: opts.Estimator,
	}
	if err := builder.Build(); err != nil {
		return "", err
	}

	pages, err := report.Render(layout, params, dataDir, figDir, now(), opts.Style)
	if err != nil {
		return "", err
	}

	outPath := filepath.Join(outRoot, outName)
	if err := report.MergeReport(pages, outPath, opts.Style); err != nil {
		return "", err
	}
	log.Infof("merged %d pages", len(pages))
	return outPath, nil
}
