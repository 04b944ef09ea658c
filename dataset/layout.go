// Package dataset materializes the normalized per-quantity data directory
// for one solver run: verbatim copies, restart-segment concatenations and
// the derivative-augmented balance tables.
package dataset

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

const (
	hstDirName   = "hst"
	logRelPath   = "log/gkvp.000000.0.log.001"
	namelistName = "gkvp_namelist.001"
)

// Layout locates the fixed input files of one run directory.
type Layout struct {
	Root     string
	HstDir   string
	LogFile  string
	Namelist string
}

// Resolve validates the run directory and returns its layout. All required
// paths are checked up front so nothing gets written for a run that cannot
// be processed.
func Resolve(root string) (Layout, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return Layout{}, err
	}
	l := Layout{
		Root:     abs,
		HstDir:   filepath.Join(abs, hstDirName),
		LogFile:  filepath.Join(abs, logRelPath),
		Namelist: filepath.Join(abs, namelistName),
	}

	if err := requireDir(l.Root, "GKV standard output directory"); err != nil {
		return Layout{}, err
	}
	if err := requireDir(l.HstDir, "hst directory"); err != nil {
		return Layout{}, err
	}
	if err := requireFile(l.LogFile, "Log file"); err != nil {
		return Layout{}, err
	}
	if err := requireFile(l.Namelist, "Namelist file"); err != nil {
		return Layout{}, err
	}
	return l, nil
}

func requireDir(path, what string) error {
	info, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%s not found: %s", what, path)
	case err != nil:
		return err
	case !info.IsDir():
		return fmt.Errorf("%s not found: %s", what, path)
	}
	return nil
}

func requireFile(path, what string) error {
	info, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%s not found: %s", what, path)
	case err != nil:
		return err
	case info.IsDir():
		return fmt.Errorf("%s not found: %s", what, path)
	}
	return nil
}
