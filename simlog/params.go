// Package simlog extracts run parameters and report text from the solver's
// standard-output log and namelist files.
package simlog

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
)

// Params are the scalar run parameters recovered from a solver log. They
// steer everything downstream: NProcs fixes the per-rank file set, GlobalNy
// the number of spectral series per page, CalcType the optional linear
// diagnostics.
type Params struct {
	NProcs   int
	GlobalNy int
	CalcType string
}

// CalcTypeLinFreq is the calculation mode that produces the frq and dsp
// files and the frequency page.
const CalcTypeLinFreq = "lin_freq"

// LinFreq reports whether the run carries linear-response diagnostics.
func (p Params) LinFreq() bool {
	return p.CalcType == CalcTypeLinFreq
}

var (
	nprocsPattern   = regexp.MustCompile(`#?\s*nprocs\s*,\s*rank\s*=\s*(\d+)`)
	globalNyPattern = regexp.MustCompile(`#?\s*global_ny\s*=\s*(\d+)`)
	calcTypePattern = regexp.MustCompile(`#?\s*Type of calc\.\s*[:=]\s*(\w+)`)
)

// ParseParams scans a solver log for nprocs, global_ny and the calculation
// mode. Lines are classified by substring before any pattern runs, so a
// line mentioning both nprocs and rank is never tried against the other
// patterns. Re-echoed values are normal in restarted runs; the last match
// of each parameter wins. Missing any of the three by end of file is an
// error.
func ParseParams(path string) (Params, error) {
	f, err := os.Open(path)
	if err != nil {
		return Params{}, err
	}
	defer f.Close()

	var (
		p                                   Params
		gotNProcs, gotGlobalNy, gotCalcType bool
	)
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := sc.Text()
		switch {
		case strings.Contains(line, "nprocs") && strings.Contains(line, "rank"):
			if m := nprocsPattern.FindStringSubmatch(line); m != nil {
				p.NProcs, _ = strconv.Atoi(m[1])
				gotNProcs = true
			}
		case strings.Contains(line, "global_ny"):
			if m := globalNyPattern.FindStringSubmatch(line); m != nil {
				p.GlobalNy, _ = strconv.Atoi(m[1])
				gotGlobalNy = true
			}
		case strings.Contains(line, "Type of calc"):
			if m := calcTypePattern.FindStringSubmatch(line); m != nil {
				p.CalcType = m[1]
				gotCalcType = true
			}
		}
	}
	if err := sc.Err(); err != nil {
		return Params{}, err
	}

	if !gotNProcs || !gotGlobalNy || !gotCalcType {
		var missing []string
		if !gotNProcs {
			missing = append(missing, "nprocs")
		}
		if !gotGlobalNy {
			missing = append(missing, "global_ny")
		}
		if !gotCalcType {
			missing = append(missing, "calc type")
		}
		return Params{}, fmt.Errorf("simlog: %s: could not extract %s", path, strings.Join(missing, ", "))
	}
	return p, nil
}
