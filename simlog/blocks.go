package simlog

import (
	"os"
	"regexp"
	"strings"
)

// parameterPatterns are the fixed groups of namelist-echo lines pulled from
// the log for the report's text page. Each group renders as one block; for
// each pattern the first matching log line is taken, in pattern order.
var parameterPatterns = [][]string{
	{
		`nxw, nyw\s*=`,
		`global_ny\s*=`,
		`global_nz\s*=`,
		`global_nv, global_nm\s*=`,
		`nx, ny, nz\s*=`,
		`nv, nm\s*=`,
		`nzb, nvb\s*=`,
		`number of species\s*=`,
		`nproc`,
	},
	{
		`q_0\s*=`,
		`s_hat\s*=`,
		`eps_r\s*=`,
		`s_input, s_0\s*=`,
		`nss, ntheta\s*=`,
	},
	{
		`lx, ly, lz\s*=`,
		`lz,\s*z0\s*=`,
		`lz_l, z0_l\s*=`,
		`kxmin, kymin\s*=`,
		`kxmax, kymax\s*=`,
		`kperp_max\s*=`,
		`m_j, del_c\s*=`,
		`dz\s*=`,
		`dv, vmax\s*=`,
		`dm, mmax\s*=`,
	},
	{
		`time_advnc\s*=`,
		`flag_time_adv\s*=`,
		`courant num\.`,
		`dt_perp\s*=`,
		`dt_zz\s*=`,
		`dt_vl\s*=`,
		`dt_col\s*=`,
		`dt_linear\s*=`,
		`dt_max\s*=`,
		`dt\s*=`,
	},
	{
		`a, b, nu.*_ab\s*=`,
	},
}

var parameterRegexps = compilePatternGroups(parameterPatterns)

func compilePatternGroups(groups [][]string) [][]*regexp.Regexp {
	out := make([][]*regexp.Regexp, len(groups))
	for i, group := range groups {
		out[i] = make([]*regexp.Regexp, len(group))
		for j, p := range group {
			out[i][j] = regexp.MustCompile(`\s*` + p)
		}
	}
	return out
}

// ParameterBlocks extracts the text-page parameter blocks from a solver
// log. For every pattern the first matching line is kept, stripped of
// surrounding whitespace; patterns without a match are dropped, so a block
// can come back shorter than its pattern group or empty.
func ParameterBlocks(path string) ([][]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	lines := splitLines(string(data))

	blocks := make([][]string, 0, len(parameterRegexps))
	for _, group := range parameterRegexps {
		block := []string{}
		for _, rgx := range group {
			for _, ln := range lines {
				if rgx.MatchString(ln) {
					block = append(block, strings.TrimSpace(ln))
					break
				}
			}
		}
		blocks = append(blocks, block)
	}
	return blocks, nil
}
