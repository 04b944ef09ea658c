package dataset

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smaeyama/test-fig-stdout/entropy"
	"github.com/smaeyama/test-fig-stdout/simlog"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// blnSegment renders rows of the 21-column balance history with linear
// quantity columns, so the derivative columns are predictable.
func blnSegment(times []float64, rank int) string {
	var sb strings.Builder
	for _, tv := range times {
		fmt.Fprintf(&sb, "%g", tv)
		for j := 1; j < entropy.NumInputCols; j++ {
			fmt.Fprintf(&sb, " %g", float64(j)*tv+0.1*float64(rank))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func seriesTable(rows, cols int, offset float64) string {
	var sb strings.Builder
	for i := 0; i < rows; i++ {
		fmt.Fprintf(&sb, "%g", 0.5*float64(i))
		for j := 1; j < cols; j++ {
			fmt.Fprintf(&sb, " %g", offset+float64(j)+0.01*float64(i))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// writeRunTree lays out a synthetic solver run directory: log, namelist
// and the hst file families for nprocs ranks.
func writeRunTree(t *testing.T, root string, nprocs int, calcType string) {
	t.Helper()

	lines := []string{
		"# GKV standard output",
		fmt.Sprintf("# nprocs , rank = %d 0", nprocs),
		"  global_ny = 2",
		"  Type of calc. : " + calcType,
	}
	for i := len(lines); i < 100; i++ {
		lines = append(lines, fmt.Sprintf("sec%03d = %g", i, 0.5+float64(i)))
	}
	writeFile(t, filepath.Join(root, "log", "gkvp.000000.0.log.001"), strings.Join(lines, "\n")+"\n")

	writeFile(t, filepath.Join(root, "gkvp_namelist.001"), "&cmemo memo = \"fixture\", &end\n&calct calc_type = \""+calcType+"\",\n&end\n")

	hst := filepath.Join(root, "hst")

	var mtr strings.Builder
	for i := 0; i < 13; i++ {
		z := -3.0 + 0.5*float64(i)
		fmt.Fprintf(&mtr, "%g", z)
		for j := 1; j < 13; j++ {
			fmt.Fprintf(&mtr, " %g", 1.0+0.1*float64(j)*z)
		}
		mtr.WriteByte('\n')
	}
	writeFile(t, filepath.Join(hst, "gkvp.mtr.001"), mtr.String())
	writeFile(t, filepath.Join(hst, "gkvp.mtf.001"), mtr.String())

	writeFile(t, filepath.Join(hst, "gkvp.dtc.001"), "0.0 0.005 0.01 0.02\n0.5 0.004 0.01 0.02\n")
	writeFile(t, filepath.Join(hst, "gkvp.dtc.002"), "1.0 0.004 0.01 0.02\n1.5 0.003 0.01 0.02\n")
	for _, q := range []string{"eng", "men", "wes", "wem"} {
		writeFile(t, filepath.Join(hst, "gkvp."+q+".001"), seriesTable(9, 5, 1.0))
	}

	for r := 0; r < nprocs; r++ {
		for _, q := range []string{"ges", "gem", "qes", "qem"} {
			writeFile(t, filepath.Join(hst, fmt.Sprintf("gkvp.%s.%d.001", q, r)), seriesTable(9, 5, float64(r)))
		}
		writeFile(t, filepath.Join(hst, fmt.Sprintf("gkvp.bln.%d.001", r)),
			blnSegment([]float64{0, 0.5, 1.0, 1.5, 2.0}, r))
		writeFile(t, filepath.Join(hst, fmt.Sprintf("gkvp.bln.%d.002", r)),
			blnSegment([]float64{2.5, 3.0, 3.5, 4.0}, r))
	}

	if calcType == simlog.CalcTypeLinFreq {
		writeFile(t, filepath.Join(hst, "gkvp.frq.001"), seriesTable(9, 5, 0.1))
		writeFile(t, filepath.Join(hst, "gkvp.dsp.001"), "")
		writeFile(t, filepath.Join(hst, "gkvp.dsp.002"), "0.0 0.1 0.5 0.05\n0.3 0.2 0.6 0.06\n")
	}
}

func builderFor(t *testing.T, root string) *Builder {
	t.Helper()
	layout, err := Resolve(root)
	require.NoError(t, err)
	params, err := simlog.ParseParams(layout.LogFile)
	require.NoError(t, err)
	dataDir := filepath.Join(t.TempDir(), "data")
	require.NoError(t, CleanDir(dataDir))
	return &Builder{Layout: layout, Params: params, DataDir: dataDir, Estimator: entropy.NonUniform}
}

func TestBuild(t *testing.T) {
	root := filepath.Join(t.TempDir(), "run")
	writeRunTree(t, root, 2, "nonlinear")
	b := builderFor(t, root)
	require.NoError(t, b.Build())

	for _, name := range []string{
		"elt_coarse.dat", "elt_medium.dat", "elt_fine.dat",
		"mtr.dat", "mtf.dat",
		"dtc.dat", "eng.dat", "men.dat", "wes.dat", "wem.dat",
		"ges.0.dat", "gem.0.dat", "qes.0.dat", "qem.0.dat", "bln.0.dat", "ent.0.dat",
		"ges.1.dat", "gem.1.dat", "qes.1.dat", "qem.1.dat", "bln.1.dat", "ent.1.dat",
	} {
		_, err := os.Stat(filepath.Join(b.DataDir, name))
		assert.NoError(t, err, name)
	}

	// Restart segments concatenate in name order.
	dtc, err := os.ReadFile(filepath.Join(b.DataDir, "dtc.dat"))
	require.NoError(t, err)
	assert.Equal(t, "0.0 0.005 0.01 0.02\n0.5 0.004 0.01 0.02\n1.0 0.004 0.01 0.02\n1.5 0.003 0.01 0.02\n", string(dtc))

	// The balance artifact is derivative-augmented with boundary sentinels.
	ent, err := os.ReadFile(filepath.Join(b.DataDir, "ent.0.dat"))
	require.NoError(t, err)
	entLines := strings.Split(strings.TrimRight(string(ent), "\n"), "\n")
	require.Len(t, entLines, 10)
	assert.True(t, strings.HasPrefix(entLines[0], "#            time"))
	assert.Contains(t, entLines[1], "NaN")
	assert.NotContains(t, entLines[4], "NaN")

	// No linear-response artifacts for a nonlinear run.
	_, err = os.Stat(filepath.Join(b.DataDir, "frq.dat"))
	assert.ErrorIs(t, err, fs.ErrNotExist)
	_, err = os.Stat(filepath.Join(b.DataDir, "dsp.dat"))
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestBuildLinFreq(t *testing.T) {
	root := filepath.Join(t.TempDir(), "run")
	writeRunTree(t, root, 1, simlog.CalcTypeLinFreq)
	b := builderFor(t, root)
	require.NoError(t, b.Build())

	_, err := os.Stat(filepath.Join(b.DataDir, "frq.dat"))
	assert.NoError(t, err)

	// dsp.dat is the last non-empty dispersion file, not the empty .001.
	dsp, err := os.ReadFile(filepath.Join(b.DataDir, "dsp.dat"))
	require.NoError(t, err)
	assert.Equal(t, "0.0 0.1 0.5 0.05\n0.3 0.2 0.6 0.06\n", string(dsp))
}

func TestBuildLinFreqWithoutDsp(t *testing.T) {
	root := filepath.Join(t.TempDir(), "run")
	writeRunTree(t, root, 1, simlog.CalcTypeLinFreq)
	require.NoError(t, os.Remove(filepath.Join(root, "hst", "gkvp.dsp.002")))

	b := builderFor(t, root)
	require.NoError(t, b.Build())
	_, err := os.Stat(filepath.Join(b.DataDir, "dsp.dat"))
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestBuildRejectsMalformedBalance(t *testing.T) {
	root := filepath.Join(t.TempDir(), "run")
	writeRunTree(t, root, 1, "nonlinear")
	writeFile(t, filepath.Join(root, "hst", "gkvp.bln.0.001"), "1 2 3\n")
	require.NoError(t, os.Remove(filepath.Join(root, "hst", "gkvp.bln.0.002")))

	b := builderFor(t, root)
	err := b.Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "columns")
}

func TestBuildMissingMetricFile(t *testing.T) {
	root := filepath.Join(t.TempDir(), "run")
	writeRunTree(t, root, 1, "nonlinear")
	require.NoError(t, os.Remove(filepath.Join(root, "hst", "gkvp.mtr.001")))

	b := builderFor(t, root)
	require.Error(t, b.Build())
}
