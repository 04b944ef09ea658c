package report

import (
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// positiveSeries builds a table of strictly positive columns suitable for
// the log-axis panels: time plus cols-1 value columns.
func positiveSeries(rows, cols int) string {
	var sb strings.Builder
	for i := 0; i < rows; i++ {
		fmt.Fprintf(&sb, "%g", 0.5*float64(i))
		for c := 1; c < cols; c++ {
			fmt.Fprintf(&sb, " %g", 1e-3*float64(c)+1e-4*float64(i+1))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func dtcFixture(rows int) string {
	var sb strings.Builder
	for i := 0; i < rows; i++ {
		fmt.Fprintf(&sb, "%g 0.01 0.02 0.05\n", 0.5*float64(i))
	}
	return sb.String()
}

func writeSeriesFixtures(t *testing.T, dir string, ny int) {
	t.Helper()
	writeDat(t, dir, "dtc.dat", dtcFixture(9))
	writeDat(t, dir, "eng.dat", positiveSeries(9, ny+3))
	writeDat(t, dir, "men.dat", positiveSeries(9, ny+3))
}

func TestTimeSeriesPage(t *testing.T) {
	dir := t.TempDir()
	writeSeriesFixtures(t, dir, 2)
	out := filepath.Join(dir, "plot_time_series.pdf")
	require.NoError(t, TimeSeriesPage(dir, out, 2, true, DefaultStyle()))
	assertPDF(t, out)
}

func TestTimeSeriesPageWithoutMenPanel(t *testing.T) {
	dir := t.TempDir()
	writeDat(t, dir, "dtc.dat", dtcFixture(9))
	writeDat(t, dir, "eng.dat", positiveSeries(9, 5))
	// men.dat must exist even when its panel is not drawn, and may be
	// too narrow for a panel of its own.
	writeDat(t, dir, "men.dat", "")
	out := filepath.Join(dir, "plot_time_series.pdf")
	require.NoError(t, TimeSeriesPage(dir, out, 2, false, DefaultStyle()))
	assertPDF(t, out)
}

func TestTimeSeriesPageRequiresMen(t *testing.T) {
	dir := t.TempDir()
	writeDat(t, dir, "dtc.dat", dtcFixture(9))
	writeDat(t, dir, "eng.dat", positiveSeries(9, 5))
	err := TimeSeriesPage(dir, filepath.Join(dir, "out.pdf"), 2, false, DefaultStyle())
	assert.Error(t, err)
}

func TestTimeSeriesPageRejectsDtcWidth(t *testing.T) {
	dir := t.TempDir()
	writeDat(t, dir, "dtc.dat", "0.0 0.01 0.02\n0.5 0.01 0.02\n")
	writeDat(t, dir, "eng.dat", positiveSeries(9, 5))
	writeDat(t, dir, "men.dat", positiveSeries(9, 5))
	err := TimeSeriesPage(dir, filepath.Join(dir, "out.pdf"), 2, false, DefaultStyle())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "4 columns")
}

func TestTimeSeriesPageRejectsShortEng(t *testing.T) {
	dir := t.TempDir()
	writeDat(t, dir, "dtc.dat", dtcFixture(9))
	writeDat(t, dir, "eng.dat", positiveSeries(9, 4))
	writeDat(t, dir, "men.dat", positiveSeries(9, 5))
	err := TimeSeriesPage(dir, filepath.Join(dir, "out.pdf"), 2, false, DefaultStyle())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "eng.dat")
}
