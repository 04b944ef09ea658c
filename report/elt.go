package report

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg/draw"
)

var barEdge = color.NRGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}

type eltRow struct {
	label string
	value float64
}

// readEltSection parses one elapsed-time section: rows of the form
// "label = value [value2]". A row without a value keeps a zero-height bar;
// extra fields or a non-numeric value are an error.
func readEltSection(path string) ([]eltRow, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var rows []eltRow
	for _, line := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) > 4 {
			return nil, fmt.Errorf("%s: unexpected row %q", path, line)
		}
		row := eltRow{label: fields[0]}
		if len(fields) >= 3 {
			v, err := strconv.ParseFloat(fields[2], 64)
			if err != nil {
				return nil, fmt.Errorf("%s: bad elapsed value %q", path, fields[2])
			}
			if !math.IsNaN(v) {
				row.value = v
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// ElapsedPage draws the coarse, medium and fine elapsed-time sections as
// three stacked bar charts.
func ElapsedPage(dataDir, outPath string, st Style) error {
	sections := []struct {
		file  string
		title string
	}{
		{"elt_coarse.dat", "Coasely-classified elapsed time"},
		{"elt_medium.dat", "Moderately-classified elapsed time"},
		{"elt_fine.dat", "Finely-classified elapsed time"},
	}

	grid := make([][]*plot.Plot, len(sections))
	for i, sec := range sections {
		rows, err := readEltSection(filepath.Join(dataDir, sec.file))
		if err != nil {
			return err
		}

		p := st.axes("", "Elapsed time [sec]")
		p.Title.Text = sec.title

		vals := make(plotter.Values, len(rows))
		labels := make([]string, len(rows))
		for j, r := range rows {
			vals[j] = r.value
			labels[j] = r.label
		}
		bars, err := plotter.NewBarChart(vals, points(st.BarWidthPt))
		if err != nil {
			return err
		}
		bars.Color = color.White
		bars.LineStyle.Width = points(st.LineWidthPt)
		bars.LineStyle.Color = barEdge
		p.Add(bars)
		if len(labels) > 0 {
			p.NominalX(labels...)
		}
		p.X.Tick.Label.Rotation = -math.Pi / 4
		p.X.Tick.Label.XAlign = draw.XLeft
		p.X.Tick.Label.YAlign = draw.YTop
		p.Y.Min = 0

		grid[i] = []*plot.Plot{p}
	}
	return writePage(outPath, st, grid)
}
