package report

import (
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgpdf"
)

func inches(v float64) vg.Length { return vg.Length(v) * vg.Inch }
func points(v float64) vg.Length { return vg.Length(v) * vg.Point }

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// axes builds a bare axis pair in the house style: small fonts, legend
// inside the top corner, no grid. The bar panels use this directly.
func (st Style) axes(xlabel, ylabel string) *plot.Plot {
	p := plot.New()
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	p.X.Label.TextStyle.Font.Size = points(st.AxisFontPt)
	p.Y.Label.TextStyle.Font.Size = points(st.AxisFontPt)
	p.X.Tick.Label.Font.Size = points(st.TickFontPt)
	p.Y.Tick.Label.Font.Size = points(st.TickFontPt)
	p.Title.TextStyle.Font.Size = points(st.TitleFontPt)
	p.Legend.TextStyle.Font.Size = points(st.LegendFontPt)
	p.Legend.Top = true
	return p
}

// newPlot is axes plus the dashed background grid that every line panel
// carries.
func (st Style) newPlot(xlabel, ylabel string) *plot.Plot {
	p := st.axes(xlabel, ylabel)
	grid := plotter.NewGrid()
	grid.Vertical.Color = color.Gray{Y: 0xa0}
	grid.Vertical.Width = points(0.4)
	grid.Vertical.Dashes = []vg.Length{points(2), points(2)}
	grid.Horizontal.Color = color.Gray{Y: 0xa0}
	grid.Horizontal.Width = points(0.4)
	grid.Horizontal.Dashes = []vg.Length{points(2), points(2)}
	p.Add(grid)
	return p
}

// xyPoints pairs xs with ys, dropping rows where either value is not
// finite. Undefined boundary rows of balance artifacts vanish here instead
// of poisoning the axis ranges.
func xyPoints(xs, ys []float64) plotter.XYs {
	n := len(xs)
	if len(ys) < n {
		n = len(ys)
	}
	pts := make(plotter.XYs, 0, n)
	for i := 0; i < n; i++ {
		if !finite(xs[i]) || !finite(ys[i]) {
			continue
		}
		pts = append(pts, plotter.XY{X: xs[i], Y: ys[i]})
	}
	return pts
}

// positiveXYPoints additionally drops rows with y <= 0, for panels drawn on
// a logarithmic axis.
func positiveXYPoints(xs, ys []float64) plotter.XYs {
	pts := xyPoints(xs, ys)
	out := pts[:0]
	for _, pt := range pts {
		if pt.Y > 0 {
			out = append(out, pt)
		}
	}
	return out
}

// addLine appends one colored polyline. An empty point set adds nothing.
func addLine(p *plot.Plot, pts plotter.XYs, width vg.Length, ci int, label string) error {
	if len(pts) == 0 {
		return nil
	}
	l, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	l.LineStyle.Width = width
	l.LineStyle.Color = plotutil.Color(ci)
	p.Add(l)
	if label != "" {
		p.Legend.Add(label, l)
	}
	return nil
}

// addLinePoints draws a thin line with cross markers, the style of the
// per-gridpoint metric and spectrum panels.
func (st Style) addLinePoints(p *plot.Plot, pts plotter.XYs, width vg.Length, ci int) error {
	if len(pts) == 0 {
		return nil
	}
	l, s, err := plotter.NewLinePoints(pts)
	if err != nil {
		return err
	}
	l.LineStyle.Width = width
	l.LineStyle.Color = plotutil.Color(ci)
	s.GlyphStyle.Shape = draw.CrossGlyph{}
	s.GlyphStyle.Radius = points(st.GlyphSizePt)
	s.GlyphStyle.Color = plotutil.Color(ci)
	p.Add(l, s)
	return nil
}

// logY switches a panel to log10 with exponent ticks. Callers feed such
// panels through positiveXYPoints first.
func logY(p *plot.Plot) {
	p.Y.Scale = plot.LogScale{}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
}

// unitTicks labels every integer in [lo, hi].
func unitTicks(lo, hi int) plot.ConstantTicks {
	ts := make([]plot.Tick, 0, hi-lo+1)
	for v := lo; v <= hi; v++ {
		ts = append(ts, plot.Tick{Value: float64(v), Label: strconv.Itoa(v)})
	}
	return plot.ConstantTicks(ts)
}

// ensureRange gives panels whose every series filtered away a drawable
// range. Autoscaling has nothing to work with on an empty axis, and a
// logarithmic axis must never reach tick layout with a nonpositive or
// zero-span range.
func ensureRange(p *plot.Plot) {
	if p.X.Min > p.X.Max {
		p.X.Min, p.X.Max = 0, 1
	}
	_, logScale := p.Y.Scale.(plot.LogScale)
	if p.Y.Min > p.Y.Max {
		if logScale {
			p.Y.Min, p.Y.Max = 0.1, 10
		} else {
			p.Y.Min, p.Y.Max = 0, 1
		}
		return
	}
	if logScale && p.Y.Min == p.Y.Max {
		p.Y.Min /= 10
		p.Y.Max *= 10
	}
}

// writePage tiles the plot grid onto one fixed-size page and writes it as
// a single-page PDF. Rows must all have the same length; nil entries leave
// their tile blank.
func writePage(path string, st Style, plots [][]*plot.Plot) error {
	rows := len(plots)
	cols := 0
	for _, r := range plots {
		if len(r) > cols {
			cols = len(r)
		}
	}
	for i, r := range plots {
		for len(r) < cols {
			r = append(r, nil)
		}
		plots[i] = r
		for _, p := range r {
			if p != nil {
				ensureRange(p)
			}
		}
	}

	tiles := draw.Tiles{
		Rows:      rows,
		Cols:      cols,
		PadX:      inches(st.PadXIn),
		PadY:      inches(st.PadYIn),
		PadTop:    inches(st.MarginYIn),
		PadBottom: inches(st.MarginYIn),
		PadLeft:   inches(st.MarginXIn),
		PadRight:  inches(st.MarginXIn),
	}
	canvas := vgpdf.New(inches(st.PageWidthIn), inches(st.PageHeightIn))
	tiled := plot.Align(plots, tiles, draw.New(canvas))
	for i := range plots {
		for j := range plots[i] {
			if plots[i][j] == nil {
				continue
			}
			plots[i][j].Draw(tiled[i][j])
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := canvas.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
