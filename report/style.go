// Package report renders the diagnostic pages of a run and merges them
// into the final paginated document.
package report

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Style is the appearance configuration for report pages. A value is built
// once, optionally overlaid from YAML, and passed down by value; render
// code never mutates shared theme state.
type Style struct {
	PageWidthIn  float64 `yaml:"page_width_in"`
	PageHeightIn float64 `yaml:"page_height_in"`

	LineWidthPt  float64 `yaml:"line_width_pt"`
	TotalWidthPt float64 `yaml:"total_width_pt"`
	GlyphSizePt  float64 `yaml:"glyph_size_pt"`
	BarWidthPt   float64 `yaml:"bar_width_pt"`

	TitleFontPt  float64 `yaml:"title_font_pt"`
	AxisFontPt   float64 `yaml:"axis_font_pt"`
	TickFontPt   float64 `yaml:"tick_font_pt"`
	LegendFontPt float64 `yaml:"legend_font_pt"`

	MarginXIn float64 `yaml:"margin_x_in"`
	MarginYIn float64 `yaml:"margin_y_in"`
	PadXIn    float64 `yaml:"pad_x_in"`
	PadYIn    float64 `yaml:"pad_y_in"`

	TextFontPt  float64 `yaml:"text_font_pt"`
	StampFontPt float64 `yaml:"stamp_font_pt"`
}

// DefaultStyle is the layout the solver's reports always used: A4 portrait,
// thin lines, small fonts.
func DefaultStyle() Style {
	return Style{
		PageWidthIn:  8.27,
		PageHeightIn: 11.69,
		LineWidthPt:  0.5,
		TotalWidthPt: 0.8,
		GlyphSizePt:  2,
		BarWidthPt:   9,
		TitleFontPt:  9,
		AxisFontPt:   9,
		TickFontPt:   7,
		LegendFontPt: 7,
		MarginXIn:    1.0,
		MarginYIn:    0.9,
		PadXIn:       0.5,
		PadYIn:       0.45,
		TextFontPt:   10,
		StampFontPt:  9,
	}
}

// LoadStyle reads YAML overrides on top of the defaults. Keys absent from
// the file keep their default values.
func LoadStyle(path string) (Style, error) {
	st := DefaultStyle()
	data, err := os.ReadFile(path)
	if err != nil {
		return Style{}, err
	}
	if err := yaml.Unmarshal(data, &st); err != nil {
		return Style{}, fmt.Errorf("style %s: %w", path, err)
	}
	if st.PageWidthIn <= 0 || st.PageHeightIn <= 0 {
		return Style{}, fmt.Errorf("style %s: page size must be positive", path)
	}
	return st, nil
}
