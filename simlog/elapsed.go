package simlog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// tailLines is how much of the log end the elapsed-time report covers. The
// solver prints its timing summary in a fixed layout within the final 80
// lines.
const tailLines = 80

// lineRange is a 1-based inclusive range into the log tail.
type lineRange struct {
	first, last int
}

// ElapsedSection is one granularity of the elapsed-time report, assembled
// from fixed line ranges of the log tail.
type ElapsedSection struct {
	Name   string
	ranges []lineRange
}

// ElapsedSections lists the three emitted granularities in output order.
var ElapsedSections = []ElapsedSection{
	{Name: "elt_coarse", ranges: []lineRange{
		{3, 14},
	}},
	{Name: "elt_medium", ranges: []lineRange{
		{6, 7}, {18, 35}, {72, 79}, {14, 14},
	}},
	{Name: "elt_fine", ranges: []lineRange{
		{6, 7}, {18, 20}, {39, 47}, {22, 24}, {48, 59},
		{29, 29}, {60, 62}, {31, 31}, {63, 65},
		{33, 34}, {66, 68}, {72, 79}, {14, 14},
	}},
}

func (s ElapsedSection) slice(tail []string) (string, error) {
	var out []string
	for _, r := range s.ranges {
		if r.last > len(tail) {
			return "", fmt.Errorf("simlog: %s needs tail line %d, log tail has %d lines", s.Name, r.last, len(tail))
		}
		out = append(out, tail[r.first-1:r.last]...)
	}
	return strings.Join(out, "\n"), nil
}

// WriteElapsedSections slices the last lines of the solver log into the
// coarse, medium and fine elapsed-time tables and writes each as
// <name>.dat under dir. The tables carry no trailing newline.
func WriteElapsedSections(logPath, dir string) error {
	data, err := os.ReadFile(logPath)
	if err != nil {
		return err
	}
	lines := splitLines(string(data))
	if len(lines) > tailLines {
		lines = lines[len(lines)-tailLines:]
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	for _, sec := range ElapsedSections {
		body, err := sec.slice(lines)
		if err != nil {
			return err
		}
		out := filepath.Join(dir, sec.Name+".dat")
		if err := os.WriteFile(out, []byte(body), 0o644); err != nil {
			return err
		}
	}
	return nil
}

// splitLines splits on newlines without producing a trailing empty entry
// for a final newline.
func splitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	lines := strings.Split(s, "\n")
	for i, ln := range lines {
		lines[i] = strings.TrimSuffix(ln, "\r")
	}
	return lines
}
