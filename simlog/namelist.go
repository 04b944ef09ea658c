package simlog

import (
	"os"
	"regexp"
	"strings"
)

// NamelistLine is one rendered line of the namelist part of the text page:
// either a section heading (the &group name, shown underlined) or a plain
// body line.
type NamelistLine struct {
	Text    string
	Section bool
}

var (
	sectionPattern  = regexp.MustCompile(`^&([A-Za-z0-9_]+)`)
	endLinePattern  = regexp.MustCompile(`(?i)^\s*&end`)
	trailingEndSub  = regexp.MustCompile(`,?\s*&end.*$`)
	columnMarkerSub = regexp.MustCompile(`^[A-Za-z]\s+`)
)

// ReadNamelist flattens a Fortran namelist file into text-page lines.
// Standalone &end lines vanish and a trailing ", &end" is cut; a leading
// single-letter column marker is dropped; an &group opener becomes a
// section heading, with any same-line remainder kept as a body line.
func ReadNamelist(path string) ([]NamelistLine, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var out []NamelistLine
	for _, raw := range splitLines(string(data)) {
		if endLinePattern.MatchString(raw) {
			continue
		}
		line := trailingEndSub.ReplaceAllString(raw, "")
		line = columnMarkerSub.ReplaceAllString(line, "")
		stripped := strings.TrimLeft(line, " \t")

		if m := sectionPattern.FindStringSubmatch(stripped); m != nil {
			out = append(out, NamelistLine{Text: m[1], Section: true})
			remainder := strings.TrimSpace(stripped[len(m[0]):])
			if remainder != "" {
				out = append(out, NamelistLine{Text: remainder})
			}
			continue
		}
		out = append(out, NamelistLine{Text: stripped})
	}
	return out, nil
}
