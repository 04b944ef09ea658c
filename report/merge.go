package report

import (
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// MergeReport concatenates the page fragments in order into outPath and
// stamps every page with its position as "i / total" near the bottom
// center.
func MergeReport(fragments []string, outPath string, st Style) error {
	if len(fragments) == 0 {
		return fmt.Errorf("merge: no pages")
	}
	if err := api.MergeCreateFile(fragments, outPath, false, nil); err != nil {
		return fmt.Errorf("merge: %w", err)
	}
	desc := fmt.Sprintf(
		"fontname:Helvetica, points:%g, scalefactor:1 abs, position:bc, offset:0 10, rotation:0",
		st.StampFontPt)
	wm, err := api.TextWatermark("%p / %P", desc, true, false, types.POINTS)
	if err != nil {
		return fmt.Errorf("page stamp: %w", err)
	}
	if err := api.AddWatermarksFile(outPath, "", nil, wm, nil); err != nil {
		return fmt.Errorf("page stamp: %w", err)
	}
	return nil
}
