package entropy

import "github.com/smaeyama/test-fig-stdout/table"

// Column positions of the 21-column entropy-balance history table. The
// solver writes no machine-readable header, so binding is strictly
// positional and these indices are the single source of truth.
const (
	ColT = iota
	ColSsNz
	ColSsZf
	ColWENz
	ColWEZf
	ColWMNz
	ColWMZf
	ColRENz
	ColREZf
	ColRMNz
	ColRMZf
	ColNENz
	ColNEZf
	ColNMNz
	ColNMZf
	ColDsNz
	ColDsZf
	ColGE
	ColGM
	ColQE
	ColQM
	NumInputCols
)

// NumDerivCols is the number of derivative columns added by Augment.
const NumDerivCols = 6

// NumCols is the augmented column count: time, the twenty history
// quantities and the six time derivatives.
const NumCols = NumInputCols + NumDerivCols

// InputSchema names the history columns in file order.
var InputSchema = table.NewSchema(
	"t",
	"Ss_nz", "Ss_zf",
	"WE_nz", "WE_zf",
	"WM_nz", "WM_zf",
	"RE_nz", "RE_zf",
	"RM_nz", "RM_zf",
	"NE_nz", "NE_zf",
	"NM_nz", "NM_zf",
	"Ds_nz", "Ds_zf",
	"GE", "GM", "QE", "QM",
)

// derivSources pairs each derivative column, in augmented order, with the
// history column it differentiates.
var derivSources = []struct {
	name string
	col  int
}{
	{"dSsdt_nz", ColSsNz},
	{"dSsdt_zf", ColSsZf},
	{"dWEdt_nz", ColWENz},
	{"dWEdt_zf", ColWEZf},
	{"dWMdt_nz", ColWMNz},
	{"dWMdt_zf", ColWMZf},
}

// trailingCols lists the history columns that are serialized after the
// derivatives. The differentiated quantities themselves stay in memory but
// never reach the artifact.
var trailingCols = []int{
	ColRENz, ColREZf,
	ColRMNz, ColRMZf,
	ColNENz, ColNEZf,
	ColNMNz, ColNMZf,
	ColDsNz, ColDsZf,
	ColGE, ColGM, ColQE, ColQM,
}

// OutputSchema names the 21 serialized columns: time, the six derivatives,
// then the fourteen remaining history quantities.
var OutputSchema = buildOutputSchema()

func buildOutputSchema() table.Schema {
	names := []string{"t"}
	for _, d := range derivSources {
		names = append(names, d.name)
	}
	for _, c := range trailingCols {
		names = append(names, InputSchema.Name(c))
	}
	return table.NewSchema(names...)
}
