package table

import "fmt"

// FieldWidth is the width of every serialized column, header names included.
const FieldWidth = 17

const undefinedToken = "NaN"

// FormatValue renders v in the fixed-width scientific form of the history
// artifacts: seven fractional digits, two-digit exponent, right-justified
// in FieldWidth characters.
func FormatValue(v float64) string {
	return fmt.Sprintf("%*.7e", FieldWidth, v)
}

// FormatCell renders a computed cell like FormatValue and an Undefined cell
// as the right-justified NaN token.
func FormatCell(c Cell) string {
	if !c.Defined() {
		return fmt.Sprintf("%*s", FieldWidth, undefinedToken)
	}
	return FormatValue(c.Value())
}

// FormatName right-justifies a column name to FieldWidth characters.
func FormatName(name string) string {
	return fmt.Sprintf("%*s", FieldWidth, name)
}
