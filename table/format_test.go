package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatValueWidth(t *testing.T) {
	for _, v := range []float64{0, 1, -1, 3.14159, -2.5e-13, 8.7e22, 123456.789} {
		s := FormatValue(v)
		assert.Len(t, s, FieldWidth, "value %v", v)
	}
}

func TestFormatValueLayout(t *testing.T) {
	assert.Equal(t, "    1.0000000e+00", FormatValue(1))
	assert.Equal(t, "   -2.5000000e-13", FormatValue(-2.5e-13))
	assert.Equal(t, "    0.0000000e+00", FormatValue(0))
}

func TestFormatCell(t *testing.T) {
	assert.Equal(t, "              NaN", FormatCell(Undefined()))
	assert.Equal(t, "    4.2000000e+01", FormatCell(Computed(42)))
}

func TestFormatName(t *testing.T) {
	s := FormatName("dSsdt_nz")
	assert.Len(t, s, FieldWidth)
	assert.Equal(t, "         dSsdt_nz", s)
}
