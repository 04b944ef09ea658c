package table

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadSkipsCommentsAndBlanks(t *testing.T) {
	in := `# header line
  # indented comment

   1.0   2.0   3.0
   4.0   5.0   6.0

`
	tbl, err := Read(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, 2, tbl.NumRows())
	assert.Equal(t, 3, tbl.NumCols())
	assert.Equal(t, 5.0, tbl.At(1, 1))
}

func TestReadParsesSpecialTokens(t *testing.T) {
	tbl, err := Read(strings.NewReader("NaN -1.5e-3 2.0E+01\n"))
	require.NoError(t, err)
	assert.True(t, math.IsNaN(tbl.At(0, 0)))
	assert.Equal(t, -1.5e-3, tbl.At(0, 1))
	assert.Equal(t, 20.0, tbl.At(0, 2))
}

func TestReadRejectsRaggedRows(t *testing.T) {
	_, err := Read(strings.NewReader("1 2 3\n4 5\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestReadRejectsNonNumeric(t *testing.T) {
	_, err := Read(strings.NewReader("1 two 3\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "two")
}

func TestReadEmptyInput(t *testing.T) {
	tbl, err := Read(strings.NewReader("# only comments\n"))
	require.NoError(t, err)
	assert.Equal(t, 0, tbl.NumRows())
}

func TestColCopies(t *testing.T) {
	tbl := New(2)
	require.NoError(t, tbl.Append([]float64{1, 2}))
	require.NoError(t, tbl.Append([]float64{3, 4}))
	col := tbl.Col(1)
	assert.Equal(t, []float64{2, 4}, col)
	col[0] = 99
	assert.Equal(t, 2.0, tbl.At(0, 1))
}

func TestAppendWidthMismatch(t *testing.T) {
	tbl := New(3)
	assert.Error(t, tbl.Append([]float64{1, 2}))
}

func TestSchemaIndex(t *testing.T) {
	s := NewSchema("t", "a", "b")
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, 1, s.Index("a"))
	assert.Equal(t, -1, s.Index("missing"))
	assert.Equal(t, "b", s.Name(2))
}

func TestCellUndefined(t *testing.T) {
	c := Undefined()
	assert.False(t, c.Defined())
	assert.True(t, math.IsNaN(c.Value()))

	d := Computed(0)
	assert.True(t, d.Defined())
	assert.Equal(t, 0.0, d.Value())
}
