// Package grid_test contains unit tests for the Grid cell store.
package grid_test

import (
	"testing"

	"github.com/katalvlaran/sharesheet/grid"
	"github.com/stretchr/testify/require"
)

// fill builds a rows×cols grid whose cell (i,j) holds "i.j".
func fill(t *testing.T, rows, cols int) *grid.Grid {
	t.Helper()
	g, err := grid.New(rows, cols)
	require.NoError(t, err)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			require.NoError(t, g.Set(i, j, label(i, j)))
		}
	}

	return g
}

func label(i, j int) string {
	return string(rune('a'+i)) + string(rune('0'+j))
}

// TestNewBadShape ensures New rejects non-positive dimensions.
func TestNewBadShape(t *testing.T) {
	_, err := grid.New(0, 3)
	require.ErrorIs(t, err, grid.ErrBadShape)

	_, err = grid.New(3, -1)
	require.ErrorIs(t, err, grid.ErrBadShape)
}

// TestNewIsEmpty verifies a fresh grid reads "" everywhere.
func TestNewIsEmpty(t *testing.T) {
	g, err := grid.New(2, 3)
	require.NoError(t, err)
	require.Equal(t, 2, g.Rows())
	require.Equal(t, 3, g.Cols())
	require.Equal(t, 6, g.Len())

	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			v, err := g.At(i, j)
			require.NoError(t, err)
			require.Equal(t, "", v)
		}
	}
}

// TestAtSetOutOfRange ensures At and Set report ErrOutOfRange on bad coordinates.
func TestAtSetOutOfRange(t *testing.T) {
	g, err := grid.New(2, 2)
	require.NoError(t, err)

	_, err = g.At(-1, 0)
	require.ErrorIs(t, err, grid.ErrOutOfRange)
	_, err = g.At(0, 2)
	require.ErrorIs(t, err, grid.ErrOutOfRange)
	require.ErrorIs(t, g.Set(2, 0, "x"), grid.ErrOutOfRange)
	require.ErrorIs(t, g.Set(0, -1, "x"), grid.ErrOutOfRange)
}

// TestFromRowsPadsAndTruncates covers ragged input: the first record fixes the width.
func TestFromRowsPadsAndTruncates(t *testing.T) {
	g, err := grid.FromRows([][]string{
		{"a", "b", "c"},
		{"d"},
		{"e", "f", "g", "h", "i"},
	})
	require.NoError(t, err)
	require.Equal(t, 3, g.Rows())
	require.Equal(t, 3, g.Cols())
	require.Equal(t, [][]string{
		{"a", "b", "c"},
		{"d", "", ""},
		{"e", "f", "g"},
	}, g.Records())

	_, err = grid.FromRows(nil)
	require.ErrorIs(t, err, grid.ErrNoRows)
}

// TestInsertRowAfterFront inserts at index 0 and checks every row shifts down.
func TestInsertRowAfterFront(t *testing.T) {
	g := fill(t, 3, 2)
	before := g.Records()

	next, err := g.InsertRowAfter(-1)
	require.NoError(t, err)
	require.Equal(t, 4, next.Rows())
	require.Equal(t, []string{"", ""}, next.Records()[0])
	require.Equal(t, before, next.Records()[1:])

	// receiver untouched
	require.Equal(t, before, g.Records())
}

// TestInsertRowAfterMiddle inserts after row 1 of 3.
func TestInsertRowAfterMiddle(t *testing.T) {
	g := fill(t, 3, 2)
	next, err := g.InsertRowAfter(1)
	require.NoError(t, err)

	recs := next.Records()
	require.Equal(t, []string{label(0, 0), label(0, 1)}, recs[0])
	require.Equal(t, []string{label(1, 0), label(1, 1)}, recs[1])
	require.Equal(t, []string{"", ""}, recs[2])
	require.Equal(t, []string{label(2, 0), label(2, 1)}, recs[3])
}

// TestInsertColAfter checks columns up to `after` stay, the new column is empty
// and the remainder shifts right.
func TestInsertColAfter(t *testing.T) {
	g := fill(t, 2, 3)
	next, err := g.InsertColAfter(0)
	require.NoError(t, err)
	require.Equal(t, 4, next.Cols())

	for i, row := range next.Records() {
		require.Equal(t, []string{label(i, 0), "", label(i, 1), label(i, 2)}, row)
	}

	front, err := g.InsertColAfter(-1)
	require.NoError(t, err)
	require.Equal(t, []string{"", label(1, 0), label(1, 1), label(1, 2)}, front.Records()[1])
}

// TestInsertRange pins the accepted insertion range to [-1, dim-1]:
// inserting after the last line is accepted, one past it is not.
func TestInsertRange(t *testing.T) {
	g := fill(t, 2, 2)

	_, err := g.InsertRowAfter(-2)
	require.ErrorIs(t, err, grid.ErrOutOfRange)
	_, err = g.InsertRowAfter(2)
	require.ErrorIs(t, err, grid.ErrOutOfRange)
	_, err = g.InsertColAfter(2)
	require.ErrorIs(t, err, grid.ErrOutOfRange)

	last, err := g.InsertRowAfter(1)
	require.NoError(t, err)
	require.Equal(t, []string{"", ""}, last.Records()[2])
}

// TestSwapRowsTwiceRestores verifies a double swap is the identity.
func TestSwapRowsTwiceRestores(t *testing.T) {
	g := fill(t, 3, 3)
	before := g.Records()

	require.NoError(t, g.SwapRows(0, 2))
	require.Equal(t, before[2], g.Records()[0])
	require.Equal(t, before[0], g.Records()[2])
	require.NoError(t, g.SwapRows(0, 2))
	require.Equal(t, before, g.Records())

	require.ErrorIs(t, g.SwapRows(0, 3), grid.ErrOutOfRange)
}

// TestSwapColsTwiceRestores verifies a double column swap is the identity.
func TestSwapColsTwiceRestores(t *testing.T) {
	g := fill(t, 3, 3)
	before := g.Records()

	require.NoError(t, g.SwapCols(0, 1))
	v, err := g.At(2, 0)
	require.NoError(t, err)
	require.Equal(t, label(2, 1), v)
	require.NoError(t, g.SwapCols(1, 0))
	require.Equal(t, before, g.Records())

	require.ErrorIs(t, g.SwapCols(-1, 0), grid.ErrOutOfRange)
}

// TestRecordsIsDeep ensures mutating returned records does not reach the grid.
func TestRecordsIsDeep(t *testing.T) {
	g := fill(t, 2, 2)
	recs := g.Records()
	recs[0][0] = "changed"

	v, err := g.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, label(0, 0), v)
}
