package sheet_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/sharesheet/sheet"
	"github.com/stretchr/testify/require"
)

// newFilled builds a rows×cols sheet whose cell (r,c) holds "r:c".
// The core count is pinned so partition sizing is reproducible.
func newFilled(t *testing.T, rows, cols int, opts ...sheet.Option) *sheet.Sheet {
	t.Helper()
	opts = append([]sheet.Option{sheet.WithCoreCount(4)}, opts...)
	s, err := sheet.New(rows, cols, opts...)
	require.NoError(t, err)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			require.NoError(t, s.SetCell(r, c, cellLabel(r, c)))
		}
	}

	return s
}

func cellLabel(r, c int) string { return fmt.Sprintf("%d:%d", r, c) }
