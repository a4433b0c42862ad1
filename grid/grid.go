package grid

// Grid is a row-major block of text cells.
// r is rows, c is columns, and data holds r*c values in row-major order.
type Grid struct {
	r, c int      // number of rows and columns
	data []string // flat backing storage, length == r*c
}

// New creates an r×c Grid with every cell set to "".
// Complexity: O(r*c) time and memory.
func New(rows, cols int) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, gridErrorf("New", rows, cols, ErrBadShape)
	}

	return &Grid{r: rows, c: cols, data: make([]string, rows*cols)}, nil
}

// FromRows builds a Grid from ragged records.
// The length of the first record fixes the column count; shorter records are
// padded with "" and fields past that width are dropped.
// Complexity: O(r*c).
func FromRows(records [][]string) (*Grid, error) {
	if len(records) == 0 {
		return nil, ErrNoRows
	}
	cols := len(records[0])
	if cols == 0 {
		// a zero-field first record still describes one (empty) column
		cols = 1
	}

	g := &Grid{r: len(records), c: cols, data: make([]string, len(records)*cols)}
	for i, rec := range records {
		n := len(rec)
		if n > cols {
			n = cols
		}
		copy(g.data[i*cols:i*cols+n], rec[:n])
	}

	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.r }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.c }

// Len returns the number of cells, rows*cols.
func (g *Grid) Len() int { return len(g.data) }

// Contains reports whether (row, col) addresses a cell of g.
func (g *Grid) Contains(row, col int) bool {
	return row >= 0 && row < g.r && col >= 0 && col < g.c
}

// At returns the value stored at (row, col).
// Complexity: O(1).
func (g *Grid) At(row, col int) (string, error) {
	if !g.Contains(row, col) {
		return "", gridErrorf("At", row, col, ErrOutOfRange)
	}

	return g.data[row*g.c+col], nil
}

// Set overwrites the value stored at (row, col).
// Complexity: O(1).
func (g *Grid) Set(row, col int, v string) error {
	if !g.Contains(row, col) {
		return gridErrorf("Set", row, col, ErrOutOfRange)
	}
	g.data[row*g.c+col] = v

	return nil
}

// Records returns a deep copy of the grid as one slice per row.
// Complexity: O(r*c).
func (g *Grid) Records() [][]string {
	out := make([][]string, g.r)
	for i := 0; i < g.r; i++ {
		out[i] = make([]string, g.c)
		copy(out[i], g.data[i*g.c:(i+1)*g.c])
	}

	return out
}

// InsertRowAfter returns a new Grid with one empty row placed right after row
// `after`; after == -1 places it at index 0. Valid range is [-1, rows-1].
// The receiver is left untouched.
// Complexity: O(r*c).
func (g *Grid) InsertRowAfter(after int) (*Grid, error) {
	if after < -1 || after >= g.r {
		return nil, gridErrorf("InsertRowAfter", after, g.r, ErrOutOfRange)
	}

	next := &Grid{r: g.r + 1, c: g.c, data: make([]string, (g.r+1)*g.c)}
	split := (after + 1) * g.c
	copy(next.data[:split], g.data[:split])
	// the row at after+1 stays "", the tail shifts down by one row
	copy(next.data[split+g.c:], g.data[split:])

	return next, nil
}

// InsertColAfter returns a new Grid with one empty column placed right after
// column `after`; after == -1 places it at index 0. Valid range is [-1, cols-1].
// The receiver is left untouched.
// Complexity: O(r*c).
func (g *Grid) InsertColAfter(after int) (*Grid, error) {
	if after < -1 || after >= g.c {
		return nil, gridErrorf("InsertColAfter", after, g.c, ErrOutOfRange)
	}

	nc := g.c + 1
	next := &Grid{r: g.r, c: nc, data: make([]string, g.r*nc)}
	head := after + 1
	for i := 0; i < g.r; i++ {
		src := g.data[i*g.c : (i+1)*g.c]
		dst := next.data[i*nc : (i+1)*nc]
		copy(dst[:head], src[:head])
		copy(dst[head+1:], src[head:])
	}

	return next, nil
}

// SwapRows exchanges the contents of rows a and b in place.
// Complexity: O(c).
func (g *Grid) SwapRows(a, b int) error {
	if a < 0 || a >= g.r || b < 0 || b >= g.r {
		return gridErrorf("SwapRows", a, b, ErrOutOfRange)
	}
	if a == b {
		return nil
	}
	ra, rb := g.data[a*g.c:(a+1)*g.c], g.data[b*g.c:(b+1)*g.c]
	for j := range ra {
		ra[j], rb[j] = rb[j], ra[j]
	}

	return nil
}

// SwapCols exchanges the contents of columns a and b in place.
// Complexity: O(r).
func (g *Grid) SwapCols(a, b int) error {
	if a < 0 || a >= g.c || b < 0 || b >= g.c {
		return gridErrorf("SwapCols", a, b, ErrOutOfRange)
	}
	if a == b {
		return nil
	}
	for i := 0; i < g.r; i++ {
		base := i * g.c
		g.data[base+a], g.data[base+b] = g.data[base+b], g.data[base+a]
	}

	return nil
}
