package partition

import "sync"

// Cell addresses one grid cell by zero-based row and column.
type Cell struct {
	Row, Col int
}

// Pool is a fixed-length array of readers-writer locks.
// The zero value is not usable; build one with NewPool.
type Pool struct {
	locks []sync.RWMutex
}

// NewPool creates a pool of n locks (n < 1 is treated as 1).
func NewPool(n int) *Pool {
	if n < 1 {
		n = 1
	}

	return &Pool{locks: make([]sync.RWMutex, n)}
}

// Len returns the number of partitions.
func (p *Pool) Len() int { return len(p.locks) }

// Index maps (row, col) of a grid with `cols` columns onto one of n partitions.
// row and col must already be validated against the grid shape.
func Index(row, col, cols, n int) int {
	return (row*cols + col) % n
}

// Of returns the partition governing (row, col) for the current pool length.
func (p *Pool) Of(row, col, cols int) int {
	return Index(row, col, cols, len(p.locks))
}

// RLock read-locks the partition of (row, col) and returns its release func.
func (p *Pool) RLock(row, col, cols int) func() {
	mu := &p.locks[p.Of(row, col, cols)]
	mu.RLock()

	return mu.RUnlock
}

// Lock write-locks the partition of (row, col) and returns its release func.
func (p *Pool) Lock(row, col, cols int) func() {
	mu := &p.locks[p.Of(row, col, cols)]
	mu.Lock()

	return mu.Unlock
}
