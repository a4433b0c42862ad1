package partition

import "sort"

// Order resolves cells to their partitions in a pool of n locks and returns
// the distinct partition indices in acquisition order (ascending).
//
// Implementation:
//   - Stage 1: map each cell to Index(row, col, cols, n); its row-major offset
//     row*cols+col is the only input.
//   - Stage 2: drop duplicates, since many cells legitimately share a lock.
//   - Stage 3: sort ascending. The partition index is the one key every caller
//     agrees on regardless of which cells it asked for, which is what makes the
//     order total across callers.
//
// Complexity: O(k + p log p) for k cells over p distinct partitions.
func Order(cells []Cell, cols, n int) []int {
	seen := make([]bool, n)
	out := make([]int, 0, min(len(cells), n))
	for _, c := range cells {
		idx := Index(c.Row, c.Col, cols, n)
		if seen[idx] {
			continue
		}
		seen[idx] = true
		out = append(out, idx)
	}
	sort.Ints(out)

	return out
}

// Held is a set of partition write locks taken by Acquire.
type Held struct {
	pool     *Pool
	order    []int
	released bool
}

// Acquire write-locks every partition touched by cells, in Order.
// The caller must call Release exactly once it is done mutating; extra calls
// are no-ops.
func (p *Pool) Acquire(cells []Cell, cols int) *Held {
	order := Order(cells, cols, len(p.locks))
	for _, idx := range order {
		p.locks[idx].Lock()
	}

	return &Held{pool: p, order: order}
}

// Partitions returns the held partition indices in acquisition order.
func (h *Held) Partitions() []int {
	out := make([]int, len(h.order))
	copy(out, h.order)

	return out
}

// Release unlocks the held partitions in strictly descending order.
func (h *Held) Release() {
	if h.released {
		return
	}
	h.released = true
	for i := len(h.order) - 1; i >= 0; i-- {
		h.pool.locks[h.order[i]].Unlock()
	}
}
