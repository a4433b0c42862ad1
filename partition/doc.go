// Package partition implements the striped readers-writer lock pool that
// guards the cells of a shared grid.
//
// What:
//
//   - Pool is an ordered set of N independent sync.RWMutex values. Every cell
//     maps to exactly one of them through Index: (row*cols + col) mod N.
//   - Size computes N from the grid's cell count, an optional user limit and
//     the machine's core count. N is always odd and at least 1.
//   - Pool.Acquire is the ordering coordinator: it resolves a cell set to its
//     partitions, removes duplicates, and write-locks them in ascending
//     partition order. Held.Release unlocks in exactly the reverse order.
//
// Ordering:
//
//   - Every multi-lock caller sorts by the same key (partition index), so no two
//     callers can each hold a piece of the other's set. Single-partition
//     callers (RLock/Lock) trivially respect the same order.
//
// Lifetime:
//
//   - A Pool is never resized in place. The owner builds a new Pool when Size
//     changes and swaps it in while it holds exclusive access to the grid
//     shape, so Index is never evaluated against a stale (cols, N) pair.
package partition
